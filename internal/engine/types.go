package engine

// SlotsPerWeek is the number of positional game entries in a weekly row.
const SlotsPerWeek = 5

// RawRow is one per-player-per-week line exactly as the record store holds
// it: untyped cells, possibly blank, possibly garbage. The normalizer turns
// it into a ScoreRecord; nothing else in the engine touches raw cells.
type RawRow struct {
	ID         string
	Season     int
	Week       Cell
	Team       Cell
	Player     Cell
	Games      [SlotsPerWeek]Cell
	Absent     Cell
	Substitute Cell
	Opponent   Cell
}

// ScoreRecord is the typed form of a row: the atomic input unit for every
// derived statistic.
type ScoreRecord struct {
	ID         string
	Season     int
	Week       int
	Team       string
	Player     string
	Opponent   string
	Games      [SlotsPerWeek]float64
	Absent     bool
	Substitute bool
}

// PlayedGames returns the scores of the games actually bowled, in slot order.
func (r ScoreRecord) PlayedGames() []float64 {
	var games []float64
	for _, g := range r.Games {
		if g > 0 {
			games = append(games, g)
		}
	}
	return games
}

// WeekTotal is the pin total of the row's played games.
func (r ScoreRecord) WeekTotal() float64 {
	var total float64
	for _, g := range r.Games {
		if g > 0 {
			total += g
		}
	}
	return total
}
