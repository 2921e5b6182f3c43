package engine

import "math"

// TeamSeasonStats is a team's season summary: the head-to-head record plus
// each roster player's season average. AvgPerGame is the mean of the member
// averages, so every player weighs equally regardless of games bowled.
type TeamSeasonStats struct {
	Team        string
	Wins        int
	Losses      int
	Ties        int
	PinsFor     float64
	PinsAgainst float64
	AvgPerGame  float64
	Players     map[string]float64
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// TeamStats derives per-team season statistics, one entry per team in
// first-appearance order.
func TeamStats(records []ScoreRecord) []TeamSeasonStats {
	players := PlayerStats(records)
	matchups := Matchups(records)
	seasonRecords := SeasonRecords(matchups)

	var order []string
	byTeam := make(map[string]*TeamSeasonStats)
	for _, rec := range seasonRecords {
		byTeam[rec.Team] = &TeamSeasonStats{
			Team:        rec.Team,
			Wins:        rec.Wins,
			Losses:      rec.Losses,
			Ties:        rec.Ties,
			PinsFor:     rec.PinsFor,
			PinsAgainst: rec.PinsAgainst,
			Players:     make(map[string]float64),
		}
		order = append(order, rec.Team)
	}

	// The Players map holds display-rounded figures; AvgPerGame is computed
	// from the exact averages and rounded once at the end.
	memberAverages := make(map[string][]float64)
	for _, p := range players {
		stats, ok := byTeam[p.Team]
		if !ok {
			// Team bowled no ranked weeks; still report its roster.
			stats = &TeamSeasonStats{Team: p.Team, Players: make(map[string]float64)}
			byTeam[p.Team] = stats
			order = append(order, p.Team)
		}
		stats.Players[p.Player] = round1(p.Average)
		memberAverages[p.Team] = append(memberAverages[p.Team], p.Average)
	}

	out := make([]TeamSeasonStats, 0, len(order))
	for _, team := range order {
		stats := byTeam[team]
		if avgs := memberAverages[team]; len(avgs) > 0 {
			var sum float64
			for _, avg := range avgs {
				sum += avg
			}
			stats.AvgPerGame = round1(sum / float64(len(avgs)))
		}
		out = append(out, *stats)
	}
	return out
}
