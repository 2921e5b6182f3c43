package engine

import "math"

// PlayerSeasonStats aggregates every game a roster player bowled across a
// season. Substitute rows never contribute. Absent rows only count the week
// as missed; any games on the line (a sub may have bowled them) stay out of
// the player's personal score sequence.
type PlayerSeasonStats struct {
	Player      string
	Team        string
	Games       []float64
	Average     float64
	StdDev      float64
	HighGame    float64
	LowGame     float64
	WeeksPlayed int
	WeeksAbsent int
}

// PlayerStats derives per-player season statistics from normalized records,
// one entry per distinct player label in first-appearance order.
func PlayerStats(records []ScoreRecord) []PlayerSeasonStats {
	var order []string
	byPlayer := make(map[string]*PlayerSeasonStats)

	for _, rec := range records {
		if rec.Substitute {
			continue
		}
		stats, ok := byPlayer[rec.Player]
		if !ok {
			stats = &PlayerSeasonStats{Player: rec.Player, Team: rec.Team}
			byPlayer[rec.Player] = stats
			order = append(order, rec.Player)
		}
		if rec.Absent {
			stats.WeeksAbsent++
		} else {
			stats.Games = append(stats.Games, rec.PlayedGames()...)
			stats.WeeksPlayed++
		}
	}

	out := make([]PlayerSeasonStats, 0, len(order))
	for _, name := range order {
		stats := byPlayer[name]
		stats.Average, stats.StdDev = meanStdDev(stats.Games)
		stats.HighGame, stats.LowGame = minMax(stats.Games)
		out = append(out, *stats)
	}
	return out
}

// meanStdDev returns the mean and population standard deviation of the
// scores. Both are 0 for an empty slice; the deviation is 0 for a single
// game.
func meanStdDev(games []float64) (float64, float64) {
	if len(games) == 0 {
		return 0, 0
	}
	var sum float64
	for _, g := range games {
		sum += g
	}
	mean := sum / float64(len(games))
	if len(games) < 2 {
		return mean, 0
	}
	var sq float64
	for _, g := range games {
		d := g - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(games)))
}

func minMax(games []float64) (high, low float64) {
	for i, g := range games {
		if i == 0 {
			high, low = g, g
			continue
		}
		if g > high {
			high = g
		}
		if g < low {
			low = g
		}
	}
	return high, low
}
