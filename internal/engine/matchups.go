package engine

// WeeklyMatchup is one team's side of a single week's head-to-head. Slot
// totals are the sum of every roster player's game in that slot; the matchup
// is decided slot by slot against the opponent's totals.
type WeeklyMatchup struct {
	Team             string
	Week             int
	Opponent         string
	ResolvedOpponent string
	SlotTotals       [SlotsPerWeek]float64
	Wins             int
	Losses           int
	Ties             int
	PinsFor          float64
	PinsAgainst      float64
}

// TeamRecord is a team's season-long win/loss tally across its weekly
// matchups.
type TeamRecord struct {
	Team        string
	Wins        int
	Losses      int
	Ties        int
	PinsFor     float64
	PinsAgainst float64
}

// Matchups derives every team-week matchup for a season in one pass: slot
// totals are accumulated into a (team, week) index, then each side is scored
// against its resolved opponent's totals. Teams whose opponent label cannot
// be resolved keep their slot totals but record no wins, losses, ties or pins
// against.
func Matchups(records []ScoreRecord) []WeeklyMatchup {
	type teamWeek struct {
		team string
		week int
	}

	var teams []string
	seenTeam := make(map[string]struct{})
	var order []teamWeek
	index := make(map[teamWeek]*WeeklyMatchup)

	for _, rec := range records {
		if rec.Substitute {
			continue
		}
		if _, ok := seenTeam[rec.Team]; !ok {
			seenTeam[rec.Team] = struct{}{}
			teams = append(teams, rec.Team)
		}
		if rec.Week < 1 {
			continue
		}
		key := teamWeek{rec.Team, rec.Week}
		m, ok := index[key]
		if !ok {
			m = &WeeklyMatchup{Team: rec.Team, Week: rec.Week}
			index[key] = m
			order = append(order, key)
		}
		for i, g := range rec.Games {
			if g > 0 {
				m.SlotTotals[i] += g
				m.PinsFor += g
			}
		}
		if m.Opponent == "" && rec.Opponent != "" {
			m.Opponent = rec.Opponent
		}
	}

	for _, m := range index {
		if m.Opponent == "" {
			continue
		}
		if resolved, ok := ResolveName(m.Opponent, teams); ok && resolved != m.Team {
			m.ResolvedOpponent = resolved
		}
	}

	out := make([]WeeklyMatchup, 0, len(order))
	for _, key := range order {
		m := index[key]
		if m.ResolvedOpponent != "" {
			if opp, ok := index[teamWeek{m.ResolvedOpponent, m.Week}]; ok {
				scoreMatchup(m, opp)
			}
		}
		out = append(out, *m)
	}
	return out
}

// scoreMatchup compares two sides slot by slot. A slot where neither team
// put up pins is skipped entirely.
func scoreMatchup(m, opp *WeeklyMatchup) {
	for i := 0; i < SlotsPerWeek; i++ {
		ours, theirs := m.SlotTotals[i], opp.SlotTotals[i]
		if ours == 0 && theirs == 0 {
			continue
		}
		switch {
		case ours > theirs:
			m.Wins++
		case ours < theirs:
			m.Losses++
		default:
			m.Ties++
		}
		m.PinsAgainst += theirs
	}
}

// SeasonRecords folds weekly matchups into per-team season records, one entry
// per team in matchup order.
func SeasonRecords(matchups []WeeklyMatchup) []TeamRecord {
	var order []string
	byTeam := make(map[string]*TeamRecord)
	for _, m := range matchups {
		rec, ok := byTeam[m.Team]
		if !ok {
			rec = &TeamRecord{Team: m.Team}
			byTeam[m.Team] = rec
			order = append(order, m.Team)
		}
		rec.Wins += m.Wins
		rec.Losses += m.Losses
		rec.Ties += m.Ties
		rec.PinsFor += m.PinsFor
		rec.PinsAgainst += m.PinsAgainst
	}
	out := make([]TeamRecord, 0, len(order))
	for _, team := range order {
		out = append(out, *byTeam[team])
	}
	return out
}
