package engine

import (
	"sort"
	"strconv"
)

const (
	topGamesLimit       = 10
	topPlayerWeeksLimit = 10
	topTeamWeeksLimit   = 5
)

// GameScore is a single bowled game attributed to its player and week.
type GameScore struct {
	Player string
	Team   string
	Week   int
	Score  float64
}

// PlayerWeekTotal is one player's pin total for one week.
type PlayerWeekTotal struct {
	Player    string
	Team      string
	Week      int
	Total     float64
	GameCount int
}

// TeamWeekTotal is one team's combined pin total for one week.
type TeamWeekTotal struct {
	Team  string
	Week  int
	Total float64
}

// LeagueLeaderboard collects the season's headline rankings.
type LeagueLeaderboard struct {
	PlayerAverages []PlayerSeasonStats
	TopPlayerWeeks []PlayerWeekTotal
	TopTeamWeeks   []TeamWeekTotal
	TopGames       []GameScore
}

// Leaderboard derives the season rankings. Substitute rows are excluded from
// everything; absent rows still feed single-game and team-week rankings (the
// pins were bowled on the team's line) but not the player-week ranking, which
// is a personal achievement.
func Leaderboard(records []ScoreRecord) LeagueLeaderboard {
	var games []GameScore
	var playerWeeks []PlayerWeekTotal
	teamWeekIndex := make(map[string]*TeamWeekTotal)
	var teamWeekOrder []string

	for _, rec := range records {
		if rec.Substitute || rec.Week < 1 {
			continue
		}
		for _, g := range rec.Games {
			if g > 0 {
				games = append(games, GameScore{Player: rec.Player, Team: rec.Team, Week: rec.Week, Score: g})
			}
		}
		played := rec.PlayedGames()
		if !rec.Absent && len(played) > 0 {
			playerWeeks = append(playerWeeks, PlayerWeekTotal{
				Player:    rec.Player,
				Team:      rec.Team,
				Week:      rec.Week,
				Total:     rec.WeekTotal(),
				GameCount: len(played),
			})
		}
		key := teamWeekKey(rec.Team, rec.Week)
		tw, ok := teamWeekIndex[key]
		if !ok {
			tw = &TeamWeekTotal{Team: rec.Team, Week: rec.Week}
			teamWeekIndex[key] = tw
			teamWeekOrder = append(teamWeekOrder, key)
		}
		tw.Total += rec.WeekTotal()
	}

	teamWeeks := make([]TeamWeekTotal, 0, len(teamWeekOrder))
	for _, key := range teamWeekOrder {
		teamWeeks = append(teamWeeks, *teamWeekIndex[key])
	}

	sort.SliceStable(games, func(i, j int) bool { return games[i].Score > games[j].Score })
	sort.SliceStable(playerWeeks, func(i, j int) bool { return playerWeeks[i].Total > playerWeeks[j].Total })
	sort.SliceStable(teamWeeks, func(i, j int) bool { return teamWeeks[i].Total > teamWeeks[j].Total })

	averages := PlayerStats(records)
	sort.SliceStable(averages, func(i, j int) bool { return averages[i].Average > averages[j].Average })

	return LeagueLeaderboard{
		PlayerAverages: averages,
		TopPlayerWeeks: capPlayerWeeks(playerWeeks, topPlayerWeeksLimit),
		TopTeamWeeks:   capTeamWeeks(teamWeeks, topTeamWeeksLimit),
		TopGames:       capGames(games, topGamesLimit),
	}
}

func teamWeekKey(team string, week int) string {
	return team + "\x00" + strconv.Itoa(week)
}

func capGames(s []GameScore, n int) []GameScore {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func capPlayerWeeks(s []PlayerWeekTotal, n int) []PlayerWeekTotal {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func capTeamWeeks(s []TeamWeekTotal, n int) []TeamWeekTotal {
	if len(s) > n {
		return s[:n]
	}
	return s
}
