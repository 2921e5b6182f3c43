package engine

// Snapshot is an immutable view of one season's normalized records. Every
// derived statistic is computed against a snapshot, so a computation never
// sees a half-written sheet.
type Snapshot struct {
	season  int
	records []ScoreRecord
}

// NewSnapshot normalizes a season's raw rows into a snapshot.
func NewSnapshot(season int, rows []RawRow) *Snapshot {
	return &Snapshot{season: season, records: NormalizeRows(rows)}
}

func (s *Snapshot) Season() int {
	return s.season
}

// Records returns the normalized score records in sheet order.
func (s *Snapshot) Records() []ScoreRecord {
	return s.records
}

// Players returns season stats for every roster player.
func (s *Snapshot) Players() []PlayerSeasonStats {
	return PlayerStats(s.records)
}

// Player resolves a name fragment and returns that player's season stats.
func (s *Snapshot) Player(name string) (PlayerSeasonStats, error) {
	players := PlayerStats(s.records)
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Player
	}
	resolved, ok := ResolveName(name, names)
	if !ok {
		return PlayerSeasonStats{}, &NotFoundError{Kind: "player", Query: name, Season: s.season}
	}
	for _, p := range players {
		if p.Player == resolved {
			return p, nil
		}
	}
	return PlayerSeasonStats{}, &NotFoundError{Kind: "player", Query: name, Season: s.season}
}

// PlayerWeekDetail is one player's line for a single week.
type PlayerWeekDetail struct {
	Player  string
	Team    string
	Week    int
	Games   []float64
	Total   float64
	Average float64
	Absent  bool
}

// PlayerWeek resolves a player and returns their record for the given week.
func (s *Snapshot) PlayerWeek(name string, week int) (PlayerWeekDetail, error) {
	stats, err := s.Player(name)
	if err != nil {
		return PlayerWeekDetail{}, err
	}
	for _, rec := range s.records {
		if rec.Substitute || rec.Player != stats.Player || rec.Week != week {
			continue
		}
		detail := PlayerWeekDetail{
			Player: rec.Player,
			Team:   rec.Team,
			Week:   week,
			Games:  rec.PlayedGames(),
			Total:  rec.WeekTotal(),
			Absent: rec.Absent,
		}
		if n := len(detail.Games); n > 0 {
			detail.Average = detail.Total / float64(n)
		}
		return detail, nil
	}
	return PlayerWeekDetail{}, &NotFoundError{Kind: "week", Query: stats.Player, Season: s.season}
}

// Teams returns season stats for every team.
func (s *Snapshot) Teams() []TeamSeasonStats {
	return TeamStats(s.records)
}

// Team resolves a name fragment and returns that team's season stats.
func (s *Snapshot) Team(name string) (TeamSeasonStats, error) {
	teams := TeamStats(s.records)
	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.Team
	}
	resolved, ok := ResolveName(name, names)
	if !ok {
		return TeamSeasonStats{}, &NotFoundError{Kind: "team", Query: name, Season: s.season}
	}
	for _, t := range teams {
		if t.Team == resolved {
			return t, nil
		}
	}
	return TeamSeasonStats{}, &NotFoundError{Kind: "team", Query: name, Season: s.season}
}

// TeamWeeks resolves a team and returns all of its weekly matchups in week
// order of first appearance.
func (s *Snapshot) TeamWeeks(name string) ([]WeeklyMatchup, error) {
	stats, err := s.Team(name)
	if err != nil {
		return nil, err
	}
	var out []WeeklyMatchup
	for _, m := range Matchups(s.records) {
		if m.Team == stats.Team {
			out = append(out, m)
		}
	}
	return out, nil
}

// TeamWeekDetail is one team's full line for a single week: the matchup plus
// each contributing player's games.
type TeamWeekDetail struct {
	Matchup     WeeklyMatchup
	PlayerGames map[string][]float64
	Total       float64
}

// TeamWeek resolves a team and returns its detailed record for the given
// week.
func (s *Snapshot) TeamWeek(name string, week int) (TeamWeekDetail, error) {
	stats, err := s.Team(name)
	if err != nil {
		return TeamWeekDetail{}, err
	}
	var matchup *WeeklyMatchup
	for _, m := range Matchups(s.records) {
		if m.Team == stats.Team && m.Week == week {
			matchup = &m
			break
		}
	}
	if matchup == nil {
		return TeamWeekDetail{}, &NotFoundError{Kind: "week", Query: stats.Team, Season: s.season}
	}
	detail := TeamWeekDetail{Matchup: *matchup, PlayerGames: make(map[string][]float64)}
	for _, rec := range s.records {
		if rec.Substitute || rec.Team != stats.Team || rec.Week != week {
			continue
		}
		if games := rec.PlayedGames(); len(games) > 0 {
			detail.PlayerGames[rec.Player] = games
			detail.Total += rec.WeekTotal()
		}
	}
	return detail, nil
}

// Leaderboard returns the season's headline rankings.
func (s *Snapshot) Leaderboard() LeagueLeaderboard {
	return Leaderboard(s.records)
}
