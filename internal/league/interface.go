package league

import "github.com/DAHines57/BowlBot/internal/engine"

// LeagueStore defines the interface for interacting with the league's score
// sheet data.
type LeagueStore interface {
	ListRows(season int) ([]engine.RawRow, error)
	Seasons() ([]int, error)
	CurrentSeason() (int, error)
	AddRows(rows []Row) error
	AddScore(player string, score int, week int, season int) (*ScoreAdded, bool, error)
	Clear()
}
