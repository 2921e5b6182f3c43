package league

import (
	"database/sql"
	"sync"

	"github.com/DAHines57/BowlBot/internal/engine"
)

type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Row is one raw sheet line as stored: every column keeps the exact text
// that was entered, including malformed values. The engine decides what the
// cells mean.
type Row struct {
	ID         string
	Season     int
	Week       string
	Team       string
	Player     string
	Games      [engine.SlotsPerWeek]string
	Absent     string
	Substitute string
	Opponent   string
}

// ScoreAdded describes a score successfully written to the sheet.
type ScoreAdded struct {
	Player string
	Team   string
	Score  int
	Week   int
	Season int
	Slot   int
}
