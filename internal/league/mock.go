package league

import (
	"sync"

	"github.com/DAHines57/BowlBot/internal/engine"
)

// MockStore is a mock implementation of the LeagueStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	ListRowsFunc      func(season int) ([]engine.RawRow, error)
	SeasonsFunc       func() ([]int, error)
	CurrentSeasonFunc func() (int, error)
	AddRowsFunc       func(rows []Row) error
	AddScoreFunc      func(player string, score int, week int, season int) (*ScoreAdded, bool, error)
	ClearFunc         func()

	// Call records
	ListRowsCalls []int
	AddRowsCalls  [][]Row
	AddScoreCalls []AddScoreCall
	ClearCalls    int
}

// AddScoreCall holds the arguments for a call to AddScore.
type AddScoreCall struct {
	Player string
	Score  int
	Week   int
	Season int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) ListRows(season int) ([]engine.RawRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListRowsCalls = append(m.ListRowsCalls, season)
	if m.ListRowsFunc != nil {
		return m.ListRowsFunc(season)
	}
	return nil, nil
}

func (m *MockStore) Seasons() ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SeasonsFunc != nil {
		return m.SeasonsFunc()
	}
	return nil, nil
}

func (m *MockStore) CurrentSeason() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CurrentSeasonFunc != nil {
		return m.CurrentSeasonFunc()
	}
	return 0, nil
}

func (m *MockStore) AddRows(rows []Row) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddRowsCalls = append(m.AddRowsCalls, rows)
	if m.AddRowsFunc != nil {
		return m.AddRowsFunc(rows)
	}
	return nil
}

func (m *MockStore) AddScore(player string, score int, week int, season int) (*ScoreAdded, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddScoreCalls = append(m.AddScoreCalls, AddScoreCall{Player: player, Score: score, Week: week, Season: season})
	if m.AddScoreFunc != nil {
		return m.AddScoreFunc(player, score, week, season)
	}
	return nil, false, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}
