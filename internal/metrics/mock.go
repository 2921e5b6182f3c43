package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	commandsProcessed int
	scoresAdded       int
	queryDurations    []float64
	slackNotifSent    int
	slackNotifFailed  int
	startupTime       float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		queryDurations: make([]float64, 0),
	}
}

func (m *Mock) IncCommandsProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandsProcessed++
}

func (m *Mock) IncScoresAdded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scoresAdded++
}

func (m *Mock) ObserveQueryDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryDurations = append(m.queryDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// CommandsProcessed returns the number of times IncCommandsProcessed was called.
func (m *Mock) CommandsProcessed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commandsProcessed
}

// ScoresAdded returns the number of times IncScoresAdded was called.
func (m *Mock) ScoresAdded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scoresAdded
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
