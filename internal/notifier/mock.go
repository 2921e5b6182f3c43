package notifier

import (
	"sync"

	"github.com/DAHines57/BowlBot/internal/engine"
	"github.com/DAHines57/BowlBot/internal/league"
)

// MockNotifier is a mock implementation of the Notifier interface for
// testing. Each Format method records its name and returns a stub payload,
// so tests can assert which response was produced without caring about
// Block Kit layout.
type MockNotifier struct {
	mu sync.Mutex

	// Spies for method calls
	SendScoreNotificationFunc func(event *league.ScoreAdded, dryRun bool) error

	// Call records
	SendScoreNotificationCalls []SendScoreNotificationCall
	FormatCalls                []string
}

// SendScoreNotificationCall holds the arguments for a call to SendScoreNotification.
type SendScoreNotificationCall struct {
	Event  *league.ScoreAdded
	DryRun bool
}

// NewMock creates a new mock instance.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) record(name string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FormatCalls = append(m.FormatCalls, name)
	return map[string]string{"response": name}, nil
}

func (m *MockNotifier) SendScoreNotification(event *league.ScoreAdded, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendScoreNotificationCalls = append(m.SendScoreNotificationCalls, SendScoreNotificationCall{Event: event, DryRun: dryRun})
	if m.SendScoreNotificationFunc != nil {
		return m.SendScoreNotificationFunc(event, dryRun)
	}
	return nil
}

func (m *MockNotifier) FormatHelpResponse() (any, error) {
	return m.record("help")
}

func (m *MockNotifier) FormatSeasonsResponse(seasons []int) (any, error) {
	return m.record("seasons")
}

func (m *MockNotifier) FormatStandingsResponse(teams []engine.TeamSeasonStats, season int) (any, error) {
	return m.record("standings")
}

func (m *MockNotifier) FormatTeamStatsResponse(stats engine.TeamSeasonStats, season int) (any, error) {
	return m.record("team_stats")
}

func (m *MockNotifier) FormatTeamWeekResponse(detail engine.TeamWeekDetail, season int) (any, error) {
	return m.record("team_week")
}

func (m *MockNotifier) FormatTeamRecordResponse(team string, weeks []engine.WeeklyMatchup, season int) (any, error) {
	return m.record("team_record")
}

func (m *MockNotifier) FormatPlayerStatsResponse(stats engine.PlayerSeasonStats, season int) (any, error) {
	return m.record("player_stats")
}

func (m *MockNotifier) FormatPlayerWeekResponse(detail engine.PlayerWeekDetail, season int) (any, error) {
	return m.record("player_week")
}

func (m *MockNotifier) FormatPlayerListResponse(players []engine.PlayerSeasonStats, season int) (any, error) {
	return m.record("player_list")
}

func (m *MockNotifier) FormatLeaderboardResponse(lb engine.LeagueLeaderboard, season int) (any, error) {
	return m.record("leaderboard")
}

func (m *MockNotifier) FormatPlayerAveragesResponse(players []engine.PlayerSeasonStats, season int) (any, error) {
	return m.record("player_averages")
}

func (m *MockNotifier) FormatBestPlayerWeeksResponse(weeks []engine.PlayerWeekTotal, season int) (any, error) {
	return m.record("best_player_weeks")
}

func (m *MockNotifier) FormatBestTeamWeeksResponse(weeks []engine.TeamWeekTotal, season int) (any, error) {
	return m.record("best_team_weeks")
}

func (m *MockNotifier) FormatBestGamesResponse(games []engine.GameScore, season int) (any, error) {
	return m.record("best_games")
}

func (m *MockNotifier) FormatScoreAddedResponse(event *league.ScoreAdded) (any, error) {
	return m.record("score_added")
}

func (m *MockNotifier) FormatScoreNotAddedResponse(player string) (any, error) {
	return m.record("score_not_added")
}

func (m *MockNotifier) FormatNotFoundResponse(err error) (any, error) {
	return m.record("not_found")
}

func (m *MockNotifier) FormatUnknownResponse() (any, error) {
	return m.record("unknown")
}
