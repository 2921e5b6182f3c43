package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DAHines57/BowlBot/internal/command"
	"github.com/DAHines57/BowlBot/internal/engine"
	"github.com/DAHines57/BowlBot/internal/league"
	"github.com/DAHines57/BowlBot/internal/metrics"
	"github.com/DAHines57/BowlBot/internal/notifier"
	"github.com/DAHines57/BowlBot/internal/pubsub"
)

type botFixture struct {
	bot      *Bot
	store    *league.MockStore
	notifier *notifier.MockNotifier
	metrics  *metrics.Mock
	pubsub   *pubsub.MockPubSubClient
}

func newFixture() *botFixture {
	store := league.NewMock()
	notif := notifier.NewMock()
	m := metrics.NewMock()
	ps := pubsub.NewMock("test-project")

	store.CurrentSeasonFunc = func() (int, error) { return 2, nil }
	store.ListRowsFunc = func(season int) ([]engine.RawRow, error) {
		return []engine.RawRow{
			{
				Season: season,
				Week:   engine.Number(1),
				Team:   engine.Text("Pin Pals"),
				Player: engine.Text("Dana"),
				Games: [engine.SlotsPerWeek]engine.Cell{
					engine.Number(150), engine.Number(170),
				},
				Opponent: engine.Text("Splitters"),
			},
			{
				Season: season,
				Week:   engine.Number(1),
				Team:   engine.Text("Splitters"),
				Player: engine.Text("Lee"),
				Games: [engine.SlotsPerWeek]engine.Cell{
					engine.Number(160), engine.Number(155),
				},
				Opponent: engine.Text("Pin Pals"),
			},
		}, nil
	}

	return &botFixture{
		bot:      New(store, notif, m, ps),
		store:    store,
		notifier: notif,
		metrics:  m,
		pubsub:   ps,
	}
}

func TestHandleCommand_Help(t *testing.T) {
	f := newFixture()

	_, err := f.bot.HandleCommand(command.Command{Type: command.CommandHelp})
	require.NoError(t, err)
	assert.Equal(t, []string{"help"}, f.notifier.FormatCalls)
	assert.Equal(t, 1, f.metrics.CommandsProcessed())
}

func TestHandleCommand_Standings(t *testing.T) {
	f := newFixture()

	_, err := f.bot.HandleCommand(command.Command{Type: command.CommandTeamScores})
	require.NoError(t, err)
	assert.Equal(t, []string{"standings"}, f.notifier.FormatCalls)
	assert.Equal(t, []int{2}, f.store.ListRowsCalls, "defaults to the current season")
}

func TestHandleCommand_TeamStats(t *testing.T) {
	f := newFixture()

	_, err := f.bot.HandleCommand(command.Command{Type: command.CommandTeamScores, TeamName: "pin"})
	require.NoError(t, err)
	assert.Equal(t, []string{"team_stats"}, f.notifier.FormatCalls)
}

func TestHandleCommand_TeamWeek(t *testing.T) {
	f := newFixture()

	_, err := f.bot.HandleCommand(command.Command{Type: command.CommandTeamScores, TeamName: "pin", Week: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"team_week"}, f.notifier.FormatCalls)
}

func TestHandleCommand_TeamNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.bot.HandleCommand(command.Command{Type: command.CommandTeamScores, TeamName: "Alley Cats"})
	require.NoError(t, err, "a lookup miss is a formatted response, not an error")
	assert.Equal(t, []string{"not_found"}, f.notifier.FormatCalls)
}

func TestHandleCommand_PlayerStats(t *testing.T) {
	f := newFixture()

	_, err := f.bot.HandleCommand(command.Command{Type: command.CommandPlayerScores, PlayerName: "dana"})
	require.NoError(t, err)
	assert.Equal(t, []string{"player_stats"}, f.notifier.FormatCalls)
}

func TestHandleCommand_ExplicitSeason(t *testing.T) {
	f := newFixture()

	_, err := f.bot.HandleCommand(command.Command{Type: command.CommandPlayerScores, PlayerName: "dana", Season: 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, f.store.ListRowsCalls, "explicit season wins over the current one")
}

func TestHandleCommand_Leaderboards(t *testing.T) {
	f := newFixture()

	for _, tc := range []struct {
		cmdType command.CommandType
		want    string
	}{
		{command.CommandStats, "leaderboard"},
		{command.CommandPlayerAverages, "player_averages"},
		{command.CommandBestPlayerWeeks, "best_player_weeks"},
		{command.CommandBestTeamWeeks, "best_team_weeks"},
		{command.CommandBestGames, "best_games"},
	} {
		f.notifier.FormatCalls = nil
		_, err := f.bot.HandleCommand(command.Command{Type: tc.cmdType})
		require.NoError(t, err)
		assert.Equal(t, []string{tc.want}, f.notifier.FormatCalls)
	}
}

func TestHandleCommand_AddScore(t *testing.T) {
	f := newFixture()
	f.store.AddScoreFunc = func(player string, score, week, season int) (*league.ScoreAdded, bool, error) {
		return &league.ScoreAdded{Player: "Dana", Team: "Pin Pals", Score: score, Week: 1, Season: season, Slot: 3}, true, nil
	}

	_, err := f.bot.HandleCommand(command.Command{Type: command.CommandAddScore, PlayerName: "dana", Score: 180})
	require.NoError(t, err)

	assert.Equal(t, []string{"score_added"}, f.notifier.FormatCalls)
	assert.Equal(t, 1, f.metrics.ScoresAdded())
	require.Len(t, f.pubsub.SendMessageCalls, 1)
	assert.Equal(t, string(pubsub.EventScoreAdded), f.pubsub.SendMessageCalls[0].Topic)

	require.Len(t, f.store.AddScoreCalls, 1)
	assert.Equal(t, 2, f.store.AddScoreCalls[0].Season)
}

func TestHandleCommand_AddScoreRejected(t *testing.T) {
	f := newFixture()
	// Default mock returns ok=false.

	_, err := f.bot.HandleCommand(command.Command{Type: command.CommandAddScore, PlayerName: "ghost", Score: 100})
	require.NoError(t, err)

	assert.Equal(t, []string{"score_not_added"}, f.notifier.FormatCalls)
	assert.Equal(t, 0, f.metrics.ScoresAdded())
	assert.Empty(t, f.pubsub.SendMessageCalls)
}

func TestHandleCommand_Unknown(t *testing.T) {
	f := newFixture()

	_, err := f.bot.HandleCommand(command.Command{Type: command.CommandUnknown})
	require.NoError(t, err)
	assert.Equal(t, []string{"unknown"}, f.notifier.FormatCalls)
}
