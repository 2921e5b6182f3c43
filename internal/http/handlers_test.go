package http

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/DAHines57/BowlBot/internal/bot"
	"github.com/DAHines57/BowlBot/internal/config"
	"github.com/DAHines57/BowlBot/internal/database"
	"github.com/DAHines57/BowlBot/internal/league"
	"github.com/DAHines57/BowlBot/internal/metrics"
	"github.com/DAHines57/BowlBot/internal/notifier"
	"github.com/DAHines57/BowlBot/internal/pubsub"
)

const testSlackSigningSecret = "test-signing-secret"

// setupTestServer initializes a new server with a test database and mock clients.
func setupTestServer(t *testing.T, notif notifier.Notifier, slackSigningSecret string) (*Server, *pubsub.MockPubSubClient, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	leagueStore := league.New(db)
	cfg := config.Config{Slack: config.SlackConfig{SigningSecret: slackSigningSecret}}

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	ps := pubsub.NewMock("TEST")
	leagueBot := bot.New(leagueStore, notif, metricsSvc, ps)
	server := NewServer(leagueStore, leagueBot, metricsSvc, metricsHandler, cfg, notif, ps)

	teardown := func() {
		if dbTeardown != nil {
			dbTeardown()
		}
	}
	return server, ps, teardown
}

func seedSheet(t *testing.T, store league.LeagueStore) {
	t.Helper()
	row := func(week, team, player, opponent string, games ...string) league.Row {
		r := league.Row{Season: 1, Week: week, Team: team, Player: player, Opponent: opponent}
		copy(r.Games[:], games)
		return r
	}
	require.NoError(t, store.AddRows([]league.Row{
		row("1", "Pin Pals", "Dana", "Splitters", "150", "170"),
		row("1", "Splitters", "Lee", "Pin Pals", "160", "155"),
		row("2", "Pin Pals", "Dana", "Splitters", "180"),
	}))
}

// createSlackCommandRequest creates an http.Request suitable for testing Slack slash commands,
// including the necessary signature and timestamp headers for verification.
func createSlackCommandRequest(t *testing.T, targetURL string, form url.Values, signingSecret string) *http.Request {
	t.Helper()

	body := strings.NewReader(form.Encode())
	req, err := http.NewRequest("POST", targetURL, body)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := time.Now().Unix()
	req.Header.Set("X-Slack-Request-Timestamp", strconv.FormatInt(timestamp, 10))

	bodyBytes, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	baseString := fmt.Sprintf("v0:%d:%s", timestamp, string(bodyBytes))
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))

	req.Header.Set("X-Slack-Signature", "v0="+signature)

	return req
}

func TestHealthCheckHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t, notifier.NewMock(), "")
	defer teardown()

	req, err := http.NewRequest("GET", "/health", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "OK!", rr.Body.String(), "handler returned unexpected body")
}

func TestListSeasonsHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t, notifier.NewMock(), "")
	defer teardown()
	seedSheet(t, server.Store)

	req, err := http.NewRequest("GET", "/seasons", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var seasons []int
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &seasons))
	assert.Equal(t, []int{1}, seasons)
}

func TestListPlayersHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t, notifier.NewMock(), "")
	defer teardown()
	seedSheet(t, server.Store)

	req, err := http.NewRequest("GET", "/players?season=1", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Dana")
	assert.Contains(t, rr.Body.String(), "Lee")
}

func TestListTeamsHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t, notifier.NewMock(), "")
	defer teardown()
	seedSheet(t, server.Store)

	req, err := http.NewRequest("GET", "/teams", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Pin Pals")
	assert.Contains(t, rr.Body.String(), "Splitters")
}

func TestListPlayersHandlerRejectsBadSeason(t *testing.T) {
	server, _, teardown := setupTestServer(t, notifier.NewMock(), "")
	defer teardown()

	req, err := http.NewRequest("GET", "/players?season=abc", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAddScoreHandler(t *testing.T) {
	server, ps, teardown := setupTestServer(t, notifier.NewMock(), "")
	defer teardown()
	seedSheet(t, server.Store)

	payload := `{"player": "dana", "score": 200, "week": 2}`
	req, err := http.NewRequest("POST", "/add-score", strings.NewReader(payload))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var event league.ScoreAdded
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &event))
	assert.Equal(t, "Dana", event.Player)
	assert.Equal(t, 2, event.Week)
	assert.Equal(t, 2, event.Slot)

	require.Len(t, ps.SendMessageCalls, 1)
	assert.Equal(t, "score-added", ps.SendMessageCalls[0].Topic)
}

func TestAddScoreHandlerRejectsUnknownPlayer(t *testing.T) {
	server, _, teardown := setupTestServer(t, notifier.NewMock(), "")
	defer teardown()
	seedSheet(t, server.Store)

	payload := `{"player": "ghost", "score": 200}`
	req, err := http.NewRequest("POST", "/add-score", strings.NewReader(payload))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestAddScoreHandlerRejectsInvalidScore(t *testing.T) {
	server, _, teardown := setupTestServer(t, notifier.NewMock(), "")
	defer teardown()

	payload := `{"player": "dana", "score": 350}`
	req, err := http.NewRequest("POST", "/add-score", strings.NewReader(payload))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBotCommandHandler(t *testing.T) {
	mockNotifier := notifier.NewMock()
	server, _, teardown := setupTestServer(t, mockNotifier, testSlackSigningSecret)
	defer teardown()
	seedSheet(t, server.Store)

	form := url.Values{"text": {"player dana"}}
	req := createSlackCommandRequest(t, "/slack/command/bowlbot", form, testSlackSigningSecret)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	// The mock notifier returns a plain map, which fails the slack.Message
	// cast; what matters here is that the signature was accepted and the
	// command dispatched.
	assert.Equal(t, []string{"player_stats"}, mockNotifier.FormatCalls)
}

func TestBotCommandHandlerRejectsBadSignature(t *testing.T) {
	mockNotifier := notifier.NewMock()
	server, _, teardown := setupTestServer(t, mockNotifier, testSlackSigningSecret)
	defer teardown()

	form := url.Values{"text": {"help"}}
	req := createSlackCommandRequest(t, "/slack/command/bowlbot", form, "wrong-secret")

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, mockNotifier.FormatCalls)
}

func TestLeaderboardCommandHandler(t *testing.T) {
	mockNotifier := notifier.NewMock()
	server, _, teardown := setupTestServer(t, mockNotifier, "")
	defer teardown()
	seedSheet(t, server.Store)

	req, err := http.NewRequest("POST", "/slack/command/leaderboard", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, []string{"leaderboard"}, mockNotifier.FormatCalls)
}

func TestTeamStatsCommandHandler(t *testing.T) {
	mockNotifier := notifier.NewMock()
	server, _, teardown := setupTestServer(t, mockNotifier, "")
	defer teardown()
	seedSheet(t, server.Store)

	form := url.Values{"text": {"pin pals"}}
	req, err := http.NewRequest("POST", "/slack/command/team-stats", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, []string{"team_stats"}, mockNotifier.FormatCalls)
}

func TestScoreAddedEventHandler(t *testing.T) {
	mockNotifier := notifier.NewMock()
	server, ps, teardown := setupTestServer(t, mockNotifier, "")
	defer teardown()

	ps.ProcessMessageFunc = func(data []byte, returnValue any) error {
		return msgpack.Unmarshal(data, returnValue)
	}

	event := league.ScoreAdded{Player: "Dana", Team: "Pin Pals", Score: 180, Week: 2, Season: 1, Slot: 2}
	packed, err := msgpack.Marshal(event)
	require.NoError(t, err)

	envelope := map[string]any{
		"subscription": "projects/test/subscriptions/score-added",
		"message": map[string]any{
			"data": base64.StdEncoding.EncodeToString(packed),
		},
	}
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", "/events/score-added?dry_run=true", bytes.NewReader(body))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.Len(t, mockNotifier.SendScoreNotificationCalls, 1)
	call := mockNotifier.SendScoreNotificationCalls[0]
	assert.Equal(t, "Dana", call.Event.Player)
	assert.Equal(t, 180, call.Event.Score)
	assert.True(t, call.DryRun)
}

func TestMetricsHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t, notifier.NewMock(), "")
	defer teardown()

	req, err := http.NewRequest("GET", "/metrics", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
