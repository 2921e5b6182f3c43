package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"

	"github.com/DAHines57/BowlBot/internal/command"
	"github.com/DAHines57/BowlBot/internal/engine"
	"github.com/DAHines57/BowlBot/internal/league"
	"github.com/DAHines57/BowlBot/internal/pubsub"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear the score sheet")
		s.Store.Clear()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}

func (s *Server) ListSeasonsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasons, err := s.Store.Seasons()
		if err != nil {
			http.Error(w, "Failed to get seasons", http.StatusInternalServerError)
			log.Error("Failed to get seasons from store", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(seasons); err != nil {
			log.Error("Failed to encode seasons to JSON", "error", err)
		}
	}
}

// seasonFromRequest resolves the season query parameter, defaulting to the
// latest season on record.
func (s *Server) seasonFromRequest(r *http.Request) (int, error) {
	if param := r.URL.Query().Get("season"); param != "" {
		season, err := strconv.Atoi(param)
		if err != nil || season < 1 {
			return 0, fmt.Errorf("invalid season parameter %q", param)
		}
		return season, nil
	}
	return s.Store.CurrentSeason()
}

// snapshot loads one season's rows into an immutable engine view.
func (s *Server) snapshot(season int) (*engine.Snapshot, error) {
	rows, err := s.Store.ListRows(season)
	if err != nil {
		return nil, err
	}
	return engine.NewSnapshot(season, rows), nil
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := s.seasonFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		snap, err := s.snapshot(season)
		if err != nil {
			http.Error(w, "Failed to load season", http.StatusInternalServerError)
			log.Error("Failed to load season rows", "error", err, "season", season)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snap.Players()); err != nil {
			log.Error("Failed to encode players to JSON", "error", err)
		}
	}
}

func (s *Server) ListTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := s.seasonFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		snap, err := s.snapshot(season)
		if err != nil {
			http.Error(w, "Failed to load season", http.StatusInternalServerError)
			log.Error("Failed to load season rows", "error", err, "season", season)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snap.Teams()); err != nil {
			log.Error("Failed to encode teams to JSON", "error", err)
		}
	}
}

// LeaderboardHandler serves the full season leaderboard as JSON.
func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := s.seasonFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		snap, err := s.snapshot(season)
		if err != nil {
			http.Error(w, "Failed to load season", http.StatusInternalServerError)
			log.Error("Failed to load season rows", "error", err, "season", season)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snap.Leaderboard()); err != nil {
			log.Error("Failed to encode leaderboard to JSON", "error", err)
		}
	}
}

// AddScoreHandler writes a single score onto the sheet. The body is JSON:
// {"player": "...", "score": 180, "week": 3, "season": 9}; week and season
// are optional.
func (s *Server) AddScoreHandler() http.HandlerFunc {
	type addScoreRequest struct {
		Player string `json:"player"`
		Score  int    `json:"score"`
		Week   int    `json:"week"`
		Season int    `json:"season"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req addScoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Player == "" || req.Score < 0 || req.Score > command.MaxGameScore {
			http.Error(w, "Invalid player or score", http.StatusBadRequest)
			return
		}
		season := req.Season
		if season == 0 {
			var err error
			season, err = s.Store.CurrentSeason()
			if err != nil {
				http.Error(w, "Failed to resolve season", http.StatusInternalServerError)
				return
			}
		}

		event, ok, err := s.Store.AddScore(req.Player, req.Score, req.Week, season)
		if err != nil {
			http.Error(w, "Failed to add score", http.StatusInternalServerError)
			log.Error("Failed to add score", "error", err, "player", req.Player)
			return
		}
		if !ok {
			http.Error(w, "Score not added: unknown player or full week", http.StatusUnprocessableEntity)
			return
		}

		s.Metrics.IncScoresAdded()
		if err := s.pubsub.SendMessage(pubsub.EventScoreAdded, event); err != nil {
			log.Error("Failed to publish score-added event", "error", err)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(event); err != nil {
			log.Error("Failed to encode score event to JSON", "error", err)
		}
	}
}

// ScoreAddedEventHandler consumes pub/sub push deliveries for score-added
// events and posts the confirmation to the league channel.
func (s *Server) ScoreAddedEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received score-added message", "body", string(bodyBytes))
		// Define a small struct to decode the incoming JSON's `data` field
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		// Decode base64 to raw MessagePack bytes
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)
		event := league.ScoreAdded{}
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		if err := s.Notifier.SendScoreNotification(&event, isDryRun); err != nil {
			log.Error("Failed to send score notification", "error", err)
			http.Error(w, "Failed to send notification", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

// verifySlackRequest checks the Slack signature headers against the signing
// secret. Verification is skipped when no secret is configured (tests, local
// runs). The request body is restored for the next reader.
func (s *Server) verifySlackRequest(r *http.Request) bool {
	if s.Cfg.Slack.SigningSecret == "" {
		return true
	}
	verifier, err := slack.NewSecretsVerifier(r.Header, s.Cfg.Slack.SigningSecret)
	if err != nil {
		log.Warn("Failed to create Slack secrets verifier", "error", err)
		return false
	}
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return false
	}
	r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	if _, err := verifier.Write(bodyBytes); err != nil {
		return false
	}
	if err := verifier.Ensure(); err != nil {
		log.Warn("Slack signature verification failed", "error", err)
		return false
	}
	return true
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

func (s *Server) respondWithFormatted(w http.ResponseWriter, msg any, err error) {
	if err != nil {
		http.Error(w, "Failed to format response", http.StatusInternalServerError)
		log.Error("Failed to format response", "error", err)
		return
	}
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return
	}
	respondWithSlackMsg(w, slackMsg)
}

// BotCommandHandler handles the general /bowlbot slash command: the text is
// parsed the same way a chat message would be.
func (s *Server) BotCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.verifySlackRequest(r) {
			http.Error(w, "Invalid request signature", http.StatusUnauthorized)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		text := r.FormValue("text")
		log.Info("Received bot command", "text", text)

		cmd := command.Parse(text)
		msg, err := s.Bot.HandleCommand(cmd)
		s.respondWithFormatted(w, msg, err)
	}
}

// LeaderboardCommandHandler returns a handler for the /leaderboard Slack command.
func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.verifySlackRequest(r) {
			http.Error(w, "Invalid request signature", http.StatusUnauthorized)
			return
		}
		msg, err := s.Bot.HandleCommand(command.Command{Type: command.CommandStats})
		s.respondWithFormatted(w, msg, err)
	}
}

// PlayerStatsCommandHandler returns a handler for the /player-stats Slack command.
func (s *Server) PlayerStatsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.verifySlackRequest(r) {
			http.Error(w, "Invalid request signature", http.StatusUnauthorized)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		playerName := r.FormValue("text")
		if playerName == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}
		log.Info("Received player stats command", "player", playerName)

		msg, err := s.Bot.HandleCommand(command.Command{Type: command.CommandPlayerScores, PlayerName: playerName})
		s.respondWithFormatted(w, msg, err)
	}
}

// TeamStatsCommandHandler returns a handler for the /team-stats Slack command.
func (s *Server) TeamStatsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.verifySlackRequest(r) {
			http.Error(w, "Invalid request signature", http.StatusUnauthorized)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		teamName := r.FormValue("text")
		log.Info("Received team stats command", "team", teamName)

		msg, err := s.Bot.HandleCommand(command.Command{Type: command.CommandTeamScores, TeamName: teamName})
		s.respondWithFormatted(w, msg, err)
	}
}
