package http

import (
	"net/http"

	"github.com/DAHines57/BowlBot/internal/bot"
	"github.com/DAHines57/BowlBot/internal/config"
	"github.com/DAHines57/BowlBot/internal/league"
	"github.com/DAHines57/BowlBot/internal/metrics"
	"github.com/DAHines57/BowlBot/internal/notifier"
	"github.com/DAHines57/BowlBot/internal/pubsub"
)

func NewServer(store league.LeagueStore, leagueBot *bot.Bot, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Bot:            leagueBot,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/seasons", Chain(s.ListSeasonsHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/teams", Chain(s.ListTeamsHandler(), paramsMiddleware))
	s.Router.Handle("/stats", Chain(s.LeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/add-score", Chain(s.AddScoreHandler(), paramsMiddleware))
	s.Router.Handle("/events/score-added", Chain(s.ScoreAddedEventHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/bowlbot", Chain(s.BotCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/player-stats", Chain(s.PlayerStatsCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/team-stats", Chain(s.TeamStatsCommandHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
