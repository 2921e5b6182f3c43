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

type Server struct {
	Store          league.LeagueStore
	Bot            *bot.Bot
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
