package bot

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/DAHines57/BowlBot/internal/command"
	"github.com/DAHines57/BowlBot/internal/engine"
	"github.com/DAHines57/BowlBot/internal/league"
	"github.com/DAHines57/BowlBot/internal/metrics"
	"github.com/DAHines57/BowlBot/internal/notifier"
	"github.com/DAHines57/BowlBot/internal/pubsub"
)

// Bot executes parsed commands against the league store and turns the
// results into notifier responses.
type Bot struct {
	store    league.LeagueStore
	notifier notifier.Notifier
	metrics  metrics.Metrics
	pubsub   pubsub.PubSubClient
}

// New creates a new Bot.
func New(store league.LeagueStore, notifier notifier.Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Bot {
	return &Bot{
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		pubsub:   pubsub,
	}
}

// HandleCommand executes a command and returns the formatted response
// payload. Lookup misses come back as formatted "not found" responses, not
// errors; an error means the store or formatter itself failed.
func (b *Bot) HandleCommand(cmd command.Command) (any, error) {
	b.metrics.IncCommandsProcessed()

	season, err := b.season(cmd)
	if err != nil {
		return nil, err
	}

	switch cmd.Type {
	case command.CommandHelp:
		return b.notifier.FormatHelpResponse()

	case command.CommandListSeasons:
		seasons, err := b.store.Seasons()
		if err != nil {
			return nil, err
		}
		return b.notifier.FormatSeasonsResponse(seasons)

	case command.CommandListPlayers:
		snap, err := b.snapshot(season)
		if err != nil {
			return nil, err
		}
		return b.notifier.FormatPlayerListResponse(snap.Players(), season)

	case command.CommandListTeams:
		snap, err := b.snapshot(season)
		if err != nil {
			return nil, err
		}
		return b.notifier.FormatStandingsResponse(snap.Teams(), season)

	case command.CommandStats:
		snap, err := b.snapshot(season)
		if err != nil {
			return nil, err
		}
		return b.notifier.FormatLeaderboardResponse(snap.Leaderboard(), season)

	case command.CommandPlayerAverages:
		snap, err := b.snapshot(season)
		if err != nil {
			return nil, err
		}
		return b.notifier.FormatPlayerAveragesResponse(snap.Leaderboard().PlayerAverages, season)

	case command.CommandBestPlayerWeeks:
		snap, err := b.snapshot(season)
		if err != nil {
			return nil, err
		}
		return b.notifier.FormatBestPlayerWeeksResponse(snap.Leaderboard().TopPlayerWeeks, season)

	case command.CommandBestTeamWeeks:
		snap, err := b.snapshot(season)
		if err != nil {
			return nil, err
		}
		return b.notifier.FormatBestTeamWeeksResponse(snap.Leaderboard().TopTeamWeeks, season)

	case command.CommandBestGames:
		snap, err := b.snapshot(season)
		if err != nil {
			return nil, err
		}
		return b.notifier.FormatBestGamesResponse(snap.Leaderboard().TopGames, season)

	case command.CommandTeamScores:
		return b.handleTeamScores(cmd, season)

	case command.CommandTeamRecord:
		return b.handleTeamRecord(cmd, season)

	case command.CommandPlayerScores:
		return b.handlePlayerScores(cmd, season)

	case command.CommandAddScore:
		return b.handleAddScore(cmd, season)
	}

	return b.notifier.FormatUnknownResponse()
}

func (b *Bot) handleTeamScores(cmd command.Command, season int) (any, error) {
	snap, err := b.snapshot(season)
	if err != nil {
		return nil, err
	}
	if cmd.TeamName == "" {
		return b.notifier.FormatStandingsResponse(snap.Teams(), season)
	}
	if cmd.Week > 0 {
		detail, err := snap.TeamWeek(cmd.TeamName, cmd.Week)
		if err != nil {
			return b.notFound(err)
		}
		return b.notifier.FormatTeamWeekResponse(detail, season)
	}
	stats, err := snap.Team(cmd.TeamName)
	if err != nil {
		return b.notFound(err)
	}
	return b.notifier.FormatTeamStatsResponse(stats, season)
}

func (b *Bot) handleTeamRecord(cmd command.Command, season int) (any, error) {
	snap, err := b.snapshot(season)
	if err != nil {
		return nil, err
	}
	if cmd.TeamName == "" {
		return b.notifier.FormatStandingsResponse(snap.Teams(), season)
	}
	stats, err := snap.Team(cmd.TeamName)
	if err != nil {
		return b.notFound(err)
	}
	weeks, err := snap.TeamWeeks(cmd.TeamName)
	if err != nil {
		return b.notFound(err)
	}
	return b.notifier.FormatTeamRecordResponse(stats.Team, weeks, season)
}

func (b *Bot) handlePlayerScores(cmd command.Command, season int) (any, error) {
	snap, err := b.snapshot(season)
	if err != nil {
		return nil, err
	}
	if cmd.Week > 0 {
		detail, err := snap.PlayerWeek(cmd.PlayerName, cmd.Week)
		if err != nil {
			return b.notFound(err)
		}
		return b.notifier.FormatPlayerWeekResponse(detail, season)
	}
	stats, err := snap.Player(cmd.PlayerName)
	if err != nil {
		return b.notFound(err)
	}
	return b.notifier.FormatPlayerStatsResponse(stats, season)
}

func (b *Bot) handleAddScore(cmd command.Command, season int) (any, error) {
	event, ok, err := b.store.AddScore(cmd.PlayerName, cmd.Score, cmd.Week, season)
	if err != nil {
		return nil, err
	}
	if !ok {
		return b.notifier.FormatScoreNotAddedResponse(cmd.PlayerName)
	}

	b.metrics.IncScoresAdded()
	if b.pubsub != nil {
		if err := b.pubsub.SendMessage(pubsub.EventScoreAdded, event); err != nil {
			log.Error("Failed to publish score-added event", "error", err, "player", event.Player)
		}
	}
	return b.notifier.FormatScoreAddedResponse(event)
}

// season resolves the command's season, defaulting to the latest on record.
func (b *Bot) season(cmd command.Command) (int, error) {
	if cmd.Season > 0 {
		return cmd.Season, nil
	}
	return b.store.CurrentSeason()
}

// snapshot loads and normalizes one season's rows into an immutable view.
// Every stat a command reports is computed against this single snapshot.
func (b *Bot) snapshot(season int) (*engine.Snapshot, error) {
	start := time.Now()
	rows, err := b.store.ListRows(season)
	if err != nil {
		return nil, err
	}
	snap := engine.NewSnapshot(season, rows)
	b.metrics.ObserveQueryDuration(time.Since(start).Seconds())
	return snap, nil
}

func (b *Bot) notFound(err error) (any, error) {
	if engine.IsNotFound(err) {
		return b.notifier.FormatNotFoundResponse(err)
	}
	return nil, err
}
