package notifier

import (
	"github.com/DAHines57/BowlBot/internal/engine"
	"github.com/DAHines57/BowlBot/internal/league"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For scores landing on the sheet
	SendScoreNotification(event *league.ScoreAdded, dryRun bool) error

	// For formatting responses to bot commands
	FormatHelpResponse() (any, error)
	FormatSeasonsResponse(seasons []int) (any, error)
	FormatStandingsResponse(teams []engine.TeamSeasonStats, season int) (any, error)
	FormatTeamStatsResponse(stats engine.TeamSeasonStats, season int) (any, error)
	FormatTeamWeekResponse(detail engine.TeamWeekDetail, season int) (any, error)
	FormatTeamRecordResponse(team string, weeks []engine.WeeklyMatchup, season int) (any, error)
	FormatPlayerStatsResponse(stats engine.PlayerSeasonStats, season int) (any, error)
	FormatPlayerWeekResponse(detail engine.PlayerWeekDetail, season int) (any, error)
	FormatPlayerListResponse(players []engine.PlayerSeasonStats, season int) (any, error)
	FormatLeaderboardResponse(lb engine.LeagueLeaderboard, season int) (any, error)
	FormatPlayerAveragesResponse(players []engine.PlayerSeasonStats, season int) (any, error)
	FormatBestPlayerWeeksResponse(weeks []engine.PlayerWeekTotal, season int) (any, error)
	FormatBestTeamWeeksResponse(weeks []engine.TeamWeekTotal, season int) (any, error)
	FormatBestGamesResponse(games []engine.GameScore, season int) (any, error)
	FormatScoreAddedResponse(event *league.ScoreAdded) (any, error)
	FormatScoreNotAddedResponse(player string) (any, error)
	FormatNotFoundResponse(err error) (any, error)
	FormatUnknownResponse() (any, error)
}
