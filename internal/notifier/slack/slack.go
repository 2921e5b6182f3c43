package slack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"

	"github.com/DAHines57/BowlBot/internal/command"
	"github.com/DAHines57/BowlBot/internal/engine"
	"github.com/DAHines57/BowlBot/internal/league"
	"github.com/DAHines57/BowlBot/internal/metrics"
	"github.com/DAHines57/BowlBot/internal/notifier"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendScoreNotification posts a confirmation to the league channel after a
// score lands on the sheet.
func (s *Notifier) SendScoreNotification(event *league.ScoreAdded, dryRun bool) error {
	msg := s.formatScoreAdded(event)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) FormatHelpResponse() (any, error) {
	return slack.NewBlockMessage(
		mrkdwnSection(command.HelpMessage()),
	), nil
}

func (s *Notifier) FormatSeasonsResponse(seasons []int) (any, error) {
	blocks := []slack.Block{headerBlock("🎳 Seasons")}
	if len(seasons) == 0 {
		blocks = append(blocks, mrkdwnSection("No seasons on record yet."))
		return slack.NewBlockMessage(blocks...), nil
	}
	var lines []string
	for _, season := range seasons {
		lines = append(lines, fmt.Sprintf("• Season %d", season))
	}
	blocks = append(blocks, mrkdwnSection(strings.Join(lines, "\n")))
	return slack.NewBlockMessage(blocks...), nil
}

func (s *Notifier) FormatStandingsResponse(teams []engine.TeamSeasonStats, season int) (any, error) {
	blocks := []slack.Block{headerBlock(fmt.Sprintf("🏆 Standings - Season %d", season))}
	if len(teams) == 0 {
		blocks = append(blocks, mrkdwnSection("No teams found for this season."))
		return slack.NewBlockMessage(blocks...), nil
	}

	sorted := make([]engine.TeamSeasonStats, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Wins > sorted[j].Wins })

	for i, team := range sorted {
		line := fmt.Sprintf("%d. %s *%s*\n> %s | Avg/Game: %.1f | Pins: %.0f for, %.0f against",
			i+1, medal(i+1), team.Team, recordString(team.Wins, team.Losses, team.Ties),
			team.AvgPerGame, team.PinsFor, team.PinsAgainst)
		blocks = append(blocks, mrkdwnSection(line))
	}
	return slack.NewBlockMessage(blocks...), nil
}

func (s *Notifier) FormatTeamStatsResponse(stats engine.TeamSeasonStats, season int) (any, error) {
	blocks := []slack.Block{headerBlock(fmt.Sprintf("🏆 %s - Season %d", stats.Team, season))}

	summary := fmt.Sprintf("> *Record*: %s\n> *Avg/Game*: %.1f\n> *Pins*: %.0f for, %.0f against",
		recordString(stats.Wins, stats.Losses, stats.Ties), stats.AvgPerGame, stats.PinsFor, stats.PinsAgainst)
	blocks = append(blocks, mrkdwnSection(summary))

	if len(stats.Players) > 0 {
		names := make([]string, 0, len(stats.Players))
		for name := range stats.Players {
			names = append(names, name)
		}
		sort.SliceStable(names, func(i, j int) bool { return stats.Players[names[i]] > stats.Players[names[j]] })
		var lines []string
		for _, name := range names {
			lines = append(lines, fmt.Sprintf("• %s: %.1f", name, stats.Players[name]))
		}
		blocks = append(blocks, mrkdwnSection("*Player Averages:*\n"+strings.Join(lines, "\n")))
	}
	return slack.NewBlockMessage(blocks...), nil
}

func (s *Notifier) FormatTeamWeekResponse(detail engine.TeamWeekDetail, season int) (any, error) {
	m := detail.Matchup
	blocks := []slack.Block{headerBlock(fmt.Sprintf("🏆 %s - Week %d", m.Team, m.Week))}

	opponent := m.ResolvedOpponent
	if opponent == "" {
		opponent = m.Opponent
	}
	if opponent == "" {
		opponent = "Unknown"
	}
	summary := fmt.Sprintf("> *vs* %s\n> *Result*: %s\n> *Pins*: %.0f", opponent,
		recordString(m.Wins, m.Losses, m.Ties), detail.Total)
	blocks = append(blocks, mrkdwnSection(summary))

	if len(detail.PlayerGames) > 0 {
		names := make([]string, 0, len(detail.PlayerGames))
		for name := range detail.PlayerGames {
			names = append(names, name)
		}
		sort.Strings(names)
		var lines []string
		for _, name := range names {
			lines = append(lines, fmt.Sprintf("• %s: %s", name, gamesString(detail.PlayerGames[name])))
		}
		blocks = append(blocks, mrkdwnSection("*Games:*\n"+strings.Join(lines, "\n")))
	}
	return slack.NewBlockMessage(blocks...), nil
}

func (s *Notifier) FormatTeamRecordResponse(team string, weeks []engine.WeeklyMatchup, season int) (any, error) {
	blocks := []slack.Block{headerBlock(fmt.Sprintf("🏆 %s - Week by Week", team))}
	if len(weeks) == 0 {
		blocks = append(blocks, mrkdwnSection("No weekly data found."))
		return slack.NewBlockMessage(blocks...), nil
	}

	sorted := make([]engine.WeeklyMatchup, len(weeks))
	copy(sorted, weeks)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Week < sorted[j].Week })

	var wins, losses, ties int
	var lines []string
	for _, m := range sorted {
		wins += m.Wins
		losses += m.Losses
		ties += m.Ties
		opponent := m.ResolvedOpponent
		if opponent == "" {
			opponent = "Unknown"
		}
		lines = append(lines, fmt.Sprintf("*Week %d* vs %s: %s (%.0f-%.0f pins)",
			m.Week, opponent, recordString(m.Wins, m.Losses, m.Ties), m.PinsFor, m.PinsAgainst))
	}
	blocks = append(blocks, mrkdwnSection(fmt.Sprintf("> *Season record*: %s", recordString(wins, losses, ties))))
	blocks = append(blocks, mrkdwnSection(strings.Join(lines, "\n")))
	return slack.NewBlockMessage(blocks...), nil
}

func (s *Notifier) FormatPlayerStatsResponse(stats engine.PlayerSeasonStats, season int) (any, error) {
	blocks := []slack.Block{headerBlock(fmt.Sprintf("🎳 %s - Season %d", stats.Player, season))}

	text := fmt.Sprintf("> *Team*: %s\n> *Average*: %.1f\n> *High Game*: %.0f\n> *Low Game*: %.0f\n> *Consistency (σ)*: %.1f\n> *Games*: %d\n> *Weeks*: %d played, %d absent",
		stats.Team, stats.Average, stats.HighGame, stats.LowGame, stats.StdDev,
		len(stats.Games), stats.WeeksPlayed, stats.WeeksAbsent)
	blocks = append(blocks, mrkdwnSection(text))
	return slack.NewBlockMessage(blocks...), nil
}

func (s *Notifier) FormatPlayerWeekResponse(detail engine.PlayerWeekDetail, season int) (any, error) {
	blocks := []slack.Block{headerBlock(fmt.Sprintf("🎳 %s - Week %d", detail.Player, detail.Week))}

	if detail.Absent {
		blocks = append(blocks, mrkdwnSection("_Marked absent this week._"))
	}
	if len(detail.Games) == 0 {
		blocks = append(blocks, mrkdwnSection("No games recorded."))
		return slack.NewBlockMessage(blocks...), nil
	}
	text := fmt.Sprintf("> *Games*: %s\n> *Total*: %.0f\n> *Average*: %.1f",
		gamesString(detail.Games), detail.Total, detail.Average)
	blocks = append(blocks, mrkdwnSection(text))
	return slack.NewBlockMessage(blocks...), nil
}

func (s *Notifier) FormatPlayerListResponse(players []engine.PlayerSeasonStats, season int) (any, error) {
	blocks := []slack.Block{headerBlock(fmt.Sprintf("🎳 Players - Season %d", season))}
	if len(players) == 0 {
		blocks = append(blocks, mrkdwnSection("No players found for this season."))
		return slack.NewBlockMessage(blocks...), nil
	}
	var lines []string
	for _, p := range players {
		lines = append(lines, fmt.Sprintf("• %s (%s)", p.Player, p.Team))
	}
	blocks = append(blocks, mrkdwnSection(strings.Join(lines, "\n")))
	return slack.NewBlockMessage(blocks...), nil
}

func (s *Notifier) FormatLeaderboardResponse(lb engine.LeagueLeaderboard, season int) (any, error) {
	blocks := []slack.Block{headerBlock(fmt.Sprintf("🏆 Season %d Leaderboard", season))}

	if len(lb.PlayerAverages) > 0 {
		var lines []string
		for i, p := range lb.PlayerAverages {
			if i >= 10 {
				break
			}
			lines = append(lines, fmt.Sprintf("%d. %s %s (%s): %.1f", i+1, medal(i+1), p.Player, p.Team, p.Average))
		}
		blocks = append(blocks, mrkdwnSection("*Top Averages:*\n"+strings.Join(lines, "\n")))
	}
	if len(lb.TopPlayerWeeks) > 0 {
		blocks = append(blocks, mrkdwnSection("*Best Player Weeks:*\n"+playerWeekLines(lb.TopPlayerWeeks)))
	}
	if len(lb.TopTeamWeeks) > 0 {
		blocks = append(blocks, mrkdwnSection("*Best Team Weeks:*\n"+teamWeekLines(lb.TopTeamWeeks)))
	}
	if len(lb.TopGames) > 0 {
		blocks = append(blocks, mrkdwnSection("*Best Games:*\n"+gameLines(lb.TopGames)))
	}
	if len(blocks) == 1 {
		blocks = append(blocks, mrkdwnSection("No stats available yet. Go bowl some games!"))
	}
	return slack.NewBlockMessage(blocks...), nil
}

func (s *Notifier) FormatPlayerAveragesResponse(players []engine.PlayerSeasonStats, season int) (any, error) {
	blocks := []slack.Block{headerBlock(fmt.Sprintf("🎳 Player Averages - Season %d", season))}
	if len(players) == 0 {
		blocks = append(blocks, mrkdwnSection("No stats available yet."))
		return slack.NewBlockMessage(blocks...), nil
	}
	for i, p := range players {
		line := fmt.Sprintf("%d. %s *%s* (%s)\n> Average: %.1f | High: %.0f | Games: %d",
			i+1, medal(i+1), p.Player, p.Team, p.Average, p.HighGame, len(p.Games))
		blocks = append(blocks, mrkdwnSection(line))
	}
	return slack.NewBlockMessage(blocks...), nil
}

func (s *Notifier) FormatBestPlayerWeeksResponse(weeks []engine.PlayerWeekTotal, season int) (any, error) {
	blocks := []slack.Block{headerBlock(fmt.Sprintf("🎳 Best Player Weeks - Season %d", season))}
	if len(weeks) == 0 {
		blocks = append(blocks, mrkdwnSection("No weekly totals yet."))
		return slack.NewBlockMessage(blocks...), nil
	}
	blocks = append(blocks, mrkdwnSection(playerWeekLines(weeks)))
	return slack.NewBlockMessage(blocks...), nil
}

func (s *Notifier) FormatBestTeamWeeksResponse(weeks []engine.TeamWeekTotal, season int) (any, error) {
	blocks := []slack.Block{headerBlock(fmt.Sprintf("🏆 Best Team Weeks - Season %d", season))}
	if len(weeks) == 0 {
		blocks = append(blocks, mrkdwnSection("No team totals yet."))
		return slack.NewBlockMessage(blocks...), nil
	}
	blocks = append(blocks, mrkdwnSection(teamWeekLines(weeks)))
	return slack.NewBlockMessage(blocks...), nil
}

func (s *Notifier) FormatBestGamesResponse(games []engine.GameScore, season int) (any, error) {
	blocks := []slack.Block{headerBlock(fmt.Sprintf("🎳 Best Games - Season %d", season))}
	if len(games) == 0 {
		blocks = append(blocks, mrkdwnSection("No games recorded yet."))
		return slack.NewBlockMessage(blocks...), nil
	}
	blocks = append(blocks, mrkdwnSection(gameLines(games)))
	return slack.NewBlockMessage(blocks...), nil
}

func (s *Notifier) FormatScoreAddedResponse(event *league.ScoreAdded) (any, error) {
	return s.formatScoreAdded(event), nil
}

func (s *Notifier) FormatScoreNotAddedResponse(player string) (any, error) {
	text := fmt.Sprintf("❌ Couldn't add a score for *%s*. Check the name, or the week may already have five games.", player)
	return slack.NewBlockMessage(mrkdwnSection(text)), nil
}

func (s *Notifier) FormatNotFoundResponse(err error) (any, error) {
	var nf *engine.NotFoundError
	if errors.As(err, &nf) {
		text := fmt.Sprintf("❌ Sorry, I couldn't find a %s matching *%s* in season %d. Try a different name.",
			nf.Kind, nf.Query, nf.Season)
		return slack.NewBlockMessage(mrkdwnSection(text)), nil
	}
	return slack.NewBlockMessage(mrkdwnSection("❌ Sorry, I couldn't find that.")), nil
}

func (s *Notifier) FormatUnknownResponse() (any, error) {
	text := "❓ I didn't understand that command. Type `help` for available commands."
	return slack.NewBlockMessage(mrkdwnSection(text)), nil
}

func (s *Notifier) formatScoreAdded(event *league.ScoreAdded) slack.Message {
	blocks := []slack.Block{headerBlock("🎳 Score added!")}
	text := fmt.Sprintf("> *%s* (%s)\n> Score: %d\n> Week %d, game %d",
		event.Player, event.Team, event.Score, event.Week, event.Slot)
	blocks = append(blocks, mrkdwnSection(text))
	if event.Score == command.MaxGameScore {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject("plain_text", "🏆 A perfect game!", true, false)))
	}
	return slack.NewBlockMessage(blocks...)
}

func headerBlock(text string) slack.Block {
	return slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", text, true, false))
}

func mrkdwnSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil)
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}

func recordString(wins, losses, ties int) string {
	record := fmt.Sprintf("%d-%d", wins, losses)
	if ties > 0 {
		record += fmt.Sprintf("-%d", ties)
	}
	return record
}

func gamesString(games []float64) string {
	parts := make([]string, len(games))
	for i, g := range games {
		parts[i] = fmt.Sprintf("%.0f", g)
	}
	return strings.Join(parts, ", ")
}

func playerWeekLines(weeks []engine.PlayerWeekTotal) string {
	var lines []string
	for i, w := range weeks {
		lines = append(lines, fmt.Sprintf("%d. %s (%s) - Week %d: %.0f pins (%d games)",
			i+1, w.Player, w.Team, w.Week, w.Total, w.GameCount))
	}
	return strings.Join(lines, "\n")
}

func teamWeekLines(weeks []engine.TeamWeekTotal) string {
	var lines []string
	for i, w := range weeks {
		lines = append(lines, fmt.Sprintf("%d. %s - Week %d: %.0f pins", i+1, w.Team, w.Week, w.Total))
	}
	return strings.Join(lines, "\n")
}

func gameLines(games []engine.GameScore) string {
	var lines []string
	for i, g := range games {
		lines = append(lines, fmt.Sprintf("%d. %s (%s) - Week %d: %.0f", i+1, g.Player, g.Team, g.Week, g.Score))
	}
	return strings.Join(lines, "\n")
}
