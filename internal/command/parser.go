package command

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxGameScore is the highest score a single bowling game can produce.
const MaxGameScore = 300

var (
	seasonPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bseason\s+(\d+)\b`),
		regexp.MustCompile(`\bs(\d+)\b`),
	}
	weekPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bweek\s+(\d+)\b`),
		regexp.MustCompile(`\bw(\d+)\b`),
	}
	spaceRe = regexp.MustCompile(`\s+`)

	// Explicit add-score forms must be tried before the player patterns, or
	// "score 150 john" would read as a stats query for player "150 john".
	addScorePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^add\s+score\s+(\d+)\s+(.+)$`),
		regexp.MustCompile(`^enter\s+score\s+(\d+)\s+(.+)$`),
		regexp.MustCompile(`^score\s+(\d+)\s+(.+)$`),
	}
	quickAddPattern = regexp.MustCompile(`^(.+?)\s+(\d+)$`)

	teamPattern       = regexp.MustCompile(`^team\s+(.+)$`)
	recordPattern     = regexp.MustCompile(`^record\s+(.+)$`)
	recordSuffix      = regexp.MustCompile(`^(.+)\s+record$`)
	playerPatterns    = []*regexp.Regexp{
		regexp.MustCompile(`^player\s+(.+)$`),
		regexp.MustCompile(`^score\s+(.+)$`),
		regexp.MustCompile(`^(.+)\s+scores?$`),
		regexp.MustCompile(`^(.+)\s+stats?$`),
	}
)

// reservedNames are capture groups that are keywords, not names.
var reservedNames = map[string]struct{}{
	"score": {}, "scores": {}, "stat": {}, "stats": {}, "my": {}, "record": {},
}

// Parse turns a free-text message into a Command. Parsing never fails; a
// message that matches nothing comes back as CommandUnknown.
func Parse(message string) Command {
	text := strings.ToLower(strings.TrimSpace(message))

	var cmd Command
	text, cmd.Season = extractNumber(text, seasonPatterns)
	text, cmd.Week = extractNumber(text, weekPatterns)

	switch text {
	case "help", "?", "commands":
		cmd.Type = CommandHelp
		return cmd
	case "seasons", "list seasons", "show seasons":
		cmd.Type = CommandListSeasons
		return cmd
	case "players", "list players", "show players":
		cmd.Type = CommandListPlayers
		return cmd
	case "list teams", "show teams":
		cmd.Type = CommandListTeams
		return cmd
	case "team", "teams", "standing", "standings", "team scores":
		cmd.Type = CommandTeamScores
		return cmd
	case "stats", "leaderboard":
		cmd.Type = CommandStats
		return cmd
	case "averages", "player averages":
		cmd.Type = CommandPlayerAverages
		return cmd
	case "best weeks", "best player weeks":
		cmd.Type = CommandBestPlayerWeeks
		return cmd
	case "best team weeks":
		cmd.Type = CommandBestTeamWeeks
		return cmd
	case "best games", "top games":
		cmd.Type = CommandBestGames
		return cmd
	}

	for _, re := range addScorePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			score, err := strconv.Atoi(m[1])
			if err != nil || score > MaxGameScore {
				continue
			}
			cmd.Type = CommandAddScore
			cmd.Score = score
			cmd.PlayerName = strings.TrimSpace(m[2])
			return cmd
		}
	}

	if m := teamPattern.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		if name == "record" {
			cmd.Type = CommandTeamRecord
			return cmd
		}
		if rest := recordSuffix.FindStringSubmatch(name); rest != nil {
			cmd.Type = CommandTeamRecord
			cmd.TeamName = strings.TrimSpace(rest[1])
			return cmd
		}
		cmd.Type = CommandTeamScores
		if !isReserved(name) {
			cmd.TeamName = name
		}
		return cmd
	}
	if m := recordPattern.FindStringSubmatch(text); m != nil {
		cmd.Type = CommandTeamRecord
		cmd.TeamName = strings.TrimSpace(m[1])
		return cmd
	}

	for _, re := range playerPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			name := strings.TrimSpace(m[1])
			if isReserved(name) {
				continue
			}
			cmd.Type = CommandPlayerScores
			cmd.PlayerName = name
			return cmd
		}
	}

	// Quick add: "john 150".
	if m := quickAddPattern.FindStringSubmatch(text); m != nil {
		if score, err := strconv.Atoi(m[2]); err == nil && score <= MaxGameScore {
			name := strings.TrimSpace(m[1])
			if !isReserved(name) {
				cmd.Type = CommandAddScore
				cmd.PlayerName = name
				cmd.Score = score
				return cmd
			}
		}
	}

	cmd.Type = CommandUnknown
	return cmd
}

// extractNumber pulls the first pattern match out of the text, returning the
// cleaned text and the captured number (0 when absent).
func extractNumber(text string, patterns []*regexp.Regexp) (string, int) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			cleaned := re.ReplaceAllString(text, "")
			cleaned = strings.TrimSpace(spaceRe.ReplaceAllString(cleaned, " "))
			return cleaned, n
		}
	}
	return text, 0
}

func isReserved(name string) bool {
	_, ok := reservedNames[name]
	return ok
}
