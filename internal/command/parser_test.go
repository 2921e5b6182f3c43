package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		message string
		want    Command
	}{
		{"help", "help", Command{Type: CommandHelp}},
		{"help question mark", "?", Command{Type: CommandHelp}},
		{"seasons", "seasons", Command{Type: CommandListSeasons}},
		{"list players", "list players", Command{Type: CommandListPlayers}},
		{"list teams", "list teams", Command{Type: CommandListTeams}},
		{"standings", "standings", Command{Type: CommandTeamScores}},
		{"bare teams", "teams", Command{Type: CommandTeamScores}},
		{"stats", "stats", Command{Type: CommandStats}},
		{"leaderboard alias", "leaderboard", Command{Type: CommandStats}},
		{"averages", "averages", Command{Type: CommandPlayerAverages}},
		{"best weeks", "best weeks", Command{Type: CommandBestPlayerWeeks}},
		{"best team weeks", "best team weeks", Command{Type: CommandBestTeamWeeks}},
		{"best games", "best games", Command{Type: CommandBestGames}},

		{"team by name", "team Rolling Stoned", Command{Type: CommandTeamScores, TeamName: "rolling stoned"}},
		{"team scores bare", "team scores", Command{Type: CommandTeamScores}},
		{"team record", "record Rolling Stoned", Command{Type: CommandTeamRecord, TeamName: "rolling stoned"}},
		{"team record suffix", "team Rolling Stoned record", Command{Type: CommandTeamRecord, TeamName: "rolling stoned"}},

		{"player by name", "player John", Command{Type: CommandPlayerScores, PlayerName: "john"}},
		{"score lookup", "score John", Command{Type: CommandPlayerScores, PlayerName: "john"}},
		{"name stats", "John stats", Command{Type: CommandPlayerScores, PlayerName: "john"}},
		{"name score suffix", "John score", Command{Type: CommandPlayerScores, PlayerName: "john"}},

		{"add score", "add score 150 John", Command{Type: CommandAddScore, PlayerName: "john", Score: 150}},
		{"enter score", "enter score 210 Dylan", Command{Type: CommandAddScore, PlayerName: "dylan", Score: 210}},
		{"score number name", "score 150 John", Command{Type: CommandAddScore, PlayerName: "john", Score: 150}},
		{"quick add", "John 150", Command{Type: CommandAddScore, PlayerName: "john", Score: 150}},
		{"perfect game", "add score 300 John", Command{Type: CommandAddScore, PlayerName: "john", Score: 300}},

		{"unknown", "what is bowling", Command{Type: CommandUnknown}},
		{"empty", "   ", Command{Type: CommandUnknown}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse(tc.message))
		})
	}
}

func TestParseSeasonExtraction(t *testing.T) {
	cmd := Parse("team Rolling Stoned season 9")
	assert.Equal(t, CommandTeamScores, cmd.Type)
	assert.Equal(t, "rolling stoned", cmd.TeamName)
	assert.Equal(t, 9, cmd.Season)

	cmd = Parse("player John s10")
	assert.Equal(t, CommandPlayerScores, cmd.Type)
	assert.Equal(t, "john", cmd.PlayerName)
	assert.Equal(t, 10, cmd.Season)

	cmd = Parse("season 9 team Rolling Stoned")
	assert.Equal(t, CommandTeamScores, cmd.Type)
	assert.Equal(t, "rolling stoned", cmd.TeamName)
	assert.Equal(t, 9, cmd.Season)
}

func TestParseWeekExtraction(t *testing.T) {
	cmd := Parse("team Rolling Stoned week 3")
	assert.Equal(t, CommandTeamScores, cmd.Type)
	assert.Equal(t, "rolling stoned", cmd.TeamName)
	assert.Equal(t, 3, cmd.Week)

	cmd = Parse("add score 180 Dylan week 4 season 10")
	assert.Equal(t, CommandAddScore, cmd.Type)
	assert.Equal(t, "dylan", cmd.PlayerName)
	assert.Equal(t, 180, cmd.Score)
	assert.Equal(t, 4, cmd.Week)
	assert.Equal(t, 10, cmd.Season)
}

func TestParseRejectsImpossibleScores(t *testing.T) {
	cmd := Parse("add score 350 John")
	assert.NotEqual(t, CommandAddScore, cmd.Type, "a game cannot exceed 300 pins")

	cmd = Parse("John 350")
	assert.NotEqual(t, CommandAddScore, cmd.Type)
}

func TestHelpMessageMentionsCoreCommands(t *testing.T) {
	msg := HelpMessage()
	for _, want := range []string{"team", "player", "add score", "seasons", "best games"} {
		assert.Contains(t, msg, want)
	}
}
