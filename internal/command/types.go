package command

// CommandType identifies what a parsed message asks for.
type CommandType string

const (
	CommandHelp            CommandType = "help"
	CommandListSeasons     CommandType = "list_seasons"
	CommandListPlayers     CommandType = "list_players"
	CommandListTeams       CommandType = "list_teams"
	CommandStats           CommandType = "stats"
	CommandPlayerAverages  CommandType = "player_averages"
	CommandBestPlayerWeeks CommandType = "best_player_weeks"
	CommandBestTeamWeeks   CommandType = "best_team_weeks"
	CommandBestGames       CommandType = "best_games"
	CommandTeamScores      CommandType = "team_scores"
	CommandTeamRecord      CommandType = "team_record"
	CommandPlayerScores    CommandType = "player_scores"
	CommandAddScore        CommandType = "add_score"
	CommandUnknown         CommandType = "unknown"
)

// Command is a parsed user message. Zero values mean "not specified": an
// empty TeamName on a team query asks for the full standings, a zero Season
// defaults to the current season, a zero Week means the whole season.
type Command struct {
	Type       CommandType
	TeamName   string
	PlayerName string
	Score      int
	Week       int
	Season     int
}
