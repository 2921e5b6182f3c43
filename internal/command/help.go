package command

// HelpMessage lists every command the bot understands, in Slack mrkdwn.
func HelpMessage() string {
	return `🎳 *BowlBot Commands:*

*Standings & Teams:*
• ` + "`teams`" + ` or ` + "`standings`" + ` - Show all team standings
• ` + "`team [name]`" + ` - Show a team's season stats
• ` + "`team [name] week [N]`" + ` - Show a team's games for one week
• ` + "`record [team]`" + ` - Show a team's week-by-week record

*Players:*
• ` + "`player [name]`" + ` - Show player stats
• ` + "`[name] stats`" + ` - Same thing
• ` + "`player [name] week [N]`" + ` - Show one week's games
• ` + "`players`" + ` - List everyone in the league

*Leaderboards:*
• ` + "`stats`" + ` - Full season leaderboard
• ` + "`averages`" + ` - Player averages, best first
• ` + "`best weeks`" + ` - Top 10 player weeks
• ` + "`best team weeks`" + ` - Top 5 team weeks
• ` + "`best games`" + ` - Top 10 single games

*Add Scores:*
• ` + "`add score [score] [player]`" + ` - Add a score
• ` + "`[player] [score]`" + ` - Quick add (e.g. "John 150")
• Add ` + "`week [N]`" + ` to target a specific week

*Seasons:*
• ` + "`seasons`" + ` - List all seasons on record
• Add ` + "`season [N]`" + ` or ` + "`s[N]`" + ` to any command
• If not specified, the current season is used

*Examples:*
• ` + "`team Rolling Stoned`" + `
• ` + "`player John season 10`" + `
• ` + "`add score 180 Dylan week 3`" + ``
}
