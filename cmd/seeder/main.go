package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

var rosters = map[string][]string{
	"Pin Pushers":    {"Alice", "Bob", "Carla", "Derek"},
	"Split Happens":  {"Elena", "Frank", "Grace", "Hank"},
	"Gutter Gang":    {"Ivy", "Jonas", "Kira", "Liam"},
	"Turkey Hunters": {"Mona", "Nate", "Olga", "Pete"},
}

// schedule pairs teams per week. Four teams, so two matchups a week,
// alternating opponents over a simple three-week cycle.
var schedule = [][2]string{
	{"Pin Pushers", "Split Happens"},
	{"Gutter Gang", "Turkey Hunters"},
	{"Pin Pushers", "Gutter Gang"},
	{"Split Happens", "Turkey Hunters"},
	{"Pin Pushers", "Turkey Hunters"},
	{"Split Happens", "Gutter Gang"},
}

func opponentFor(team string, week int) string {
	offset := ((week - 1) % 3) * 2
	for _, pair := range schedule[offset : offset+2] {
		if pair[0] == team {
			return pair[1]
		}
		if pair[1] == team {
			return pair[0]
		}
	}
	return ""
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	const seedSeason = 1
	const numWeeks = 8
	const gamesPerWeek = 3

	log.Info("Preparing to insert demo score rows...", "season", seedSeason, "weeks", numWeeks)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0)
	valueArgs := make([]interface{}, 0)
	now := time.Now().Unix()
	rowCount := 0

	addRow := func(week, team, player, absent, substitute, opponent string, games [5]string) {
		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			uuid.NewString(), seedSeason, week, team, player,
			games[0], games[1], games[2], games[3], games[4],
			absent, substitute, opponent, now, now)
		rowCount++
	}

	for week := 1; week <= numWeeks; week++ {
		weekStr := strconv.Itoa(week)
		// Sheet header rows appear at the top of every week's block, the
		// way a real exported sheet looks. The engine skips them.
		addRow(weekStr, "Team", "Player", "", "", "Opponent", [5]string{"Game 1", "Game 2", "Game 3", "", ""})

		for team, players := range rosters {
			opponent := opponentFor(team, week)
			for i, player := range players {
				var games [5]string
				absent := ""

				// Every fourth player sits out roughly every fifth week.
				if i == 3 && (week+i)%5 == 0 {
					absent = "Y"
				} else {
					for g := 0; g < gamesPerWeek; g++ {
						games[g] = strconv.Itoa(110 + rand.Intn(140))
					}
				}
				addRow(weekStr, team, player, absent, "", opponent, games)
			}

			// The occasional substitute fills in for an absent regular.
			if week%4 == 0 {
				var games [5]string
				for g := 0; g < gamesPerWeek; g++ {
					games[g] = strconv.Itoa(100 + rand.Intn(120))
				}
				addRow(weekStr, team, "Sub ("+team+")", "", "Y", opponent, games)
			}
		}
	}

	stmt := fmt.Sprintf(`
		INSERT INTO score_rows (id, season, week, team, player, game1, game2, game3, game4, game5, absent, substitute, opponent, created_at, updated_at)
		VALUES %s;`, strings.Join(valueStrings, ","))

	if _, err := tx.Exec(stmt, valueArgs...); err != nil {
		tx.Rollback()
		log.Fatalf("Failed to execute batch insert: %s", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted demo score rows.", "rows", rowCount, "duration", duration)
}
