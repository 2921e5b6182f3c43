package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

var (
	season int
	week   int
)

func init() {
	statsCmd.Flags().IntVar(&season, "season", 0, "Season number (defaults to the latest)")
	playersCmd.Flags().IntVar(&season, "season", 0, "Season number (defaults to the latest)")
	teamsCmd.Flags().IntVar(&season, "season", 0, "Season number (defaults to the latest)")
	addCmd.Flags().IntVar(&season, "season", 0, "Season number (defaults to the latest)")
	addCmd.Flags().IntVar(&week, "week", 0, "Week number (defaults to the player's latest week)")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(seasonsCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "List the seasons on the score sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/seasons")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List player stats for a season",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players" + seasonQuery())
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List team standings for a season",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/teams" + seasonQuery())
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Get the season leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats" + seasonQuery())
	},
}

var addCmd = &cobra.Command{
	Use:   "add <player> <score>",
	Short: "Add a game score for a player",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := fmt.Sprintf(`{"player": %q, "score": %s, "week": %d, "season": %d}`, args[0], args[1], week, season)
		return performPostRequest("/add-score", payload)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func seasonQuery() string {
	if season > 0 {
		return "?season=" + url.QueryEscape(fmt.Sprint(season))
	}
	return ""
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint, payload string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
