package main

import (
	"log/slog"
	"os"

	"github.com/opsbotics/controlroom/pkg/slogx"
	"github.com/spf13/cobra"
)

var (
	flagURL      string
	flagUsername string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "crctl",
	Short: "Command-line client for a Control Room",
	Long: `crctl talks to a Control Room REST API: audit search, Bot Insight
telemetry, device/user/role listings, license details and automation
deployment.

Connection settings come from flags or the environment:

  CONTROLROOM_URL       base URL, e.g. https://cr.example.com
  CONTROLROOM_USERNAME  account name (may be DOMAIN\user)
  CONTROLROOM_APIKEY    API key; preferred when set
  CONTROLROOM_PASSWORD  password; prompted for when neither secret is set`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(slogx.New(slogx.Config{Level: flagLogLevel}))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", getEnv("CONTROLROOM_URL", ""), "Control Room base URL")
	rootCmd.PersistentFlags().StringVar(&flagUsername, "username", getEnv("CONTROLROOM_USERNAME", ""), "account username")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", getEnv("CONTROLROOM_LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
