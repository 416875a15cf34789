package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sintrade",
	Short: "Educational trading assistant",
	Long: "Sin Trade AI is a terminal assistant that teaches trading step by step " +
		"through lessons, quizzes, simulations, and daily analysis challenges.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite request-log file (overrides SINTRADE_DB env var)")
	rootCmd.PersistentFlags().Bool("admin", false, "Enable operator settings (/set level|access|focus)")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(requestsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the request-log path using --db flag (highest
// priority), then SINTRADE_DB env var, then a file in the working directory.
func resolveDBPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p
	}
	if p := os.Getenv("SINTRADE_DB"); p != "" {
		return p
	}
	return "sintrade.db"
}
