package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/israyx/sintrade/internal/store"
)

var requestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List recent AI content requests from the audit log",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := store.Open(resolveDBPath(cmd))
		if err != nil {
			return fmt.Errorf("open request log: %w", err)
		}
		defer s.Close()

		records, err := s.RecentRequests(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query request log: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No requests recorded.")
			return nil
		}

		fmt.Printf("%-19s  %-16s  %-28s  %-7s  %-3s  %s\n",
			"Timestamp", "Purpose", "Model", "Ms", "OK", "Error")
		fmt.Println(strings.Repeat("─", 96))
		for _, r := range records {
			if purpose != "" && r.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			model := r.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-19s  %-16s  %-28s  %-7d  %-3s  %s\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Purpose, model, r.LatencyMs, ok, r.Error)
		}
		return nil
	},
}

func init() {
	requestsCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	requestsCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. lesson, quiz_pack, simulation)")
}
