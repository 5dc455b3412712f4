package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rahulstox/ecopack/internal/aggregate"
	"github.com/rahulstox/ecopack/internal/carbon"
	"github.com/rahulstox/ecopack/internal/store"
)

// newSummaryCmd prints one user's aggregate snapshot.
func newSummaryCmd(a *app) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show lifetime and current-month CO2e totals for a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.store.ListByUser(user, time.Time{}, time.Time{})
			if err != nil {
				return fmt.Errorf("load action log: %w", err)
			}

			snap := aggregate.Summarize(resultsOf(records), time.Now().UTC())
			return printJSON(cmd, snap)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "U", "default", "user to summarize")
	return cmd
}

// newLeaderboardCmd prints the cross-user savings leaderboard.
func newLeaderboardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank users by total CO2e saved",
		RunE: func(cmd *cobra.Command, _ []string) error {
			userIDs, err := a.store.Users()
			if err != nil {
				return fmt.Errorf("load action log: %w", err)
			}

			users := make([]aggregate.UserResults, 0, len(userIDs))
			for _, id := range userIDs {
				records, err := a.store.ListByUser(id, time.Time{}, time.Time{})
				if err != nil {
					return fmt.Errorf("load action log: %w", err)
				}
				users = append(users, aggregate.UserResults{
					UserID:  id,
					Results: resultsOf(records),
				})
			}

			return printJSON(cmd, aggregate.RankSavings(users))
		},
	}
	return cmd
}

// newFactorsCmd prints the resolved factor tables, including overrides.
func newFactorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Show the emission factor tables in resolution order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := make(map[string]any, len(carbon.Categories))
			for _, cat := range carbon.Categories {
				out[cat.String()] = map[string]any{
					"unit":    a.factors.CanonicalUnit(cat),
					"default": a.factors.DefaultFactor(cat),
					"factors": a.factors.Entries(cat),
				}
			}
			return printJSON(cmd, out)
		},
	}
	return cmd
}

func resultsOf(records []store.ActionLogRecord) []carbon.CalculationResult {
	out := make([]carbon.CalculationResult, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Result)
	}
	return out
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
