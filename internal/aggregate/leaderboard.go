package aggregate

import (
	"sort"

	"github.com/rahulstox/ecopack/internal/carbon"
)

// UserResults pairs one user with their calculation history. Callers pass
// an ordered slice rather than a map so tie-breaking by original position
// is well defined.
type UserResults struct {
	UserID      string
	DisplayName string
	Results     []carbon.CalculationResult
}

// LeaderboardEntry is one ranked row of the savings leaderboard.
type LeaderboardEntry struct {
	UserID       string  `json:"user_id"`
	DisplayName  string  `json:"display_name,omitempty"`
	TotalSavedKg float64 `json:"total_saved_kg"`
}

// RankSavings groups all users' results into a savings leaderboard.
//
// Every result contributes its absolute value to the user's "saved" total:
// stored negatives are savings and flip to positive, and positives count
// as-is. An emission-heavy user can therefore rank alongside a genuine
// saver; that equivalence is the historical behavior of the system and is
// preserved here deliberately rather than corrected.
//
// Users whose total is zero or below are excluded. Remaining entries sort
// descending by total; equal totals keep their original relative order.
// Totals are rounded to two decimal places for presentation.
func RankSavings(users []UserResults) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(users))

	for _, u := range users {
		var total float64
		for _, r := range u.Results {
			if r.CO2eKg < 0 {
				total += -r.CO2eKg
			} else {
				total += r.CO2eKg
			}
		}
		if total <= 0 {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			UserID:       u.UserID,
			DisplayName:  u.DisplayName,
			TotalSavedKg: round2(total),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalSavedKg > entries[j].TotalSavedKg
	})

	return entries
}
