// Package aggregate folds stored calculation results into the summary
// shapes served to dashboards and leaderboards. Every operation is a
// deterministic, read-only fold over a caller-owned slice: recomputing
// from the same input always yields the same snapshot, and no locking is
// required beyond the caller not mutating the slice mid-fold.
package aggregate

import (
	"math"
	"time"

	"github.com/rahulstox/ecopack/internal/carbon"
)

// Snapshot summarizes one user's calculation history. It is derived on
// demand and never persisted.
type Snapshot struct {
	TotalCO2eKg        float64                     `json:"total_co2e_kg"`
	TotalActions       int                         `json:"total_actions"`
	ThisMonthCO2eKg    float64                     `json:"this_month_co2e_kg"`
	ThisMonthActions   int                         `json:"this_month_actions"`
	CategoryBreakdown  map[carbon.Category]float64 `json:"category_breakdown"`
	AveragePerActionKg float64                     `json:"average_per_action_kg"`
}

// Summarize folds a user's results into a Snapshot as of the given time.
// The "this month" window is [first day of asOf's month, asOf], inclusive
// of the lower bound. Category sums are signed: negative savings entries
// reduce a category's shown total. Zero results yield a zero-valued
// snapshot with an empty breakdown — never an error, never a division by
// zero.
func Summarize(results []carbon.CalculationResult, asOf time.Time) Snapshot {
	snap := Snapshot{CategoryBreakdown: make(map[carbon.Category]float64)}

	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())

	for _, r := range results {
		snap.TotalCO2eKg += r.CO2eKg
		snap.TotalActions++
		snap.CategoryBreakdown[r.Category] += r.CO2eKg

		if !r.Timestamp.Before(monthStart) && !r.Timestamp.After(asOf) {
			snap.ThisMonthCO2eKg += r.CO2eKg
			snap.ThisMonthActions++
		}
	}

	if snap.TotalActions > 0 {
		snap.AveragePerActionKg = round3(snap.TotalCO2eKg / float64(snap.TotalActions))
	}
	snap.TotalCO2eKg = round3(snap.TotalCO2eKg)
	snap.ThisMonthCO2eKg = round3(snap.ThisMonthCO2eKg)
	for cat, kg := range snap.CategoryBreakdown {
		snap.CategoryBreakdown[cat] = round3(kg)
	}

	return snap
}

// round3 rounds dashboard CO2e quantities to three decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// round2 rounds leaderboard totals to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
