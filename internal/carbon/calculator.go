package carbon

import (
	"math"
	"time"
)

// Calculator computes CO2e from the local factor tables. It is a pure
// composition of unit normalization and factor resolution: no I/O, always
// synchronous, and total — Calculate never fails.
type Calculator struct {
	factors *FactorSet
	metrics *Metrics
	now     func() time.Time
}

// NewCalculator wires a local calculator over the given factor set.
// metrics may be nil.
func NewCalculator(factors *FactorSet, metrics *Metrics) *Calculator {
	return &Calculator{
		factors: factors,
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Calculate converts one activity into a CO2e result using the local
// tables: normalize the unit, resolve the factor, multiply, round to three
// decimal places. The result is tagged SourceLocal. An amount of zero
// yields zero CO2e regardless of category, label, or unit.
func (c *Calculator) Calculate(in ActivityInput) CalculationResult {
	amount, unit := Normalize(in.Amount, in.Unit)
	factor, match := c.factors.Resolve(in.Category, in.Activity)
	if match == MatchDefault {
		c.metrics.DefaultFallback(in.Category)
	}

	return CalculationResult{
		CO2eKg:     Round3(amount * factor),
		Category:   in.Category,
		Activity:   in.Activity,
		Amount:     amount,
		Unit:       unit,
		FactorUsed: factor,
		Source:     SourceLocal,
		Timestamp:  c.now(),
	}
}

// Round3 rounds a CO2e quantity to three decimal places, the precision
// used at every boundary of the engine.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
