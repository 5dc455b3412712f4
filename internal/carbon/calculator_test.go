package carbon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator() *Calculator {
	c := NewCalculator(NewFactorSet(nil), nil)
	c.now = func() time.Time { return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC) }
	return c
}

func TestCalculate(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name       string
		input      ActivityInput
		wantCO2e   float64
		wantFactor float64
		wantUnit   string
	}{
		{
			name: "petrol car drive",
			input: ActivityInput{
				Category: CategoryTransport,
				Activity: "I drove a petrol car",
				Amount:   15,
				Unit:     "KM",
			},
			wantCO2e:   2.565, // 15 * 0.171
			wantFactor: 0.171,
			wantUnit:   "km",
		},
		{
			name: "oats fall to food default after gram conversion",
			input: ActivityInput{
				Category: CategoryFood,
				Activity: "Oats",
				Amount:   250,
				Unit:     "G",
			},
			wantCO2e:   0.5, // 0.25 kg * 2.0 default
			wantFactor: 2.0,
			wantUnit:   "kg",
		},
		{
			name: "zero amount yields zero",
			input: ActivityInput{
				Category: CategoryEnergy,
				Activity: "grid electricity",
				Amount:   0,
				Unit:     "kwh",
			},
			wantCO2e:   0,
			wantFactor: 0.45,
			wantUnit:   "kwh",
		},
		{
			name: "zero-factor activity yields zero",
			input: ActivityInput{
				Category: CategoryTransport,
				Activity: "cycling",
				Amount:   20,
				Unit:     "km",
			},
			wantCO2e:   0,
			wantFactor: 0,
			wantUnit:   "km",
		},
		{
			name: "result rounds to three decimals",
			input: ActivityInput{
				Category: CategoryFood,
				Activity: "chicken",
				Amount:   0.3333,
				Unit:     "kg",
			},
			wantCO2e:   2.0, // 0.3333 * 6.0 = 1.9998
			wantFactor: 6.0,
			wantUnit:   "kg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Calculate(tt.input)

			assert.InDelta(t, tt.wantCO2e, got.CO2eKg, 1e-9)
			assert.InDelta(t, tt.wantFactor, got.FactorUsed, 1e-9)
			assert.Equal(t, tt.wantUnit, got.Unit)
			assert.Equal(t, SourceLocal, got.Source)
			assert.Equal(t, tt.input.Category, got.Category)
			assert.Equal(t, tt.input.Activity, got.Activity)
			assert.False(t, got.Timestamp.IsZero())
		})
	}
}

func TestCalculateIsTotal(t *testing.T) {
	calc := newTestCalculator()

	// Nonsense input still produces a numeric result.
	got := calc.Calculate(ActivityInput{
		Category: Category(99),
		Activity: "",
		Amount:   1,
		Unit:     "???",
	})

	require.Equal(t, SourceLocal, got.Source)
	assert.InDelta(t, 1.0, got.CO2eKg, 1e-9) // OTHER default 1.0
}

func TestRound3(t *testing.T) {
	assert.InDelta(t, 2.565, Round3(2.5649999), 1e-9)
	assert.InDelta(t, 0.0, Round3(0.0004), 1e-9)
	assert.InDelta(t, -1.234, Round3(-1.2339), 1e-9)
}
