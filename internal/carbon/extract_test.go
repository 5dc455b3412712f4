package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterWellFormed(t *testing.T) {
	raw := []RawActivity{
		{Category: "TRANSPORT", Activity: "drove a petrol car", Amount: 15, Unit: "km"},
		{Category: "", Activity: "mystery", Amount: 1, Unit: "kg"},
		{Category: "FOOD", Activity: "", Amount: 1, Unit: "kg"},
		{Category: "FOOD", Activity: "beef", Amount: 0, Unit: "kg"},
		{Category: "FOOD", Activity: "beef", Amount: -2, Unit: "kg"},
		{Category: "ENERGY", Activity: "grid power", Amount: 3, Unit: ""},
		{Category: "waste", Activity: "  landfill  ", Amount: 2, Unit: "kg"},
	}

	inputs, rejected := FilterWellFormed(raw)

	require.Len(t, inputs, 2)
	assert.Equal(t, CategoryTransport, inputs[0].Category)
	assert.Equal(t, "drove a petrol car", inputs[0].Activity)
	assert.Equal(t, CategoryWaste, inputs[1].Category)
	assert.Equal(t, "landfill", inputs[1].Activity)

	require.Len(t, rejected, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, rejectedIndexes(rejected))

	assert.ErrorIs(t, rejected[0].Reason, ErrMissingField)
	assert.ErrorIs(t, rejected[1].Reason, ErrMissingField)
	assert.ErrorIs(t, rejected[2].Reason, ErrNonPositiveAmount)
	assert.ErrorIs(t, rejected[3].Reason, ErrNonPositiveAmount)
	assert.ErrorIs(t, rejected[4].Reason, ErrMissingField)
}

func TestFilterWellFormedUnknownCategoryPasses(t *testing.T) {
	// Unknown category names are a semantic problem, not a shape problem;
	// they map to OTHER and stay in the batch.
	inputs, rejected := FilterWellFormed([]RawActivity{
		{Category: "SHOPPING", Activity: "new shoes", Amount: 1, Unit: "pair"},
	})

	require.Empty(t, rejected)
	require.Len(t, inputs, 1)
	assert.Equal(t, CategoryOther, inputs[0].Category)
}

func TestFilterWellFormedEmpty(t *testing.T) {
	inputs, rejected := FilterWellFormed(nil)
	assert.Empty(t, inputs)
	assert.Empty(t, rejected)
}

func rejectedIndexes(rejected []Rejection) []int {
	out := make([]int, 0, len(rejected))
	for _, r := range rejected {
		out = append(out, r.Index)
	}
	return out
}
