package carbon

import (
	"fmt"
	"strings"
)

// RawActivity is one tuple from the external activity-extraction service.
// Shapes are not trusted: any field may be missing or empty.
type RawActivity struct {
	Category string  `json:"category"`
	Activity string  `json:"activity"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
}

// Rejection explains why one extraction tuple was filtered out. A rejected
// item never fails the batch; callers surface it per-item.
type Rejection struct {
	Index  int
	Reason error
}

// FilterWellFormed screens extraction tuples before they reach the
// dispatcher. A tuple must carry a category, an activity label, a unit and
// a positive amount. Well-formed tuples convert to ActivityInputs in input
// order; the rest are reported as Rejections.
//
// The engine assumes inputs that pass this filter are well-formed in shape
// only — semantic correctness of the category or unit is not checked, and
// downstream resolution degrades to defaults instead of failing.
func FilterWellFormed(raw []RawActivity) ([]ActivityInput, []Rejection) {
	inputs := make([]ActivityInput, 0, len(raw))
	var rejected []Rejection

	for i, r := range raw {
		if err := validateShape(r); err != nil {
			rejected = append(rejected, Rejection{Index: i, Reason: err})
			continue
		}
		inputs = append(inputs, ActivityInput{
			Category: ParseCategory(r.Category),
			Activity: strings.TrimSpace(r.Activity),
			Amount:   r.Amount,
			Unit:     r.Unit,
		})
	}
	return inputs, rejected
}

func validateShape(r RawActivity) error {
	switch {
	case strings.TrimSpace(r.Category) == "":
		return fmt.Errorf("%w: category", ErrMissingField)
	case strings.TrimSpace(r.Activity) == "":
		return fmt.Errorf("%w: activity", ErrMissingField)
	case strings.TrimSpace(r.Unit) == "":
		return fmt.Errorf("%w: unit", ErrMissingField)
	case r.Amount <= 0:
		return ErrNonPositiveAmount
	default:
		return nil
	}
}
