package carbon

import "strings"

// Mass conversion to the kilogram canonical unit.
const gramsPerKg = 1000.0

// Normalize converts a raw (amount, unit) pair into the canonical form the
// factor tables are defined against. Grams become kilograms; every other
// unit passes through unchanged apart from lower-casing and trimming.
//
// Unit matching is case-insensitive. Unknown units are never rejected: they
// pass through verbatim and factor resolution treats them as their own
// canonical form. Malformed input degrades to a default factor downstream
// rather than failing the request. Normalize is idempotent.
func Normalize(amount float64, unit string) (float64, string) {
	canonical := strings.ToLower(strings.TrimSpace(unit))
	switch canonical {
	case "g", "gram", "grams":
		return amount / gramsPerKg, "kg"
	case "kilogram", "kilograms":
		return amount, "kg"
	case "kilometre", "kilometres", "kilometer", "kilometers":
		return amount, "km"
	case "kilowatt-hour", "kilowatt-hours", "kilowatt hour", "kilowatt hours":
		return amount, "kwh"
	default:
		return amount, canonical
	}
}
