// Package carbon converts everyday activity descriptions into
// carbon-dioxide-equivalent (CO2e) quantities in kilograms.
//
// Activities arrive as (category, label, amount, unit) tuples. The engine
// normalizes units, resolves an emission factor through a tiered lookup
// (exact match, substring match, category default) and multiplies. An
// optional remote factor service may be consulted; every failure path
// falls back to the local tables, so a calculation never fails.
package carbon

import (
	"fmt"
	"strings"
	"time"
)

// Category identifies the emission domain an activity belongs to.
type Category int

const (
	// CategoryTransport covers distance-based travel activities (per km).
	CategoryTransport Category = iota

	// CategoryFood covers food consumption by mass (per kg).
	CategoryFood

	// CategoryEnergy covers electricity and heating use (per kWh).
	CategoryEnergy

	// CategoryPackaging covers packaging materials by mass (per kg).
	CategoryPackaging

	// CategoryWaste covers waste disposal by mass (per kg).
	CategoryWaste

	// CategoryOther is the catch-all for activities outside the known domains.
	CategoryOther
)

// Categories lists every known category in a fixed order, useful for
// iterating factor tables and metrics labels.
var Categories = []Category{
	CategoryTransport,
	CategoryFood,
	CategoryEnergy,
	CategoryPackaging,
	CategoryWaste,
	CategoryOther,
}

// String returns the canonical upper-case name used at JSON boundaries.
func (c Category) String() string {
	switch c {
	case CategoryTransport:
		return "TRANSPORT"
	case CategoryFood:
		return "FOOD"
	case CategoryEnergy:
		return "ENERGY"
	case CategoryPackaging:
		return "PACKAGING"
	case CategoryWaste:
		return "WASTE"
	case CategoryOther:
		return "OTHER"
	default:
		return fmt.Sprintf("Category(%d)", c)
	}
}

// MarshalText implements encoding.TextMarshaler so Category works as a
// JSON map key in category breakdowns.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names map to
// CategoryOther rather than failing, matching the permissive boundary rule.
func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}

// ParseCategory maps a boundary string to a Category. Matching is
// case-insensitive and ignores surrounding whitespace. Unrecognized names
// map to CategoryOther so string-typed input can never break dispatch.
func ParseCategory(s string) Category {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRANSPORT", "TRAVEL":
		return CategoryTransport
	case "FOOD", "DIET":
		return CategoryFood
	case "ENERGY", "ELECTRICITY":
		return CategoryEnergy
	case "PACKAGING":
		return CategoryPackaging
	case "WASTE":
		return CategoryWaste
	default:
		return CategoryOther
	}
}

// Source identifies which factor path produced a result.
type Source string

const (
	// SourceLocal marks results computed from the built-in factor tables.
	SourceLocal Source = "local"

	// SourceRemote marks results obtained from the remote factor service.
	SourceRemote Source = "remote"
)

// ActivityInput is one activity to be converted into CO2e. It is transient:
// constructed per request and never persisted directly.
type ActivityInput struct {
	Category Category `json:"category"`
	Activity string   `json:"activity"`
	Amount   float64  `json:"amount"`
	Unit     string   `json:"unit"`
}

// CalculationResult is the outcome of a single CO2e calculation. Ownership
// passes entirely to the caller; the engine keeps no reference after return.
//
// CO2eKg is non-negative in the common case. Negative values are reserved
// for explicit "savings" activities recorded downstream.
type CalculationResult struct {
	CO2eKg     float64   `json:"co2e_kg"`
	Category   Category  `json:"category"`
	Activity   string    `json:"activity"`
	Amount     float64   `json:"amount"`
	Unit       string    `json:"unit"`
	FactorUsed float64   `json:"factor_used"`
	Source     Source    `json:"source"`
	Timestamp  time.Time `json:"timestamp"`
}

// Profile carries optional user attributes that personalize factor
// selection. Empty fields mean "no preference"; category defaults apply.
type Profile struct {
	FuelType     string `json:"fuel_type,omitempty"`
	DietType     string `json:"diet_type,omitempty"`
	EnergySource string `json:"energy_source,omitempty"`
}
