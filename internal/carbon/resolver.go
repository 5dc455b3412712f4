package carbon

import "strings"

// MatchKind records how a factor was found, for observability.
type MatchKind int

const (
	// MatchExact means the trimmed, lower-cased label was a table key.
	MatchExact MatchKind = iota

	// MatchSubstring means a table key was contained in the label.
	MatchSubstring

	// MatchDefault means no entry matched and the category default applied.
	MatchDefault
)

// String returns a short label for metrics and logs.
func (m MatchKind) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchSubstring:
		return "substring"
	case MatchDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Resolve returns the emission factor for an activity label within a
// category. Resolution is tiered, first match wins:
//
//  1. exact match on the trimmed, lower-cased label
//  2. first table entry (in definition order) whose key is a substring of
//     the label, so "drove a petrol car" matches the "petrol car" entry
//  3. the category default
//
// Exact match always beats substring match, and earlier entries beat later
// ones on substring ties. Resolve is total: the default guarantees a
// numeric factor for any input.
func (fs *FactorSet) Resolve(cat Category, activityLabel string) (float64, MatchKind) {
	tbl, ok := fs.tables[cat]
	if !ok {
		tbl = fs.tables[CategoryOther]
	}

	label := strings.ToLower(strings.TrimSpace(activityLabel))

	for _, e := range tbl.entries {
		if e.key == label {
			return e.factor, MatchExact
		}
	}
	for _, e := range tbl.entries {
		if strings.Contains(label, e.key) {
			return e.factor, MatchSubstring
		}
	}
	return tbl.defaultFactor, MatchDefault
}
