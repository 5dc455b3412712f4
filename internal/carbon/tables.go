package carbon

import "strings"

// factorEntry is one label-fragment → factor pair. Table order is a
// semantic property: substring resolution returns the first entry whose
// key is contained in the activity label, so more specific fragments must
// be listed before more general ones.
type factorEntry struct {
	key    string
	factor float64
}

// categoryTable holds the ordered factor entries and the default factor
// for one category. The default guarantees resolution always terminates
// with a number.
type categoryTable struct {
	entries       []factorEntry
	defaultFactor float64
	canonicalUnit string
}

// FactorSet is the immutable collection of per-category factor tables.
// It is built once at process start and is safe for unsynchronized
// concurrent reads; nothing mutates it after construction.
type FactorSet struct {
	tables map[Category]categoryTable
}

// FactorOverride replaces or appends one entry in a category table.
type FactorOverride struct {
	Match string  `yaml:"match"`
	KgPer float64 `yaml:"kg_per_unit"`
}

// CategoryOverrides adjusts one category's table at load time.
type CategoryOverrides struct {
	Default *float64         `yaml:"default"`
	Factors []FactorOverride `yaml:"factors"`
}

// Overrides is the parsed shape of an optional factor override file,
// keyed by category name (case-insensitive).
type Overrides struct {
	Categories map[string]CategoryOverrides `yaml:"categories"`
}

// Emission factors in kg CO2e per canonical unit. Transport is per km,
// food / packaging / waste are per kg, energy is per kWh.
var builtinTables = map[Category]categoryTable{
	CategoryTransport: {
		canonicalUnit: "km",
		defaultFactor: 0.15,
		entries: []factorEntry{
			{"petrol car", 0.171},
			{"diesel car", 0.195},
			{"electric car", 0.048},
			{"motorbike", 0.114},
			{"bus", 0.085},
			{"train", 0.038},
			{"flight", 0.255},
			{"plane", 0.255},
			{"car", 0.171},
			{"walking", 0},
			{"walk", 0},
			{"cycling", 0},
			{"bike", 0},
		},
	},
	CategoryFood: {
		canonicalUnit: "kg",
		defaultFactor: 2.0,
		entries: []factorEntry{
			{"beef", 27.0},
			{"lamb", 24.0},
			{"cheese", 13.5},
			{"pork", 7.0},
			{"chicken", 6.0},
			{"fish", 5.0},
			{"eggs", 4.5},
			{"rice", 2.5},
			{"milk", 1.9},
			{"fruit", 0.9},
			{"vegetables", 0.5},
			{"vegetable", 0.5},
		},
	},
	CategoryEnergy: {
		canonicalUnit: "kwh",
		defaultFactor: 0.45,
		entries: []factorEntry{
			{"coal", 0.9},
			{"natural gas", 0.2},
			{"grid", 0.45},
			{"hydro", 0.024},
			{"solar", 0.02},
			{"wind", 0.012},
		},
	},
	CategoryPackaging: {
		canonicalUnit: "kg",
		defaultFactor: 2.5,
		entries: []factorEntry{
			{"aluminium", 11.0},
			{"aluminum", 11.0},
			{"plastic", 6.0},
			{"paper", 1.1},
			{"cardboard", 0.9},
			{"glass", 0.85},
			{"compostable", 0.5},
			{"biodegradable", 0.5},
		},
	},
	CategoryWaste: {
		canonicalUnit: "kg",
		defaultFactor: 0.5,
		entries: []factorEntry{
			{"electronic", 1.8},
			{"e-waste", 1.8},
			{"incineration", 0.9},
			{"landfill", 0.58},
			{"compost", 0.17},
			{"recycling", 0.02},
			{"recycled", 0.02},
		},
	},
	CategoryOther: {
		canonicalUnit: "kg",
		defaultFactor: 1.0,
		entries:       nil,
	},
}

// NewFactorSet builds the immutable factor tables, applying optional
// overrides on top of the built-in data. Overridden entries keep their
// original table position; new entries append after the built-ins so the
// built-in specificity ordering is preserved.
func NewFactorSet(overrides *Overrides) *FactorSet {
	tables := make(map[Category]categoryTable, len(builtinTables))
	for cat, tbl := range builtinTables {
		entries := make([]factorEntry, len(tbl.entries))
		copy(entries, tbl.entries)
		tables[cat] = categoryTable{
			entries:       entries,
			defaultFactor: tbl.defaultFactor,
			canonicalUnit: tbl.canonicalUnit,
		}
	}

	if overrides != nil {
		for name, ov := range overrides.Categories {
			cat := ParseCategory(name)
			tbl := tables[cat]
			if ov.Default != nil {
				tbl.defaultFactor = *ov.Default
			}
			for _, f := range ov.Factors {
				key := strings.ToLower(strings.TrimSpace(f.Match))
				if key == "" {
					continue
				}
				replaced := false
				for i := range tbl.entries {
					if tbl.entries[i].key == key {
						tbl.entries[i].factor = f.KgPer
						replaced = true
						break
					}
				}
				if !replaced {
					tbl.entries = append(tbl.entries, factorEntry{key, f.KgPer})
				}
			}
			tables[cat] = tbl
		}
	}

	return &FactorSet{tables: tables}
}

// CanonicalUnit returns the unit a category's factors are defined against.
func (fs *FactorSet) CanonicalUnit(cat Category) string {
	if tbl, ok := fs.tables[cat]; ok {
		return tbl.canonicalUnit
	}
	return fs.tables[CategoryOther].canonicalUnit
}

// DefaultFactor returns the category's fallback factor.
func (fs *FactorSet) DefaultFactor(cat Category) float64 {
	if tbl, ok := fs.tables[cat]; ok {
		return tbl.defaultFactor
	}
	return fs.tables[CategoryOther].defaultFactor
}

// Entries returns a copy of the ordered (key, factor) pairs for a category,
// for display surfaces. The copy keeps callers from mutating shared state.
func (fs *FactorSet) Entries(cat Category) []FactorOverride {
	tbl, ok := fs.tables[cat]
	if !ok {
		return nil
	}
	out := make([]FactorOverride, 0, len(tbl.entries))
	for _, e := range tbl.entries {
		out = append(out, FactorOverride{Match: e.key, KgPer: e.factor})
	}
	return out
}
