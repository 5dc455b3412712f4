package carbon

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// maxParallelCalculations bounds concurrent evaluation of a multi-activity
// batch. Calculations are cheap; the limit only matters when the remote
// path is enabled.
const maxParallelCalculations = 8

// Dispatcher routes activities to the category-appropriate calculation
// path. Transport, food, energy and packaging may consult the remote
// factor service; waste and unrecognized categories go straight to the
// local calculator's generic path.
type Dispatcher struct {
	local  *Calculator
	remote *RemoteClient
	region string
}

// NewDispatcher wires a dispatcher. remote may be nil, which forces the
// local path for every category. region is forwarded to remote lookups.
func NewDispatcher(local *Calculator, remote *RemoteClient, region string) *Dispatcher {
	return &Dispatcher{local: local, remote: remote, region: region}
}

// Dispatch calculates one activity. profile may be nil; when present its
// attributes bias factor selection for generic labels (a user's actual
// fuel type refines "car", their energy source refines "electricity").
// Dispatch is total: every path yields a CalculationResult.
func (d *Dispatcher) Dispatch(ctx context.Context, in ActivityInput, profile *Profile) CalculationResult {
	in.Activity = personalize(in.Category, in.Activity, profile)

	switch in.Category {
	case CategoryTransport, CategoryFood, CategoryEnergy, CategoryPackaging:
		if d.remote != nil {
			return d.remote.Calculate(ctx, in, d.region)
		}
		return d.local.Calculate(in)
	case CategoryWaste, CategoryOther:
		return d.local.Calculate(in)
	default:
		return d.local.Calculate(in)
	}
}

// DispatchAll calculates a batch of activities, one result per input in
// input order. Items are evaluated concurrently; each item is independent,
// so an anomaly in one never affects the others.
func (d *Dispatcher) DispatchAll(ctx context.Context, ins []ActivityInput, profile *Profile) []CalculationResult {
	results := make([]CalculationResult, len(ins))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelCalculations)
	for i, in := range ins {
		i, in := i, in
		g.Go(func() error {
			results[i] = d.Dispatch(ctx, in, profile)
			return nil
		})
	}
	// Dispatch never fails, so the group error is always nil.
	_ = g.Wait()

	return results
}

// fuelKeywords are the transport qualifiers that make a label specific
// enough to skip fuel-type personalization.
var fuelKeywords = []string{"petrol", "diesel", "electric", "bus", "train", "flight", "plane", "walk", "cycl", "bike"}

// personalize rewrites a generic activity label using profile attributes.
// Labels that already carry a qualifier are left alone.
func personalize(cat Category, label string, profile *Profile) string {
	if profile == nil {
		return label
	}

	lower := strings.ToLower(label)
	switch cat {
	case CategoryTransport:
		if profile.FuelType == "" || !strings.Contains(lower, "car") {
			return label
		}
		for _, kw := range fuelKeywords {
			if strings.Contains(lower, kw) {
				return label
			}
		}
		return strings.ToLower(strings.TrimSpace(profile.FuelType)) + " car"
	case CategoryEnergy:
		if profile.EnergySource == "" {
			return label
		}
		if strings.Contains(lower, "electricity") || strings.Contains(lower, "power") {
			return profile.EnergySource
		}
		return label
	default:
		return label
	}
}
