package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rahulstox/ecopack/internal/carbon"
	"github.com/rahulstox/ecopack/internal/store"
)

// newCalcCmd calculates CO2e for one activity without persisting it.
func newCalcCmd(a *app) *cobra.Command {
	var (
		category string
		amount   float64
		unit     string
		fuelType string
		energy   string
	)

	cmd := &cobra.Command{
		Use:   "calc \"activity description\"",
		Short: "Calculate CO2e for a single activity",
		Example: `  # 15 km in a petrol car
  ecopack calc "drove a petrol car" --category transport --amount 15 --unit km

  # 250 g of oats
  ecopack calc "oats" --category food --amount 250 --unit g`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, rejected := carbon.FilterWellFormed([]carbon.RawActivity{{
				Category: category,
				Activity: args[0],
				Amount:   amount,
				Unit:     unit,
			}})
			if len(rejected) > 0 {
				return fmt.Errorf("invalid activity: %w", rejected[0].Reason)
			}

			profile := profileFromFlags(fuelType, energy)
			result := a.dispatcher.Dispatch(cmd.Context(), inputs[0], profile)
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "OTHER", "activity category (transport|food|energy|packaging|waste)")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "activity amount (must be positive)")
	cmd.Flags().StringVarP(&unit, "unit", "u", "", "activity unit (km, kg, g, kwh, ...)")
	cmd.Flags().StringVar(&fuelType, "fuel-type", "", "personalize transport factors (petrol|diesel|electric)")
	cmd.Flags().StringVar(&energy, "energy-source", "", "personalize energy factors (grid|solar|wind|...)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}

// newLogCmd calculates and persists one or more activities for a user.
func newLogCmd(a *app) *cobra.Command {
	var (
		user     string
		fuelType string
		energy   string
	)

	cmd := &cobra.Command{
		Use:   "log activities.json",
		Short: "Calculate and store a batch of extracted activities",
		Long: `Reads a JSON array of {category, activity, amount, unit} objects, as
produced by the activity extraction service, calculates CO2e for each
well-formed entry and appends the results to the action log. Malformed
entries are reported and skipped; they never fail the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readRawActivities(args[0])
			if err != nil {
				return err
			}

			inputs, rejected := carbon.FilterWellFormed(raw)
			for _, rej := range rejected {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipping activity %d: %v\n", rej.Index, rej.Reason)
			}

			profile := profileFromFlags(fuelType, energy)
			results := a.dispatcher.DispatchAll(cmd.Context(), inputs, profile)

			for i, res := range results {
				rec := store.ActionLogRecord{
					UserID:   user,
					Result:   res,
					RawInput: inputs[i].Activity,
					LoggedAt: res.Timestamp,
				}
				if err := a.store.Append(rec); err != nil {
					return fmt.Errorf("store result: %w", err)
				}
			}
			return printJSON(cmd, results)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "U", "default", "user to log activities for")
	cmd.Flags().StringVar(&fuelType, "fuel-type", "", "personalize transport factors (petrol|diesel|electric)")
	cmd.Flags().StringVar(&energy, "energy-source", "", "personalize energy factors (grid|solar|wind|...)")

	return cmd
}

func profileFromFlags(fuelType, energy string) *carbon.Profile {
	if fuelType == "" && energy == "" {
		return nil
	}
	return &carbon.Profile{FuelType: fuelType, EnergySource: energy}
}

func readRawActivities(path string) ([]carbon.RawActivity, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var raw []carbon.RawActivity
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse activities file: %w", err)
	}
	return raw, nil
}
