// Package cli wires the EcoPack engine into a cobra command tree. The CLI
// is a thin surface: every command builds the engine from configuration,
// runs one operation and prints JSON.
package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/rahulstox/ecopack/internal/carbon"
	"github.com/rahulstox/ecopack/internal/config"
	"github.com/rahulstox/ecopack/internal/store"
)

// app carries the engine pieces shared by the subcommands, built once in
// the root command's PersistentPreRunE.
type app struct {
	cfg        config.Config
	factors    *carbon.FactorSet
	dispatcher *carbon.Dispatcher
	store      store.Store
}

// NewRootCmd creates the root command for the ecopack CLI.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "ecopack",
		Short:         "ecopack converts everyday activities into kg of CO2e",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	cmd.AddCommand(
		newCalcCmd(a),
		newLogCmd(a),
		newSummaryCmd(a),
		newLeaderboardCmd(a),
		newFactorsCmd(a),
	)
	return cmd
}

// setup builds the factor tables, calculators and store from configuration.
// Factor tables are constructed exactly once per process and never mutated
// afterwards, so every command path reads them without synchronization.
func (a *app) setup() error {
	a.cfg = config.Load()
	config.InitLogger(a.cfg.LogLevel)

	overrides, err := config.LoadFactorOverrides(a.cfg.FactorsFile)
	if err != nil {
		return err
	}
	a.factors = carbon.NewFactorSet(overrides)

	metrics := carbon.NewMetrics(prometheus.NewRegistry())
	local := carbon.NewCalculator(a.factors, metrics)
	remote := carbon.NewRemoteClient(a.cfg.Remote, local, metrics)
	a.dispatcher = carbon.NewDispatcher(local, remote, a.cfg.Region)

	fileStore, err := store.OpenFileStore(a.cfg.DataFile)
	if err != nil {
		return err
	}
	a.store = fileStore
	return nil
}
