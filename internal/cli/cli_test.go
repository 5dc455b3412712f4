package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulstox/ecopack/internal/aggregate"
	"github.com/rahulstox/ecopack/internal/carbon"
	"github.com/rahulstox/ecopack/internal/config"
)

// execute runs the CLI against an isolated action log and returns stdout.
func execute(t *testing.T, dataFile string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvDataFile, dataFile)

	root := NewRootCmd("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func tempDataFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "actions.jsonl")
}

func TestCalcCommand(t *testing.T) {
	out, err := execute(t, tempDataFile(t),
		"calc", "I drove a petrol car", "--category", "transport", "--amount", "15", "--unit", "KM")
	require.NoError(t, err)

	var result carbon.CalculationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.InDelta(t, 2.565, result.CO2eKg, 1e-9)
	assert.Equal(t, carbon.CategoryTransport, result.Category)
	assert.Equal(t, "km", result.Unit)
	assert.Equal(t, carbon.SourceLocal, result.Source)
}

func TestCalcCommandRejectsBadInput(t *testing.T) {
	_, err := execute(t, tempDataFile(t),
		"calc", "beef", "--category", "food", "--amount", "-1", "--unit", "kg")
	require.Error(t, err)
	assert.ErrorIs(t, err, carbon.ErrNonPositiveAmount)
}

func TestLogSummaryLeaderboardFlow(t *testing.T) {
	dataFile := tempDataFile(t)

	activities := []carbon.RawActivity{
		{Category: "TRANSPORT", Activity: "drove a petrol car", Amount: 15, Unit: "km"},
		{Category: "FOOD", Activity: "Oats", Amount: 250, Unit: "G"},
		{Category: "FOOD", Activity: "", Amount: 1, Unit: "kg"}, // skipped, not fatal
	}
	payload, err := json.Marshal(activities)
	require.NoError(t, err)

	activitiesFile := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, os.WriteFile(activitiesFile, payload, 0o600))

	out, err := execute(t, dataFile, "log", activitiesFile, "--user", "alice")
	require.NoError(t, err)

	var results []carbon.CalculationResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.InDelta(t, 2.565, results[0].CO2eKg, 1e-9)
	assert.InDelta(t, 0.5, results[1].CO2eKg, 1e-9)

	out, err = execute(t, dataFile, "summary", "--user", "alice")
	require.NoError(t, err)

	var snap aggregate.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, 2, snap.TotalActions)
	assert.InDelta(t, 3.065, snap.TotalCO2eKg, 1e-9)

	out, err = execute(t, dataFile, "leaderboard")
	require.NoError(t, err)

	var ranked []aggregate.LeaderboardEntry
	require.NoError(t, json.Unmarshal([]byte(out), &ranked))
	require.Len(t, ranked, 1)
	assert.Equal(t, "alice", ranked[0].UserID)
	assert.InDelta(t, 3.07, ranked[0].TotalSavedKg, 1e-9)
}

func TestFactorsCommand(t *testing.T) {
	out, err := execute(t, tempDataFile(t), "factors")
	require.NoError(t, err)

	var tables map[string]struct {
		Unit    string  `json:"unit"`
		Default float64 `json:"default"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &tables))

	require.Contains(t, tables, "TRANSPORT")
	assert.Equal(t, "km", tables["TRANSPORT"].Unit)
	assert.InDelta(t, 0.15, tables["TRANSPORT"].Default, 1e-9)
	require.Contains(t, tables, "FOOD")
	assert.InDelta(t, 2.0, tables["FOOD"].Default, 1e-9)
}
