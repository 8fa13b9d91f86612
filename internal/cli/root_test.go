package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbontrack/carbontrack/internal/emissions"
	"github.com/carbontrack/carbontrack/internal/recommend"
)

// execute runs the root command with a throwaway config path so the
// developer's real config file never leaks into tests.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd("test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml")}, args...))
	err := root.Execute()
	return buf.String(), err
}

func TestComputeCmd(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		out, err := execute(t, "compute",
			"--category", "transportation",
			"--activity", "car_gasoline_medium",
			"--amount", "100", "--unit", "km",
			"--output", "json")
		require.NoError(t, err)

		var result emissions.Result
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.InDelta(t, 19.2, result.CO2Equivalent, 0.01)
		assert.Equal(t, emissions.RegionUSAverage, result.Region)
	})

	t.Run("table output", func(t *testing.T) {
		out, err := execute(t, "compute",
			"--category", "waste",
			"--activity", "recycling_aluminum",
			"--amount", "1", "--unit", "kg",
			"--output", "table")
		require.NoError(t, err)
		assert.Contains(t, out, "-8.94")
		assert.Contains(t, out, "saves")
	})

	t.Run("region flag", func(t *testing.T) {
		out, err := execute(t, "compute",
			"--category", "energy",
			"--activity", "electricity",
			"--amount", "100", "--unit", "kWh",
			"--region", "eu_average",
			"--output", "json")
		require.NoError(t, err)

		var result emissions.Result
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.InDelta(t, 27.6, result.CO2Equivalent, 0.01)
	})

	t.Run("unknown region", func(t *testing.T) {
		_, err := execute(t, "compute",
			"--category", "food", "--activity", "beef",
			"--amount", "1", "--unit", "kg",
			"--region", "atlantis")
		assert.ErrorIs(t, err, emissions.ErrUnknownRegion)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := execute(t, "compute",
			"--category", "food", "--activity", "beef",
			"--amount", "-1", "--unit", "kg",
			"--output", "json")
		assert.ErrorIs(t, err, emissions.ErrNegativeAmount)
	})

	t.Run("missing required flags", func(t *testing.T) {
		_, err := execute(t, "compute")
		assert.Error(t, err)
	})
}

func TestActivitiesCmd(t *testing.T) {
	out, err := execute(t, "activities", "--output", "json")
	require.NoError(t, err)

	var listing map[emissions.Category]emissions.CategoryActivities
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	require.Len(t, listing, 4)
	assert.NotEmpty(t, listing[emissions.CategoryTransportation].Activities)

	table, err := execute(t, "activities", "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, table, "car_gasoline_medium")
	assert.Contains(t, table, "recycling_aluminum")
}

func TestInsightsCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"category": "food", "activity": "beef", "amount": 0.5, "unit": "kg",
   "date": "2026-08-01", "co2_equivalent": 30}
]`), 0600))

	out, err := execute(t, "insights", "--records", path, "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Total emissions: 30.00 kg CO2e")
	assert.Contains(t, out, "Dominant category: food (100.0%)")

	_, err = execute(t, "insights", "--records", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestRecommendCmd(t *testing.T) {
	t.Run("general set without records", func(t *testing.T) {
		out, err := execute(t, "recommend", "--output", "json")
		require.NoError(t, err)

		var recs []recommend.ScoredRecommendation
		require.NoError(t, json.Unmarshal([]byte(out), &recs))
		require.Len(t, recs, 5)
		assert.Equal(t, "use_public_transport", recs[0].ID)
	})

	t.Run("scored against records", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "records.json")
		require.NoError(t, os.WriteFile(path, []byte(`[
  {"category": "transportation", "activity": "car_gasoline_medium",
   "amount": 260, "unit": "km", "date": "2026-08-01", "co2_equivalent": 50}
]`), 0600))

		out, err := execute(t, "recommend", "--records", path, "--limit", "2", "--output", "json")
		require.NoError(t, err)

		var recs []recommend.ScoredRecommendation
		require.NoError(t, json.Unmarshal([]byte(out), &recs))
		require.Len(t, recs, 2)
		assert.Equal(t, "remote_work", recs[0].ID)
		assert.Greater(t, recs[0].Score, recs[1].Score)
	})

	t.Run("unknown group filter", func(t *testing.T) {
		out, err := execute(t, "recommend", "--category", "gardening", "--output", "table")
		require.NoError(t, err)
		assert.Contains(t, out, "No recommendations")
	})
}

func TestRootVersion(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
}
