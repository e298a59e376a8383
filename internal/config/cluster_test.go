package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/quantity/internal/units"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultClusterConfig(t *testing.T) {
	cfg := DefaultClusterConfig()

	require.NotNil(t, cfg.K)
	assert.Equal(t, 3, *cfg.K)
	require.NotNil(t, cfg.MaxIterations)
	assert.Equal(t, 20, *cfg.MaxIterations)
	require.NotNil(t, cfg.MinIterations)
	assert.Equal(t, 2, *cfg.MinIterations)
	require.NotNil(t, cfg.JoinDistanceCm)
	assert.InDelta(t, 10.0, *cfg.JoinDistanceCm, 1e-9)
	require.NotNil(t, cfg.EqEpsM)
	assert.InDelta(t, 1e-5, *cfg.EqEpsM, 1e-15)
	require.NotNil(t, cfg.InputScale)
	assert.Equal(t, "m", *cfg.InputScale)
	assert.NoError(t, cfg.Validate())
}

func TestEmptyConfigGetters(t *testing.T) {
	cfg := EmptyClusterConfig()

	assert.Equal(t, 3, cfg.GetK())
	assert.Equal(t, 20, cfg.GetMaxIterations())
	assert.Equal(t, 2, cfg.GetMinIterations())
	assert.InDelta(t, 0.1, cfg.GetJoinDistance().In(units.Meter), 1e-12)
	assert.True(t, cfg.GetEqEps().Equal(units.DefaultEps[units.DistanceDim]()))
	assert.Equal(t, "m", cfg.GetInputScale())
	assert.Equal(t, units.Meter, cfg.GetInputUnit())
}

func TestLoadClusterConfig(t *testing.T) {
	path := writeConfig(t, "cluster.json", `{
  "k": 5,
  "max_iterations": 50,
  "join_distance_cm": 2.5,
  "input_scale": "mm"
}`)

	cfg, err := LoadClusterConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.GetK())
	assert.Equal(t, 50, cfg.GetMaxIterations())
	assert.Equal(t, 2, cfg.GetMinIterations(), "omitted field keeps its default")
	assert.InDelta(t, 25.0, cfg.GetJoinDistance().In(units.Millimeter), 1e-9)
	assert.Equal(t, "mm", cfg.GetInputScale())
	assert.Equal(t, units.Millimeter, cfg.GetInputUnit())
}

func TestLoadClusterConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{"wrong extension", "cluster.yaml", `{}`, ".json extension"},
		{"bad json", "cluster.json", `{"k": }`, "failed to parse config JSON"},
		{"zero k", "cluster.json", `{"k": 0}`, "k must be at least 1"},
		{"zero max iterations", "cluster.json", `{"max_iterations": 0}`, "max_iterations must be at least 1"},
		{"negative min iterations", "cluster.json", `{"min_iterations": -1}`, "min_iterations must be non-negative"},
		{"min above max", "cluster.json", `{"min_iterations": 30}`, "exceeds max_iterations"},
		{"non-positive join distance", "cluster.json", `{"join_distance_cm": 0}`, "join_distance_cm must be positive"},
		{"negative eps", "cluster.json", `{"eq_eps_m": -1}`, "eq_eps_m must be non-negative"},
		{"unknown scale", "cluster.json", `{"input_scale": "in"}`, "input_scale must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.body)
			_, err := LoadClusterConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadClusterConfigMissingFile(t *testing.T) {
	_, err := LoadClusterConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stat config file")
}

func TestLoadClusterConfigTooLarge(t *testing.T) {
	body := `{"k": 3, "pad": "` + strings.Repeat("x", maxFileSize) + `"}`
	path := writeConfig(t, "big.json", body)

	_, err := LoadClusterConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file too large")
}

func TestMustLoadDefaultConfig(t *testing.T) {
	cfg := MustLoadDefaultConfig()
	assert.Equal(t, DefaultClusterConfig().GetK(), cfg.GetK())
	assert.Equal(t, DefaultClusterConfig().GetInputScale(), cfg.GetInputScale())
	assert.InDelta(t, 10.0, cfg.GetJoinDistance().In(units.Centimeter), 1e-9)
}
