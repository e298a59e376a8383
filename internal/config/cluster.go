package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/quantity/internal/units"
)

// DefaultConfigPath is the path to the canonical clustering defaults file.
const DefaultConfigPath = "config/cluster.defaults.json"

const maxFileSize = 1 * 1024 * 1024 // 1MB

// inputScales names the distance units point files may be written in.
var inputScales = map[string]units.Unit[units.DistanceDim]{
	"mm": units.Millimeter,
	"cm": units.Centimeter,
	"m":  units.Meter,
}

// ClusterConfig holds the clustering parameters. Every field is optional;
// the Get* methods supply defaults for fields left out of the JSON.
type ClusterConfig struct {
	// K-means params
	K             *int `json:"k,omitempty"`
	MaxIterations *int `json:"max_iterations,omitempty"`
	MinIterations *int `json:"min_iterations,omitempty"`

	// Proximity grouping params
	JoinDistanceCm *float64 `json:"join_distance_cm,omitempty"`

	// K-means stops once no centre moves further than this, in meters
	EqEpsM *float64 `json:"eq_eps_m,omitempty"`

	// Unit of the coordinates in input files: "mm", "cm" or "m"
	InputScale *string `json:"input_scale,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }
func ptrString(v string) *string    { return &v }

// EmptyClusterConfig returns a ClusterConfig with all fields set to nil.
func EmptyClusterConfig() *ClusterConfig {
	return &ClusterConfig{}
}

// DefaultClusterConfig returns a ClusterConfig with every field set to its
// default value.
func DefaultClusterConfig() *ClusterConfig {
	c := EmptyClusterConfig()
	return &ClusterConfig{
		K:              ptrInt(c.GetK()),
		MaxIterations:  ptrInt(c.GetMaxIterations()),
		MinIterations:  ptrInt(c.GetMinIterations()),
		JoinDistanceCm: ptrFloat64(c.GetJoinDistance().In(units.Centimeter)),
		EqEpsM:         ptrFloat64(c.GetEqEps().In(units.Meter)),
		InputScale:     ptrString(c.GetInputScale()),
	}
}

// LoadClusterConfig loads a ClusterConfig from a JSON file.
// The file must have a .json extension and be under 1MB. Fields omitted
// from the file keep their defaults, so partial configs are safe.
func LoadClusterConfig(path string) (*ClusterConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyClusterConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads DefaultConfigPath, searching the current
// directory and its parents up to the repository root. It panics if the file
// cannot be loaded and is intended for test setup.
func MustLoadDefaultConfig() *ClusterConfig {
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath,       // from internal/config/
		"../../../" + DefaultConfigPath,    // from cmd/tools/<tool>/
		"../../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadClusterConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *ClusterConfig) Validate() error {
	if c.K != nil && *c.K < 1 {
		return fmt.Errorf("k must be at least 1, got %d", *c.K)
	}

	if c.MaxIterations != nil && *c.MaxIterations < 1 {
		return fmt.Errorf("max_iterations must be at least 1, got %d", *c.MaxIterations)
	}

	if c.MinIterations != nil && *c.MinIterations < 0 {
		return fmt.Errorf("min_iterations must be non-negative, got %d", *c.MinIterations)
	}

	if c.GetMinIterations() > c.GetMaxIterations() {
		return fmt.Errorf("min_iterations (%d) exceeds max_iterations (%d)", c.GetMinIterations(), c.GetMaxIterations())
	}

	if c.JoinDistanceCm != nil && !(*c.JoinDistanceCm > 0) {
		return fmt.Errorf("join_distance_cm must be positive, got %f", *c.JoinDistanceCm)
	}

	if c.EqEpsM != nil && !(*c.EqEpsM >= 0) {
		return fmt.Errorf("eq_eps_m must be non-negative, got %f", *c.EqEpsM)
	}

	if c.InputScale != nil {
		if _, ok := inputScales[*c.InputScale]; !ok {
			return fmt.Errorf("input_scale must be one of mm, cm, m, got %q", *c.InputScale)
		}
	}

	return nil
}

// GetK returns the number of k-means groups or the default.
func (c *ClusterConfig) GetK() int {
	if c.K == nil {
		return 3
	}
	return *c.K
}

// GetMaxIterations returns the max_iterations value or the default.
func (c *ClusterConfig) GetMaxIterations() int {
	if c.MaxIterations == nil {
		return 20
	}
	return *c.MaxIterations
}

// GetMinIterations returns the min_iterations value or the default.
func (c *ClusterConfig) GetMinIterations() int {
	if c.MinIterations == nil {
		return 2
	}
	return *c.MinIterations
}

// GetJoinDistance returns the proximity grouping join distance or the
// default of 10 cm.
func (c *ClusterConfig) GetJoinDistance() units.Distance {
	if c.JoinDistanceCm == nil {
		return units.Centimeter.New(10)
	}
	return units.Centimeter.New(*c.JoinDistanceCm)
}

// GetEqEps returns the position tolerance or the default.
func (c *ClusterConfig) GetEqEps() units.Distance {
	if c.EqEpsM == nil {
		return units.DefaultEps[units.DistanceDim]()
	}
	return units.Meter.New(*c.EqEpsM)
}

// GetInputScale returns the input_scale name or the default "m".
func (c *ClusterConfig) GetInputScale() string {
	if c.InputScale == nil {
		return "m"
	}
	return *c.InputScale
}

// GetInputUnit returns the distance unit input coordinates are written in.
// Unknown scale names fall back to meters.
func (c *ClusterConfig) GetInputUnit() units.Unit[units.DistanceDim] {
	if u, ok := inputScales[c.GetInputScale()]; ok {
		return u
	}
	return units.Meter
}
