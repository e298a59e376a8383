package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/quantity/internal/cluster"
	"github.com/banshee-data/quantity/internal/config"
	"github.com/banshee-data/quantity/internal/geometry"
	"github.com/banshee-data/quantity/internal/timeutil"
	"github.com/banshee-data/quantity/internal/units"
	"github.com/banshee-data/quantity/internal/version"
)

// Clustering modes.
const (
	ModeKMeans    = "kmeans"
	ModeProximity = "proximity"
)

// plotGroup is a group of points ready for rendering, whichever algorithm
// produced it.
type plotGroup struct {
	Name    string
	Center  geometry.Point2m
	Members []geometry.Point2m
}

// Summary is written to summary.json in the run directory.
type Summary struct {
	RunID       string         `json:"run_id"`
	RunDir      string         `json:"-"`
	ToolVersion string         `json:"tool_version"`
	Mode        string         `json:"mode"`
	CreatedAt   time.Time      `json:"created_at"`
	ElapsedMs   int64          `json:"elapsed_ms"`
	InputScale  string         `json:"input_scale"`
	Points      int            `json:"points"`
	Iterations  int            `json:"iterations,omitempty"`
	Converged   bool           `json:"converged,omitempty"`
	JoinDistCm  float64        `json:"join_distance_cm,omitempty"`
	Groups      []GroupSummary `json:"groups"`
	Files       []string       `json:"files"`
}

// GroupSummary describes one group in the input unit.
type GroupSummary struct {
	Name    string  `json:"name"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Members int     `json:"members"`
}

// run clusters the points read from in and writes the artefacts into a new
// run directory under opts.OutputDir.
func run(in io.Reader, cfg *config.ClusterConfig, opts Options, clock timeutil.Clock) (*Summary, error) {
	start := clock.Now()
	u := cfg.GetInputUnit()
	points, err := readPoints(in, u)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, errors.New("no points in input")
	}

	summary := &Summary{
		RunID:       uuid.New().String(),
		ToolVersion: version.Version,
		Mode:        opts.Mode,
		CreatedAt:   start.UTC(),
		InputScale:  cfg.GetInputScale(),
		Points:      len(points),
	}

	var groups []plotGroup
	switch opts.Mode {
	case ModeKMeans:
		res, err := cluster.KMeans(points, cfg.GetK(), cluster.Options{
			MinIterations: cfg.GetMinIterations(),
			MaxIterations: cfg.GetMaxIterations(),
			CenterEps:     cfg.GetEqEps(),
		})
		if err != nil {
			return nil, err
		}
		summary.Iterations = res.Iterations
		summary.Converged = res.Converged
		for i, g := range res.Groups {
			groups = append(groups, plotGroup{Name: fmt.Sprintf("group %d", i), Center: g.Center, Members: g.Members})
		}
	case ModeProximity:
		join := cfg.GetJoinDistance()
		summary.JoinDistCm = join.In(units.Centimeter)
		for i, g := range cluster.ProximityGroups(points, join) {
			groups = append(groups, plotGroup{Name: fmt.Sprintf("group %d", i), Center: g.Center, Members: g.Members})
		}
	default:
		return nil, fmt.Errorf("unknown mode %q (want %s or %s)", opts.Mode, ModeKMeans, ModeProximity)
	}

	for _, g := range groups {
		c := g.Center.Vec(u)
		summary.Groups = append(summary.Groups, GroupSummary{
			Name:    g.Name,
			CenterX: c.X,
			CenterY: c.Y,
			Members: len(g.Members),
		})
	}

	summary.RunDir = filepath.Join(opts.OutputDir, summary.RunID)
	if err := os.MkdirAll(summary.RunDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	title := fmt.Sprintf("%s: %d points, %d groups", opts.Mode, len(points), len(groups))
	if !opts.NoPNG {
		if err := renderPNG(filepath.Join(summary.RunDir, "clusters.png"), title, groups, u); err != nil {
			return nil, err
		}
		summary.Files = append(summary.Files, "clusters.png")
	}
	if !opts.NoHTML {
		if err := writeHTML(filepath.Join(summary.RunDir, "clusters.html"), title, groups, u); err != nil {
			return nil, err
		}
		summary.Files = append(summary.Files, "clusters.html")
	}

	summary.ElapsedMs = clock.Since(start).Milliseconds()
	if err := writeSummary(filepath.Join(summary.RunDir, "summary.json"), summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func writeSummary(path string, s *Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
