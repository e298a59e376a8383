package cluster

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/banshee-data/quantity/internal/geometry"
	"github.com/banshee-data/quantity/internal/monitoring"
	"github.com/banshee-data/quantity/internal/units"
)

func meters(coords ...[2]float64) []geometry.Point2m {
	out := make([]geometry.Point2m, len(coords))
	for i, c := range coords {
		out[i] = geometry.NewPoint2(c[0], c[1], units.Meter)
	}
	return out
}

func vecs(points []geometry.Point2m) []r2.Vec {
	out := make([]r2.Vec, len(points))
	for i, p := range points {
		out[i] = p.Vec(units.Meter)
	}
	return out
}

func TestKMeansThreeGroups(t *testing.T) {
	// Interleaved so the first three points seed one centre per group.
	points := meters(
		[2]float64{0, 0}, [2]float64{10, 10}, [2]float64{0, 10},
		[2]float64{0.2, 0}, [2]float64{10.2, 10}, [2]float64{0.2, 10},
		[2]float64{0, 0.2}, [2]float64{10, 10.2}, [2]float64{0, 10.2},
	)

	var logs []string
	restore := monitoring.Capture(func(format string, v ...interface{}) {
		logs = append(logs, fmt.Sprintf(format, v...))
	})
	defer restore()

	res, err := KMeans(points, 3, DefaultOptions())
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0, 1, 2}, res.Labels)

	third := 0.2 / 3
	wantCenters := []r2.Vec{
		{X: third, Y: third},
		{X: 10 + third, Y: 10 + third},
		{X: third, Y: 10 + third},
	}
	gotCenters := make([]r2.Vec, len(res.Groups))
	for i, g := range res.Groups {
		gotCenters[i] = g.Center.Vec(units.Meter)
	}
	if diff := cmp.Diff(wantCenters, gotCenters, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("centres mismatch (-want +got):\n%s", diff)
	}

	wantMembers := vecs(meters([2]float64{0, 0}, [2]float64{0.2, 0}, [2]float64{0, 0.2}))
	if diff := cmp.Diff(wantMembers, vecs(res.Groups[0].Members), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("group 0 members mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, logs, 1)
	assert.True(t, strings.Contains(logs[0], "converged=true"), logs[0])
}

func TestKMeansInvalidK(t *testing.T) {
	points := meters([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 2})

	for _, k := range []int{0, -1, 4} {
		_, err := KMeans(points, k, DefaultOptions())
		require.Error(t, err, "k=%d", k)
		assert.True(t, errors.Is(err, ErrInvalidK))
	}

	_, err := KMeans(nil, 1, DefaultOptions())
	assert.True(t, errors.Is(err, ErrInvalidK))
}

func TestKMeansIterationBounds(t *testing.T) {
	defer monitoring.Capture(nil)()

	// The seeds both sit in the left cluster, so the first assignment is
	// not final and one iteration cannot converge.
	points := meters(
		[2]float64{0, 0}, [2]float64{1, 0},
		[2]float64{10, 0}, [2]float64{11, 0},
	)

	res, err := KMeans(points, 2, Options{MinIterations: 0, MaxIterations: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	assert.False(t, res.Converged)

	res, err = KMeans(points, 2, Options{MinIterations: 5, MaxIterations: 20})
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 5, res.Iterations, "convergence is not checked before MinIterations")
	assert.Equal(t, []int{0, 0, 1, 1}, res.Labels)
	assert.InDelta(t, 10.5, res.Groups[1].Center.X.In(units.Meter), 1e-12)
}

func TestKMeansCenterEps(t *testing.T) {
	defer monitoring.Capture(nil)()

	// Centre moves per iteration: 6.33 m, then 3.17 m, then 0.
	points := meters(
		[2]float64{0, 0}, [2]float64{1, 0},
		[2]float64{10, 0}, [2]float64{11, 0},
	)

	tests := []struct {
		name           string
		eps            units.Distance
		wantIterations int
	}{
		{"labels only", units.Zero[units.DistanceDim](), 3},
		{"tight tolerance", units.Centimeter.New(1), 3},
		{"loose tolerance", units.Meter.New(5), 2},
		{"tolerance below first move", units.Meter.New(6), 2},
		{"tolerance above first move", units.Meter.New(7), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := KMeans(points, 2, Options{MaxIterations: 20, CenterEps: tt.eps})
			require.NoError(t, err)
			assert.True(t, res.Converged)
			assert.Equal(t, tt.wantIterations, res.Iterations)
		})
	}
}

func TestKMeansEmptyGroupKeepsCenter(t *testing.T) {
	defer monitoring.Capture(nil)()

	// Ties go to the first centre, so the second seed never gains a member.
	points := meters([2]float64{2, 3}, [2]float64{2, 3}, [2]float64{2, 3})

	res, err := KMeans(points, 2, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Len(t, res.Groups[0].Members, 3)
	assert.Empty(t, res.Groups[1].Members)
	assert.True(t, res.Groups[1].Center.Equal(geometry.NewPoint2(2, 3, units.Meter), units.DefaultEps[units.DistanceDim]()))
	assert.False(t, res.Groups[1].Center.X.IsNaN())
}
