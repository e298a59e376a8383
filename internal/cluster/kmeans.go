package cluster

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/quantity/internal/geometry"
	"github.com/banshee-data/quantity/internal/monitoring"
	"github.com/banshee-data/quantity/internal/units"
)

// ErrInvalidK is returned when the number of groups is not in [1, len(points)].
var ErrInvalidK = errors.New("cluster: invalid group count")

// Group is one k-means group: its centre and the points assigned to it.
type Group struct {
	Center  geometry.Point2m
	Members []geometry.Point2m
}

// Options bounds the number of k-means iterations.
type Options struct {
	// MinIterations is the number of iterations run before convergence is
	// checked.
	MinIterations int
	// MaxIterations stops the run even if membership keeps changing.
	MaxIterations int
	// CenterEps, when positive, also ends the run once no centre moved by
	// more than CenterEps along either axis in the last iteration.
	CenterEps units.Distance
}

// DefaultOptions returns the iteration bounds used when none are configured.
func DefaultOptions() Options {
	return Options{MinIterations: 2, MaxIterations: 20}
}

// Result is the outcome of a k-means run.
type Result struct {
	Groups []Group
	// Labels[i] is the index of the group points[i] was assigned to.
	Labels     []int
	Iterations int
	Converged  bool
}

// KMeans partitions points into k groups. The centres are seeded with the
// first k points. Each iteration assigns every point to its nearest centre
// and moves each centre to the mean of its members; a centre whose group
// ends up empty stays where it was. The run stops once membership is
// unchanged, or every centre settled within opts.CenterEps, after at least
// opts.MinIterations iterations, or after opts.MaxIterations.
func KMeans(points []geometry.Point2m, k int, opts Options) (*Result, error) {
	if k <= 0 || k > len(points) {
		return nil, fmt.Errorf("%w: k=%d for %d points", ErrInvalidK, k, len(points))
	}
	if opts.MaxIterations < 1 {
		opts.MaxIterations = 1
	}

	centers := slices.Clone(points[:k])
	labels := make([]int, len(points))
	prev := make([]int, len(points))
	for i := range prev {
		prev[i] = -1
	}

	checkMoves := opts.CenterEps.Greater(units.Zero[units.DistanceDim]())
	prevCenters := make([]geometry.Point2m, k)

	res := &Result{}
	for res.Iterations < opts.MaxIterations {
		res.Iterations++
		copy(prevCenters, centers)
		assign(points, centers, labels)
		updateCenters(points, labels, centers)

		settled := slices.Equal(labels, prev) ||
			(checkMoves && settledWithin(prevCenters, centers, opts.CenterEps))
		if res.Iterations >= opts.MinIterations && settled {
			res.Converged = true
			break
		}
		copy(prev, labels)
	}

	monitoring.Logf("[KMeans] k=%d points=%d iterations=%d converged=%t",
		k, len(points), res.Iterations, res.Converged)

	res.Labels = labels
	res.Groups = make([]Group, k)
	for i, c := range centers {
		res.Groups[i].Center = c
	}
	for i, p := range points {
		g := &res.Groups[labels[i]]
		g.Members = append(g.Members, p)
	}
	return res, nil
}

// nearest returns the index of the centre closest to p. Ties go to the lower
// index.
func nearest(centers []geometry.Point2m, p geometry.Point2m) int {
	best := 0
	bestDist := centers[0].Distance(p)
	for i := 1; i < len(centers); i++ {
		if d := centers[i].Distance(p); d.Less(bestDist) {
			best, bestDist = i, d
		}
	}
	return best
}

func settledWithin(prev, cur []geometry.Point2m, eps units.Distance) bool {
	for i := range cur {
		if !cur[i].Equal(prev[i], eps) {
			return false
		}
	}
	return true
}

func assign(points, centers []geometry.Point2m, labels []int) {
	for i, p := range points {
		labels[i] = nearest(centers, p)
	}
}

func updateCenters(points []geometry.Point2m, labels []int, centers []geometry.Point2m) {
	xs := make([][]float64, len(centers))
	ys := make([][]float64, len(centers))
	for i, p := range points {
		v := p.Vec(units.Meter)
		xs[labels[i]] = append(xs[labels[i]], v.X)
		ys[labels[i]] = append(ys[labels[i]], v.Y)
	}
	for g := range centers {
		if len(xs[g]) == 0 {
			continue
		}
		centers[g] = geometry.NewPoint2(stat.Mean(xs[g], nil), stat.Mean(ys[g], nil), units.Meter)
	}
}
