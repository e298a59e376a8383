package cluster

import (
	"github.com/banshee-data/quantity/internal/geometry"
	"github.com/banshee-data/quantity/internal/monitoring"
	"github.com/banshee-data/quantity/internal/units"
)

// DefaultJoinDistance is the proximity grouping join distance used when none
// is configured.
var DefaultJoinDistance = units.Centimeter.New(10)

// ProximityGroup is a set of points connected by hops shorter than the join
// distance.
type ProximityGroup struct {
	Center  geometry.Point2m
	Members []geometry.Point2m
}

// ProximityGroups splits points into single-link groups: a point belongs to
// a group if it lies closer than joinDist to any member. Grouping starts
// from the last point and each group is grown until no remaining point can
// join it. Within a group, members appear in the order they joined.
func ProximityGroups(points []geometry.Point2m, joinDist units.Distance) []ProximityGroup {
	remaining := make([]geometry.Point2m, len(points))
	copy(remaining, points)

	var groups []ProximityGroup
	for len(remaining) > 0 {
		last := len(remaining) - 1
		members := []geometry.Point2m{remaining[last]}
		remaining = remaining[:last]

		// Members added during the scan are themselves scanned in turn.
		for next := 0; next < len(members); next++ {
			m := members[next]
			kept := remaining[:0]
			for _, p := range remaining {
				if p.Distance(m).Less(joinDist) {
					members = append(members, p)
					continue
				}
				kept = append(kept, p)
			}
			remaining = kept
		}

		groups = append(groups, ProximityGroup{
			Center:  geometry.Centroid(members),
			Members: members,
		})
	}

	monitoring.Logf("[ProximityGroups] points=%d groups=%d join=%s",
		len(points), len(groups), units.Format(joinDist, units.Centimeter))
	return groups
}
