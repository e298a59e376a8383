// Package geometry provides planar points, sizes and lines on top of the
// units package, along with the pose, twist and odometry records a vehicle
// reports about itself.
package geometry
