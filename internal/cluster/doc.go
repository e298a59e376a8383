// Package cluster groups planar points, either into a fixed number of
// groups with Lloyd's k-means or into connected groups of nearby points.
package cluster
