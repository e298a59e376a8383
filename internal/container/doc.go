// Package container provides fixed-capacity generic containers. Neither
// container grows past the capacity it was created with.
package container
