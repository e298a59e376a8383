package geometry

import (
	"fmt"

	"github.com/banshee-data/quantity/internal/units"
)

// Pose is a position in the plane together with a heading.
type Pose struct {
	Position Point2m
	Heading  units.Angle
}

// Twist holds the linear velocity, expressed in the vehicle frame, and the
// angular velocity of a moving body.
type Twist struct {
	Speed           Point2[units.SpeedDim]
	AngularVelocity units.AngularVelocity
}

// Odometry combines a pose with the twist measured at that pose.
type Odometry struct {
	Pose  Pose
	Twist Twist
}

func (p Pose) String() string {
	return fmt.Sprintf("%v @ %s", p.Position, units.Format(p.Heading, units.Degree))
}

// Displacement returns how far the twist moves a body during dt, in the
// vehicle frame.
func (t Twist) Displacement(dt units.Time) Point2m {
	return Point2m{
		X: units.Mul[units.DistanceDim](t.Speed.X, dt),
		Y: units.Mul[units.DistanceDim](t.Speed.Y, dt),
	}
}

// Rotation returns the heading change the twist produces during dt.
func (t Twist) Rotation(dt units.Time) units.Angle {
	return units.Mul[units.AngleDim](t.AngularVelocity, dt)
}

// Advance integrates the twist over dt with a single forward Euler step:
// the body moves along its current heading, then turns. The resulting
// heading is normalized into [0, 2π).
func (o Odometry) Advance(dt units.Time) Odometry {
	step := o.Twist.Displacement(dt).Rotate(o.Pose.Heading)
	return Odometry{
		Pose: Pose{
			Position: o.Pose.Position.Add(step),
			Heading:  units.Normalize360(o.Pose.Heading.Add(o.Twist.Rotation(dt))),
		},
		Twist: o.Twist,
	}
}
