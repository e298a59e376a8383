package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banshee-data/quantity/internal/units"
)

func TestOdometryAdvance(t *testing.T) {
	start := Odometry{
		Pose: Pose{
			Position: NewPoint2(1, 1, units.Meter),
			Heading:  units.Degree.New(90),
		},
		Twist: Twist{
			Speed:           NewPoint2(50, 0, units.CmPerSec),
			AngularVelocity: units.DegPerSec.New(45),
		},
	}

	next := start.Advance(units.Second.New(2))

	want := NewPoint2(1, 2, units.Meter)
	assert.True(t, next.Pose.Position.Equal(want, units.Millimeter.New(0.001)), "got %v", next.Pose.Position)
	assert.InDelta(t, 180.0, next.Pose.Heading.In(units.Degree), 1e-9)
	assert.Equal(t, start.Twist, next.Twist)
}

func TestOdometryHeadingWraps(t *testing.T) {
	o := Odometry{
		Pose:  Pose{Heading: units.Degree.New(350)},
		Twist: Twist{AngularVelocity: units.DegPerSec.New(20)},
	}
	next := o.Advance(units.Second.New(1))
	assert.InDelta(t, 10.0, next.Pose.Heading.In(units.Degree), 1e-9)
	assert.True(t, next.Pose.Position.Equal(Point2m{}, units.DefaultEps[units.DistanceDim]()))
}

func TestTwist(t *testing.T) {
	tw := Twist{
		Speed:           NewPoint2(36, -18, units.KmPerHour),
		AngularVelocity: units.RadPerSec.New(0.5),
	}
	d := tw.Displacement(units.Millisecond.New(500))
	assert.InDelta(t, 5.0, d.X.In(units.Meter), 1e-9)
	assert.InDelta(t, -2.5, d.Y.In(units.Meter), 1e-9)
	assert.InDelta(t, 0.25, tw.Rotation(units.Millisecond.New(500)).In(units.Radian), 1e-12)
}

func TestPoseString(t *testing.T) {
	p := Pose{Position: NewPoint2(2, 0, units.Meter), Heading: units.Degree.New(45)}
	assert.Equal(t, "(2 m, 0 m) @ 45 °", p.String())
}
