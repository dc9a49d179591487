// Package sim simulates robot odometry.
package sim

import (
	"math"

	"github.com/milosgajdos/go-odometry/motion"
	"github.com/milosgajdos/go-odometry/pose"
)

// Odometry is noiseless robot odometry.
// It integrates robot motion in odometry frame whose origin is given by the initial reading.
type Odometry struct {
	// reading is the latest odometry reading
	reading pose.Pose
}

// NewOdometry creates new Odometry with initial reading start and returns it.
// start can be arbitrary: it models odometry frame drift relative to world frame.
func NewOdometry(start pose.Pose) *Odometry {
	return &Odometry{
		reading: pose.New(start.X, start.Y, pose.Wrap(start.Theta)),
	}
}

// Reading returns the latest odometry reading.
func (o *Odometry) Reading() pose.Pose {
	return o.reading
}

// Move moves the robot by motion d and returns the new odometry reading.
func (o *Odometry) Move(d motion.Delta) pose.Pose {
	heading := o.reading.Theta + d.Rot1

	o.reading = pose.Pose{
		X:     o.reading.X + d.Trans*math.Cos(heading),
		Y:     o.reading.Y + d.Trans*math.Sin(heading),
		Theta: pose.Wrap(o.reading.Theta + d.Rot1 + d.Rot2),
	}

	return o.reading
}

// Readings moves the robot by all motions in path and returns all odometry readings
// including the reading the robot started from.
func (o *Odometry) Readings(path []motion.Delta) []pose.Pose {
	readings := make([]pose.Pose, 0, len(path)+1)
	readings = append(readings, o.reading)

	for _, d := range path {
		readings = append(readings, o.Move(d))
	}

	return readings
}

// Polygon returns a path which drives a closed regular polygon with n sides of length side.
// Each side is driven in steps straight line segments; the robot turns left at every corner.
// It returns nil if n is smaller than 3 or if steps is non-positive.
func Polygon(n, steps int, side float64) []motion.Delta {
	if n < 3 || steps <= 0 {
		return nil
	}

	turn := 2 * math.Pi / float64(n)
	step := side / float64(steps)

	path := make([]motion.Delta, 0, n*steps)
	for i := 0; i < n; i++ {
		for j := 0; j < steps; j++ {
			d := motion.Delta{Trans: step}
			if j == steps-1 {
				d.Rot2 = turn
			}
			path = append(path, d)
		}
	}

	return path
}
