// Package motion decomposes relative robot motion into odometry motion primitives.
package motion

import (
	"fmt"
	"math"

	"github.com/milosgajdos/go-odometry/pose"
)

// Delta is relative motion decomposed into initial rotation, straight line translation and final rotation.
type Delta struct {
	// Rot1 is initial rotation
	Rot1 float64
	// Trans is translation
	Trans float64
	// Rot2 is final rotation
	Rot2 float64
}

// Decompose decomposes motion between odometry readings uPrev and uCurr into Delta.
// When there is no translation Rot1 is -uPrev.Theta and the whole rotation is carried by Rot2.
func Decompose(uPrev, uCurr pose.Pose) Delta {
	d := uCurr.Sub(uPrev)

	rot1 := math.Atan2(d.Y, d.X) - uPrev.Theta
	trans := math.Sqrt(d.X*d.X + d.Y*d.Y)
	rot2 := d.Theta - rot1

	return Delta{
		Rot1:  rot1,
		Trans: trans,
		Rot2:  rot2,
	}
}

// String implements the Stringer interface.
func (d Delta) String() string {
	return fmt.Sprintf("Delta{Rot1=%v Trans=%v Rot2=%v}", d.Rot1, d.Trans, d.Rot2)
}
