// Package pose provides planar robot poses.
package pose

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dim is the number of pose components
const Dim = 3

// Pose is a robot pose in 2D plane: position and heading in radians
type Pose struct {
	// X is position along x axis
	X float64
	// Y is position along y axis
	Y float64
	// Theta is heading in radians
	Theta float64
}

// New creates new Pose and returns it.
func New(x, y, theta float64) Pose {
	return Pose{X: x, Y: y, Theta: theta}
}

// FromVec creates new Pose from vector v which stores [x, y, theta].
// It returns error if v does not have exactly Dim elements.
func FromVec(v mat.Vector) (Pose, error) {
	if v == nil || v.Len() != Dim {
		return Pose{}, fmt.Errorf("invalid pose vector dimension: %v", dimOf(v))
	}

	return Pose{X: v.AtVec(0), Y: v.AtVec(1), Theta: v.AtVec(2)}, nil
}

func dimOf(v mat.Vector) int {
	if v == nil {
		return 0
	}

	return v.Len()
}

// Sub returns element-wise difference p - q.
// Heading difference is not wrapped.
func (p Pose) Sub(q Pose) Pose {
	return Pose{
		X:     p.X - q.X,
		Y:     p.Y - q.Y,
		Theta: p.Theta - q.Theta,
	}
}

// Equal returns true if all components of p and q are exactly equal.
func (p Pose) Equal(q Pose) bool {
	return p.X == q.X && p.Y == q.Y && p.Theta == q.Theta
}

// Vec returns p as a vector [x, y, theta].
func (p Pose) Vec() *mat.VecDense {
	return mat.NewVecDense(Dim, []float64{p.X, p.Y, p.Theta})
}

// String implements the Stringer interface.
func (p Pose) String() string {
	return fmt.Sprintf("Pose{X=%v Y=%v Theta=%v}", p.X, p.Y, p.Theta)
}

// Wrap maps angle theta to the range (-Pi, Pi].
// Both Pi and -Pi map to Pi.
func Wrap(theta float64) float64 {
	return theta + 2*math.Pi*math.Floor((math.Pi-theta)/(2*math.Pi))
}
