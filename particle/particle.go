// Package particle provides helpers for particle sets stored in matrices.
//
// A particle set is stored in a matrix with one particle per row.
// Each row holds either particle pose [x, y, theta] or its weight
// followed by its pose [w, x, y, theta].
package particle

import (
	"fmt"
	"math"

	"github.com/milosgajdos/go-odometry/pose"
	"github.com/milosgajdos/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// New creates a particle set from poses and returns it.
// If w is nil the returned matrix stores poses only, otherwise each row is prepended with particle weight.
// It returns error if poses is empty or if the number of weights does not match the number of poses.
func New(poses []pose.Pose, w []float64) (*mat.Dense, error) {
	if len(poses) == 0 {
		return nil, fmt.Errorf("invalid particle count: %d", len(poses))
	}

	if w != nil && len(w) != len(poses) {
		return nil, fmt.Errorf("invalid weight count: %d, particles: %d", len(w), len(poses))
	}

	cols := pose.Dim
	if w != nil {
		cols++
	}

	m := mat.NewDense(len(poses), cols, nil)
	if w != nil {
		m.SetCol(0, w)
	}
	SetPoses(m, poses)

	return m, nil
}

// Offset returns the column of m at which particle poses start.
// It returns error if m is neither a pose nor a weighted pose particle set.
func Offset(m mat.Matrix) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("invalid particle set: %v", m)
	}

	if d, ok := m.(*mat.Dense); ok && (d == nil || d.IsEmpty()) {
		return 0, fmt.Errorf("invalid particle set: empty matrix")
	}

	switch _, cols := m.Dims(); cols {
	case pose.Dim:
		return 0, nil
	case pose.Dim + 1:
		return 1, nil
	default:
		return 0, fmt.Errorf("invalid particle dimension: %d", cols)
	}
}

// Poses returns particle poses stored in m.
// It returns error if m is not a valid particle set.
func Poses(m mat.Matrix) ([]pose.Pose, error) {
	off, err := Offset(m)
	if err != nil {
		return nil, err
	}

	rows, _ := m.Dims()
	poses := make([]pose.Pose, rows)
	for r := range poses {
		poses[r] = pose.New(m.At(r, off), m.At(r, off+1), m.At(r, off+2))
	}

	return poses, nil
}

// SetPoses stores poses in the pose columns of m; weights are left untouched.
// It panics if m is not a valid particle set or if it has fewer rows than there are poses.
func SetPoses(m *mat.Dense, poses []pose.Pose) {
	off, err := Offset(m)
	if err != nil {
		panic(err)
	}

	for r, p := range poses {
		m.Set(r, off, p.X)
		m.Set(r, off+1, p.Y)
		m.Set(r, off+2, p.Theta)
	}
}

// Weights returns particle weights stored in m.
// It returns false if m does not store weights.
func Weights(m mat.Matrix) ([]float64, bool) {
	off, err := Offset(m)
	if err != nil || off == 0 {
		return nil, false
	}

	rows, _ := m.Dims()
	w := make([]float64, rows)
	for r := range w {
		w[r] = m.At(r, 0)
	}

	return w, true
}

// Mean returns weighted mean pose of particles stored in m.
// Particles are weighted equally if m does not store weights.
// Mean heading is the circular mean of particle headings.
// It returns error if m is not a valid particle set or if its weights sum up to zero.
func Mean(m mat.Matrix) (pose.Pose, error) {
	poses, err := Poses(m)
	if err != nil {
		return pose.Pose{}, err
	}

	w, ok := Weights(m)
	if !ok {
		w = make([]float64, len(poses))
		for i := range w {
			w[i] = 1.0
		}
	}

	sum := floats.Sum(w)
	if sum == 0 {
		return pose.Pose{}, fmt.Errorf("invalid particle weights: sum is zero")
	}

	xs := make([]float64, len(poses))
	ys := make([]float64, len(poses))
	sins := make([]float64, len(poses))
	coss := make([]float64, len(poses))
	for i, p := range poses {
		xs[i], ys[i] = p.X, p.Y
		sins[i], coss[i] = math.Sin(p.Theta), math.Cos(p.Theta)
	}

	return pose.Pose{
		X:     floats.Dot(w, xs) / sum,
		Y:     floats.Dot(w, ys) / sum,
		Theta: pose.Wrap(math.Atan2(floats.Dot(w, sins), floats.Dot(w, coss))),
	}, nil
}

// PositionCov returns 2x2 sample covariance matrix of particle positions stored in m.
// Particle weights are ignored.
// It returns error if m is not a valid particle set or if it stores fewer than two particles.
func PositionCov(m mat.Matrix) (mat.Symmetric, error) {
	poses, err := Poses(m)
	if err != nil {
		return nil, err
	}

	if len(poses) < 2 {
		return nil, fmt.Errorf("invalid particle count: %d", len(poses))
	}

	// positions are stored as column vectors
	xy := mat.NewDense(2, len(poses), nil)
	for c, p := range poses {
		xy.Set(0, c, p.X)
		xy.Set(1, c, p.Y)
	}

	cov, err := matrix.Cov(xy, "cols")
	if err != nil {
		return nil, fmt.Errorf("failed to calculate covariance matrix: %v", err)
	}

	return cov, nil
}
