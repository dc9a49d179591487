package odom

import (
	"fmt"
	"math"
	"sync"

	odometry "github.com/milosgajdos/go-odometry"
	"github.com/milosgajdos/go-odometry/motion"
	"github.com/milosgajdos/go-odometry/noise"
	"github.com/milosgajdos/go-odometry/particle"
	"github.com/milosgajdos/go-odometry/pose"
	"github.com/milosgajdos/go-odometry/rnd"
	"gonum.org/v1/gonum/mat"
)

var _ odometry.MotionModel = (*Model)(nil)

// Model is odometry motion model.
// It samples robot poses from the odometry motion model described in
// Probabilistic Robotics, Thrun, Burgard, Fox, Chapter 5.4.
// Model is safe for concurrent use: noise draws of concurrent updates are never interleaved.
type Model struct {
	// mu serializes noise draws
	mu sync.Mutex
	// src is source of random noise
	src odometry.Sampler
	// a stores motion noise parameters
	a noise.Odometry
}

// New creates new odometry motion model with the following parameters and returns it:
// - src: source of random noise samples
// - a:   motion noise parameters; if nil, noise.DefaultOdometry is used
// It returns error if src is nil or if any of the noise parameters is invalid.
func New(src odometry.Sampler, a *noise.Odometry) (*Model, error) {
	if src == nil {
		return nil, fmt.Errorf("invalid noise source: %v", src)
	}

	if a == nil {
		a = noise.DefaultOdometry()
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return &Model{
		src: src,
		a:   *a,
	}, nil
}

// NewSeeded creates new odometry motion model whose noise is drawn from rnd.Source seeded with seed.
// It returns error if any of the noise parameters is invalid.
func NewSeeded(seed uint64, a *noise.Odometry) (*Model, error) {
	return New(rnd.NewSource(seed), a)
}

// Update samples the next pose of a robot at pose x which moved between odometry readings uPrev and uCurr.
// Odometry readings are expressed in odometry frame, x and the returned pose in world frame.
// If the readings are exactly equal x is returned unchanged and no noise is drawn.
func (m *Model) Update(uPrev, uCurr, x pose.Pose) pose.Pose {
	if uPrev.Equal(uCurr) {
		return x
	}

	poses := []pose.Pose{x}
	m.propagate(motion.Decompose(uPrev, uCurr), poses)

	return poses[0]
}

// UpdateBatch samples the next poses of particles stored in rows of x given odometry readings uPrev and uCurr.
// Rows of x store either [x, y, theta] or [w, x, y, theta]; particle weights w are copied unchanged.
// UpdateBatch does not modify x: it returns a new matrix with the same dimensions and particle order.
// If the readings are exactly equal a copy of x is returned and no noise is drawn.
// It returns error if x is not a valid particle set.
func (m *Model) UpdateBatch(uPrev, uCurr pose.Pose, x *mat.Dense) (*mat.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("invalid particles: nil matrix")
	}

	poses, err := particle.Poses(x)
	if err != nil {
		return nil, fmt.Errorf("invalid particles: %v", err)
	}

	xNext := mat.DenseCopyOf(x)
	if uPrev.Equal(uCurr) {
		return xNext, nil
	}

	m.propagate(motion.Decompose(uPrev, uCurr), poses)
	particle.SetPoses(xNext, poses)

	return xNext, nil
}

// Alphas returns a copy of model noise parameters.
func (m *Model) Alphas() noise.Odometry {
	return m.a
}

// propagate moves poses in place by motion d perturbed by independent noise drawn for every pose.
// Noise is drawn for rot1 of all poses first, then for trans and finally for rot2.
func (m *Model) propagate(d motion.Delta, poses []pose.Pose) {
	sRot1, sTrans, sRot2 := m.a.Sigma(d.Rot1, d.Trans, d.Rot2)

	rot1 := make([]float64, len(poses))
	trans := make([]float64, len(poses))
	rot2 := make([]float64, len(poses))

	m.mu.Lock()
	for i := range rot1 {
		rot1[i] = d.Rot1 - m.src.Normal(0.0, sRot1)
	}
	for i := range trans {
		trans[i] = d.Trans - m.src.Normal(0.0, sTrans)
	}
	for i := range rot2 {
		rot2[i] = d.Rot2 - m.src.Normal(0.0, sRot2)
	}
	m.mu.Unlock()

	for i, p := range poses {
		heading := p.Theta + rot1[i]
		poses[i] = pose.Pose{
			X:     p.X + trans[i]*math.Cos(heading),
			Y:     p.Y + trans[i]*math.Sin(heading),
			Theta: pose.Wrap(p.Theta + pose.Wrap(rot1[i]+rot2[i])),
		}
	}
}

// String implements the Stringer interface.
func (m *Model) String() string {
	return fmt.Sprintf("Odom{%v}", &m.a)
}
