package odometry

import (
	"github.com/milosgajdos/go-odometry/pose"
	"gonum.org/v1/gonum/mat"
)

// Sampler draws random samples
type Sampler interface {
	// Normal draws a sample from Normal distribution with mean mu and standard deviation sigma
	Normal(mu, sigma float64) float64
}

// MotionModel propagates robot pose belief through odometry motion
type MotionModel interface {
	// Update propagates a single pose x given odometry readings uPrev and uCurr
	Update(uPrev, uCurr, x pose.Pose) pose.Pose
	// UpdateBatch propagates particles stored in rows of x given odometry readings uPrev and uCurr
	UpdateBatch(uPrev, uCurr pose.Pose, x *mat.Dense) (*mat.Dense, error)
}
