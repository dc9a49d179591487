package noise

import (
	"fmt"
	"math"
)

// Odometry is odometry motion noise.
// Its parameters scale rotation and translation noise with the magnitude of the motion.
// For more information see Probabilistic Robotics, Thrun, Burgard, Fox, Chapter 5.4.
type Odometry struct {
	// Alpha1 scales rotation noise with rotation
	Alpha1 float64
	// Alpha2 scales rotation noise with translation
	Alpha2 float64
	// Alpha3 scales translation noise with translation
	Alpha3 float64
	// Alpha4 scales translation noise with rotation
	Alpha4 float64
}

// NewOdometry creates new Odometry noise with the given parameters and returns it.
// It returns error if any of the parameters is negative or NaN.
func NewOdometry(a1, a2, a3, a4 float64) (*Odometry, error) {
	o := &Odometry{Alpha1: a1, Alpha2: a2, Alpha3: a3, Alpha4: a4}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// DefaultOdometry returns low Odometry noise which serves as a starting point for tuning.
func DefaultOdometry() *Odometry {
	return &Odometry{
		Alpha1: 1e-5,
		Alpha2: 1e-5,
		Alpha3: 1e-4,
		Alpha4: 1e-4,
	}
}

// ZeroOdometry returns Odometry noise with all parameters set to zero i.e. no noise.
func ZeroOdometry() *Odometry {
	return &Odometry{}
}

// Validate checks that all noise parameters are non-negative.
func (o *Odometry) Validate() error {
	for i, a := range []float64{o.Alpha1, o.Alpha2, o.Alpha3, o.Alpha4} {
		if math.IsNaN(a) || a < 0 {
			return fmt.Errorf("invalid odometry noise parameter alpha%d: %v", i+1, a)
		}
	}

	return nil
}

// Sigma returns standard deviations of rot1, trans and rot2 motion primitive noise.
func (o *Odometry) Sigma(rot1, trans, rot2 float64) (sRot1, sTrans, sRot2 float64) {
	rot1Sq, transSq, rot2Sq := rot1*rot1, trans*trans, rot2*rot2

	sRot1 = math.Sqrt(o.Alpha1*rot1Sq + o.Alpha2*transSq)
	sTrans = math.Sqrt(o.Alpha3*transSq + o.Alpha4*rot1Sq + o.Alpha4*rot2Sq)
	sRot2 = math.Sqrt(o.Alpha1*rot2Sq + o.Alpha2*transSq)

	return sRot1, sTrans, sRot2
}

// String implements the Stringer interface.
func (o *Odometry) String() string {
	return fmt.Sprintf("Odometry{Alpha1=%v Alpha2=%v Alpha3=%v Alpha4=%v}", o.Alpha1, o.Alpha2, o.Alpha3, o.Alpha4)
}
