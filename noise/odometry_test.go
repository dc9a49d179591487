package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOdometry(t *testing.T) {
	assert := assert.New(t)

	for _, test := range []struct {
		a     [4]float64
		valid bool
	}{
		{a: [4]float64{0, 0, 0, 0}, valid: true},
		{a: [4]float64{0.1, 0.2, 0.3, 0.4}, valid: true},
		{a: [4]float64{-0.1, 0, 0, 0}, valid: false},
		{a: [4]float64{0, -1e-9, 0, 0}, valid: false},
		{a: [4]float64{0, 0, -2, 0}, valid: false},
		{a: [4]float64{0, 0, 0, math.NaN()}, valid: false},
	} {
		o, err := NewOdometry(test.a[0], test.a[1], test.a[2], test.a[3])
		if test.valid {
			assert.NotNil(o)
			assert.NoError(err)
			continue
		}
		assert.Nil(o)
		assert.Error(err)
	}
}

func TestDefaultOdometry(t *testing.T) {
	assert := assert.New(t)

	o := DefaultOdometry()
	assert.Equal(1e-5, o.Alpha1)
	assert.Equal(1e-5, o.Alpha2)
	assert.Equal(1e-4, o.Alpha3)
	assert.Equal(1e-4, o.Alpha4)
	assert.NoError(o.Validate())

	// every call returns its own copy
	o.Alpha1 = 1.0
	assert.Equal(1e-5, DefaultOdometry().Alpha1)
}

func TestZeroOdometry(t *testing.T) {
	assert := assert.New(t)

	o := ZeroOdometry()
	assert.NoError(o.Validate())

	sRot1, sTrans, sRot2 := o.Sigma(1.0, 10.0, -2.0)
	assert.Equal(0.0, sRot1)
	assert.Equal(0.0, sTrans)
	assert.Equal(0.0, sRot2)
}

func TestSigma(t *testing.T) {
	assert := assert.New(t)

	o := &Odometry{Alpha1: 0.1, Alpha2: 0.2, Alpha3: 0.3, Alpha4: 0.4}

	rot1, trans, rot2 := 0.5, 2.0, -1.0
	sRot1, sTrans, sRot2 := o.Sigma(rot1, trans, rot2)

	assert.InDelta(math.Sqrt(0.1*0.25+0.2*4.0), sRot1, 1e-12)
	assert.InDelta(math.Sqrt(0.3*4.0+0.4*0.25+0.4*1.0), sTrans, 1e-12)
	assert.InDelta(math.Sqrt(0.1*1.0+0.2*4.0), sRot2, 1e-12)
}

func TestSigmaMonotonic(t *testing.T) {
	assert := assert.New(t)

	o := DefaultOdometry()

	rot1, rot2 := 0.3, -0.2
	prevRot1, prevTrans, prevRot2 := o.Sigma(rot1, 0.0, rot2)
	for _, trans := range []float64{0.5, 1.0, 2.0, 10.0, 100.0} {
		sRot1, sTrans, sRot2 := o.Sigma(rot1, trans, rot2)
		assert.True(sRot1 > prevRot1)
		assert.True(sTrans > prevTrans)
		assert.True(sRot2 > prevRot2)
		prevRot1, prevTrans, prevRot2 = sRot1, sTrans, sRot2
	}

	// rotation magnitude drives noise regardless of its sign
	_, sTransSmall, _ := o.Sigma(0.1, 1.0, 0.0)
	_, sTransLarge, _ := o.Sigma(-1.0, 1.0, 0.0)
	assert.True(sTransLarge > sTransSmall)

	// no motion means no noise
	sRot1, sTrans, sRot2 := o.Sigma(0.0, 0.0, 0.0)
	assert.Equal(0.0, sRot1)
	assert.Equal(0.0, sTrans)
	assert.Equal(0.0, sRot2)
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	o := &Odometry{Alpha1: 1, Alpha2: 2, Alpha3: 0.5, Alpha4: 0.25}
	assert.Equal("Odometry{Alpha1=1 Alpha2=2 Alpha3=0.5 Alpha4=0.25}", o.String())
}
