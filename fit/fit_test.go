package fit_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leeward-labs/fixtura/fit"
)

func TestFitNormalRecoversNormal(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	samples := make([]float64, 200)
	for i := range samples {
		u1, u2 := rng.Float64(), rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
		samples[i] = 50 + 5*z
	}

	h, ok := fit.Fit(samples)
	assert.True(t, ok)
	assert.NotNil(t, h.Dist)
	assert.LessOrEqual(t, h.Min, h.Max)
}

func TestFitFallsBackOnTinySample(t *testing.T) {
	_, ok := fit.Fit([]float64{1, 2, 3})
	assert.False(t, ok)
}

func TestPrecisionCapsAtSix(t *testing.T) {
	p := fit.Precision([]float64{1.123456789})
	assert.Equal(t, 6, p)
}

func TestPrecisionIntegral(t *testing.T) {
	p := fit.Precision([]float64{1, 2, 3})
	assert.Equal(t, -1, p)
}
