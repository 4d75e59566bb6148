package akf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNoiseEstimatorErrors(t *testing.T) {
	model := testModel(t)
	for _, R0 := range []float64{0, -10} {
		_, err := NewNoiseEstimator(model, R0)
		require.ErrorIs(t, err, ErrNonPositivePrior)
	}
	assertPanic(t, func() {
		NewNoiseEstimator(nil, 10)
	})
}

// The running statistic must equal the exact arithmetic mean of the squared
// scaled innovations at every step, recomputed here from the full history.
func TestNoiseEstimatorRunningMean(t *testing.T) {
	model := testModel(t)
	n, err := NewNoiseEstimator(model, 100)
	require.NoError(t, err)

	noise := NewAWGN(model.Q, 10, 7)
	sim := Simulate(model, 0, noise, 500)

	var history []float64
	for k := 1; k < len(sim.Measurements); k++ {
		yNew, yPrev := sim.Measurements[k], sim.Measurements[k-1]
		n.Update(yNew, yPrev, k)

		Z := model.Minv * (yNew - model.F*yPrev)
		history = append(history, Z*Z)
		mean := 0.0
		for _, zz := range history {
			mean += zz
		}
		mean /= float64(len(history))
		require.InDelta(t, mean, n.CorrelationMean(), 1e-9, "running mean diverged at k=%d", k)
	}
}

func TestNoiseEstimatorRejection(t *testing.T) {
	model := testModel(t) // CW=4, S=0.3125
	n, err := NewNoiseEstimator(model, 100)
	require.NoError(t, err)

	// Z = 0.5*(2 - 0.5*0) = 1, so L becomes 1 and the candidate
	// (1-4)/0.3125 is negative: rejected.
	got := n.Update(2, 0, 1)
	assert.Equal(t, 100.0, got, "estimate moved on a rejected candidate")
	assert.Equal(t, 100.0, n.R())
	assert.Equal(t, 1.0, n.CorrelationMean(), "running mean must update even on rejection")
	assert.Equal(t, 1, n.Rejections())

	// A large pair drives the candidate positive: accepted.
	got = n.Update(20, 0, 2)
	assert.Greater(t, got, 0.0)
	assert.NotEqual(t, 100.0, got, "estimate did not move on an accepted candidate")
	assert.Equal(t, 1, n.Rejections())
}

func TestNoiseEstimatorStaysPositive(t *testing.T) {
	model := testModel(t)
	n, err := NewNoiseEstimator(model, 0.5)
	require.NoError(t, err)

	// Identical consecutive measurements keep Z small, so the candidate
	// stays negative for a long stretch; the estimate must never go non
	// positive regardless.
	for k := 1; k <= 1000; k++ {
		y := float64(k % 3)
		n.Update(y, y, k)
		require.Greater(t, n.R(), 0.0, "estimate became non positive at k=%d", k)
	}
}

func TestNoiseEstimatorPanicsWithoutPrior(t *testing.T) {
	model := testModel(t)
	n, err := NewNoiseEstimator(model, 10)
	require.NoError(t, err)
	assertPanic(t, func() {
		n.Update(1, 0, 0)
	})
}

func TestNoiseEstimatorReset(t *testing.T) {
	model := testModel(t)
	n, err := NewNoiseEstimator(model, 100)
	require.NoError(t, err)
	n.Update(2, 0, 1)
	n.Update(20, 0, 2)
	n.Reset()
	assert.Equal(t, 100.0, n.R())
	assert.Equal(t, 0.0, n.CorrelationMean())
	assert.Equal(t, 0, n.Rejections())
}
