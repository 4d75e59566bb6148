package akf

import "fmt"

// Simulation holds one simulated trajectory of the scalar system: the true
// states and the measurements a filter will consume.
type Simulation struct {
	States       []float64
	Measurements []float64
}

// Simulate advances the true system x_{k+1} = F*x_k + w_k for the provided
// number of steps from x0, observing y_k = H*x_k + v_k at each step. The
// state advances after each observation, matching the per step order of the
// adaptive filter.
func Simulate(m *Model, x0 float64, noise Noise, steps int) Simulation {
	states := make([]float64, steps)
	measurements := make([]float64, steps)
	x := x0
	for k := 0; k < steps; k++ {
		states[k] = x
		measurements[k] = m.H*x + noise.Measurement(k)
		x = m.F*x + noise.Process(k)
	}
	return Simulation{states, measurements}
}

// GroundTruth computes the error of estimates against the known truth of a
// simulated run.
type GroundTruth struct {
	states   []float64
	noiseVar float64
}

// NewGroundTruth initializes a new ground truth from the true states and the
// true measurement noise variance of a run.
func NewGroundTruth(states []float64, noiseVar float64) *GroundTruth {
	return &GroundTruth{states, noiseVar}
}

// Error returns the state estimation error and the noise variance estimation
// error of the provided estimate at step k.
func (t *GroundTruth) Error(k int, est Estimate) (stateErr, noiseErr float64) {
	if k >= len(t.states) {
		panic(fmt.Errorf("no ground truth state at step k=%d", k))
	}
	return est.State() - t.states[k], est.NoiseVariance() - t.noiseVar
}
