package akf

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// MonteCarloRuns stores MC runs of the adaptive filter over independently
// seeded simulations of the same scenario.
type MonteCarloRuns struct {
	runs, steps int
	model       *Model
	Runs        []MonteCarloRun
}

// MonteCarloRun stores the results of a single MC run.
type MonteCarloRun struct {
	Truth     Simulation
	Estimates []Estimate
}

// NewMonteCarloRuns simulates the scenario samples times and filters each run
// with a fresh adaptive filter. Each sample uses its own PCG seed derived
// from the provided base seed, so the whole set is reproducible.
// Parameters:
// - samples: number of independent runs
// - steps: number of measurements per run
// - Rtrue: true measurement noise variance of the simulated sensor
// - seed: base seed of the first run
// - m: system model
// - x0, P0, R0: filter priors (the truth also starts at x0)
func NewMonteCarloRuns(samples, steps int, Rtrue float64, seed uint64, m *Model, x0, P0, R0 float64) MonteCarloRuns {
	if samples < 1 || steps < 1 {
		panic("akf: must run at least one sample of at least one step")
	}
	runs := make([]MonteCarloRun, samples)
	for sample := 0; sample < samples; sample++ {
		noise := NewAWGN(m.Q, Rtrue, seed+uint64(sample))
		sim := Simulate(m, x0, noise, steps)
		kf, err := NewAdaptive(m, x0, P0, R0)
		if err != nil {
			panic(err)
		}
		estimates := make([]Estimate, steps)
		for k, y := range sim.Measurements {
			est, err := kf.Update(y)
			if err != nil {
				panic(err)
			}
			estimates[k] = est
		}
		runs[sample] = MonteCarloRun{Truth: sim, Estimates: estimates}
	}
	return MonteCarloRuns{samples, steps, m, runs}
}

// StateMean returns the mean of the state estimates for the given time step.
func (mc MonteCarloRuns) StateMean(step int) float64 {
	return stat.Mean(mc.gather(step, Estimate.State), nil)
}

// StateStdDev returns the standard deviation of the state estimates for the
// given time step.
func (mc MonteCarloRuns) StateStdDev(step int) float64 {
	return stat.StdDev(mc.gather(step, Estimate.State), nil)
}

// NoiseVarMean returns the mean of the noise variance estimates for the given
// time step.
func (mc MonteCarloRuns) NoiseVarMean(step int) float64 {
	return stat.Mean(mc.gather(step, Estimate.NoiseVariance), nil)
}

// NoiseVarStdDev returns the standard deviation of the noise variance
// estimates for the given time step.
func (mc MonteCarloRuns) NoiseVarStdDev(step int) float64 {
	return stat.StdDev(mc.gather(step, Estimate.NoiseVariance), nil)
}

func (mc MonteCarloRuns) gather(step int, via func(Estimate) float64) []float64 {
	samples := make([]float64, len(mc.Runs))
	for r, run := range mc.Runs {
		samples[r] = via(run.Estimates[step])
	}
	return samples
}

// AsCSV is used as a CSV serializer. Returns one block per exported quantity
// (state estimate, then noise variance estimate), each with one column per
// run plus the across-run mean and standard deviation.
func (mc MonteCarloRuns) AsCSV() []string {
	quantities := []struct {
		header string
		via    func(Estimate) float64
	}{
		{"x", Estimate.State},
		{"R", Estimate.NoiseVariance},
	}
	rtn := make([]string, len(quantities))

	for i, quantity := range quantities {
		lines := make([]string, mc.steps+1) // One line per step, plus header.
		for rNo := 0; rNo < mc.runs; rNo++ {
			lines[0] += fmt.Sprintf("%s-%d,", quantity.header, rNo)
		}
		lines[0] += quantity.header + "-mean," + quantity.header + "-stddev"

		for k := 0; k < mc.steps; k++ {
			samples := mc.gather(k, quantity.via)
			for _, sample := range samples {
				lines[k+1] += fmt.Sprintf("%f,", sample)
			}
			lines[k+1] += fmt.Sprintf("%f,%f", stat.Mean(samples, nil), stat.StdDev(samples, nil))
		}
		rtn[i] = strings.Join(lines, "\n")
	}
	return rtn
}
