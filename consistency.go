package akf

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// NewConsistencyTest computes the NEES and NIS sample means per time step
// across the provided Monte Carlo runs. Both statistics are chi square
// distributed with one degree of freedom for a consistent scalar filter, so
// their across-run means should hover around 1.
// Returns NEESmeans, NISmeans and an error if applicable.
func NewConsistencyTest(runs MonteCarloRuns, withNEES, withNIS bool) ([]float64, []float64, error) {
	if !withNEES && !withNIS {
		return nil, nil, errors.New("consistency test requires either NEES or NIS or both")
	}

	numRuns := runs.runs
	numSteps := runs.steps
	H := runs.model.H
	NEESsamples := make(map[int][]float64)
	NISsamples := make(map[int][]float64)

	for rNo, run := range runs.Runs {
		for k, est := range run.Estimates {
			if withNEES {
				if NEESsamples[k] == nil {
					NEESsamples[k] = make([]float64, numRuns)
				}
				// Normalized estimation error squared: (x̂-x)² / P.
				stateErr := est.State() - run.Truth.States[k]
				if P := est.Covariance(); P > 0 {
					NEESsamples[k][rNo] = stateErr * stateErr / P
				}
			}

			if withNIS {
				if NISsamples[k] == nil {
					NISsamples[k] = make([]float64, numRuns)
				}
				// Normalized innovation squared: the innovation variance under
				// pure prediction is H²*P⁻ + R̂.
				Pyy := H*H*est.PredCovariance() + est.NoiseVariance()
				innov := est.Innovation()
				NISsamples[k][rNo] = innov * innov / Pyy
			}
		}
	}

	// Let's compute the means for each step.
	NEESmeans := make([]float64, numSteps)
	NISmeans := make([]float64, numSteps)
	for k := 0; k < numSteps; k++ {
		if withNEES {
			NEESmeans[k] = stat.Mean(NEESsamples[k], nil)
		}
		if withNIS {
			NISmeans[k] = stat.Mean(NISsamples[k], nil)
		}
	}

	return NEESmeans, NISmeans, nil
}
