package akf

import (
	"fmt"
	"math"
)

// NewAdaptive returns a new adaptive scalar Kalman filter. At every step the
// filter first refreshes its measurement noise variance estimate from the new
// and previous measurements, then runs the state estimator with the refreshed
// variance. The very first step has no previous measurement, so it runs with
// the prior R0 only.
// Parameters:
// - model: the scalar system model
// - x0: initial state estimate
// - P0: initial estimate error variance (>= 0)
// - R0: initial measurement noise variance guess (> 0)
func NewAdaptive(model *Model, x0, P0, R0 float64) (*Adaptive, error) {
	state, err := NewStateEstimator(model, x0, P0)
	if err != nil {
		return nil, err
	}
	noise, err := NewNoiseEstimator(model, R0)
	if err != nil {
		return nil, err
	}
	return &Adaptive{model: model, state: state, noise: noise}, nil
}

// Adaptive is a scalar Kalman filter which learns the measurement noise
// variance from the measurement stream it filters. Use NewAdaptive to
// initialize.
type Adaptive struct {
	model *Model
	state *StateEstimator
	noise *NoiseEstimator
	yPrev float64
	step  int
}

// Update implements the Filter interface.
func (kf *Adaptive) Update(measurement float64) (Estimate, error) {
	if err := checkFinite("measurement", measurement); err != nil {
		return nil, err
	}
	R := kf.noise.R()
	if kf.step > 0 {
		R = kf.noise.Update(measurement, kf.yPrev, kf.step)
	}
	est := kf.state.Step(measurement, R)
	kf.yPrev = measurement
	kf.step++
	return est, nil
}

// GetModel returns the system model.
func (kf *Adaptive) GetModel() *Model {
	return kf.model
}

// GetNoise returns the noise variance estimator.
func (kf *Adaptive) GetNoise() *NoiseEstimator {
	return kf.noise
}

// GetState returns the state estimator.
func (kf *Adaptive) GetState() *StateEstimator {
	return kf.state
}

// NoiseVariance returns the current measurement noise variance estimate.
func (kf *Adaptive) NoiseVariance() float64 {
	return kf.noise.R()
}

// Reset reverts the filter to its construction state.
func (kf *Adaptive) Reset() {
	kf.state.Reset()
	kf.noise.Reset()
	kf.yPrev = 0
	kf.step = 0
}

// String implements the Stringer interface.
func (kf *Adaptive) String() string {
	return fmt.Sprintf("Adaptive{%s %s %s k=%d}", kf.model, kf.state, kf.noise, kf.step)
}

// AdaptiveEstimate is the output of each update step of the Adaptive filter.
// It implements the Estimate interface.
type AdaptiveEstimate struct {
	state, meas, innovation float64
	covar, predCovar        float64
	gain, noiseVar          float64
}

// IsWithinNσ returns whether the estimation is within the N*σ bounds.
func (e AdaptiveEstimate) IsWithinNσ(N float64) bool {
	Nσ := N * math.Sqrt(e.covar)
	return e.state <= Nσ && e.state >= -Nσ
}

// IsWithin2σ returns whether the estimation is within the 2σ bounds.
func (e AdaptiveEstimate) IsWithin2σ() bool {
	return e.IsWithinNσ(2)
}

// State implements the Estimate interface.
func (e AdaptiveEstimate) State() float64 {
	return e.state
}

// Measurement implements the Estimate interface.
func (e AdaptiveEstimate) Measurement() float64 {
	return e.meas
}

// Innovation implements the Estimate interface.
func (e AdaptiveEstimate) Innovation() float64 {
	return e.innovation
}

// Covariance implements the Estimate interface.
func (e AdaptiveEstimate) Covariance() float64 {
	return e.covar
}

// PredCovariance implements the Estimate interface.
func (e AdaptiveEstimate) PredCovariance() float64 {
	return e.predCovar
}

// Gain implements the Estimate interface.
func (e AdaptiveEstimate) Gain() float64 {
	return e.gain
}

// NoiseVariance implements the Estimate interface.
func (e AdaptiveEstimate) NoiseVariance() float64 {
	return e.noiseVar
}

// String implements the Stringer interface.
func (e AdaptiveEstimate) String() string {
	return fmt.Sprintf("{\nx=%g\ny=%g\nP=%g\nK=%g\nP-=%g\ni=%g\nR=%g\n}", e.state, e.meas, e.covar, e.gain, e.predCovar, e.innovation, e.noiseVar)
}
