package akf

import "fmt"

// StateEstimator is the scalar Kalman state and covariance recursion. It does
// not own the measurement noise variance: the caller passes the variance to
// use to each Step call, which is how the adaptive filter feeds the learned R
// into the gain.
type StateEstimator struct {
	model  *Model
	x, P   float64
	x0, P0 float64 // priors, kept for Reset
}

// NewStateEstimator returns a new scalar Kalman state estimator from the
// provided state prior x0 and covariance prior P0 >= 0.
func NewStateEstimator(model *Model, x0, P0 float64) (*StateEstimator, error) {
	if model == nil {
		panic("akf: model must be specified")
	}
	if err := checkFinite("x0", x0); err != nil {
		return nil, err
	}
	if err := checkNonNegative("P0", P0); err != nil {
		return nil, err
	}
	return &StateEstimator{model: model, x: x0, P: P0, x0: x0, P0: P0}, nil
}

// Step performs one predict and correct cycle for the measurement y using the
// measurement noise variance R, and returns the resulting estimate. R must be
// strictly positive, which the adaptive update rule guarantees.
func (s *StateEstimator) Step(y, R float64) AdaptiveEstimate {
	// Prediction step.
	xPre := s.model.F * s.x
	PPre := s.model.F*s.model.F*s.P + s.model.Q

	// Kalman gain.
	denom := s.model.H*s.model.H*PPre + R
	if denom <= 0 {
		panic(fmt.Errorf("akf: could not invert `H²*P⁻ + R` (P⁻=%g, R=%g)", PPre, R))
	}
	K := PPre * s.model.H / denom

	// Measurement update.
	innov := y - s.model.H*xPre
	s.x = xPre + K*innov

	// Joseph form keeps P non negative even when R is a noisy adaptive estimate.
	ikh := 1 - K*s.model.H
	s.P = ikh*ikh*PPre + K*K*R

	return AdaptiveEstimate{
		state:      s.x,
		meas:       s.model.H * s.x,
		innovation: innov,
		covar:      s.P,
		predCovar:  PPre,
		gain:       K,
		noiseVar:   R,
	}
}

// State returns the current state estimate \hat{x}^{+}.
func (s *StateEstimator) State() float64 {
	return s.x
}

// Covariance returns the current estimate error variance P^{+}.
func (s *StateEstimator) Covariance() float64 {
	return s.P
}

// Reset reverts the estimator to its priors.
func (s *StateEstimator) Reset() {
	s.x = s.x0
	s.P = s.P0
}

// String implements the Stringer interface.
func (s *StateEstimator) String() string {
	return fmt.Sprintf("StateEstimator{x=%g P=%g}", s.x, s.P)
}
