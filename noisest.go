package akf

import "fmt"

// NoiseEstimator learns the measurement noise variance R from consecutive
// measurement differences via the correlation method. The scaled innovation
// Z_k = (y_k - F*y_{k-1})/H satisfies E[Z²] = S*R + CW regardless of the
// state trajectory, so the running mean of Z² inverts to an estimate of R.
type NoiseEstimator struct {
	model    *Model
	mean     float64 // running mean of Z² over the pairs consumed so far
	est      float64 // last accepted estimate of R
	r0       float64 // prior, kept for Reset
	rejected int
}

// NewNoiseEstimator returns a new correlation based noise variance estimator.
// The prior R0 seeds the estimate until enough measurement pairs have been
// consumed, and must be strictly positive.
func NewNoiseEstimator(model *Model, R0 float64) (*NoiseEstimator, error) {
	if model == nil {
		panic("akf: model must be specified")
	}
	if err := checkPositive("R0", R0); err != nil {
		return nil, err
	}
	return &NoiseEstimator{model: model, est: R0, r0: R0}, nil
}

// Update folds the measurement pair (yNew, yPrev) into the running statistic
// and returns the current noise variance estimate. k is the one-indexed count
// of pairs consumed, including this one; the very first measurement of a run
// has no pair and must not reach this method.
//
// The running mean is updated on every call. The estimate only moves when the
// candidate (L - CW)/S is strictly positive: early-run sampling noise can
// drive the unconstrained candidate negative, and a non positive assumed
// variance would break the state filter's gain.
func (n *NoiseEstimator) Update(yNew, yPrev float64, k int) float64 {
	if k < 1 {
		panic(fmt.Errorf("akf: noise update requires a prior measurement (k=%d)", k))
	}
	Z := n.model.Minv * (yNew - n.model.F*yPrev)
	kf := float64(k)
	n.mean = n.mean*(kf-1)/kf + Z*Z/kf
	if candidate := (n.mean - n.model.CW) / n.model.S; candidate > 0 {
		n.est = candidate
	} else {
		n.rejected++
	}
	return n.est
}

// R returns the current noise variance estimate. Strictly positive at all
// times given a strictly positive prior.
func (n *NoiseEstimator) R() float64 {
	return n.est
}

// CorrelationMean returns the running mean of the squared scaled innovations.
func (n *NoiseEstimator) CorrelationMean() float64 {
	return n.mean
}

// Rejections returns how many candidates were discarded for being non positive.
func (n *NoiseEstimator) Rejections() int {
	return n.rejected
}

// Reset reverts the estimator to its construction state.
func (n *NoiseEstimator) Reset() {
	n.mean = 0
	n.est = n.r0
	n.rejected = 0
}

// String implements the Stringer interface.
func (n *NoiseEstimator) String() string {
	return fmt.Sprintf("NoiseEstimator{R=%g L=%g rejected=%d}", n.est, n.mean, n.rejected)
}
