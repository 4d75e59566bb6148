package akf

// Filter defines an adaptive scalar Kalman filter: push one measurement per
// step via Update and read the resulting estimate back.
type Filter interface {
	Update(measurement float64) (Estimate, error)
	GetModel() *Model
	GetNoise() *NoiseEstimator
	GetState() *StateEstimator
	Reset()
	String() string
}

// Estimate is returned from Update() of any filter.
type Estimate interface {
	IsWithinNσ(N float64) bool // IsWithinNσ returns whether the estimation is within the N*σ bounds.
	State() float64            // Returns \hat{x}_{k}^{+}
	Measurement() float64      // Returns \hat{y}_{k}^{+}
	Innovation() float64       // Returns y_{k} - H*\hat{x}_{k}^{-}
	Covariance() float64       // Returns P_{k}^{+}
	PredCovariance() float64   // Returns P_{k}^{-}
	Gain() float64             // Returns K_{k}
	NoiseVariance() float64    // Returns the \hat{R}_{k} used to compute the gain at this step.
	String() string            // Must implement the stringer interface.
}
