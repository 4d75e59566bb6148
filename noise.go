package akf

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Noise provides the process and measurement noise draws for a simulated run.
type Noise interface {
	Process(k int) float64     // Returns the process noise w at step k
	Measurement(k int) float64 // Returns the measurement noise v at step k
	ProcessVar() float64       // Returns the process noise variance Q
	MeasurementVar() float64   // Returns the measurement noise variance R
	String() string            // Stringer interface implementation
}

// Noiseless is noiseless and implements the Noise interface.
type Noiseless struct {
	Q, R float64
}

// Process implements the Noise interface.
func (n Noiseless) Process(k int) float64 {
	return 0
}

// Measurement implements the Noise interface.
func (n Noiseless) Measurement(k int) float64 {
	return 0
}

// ProcessVar implements the Noise interface.
func (n Noiseless) ProcessVar() float64 {
	return n.Q
}

// MeasurementVar implements the Noise interface.
func (n Noiseless) MeasurementVar() float64 {
	return n.R
}

// String implements the Stringer interface.
func (n Noiseless) String() string {
	return fmt.Sprintf("Noiseless{Q=%g R=%g}", n.Q, n.R)
}

// BatchNoise replays pre-generated noise sequences and implements the Noise
// interface.
type BatchNoise struct {
	process     []float64
	measurement []float64
}

// NewBatchNoise creates a BatchNoise from the provided sequences.
func NewBatchNoise(process, measurement []float64) BatchNoise {
	return BatchNoise{process, measurement}
}

// Process implements the Noise interface.
func (n BatchNoise) Process(k int) float64 {
	if k >= len(n.process) {
		panic(fmt.Errorf("no process noise defined at step k=%d", k))
	}
	return n.process[k]
}

// Measurement implements the Noise interface.
func (n BatchNoise) Measurement(k int) float64 {
	if k >= len(n.measurement) {
		panic(fmt.Errorf("no measurement noise defined at step k=%d", k))
	}
	return n.measurement[k]
}

// ProcessVar implements the Noise interface.
func (n BatchNoise) ProcessVar() float64 {
	return 0
}

// MeasurementVar implements the Noise interface.
func (n BatchNoise) MeasurementVar() float64 {
	return 0
}

// String implements the Stringer interface.
func (n BatchNoise) String() string {
	return "BatchNoise"
}

// AWGN implements the Noise interface and generates additive white Gaussian
// noise from seeded sources, so a run is reproducible given its seed.
type AWGN struct {
	Q, R                 float64
	process, measurement distuv.Normal
}

// NewAWGN creates new AWGN noise from the provided variances Q and R and the
// seed. A zero variance yields a sequence of zeros.
func NewAWGN(Q, R float64, seed uint64) *AWGN {
	if Q < 0 || R < 0 {
		panic("akf: noise variances must be non negative")
	}
	return &AWGN{
		Q: Q, R: R,
		process:     distuv.Normal{Mu: 0, Sigma: math.Sqrt(Q), Src: rand.NewPCG(seed, 0x9e3779b97f4a7c15)},
		measurement: distuv.Normal{Mu: 0, Sigma: math.Sqrt(R), Src: rand.NewPCG(seed, 0x6a09e667f3bcc909)},
	}
}

// Process implements the Noise interface.
func (n *AWGN) Process(k int) float64 {
	return n.process.Rand()
}

// Measurement implements the Noise interface.
func (n *AWGN) Measurement(k int) float64 {
	return n.measurement.Rand()
}

// ProcessVar implements the Noise interface.
func (n *AWGN) ProcessVar() float64 {
	return n.Q
}

// MeasurementVar implements the Noise interface.
func (n *AWGN) MeasurementVar() float64 {
	return n.R
}

// String implements the Stringer interface.
func (n *AWGN) String() string {
	return fmt.Sprintf("AWGN{Q=%g R=%g}", n.Q, n.R)
}
