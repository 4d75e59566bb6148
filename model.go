package akf

import "fmt"

// Model holds the scalar linear dynamics x_{k+1} = F*x_k + w_k observed via
// y_k = H*x_k + v_k, with process noise variance Q = Var(w). The constants of
// the correlation method, which map the mean squared scaled innovation to the
// implied measurement noise variance, are computed once at construction and
// never change.
type Model struct {
	F, H, Q float64
	// Derived constants.
	Minv  float64 // 1/H
	b1    float64 // -F/H
	b2    float64 // 1/H
	kronA float64 // weight of Q in E[Z²] (1 in the scalar case)
	S     float64 // b1² + b2², the weight of R in E[Z²]
	CW    float64 // kronA*Q, the process noise contribution to E[Z²]
}

// NewModel returns the system model for the provided transition coefficient F,
// observation coefficient H and process noise variance Q. H must be non zero
// and Q non negative.
func NewModel(F, H, Q float64) (*Model, error) {
	if err := checkFinite("F", F); err != nil {
		return nil, err
	}
	if err := checkFinite("H", H); err != nil {
		return nil, err
	}
	if H == 0 {
		return nil, ErrNonInvertible
	}
	if err := checkNonNegative("Q", Q); err != nil {
		return nil, err
	}
	m := Model{F: F, H: H, Q: Q}
	m.Minv = 1 / H
	m.b1 = -F * m.Minv
	m.b2 = m.Minv
	m.kronA = 1
	m.S = m.b1*m.b1 + m.b2*m.b2
	m.CW = m.kronA * Q
	return &m, nil
}

// String implements the Stringer interface.
func (m Model) String() string {
	return fmt.Sprintf("Model{F=%g H=%g Q=%g}", m.F, m.H, m.Q)
}
