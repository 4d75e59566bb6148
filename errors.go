package akf

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonInvertible is returned when the observation relation cannot be
	// inverted, i.e. when H is zero.
	ErrNonInvertible = errors.New("akf: observation coefficient H must be non zero")
	// ErrNonPositivePrior is returned when a prior which must be strictly
	// positive (such as the initial noise variance estimate) is not.
	ErrNonPositivePrior = errors.New("akf: prior must be strictly positive")
	// ErrNegativeVariance is returned when a variance parameter is negative.
	ErrNegativeVariance = errors.New("akf: variance must be non negative")
)

// checkFinite checks that the provided parameter is neither NaN nor infinite.
func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("akf: %s must be finite, got %v", name, v)
	}
	return nil
}

// checkPositive checks that the provided prior is finite and strictly positive.
func checkPositive(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s=%v", ErrNonPositivePrior, name, v)
	}
	return nil
}

// checkNonNegative checks that the provided variance is finite and non negative.
func checkNonNegative(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%w: %s=%v", ErrNegativeVariance, name, v)
	}
	return nil
}
