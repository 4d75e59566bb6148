package akf

import "testing"

func TestImplementsFilter(t *testing.T) {
	implements := func(Filter) {}
	implements(new(Adaptive))
}

func TestImplementsEst(t *testing.T) {
	implements := func(Estimate) {}
	implements(AdaptiveEstimate{})
}
