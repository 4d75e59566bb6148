package akf

import (
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestConsistencyTestErrors(t *testing.T) {
	model := testModel(t)
	mc := NewMonteCarloRuns(2, 5, 10, 1, model, 0, 100, 100)
	if _, _, err := NewConsistencyTest(mc, false, false); err == nil {
		t.Fatal("consistency test without NEES nor NIS does not fail")
	}
}

// With a well informed prior the adaptive filter is consistent: both the NEES
// and NIS means settle around 1 (one degree of freedom).
func TestConsistency(t *testing.T) {
	model := testModel(t)
	const (
		samples = 25
		steps   = 400
		Rtrue   = 10.0
	)
	mc := NewMonteCarloRuns(samples, steps, Rtrue, 3, model, 0, 100, Rtrue)
	NEESmeans, NISmeans, err := NewConsistencyTest(mc, true, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(NEESmeans) != steps || len(NISmeans) != steps {
		t.Fatalf("got %d NEES and %d NIS means, expected %d of each", len(NEESmeans), len(NISmeans), steps)
	}

	// Skip the transient while the noise estimate settles.
	nees := stat.Mean(NEESmeans[100:], nil)
	nis := stat.Mean(NISmeans[100:], nil)
	if nees < 0.7 || nees > 1.4 {
		t.Fatalf("NEES mean %g outside [0.7, 1.4]", nees)
	}
	if nis < 0.7 || nis > 1.4 {
		t.Fatalf("NIS mean %g outside [0.7, 1.4]", nis)
	}
}

func TestConsistencySingleStatistic(t *testing.T) {
	model := testModel(t)
	mc := NewMonteCarloRuns(4, 50, 10, 9, model, 0, 100, 100)
	NEESmeans, NISmeans, err := NewConsistencyTest(mc, true, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(NEESmeans) != 50 {
		t.Fatal("NEES means missing")
	}
	for _, nis := range NISmeans {
		if nis != 0 {
			t.Fatal("NIS computed although disabled")
		}
	}
}
