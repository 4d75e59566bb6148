package akf

import "testing"

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

// testModel returns the model of the reference convergence scenario.
func testModel(t *testing.T) *Model {
	model, err := NewModel(0.5, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	return model
}
