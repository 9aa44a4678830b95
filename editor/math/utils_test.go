package math

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		f, low, high, want int
	}{
		{0, 1, 16, 1},
		{8, 1, 16, 8},
		{99, 1, 16, 16},
	}
	for _, c := range cases {
		if got := Clamp(c.f, c.low, c.high); got != c.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", c.f, c.low, c.high, got, c.want)
		}
	}
	if got := Clamp(1.5, 0.0, 1.0); got != 1.0 {
		t.Errorf("float clamp = %v", got)
	}
}

func TestInRange(t *testing.T) {
	if !InRange(1, 1, 16) || !InRange(16, 1, 16) {
		t.Fatalf("bounds are inclusive")
	}
	if InRange(0, 1, 16) || InRange(-0.5, 0.0, 1.0) {
		t.Fatalf("values outside the bounds must be rejected")
	}
}
