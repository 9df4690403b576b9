package domain

import (
	"errors"
	"testing"
)

func TestNewCapacities_Validation(t *testing.T) {
	if _, err := NewCapacities(3, 5, 8); err != nil {
		t.Fatalf("NewCapacities failed: %v", err)
	}

	for _, bad := range [][3]int{{0, 5, 8}, {3, -1, 8}, {3, 5, 0}} {
		_, err := NewCapacities(bad[0], bad[1], bad[2])
		if !errors.Is(err, ErrNonPositiveCapacity) {
			t.Errorf("NewCapacities(%v) error = %v, want ErrNonPositiveCapacity", bad, err)
		}
	}
}

func TestCapacities_GCD(t *testing.T) {
	cases := []struct {
		caps [3]int
		want int
	}{
		{[3]int{3, 5, 8}, 1},
		{[3]int{2, 4, 6}, 2},
		{[3]int{6, 9, 12}, 3},
		{[3]int{7, 7, 7}, 7},
	}
	for _, tc := range cases {
		caps := MustCapacities(tc.caps[0], tc.caps[1], tc.caps[2])
		if got := caps.GCD(); got != tc.want {
			t.Errorf("GCD%v = %d, want %d", tc.caps, got, tc.want)
		}
	}
}

func TestCapacities_Feasible(t *testing.T) {
	caps := MustCapacities(2, 4, 6)

	if caps.Feasible(5) {
		t.Error("target 5 should be infeasible under gcd 2")
	}
	if !caps.Feasible(4) {
		t.Error("target 4 should be feasible under gcd 2")
	}
	if !caps.Feasible(0) {
		t.Error("target 0 is always feasible")
	}
	if caps.Feasible(-2) {
		t.Error("negative targets are never feasible")
	}
}

func TestCapacities_FullAndFits(t *testing.T) {
	caps := MustCapacities(3, 5, 8)

	if caps.Full() != MustState(3, 5, 8) {
		t.Errorf("Full = %v", caps.Full())
	}
	if !caps.Fits(MustState(3, 0, 8)) {
		t.Error("state within limits should fit")
	}
	if caps.Fits(MustState(4, 0, 0)) {
		t.Error("state above a limit should not fit")
	}
}

func TestCapacities_SpaceSize(t *testing.T) {
	if got := MustCapacities(2, 4, 6).SpaceSize(); got != 105 {
		t.Errorf("SpaceSize = %d, want 105", got)
	}
}
