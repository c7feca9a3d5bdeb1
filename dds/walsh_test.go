package dds

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-dd/internal/testutil"
)

func TestWalshSamples(t *testing.T) {
	tests := []struct {
		order int
		want  []int8
	}{
		{1, []int8{1, -1}},
		{2, []int8{1, -1, 1, -1}},
		{3, []int8{1, -1, -1, 1}},
		{4, []int8{1, -1, 1, -1, 1, -1, 1, -1}},
		{5, []int8{1, -1, 1, -1, -1, 1, -1, 1}},
	}

	for _, tt := range tests {
		got := walshSamples(tt.order)
		if len(got) != len(tt.want) {
			t.Fatalf("order %d: len=%d, want %d", tt.order, len(got), len(tt.want))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("order %d: samples=%v, want %v", tt.order, got, tt.want)
			}
		}
	}
}

func TestWalshMatchesRademacherProduct(t *testing.T) {
	for order := 1; order <= 64; order++ {
		w := walshSamples(order)
		n := len(w)
		for j := range w {
			tm := (float64(j) + 0.5) / float64(n)
			want := 1.0
			for i := 0; order>>i > 0; i++ {
				if order>>i&1 == 1 && math.Sin(math.Exp2(float64(i+1))*math.Pi*tm) < 0 {
					want = -want
				}
			}
			if float64(w[j]) != want {
				t.Fatalf("order %d sample %d: got %d, want %v", order, j, w[j], want)
			}
		}
	}
}

func TestWalshOrderOneIsSpinEcho(t *testing.T) {
	w, err := NewWalshSingleAxis(1, 1)
	if err != nil {
		t.Fatalf("NewWalshSingleAxis: %v", err)
	}
	se, err := NewSpinEcho(1)
	if err != nil {
		t.Fatalf("NewSpinEcho: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, w.Offsets(), se.Offsets(), 0)
	testutil.RequireSliceNearlyEqual(t, w.RabiRotations(), se.RabiRotations(), 0)
}

func TestWalshOffsets(t *testing.T) {
	tests := []struct {
		order int
		want  []float64
	}{
		{2, []float64{0, 0.25, 0.5, 0.75, 1}},
		{3, []float64{0, 0.25, 0.75, 1}},
		{4, []float64{0, 0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875, 1}},
	}

	for _, tt := range tests {
		s, err := NewWalshSingleAxis(1, tt.order)
		if err != nil {
			t.Fatalf("order %d: %v", tt.order, err)
		}
		testutil.RequireSliceNearlyEqual(t, s.Offsets(), tt.want, eps)
		requireWellFormed(t, s)
	}
}

func TestWalshUpperBound(t *testing.T) {
	s, err := NewWalshSingleAxis(1e-6, UpperBoundPaleyOrder)
	if err != nil {
		t.Fatalf("NewWalshSingleAxis: %v", err)
	}
	requireWellFormed(t, s)
}

func TestWalshErrors(t *testing.T) {
	for _, order := range []int{0, -1, UpperBoundPaleyOrder + 1} {
		_, err := NewWalshSingleAxis(1, order)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("order %d: err=%v, want ErrInvalidArgument", order, err)
		}
	}
}
