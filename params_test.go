package cbloom

import (
	"math"
	"testing"
)

func TestOptimalParams(t *testing.T) {
	tests := []struct {
		items  uint64
		fpRate float64
		wantK  uint32
	}{
		{1000, 0.01, 7},    // 1% FP rate -> k~7
		{10000, 0.001, 10}, // 0.1% FP rate -> k~10
		{100000, 0.0001, 13},
	}

	for _, tt := range tests {
		size, k, cpi := OptimalParams(tt.items, tt.fpRate)
		t.Logf("items=%d, fpRate=%.4f -> size=%d, k=%d, countersPerItem=%.2f",
			tt.items, tt.fpRate, size, k, cpi)

		if k != tt.wantK {
			t.Errorf("items=%d fpRate=%.4f: k=%d, want %d", tt.items, tt.fpRate, k, tt.wantK)
		}
		if size == 0 {
			t.Errorf("items=%d fpRate=%.4f: size=0", tt.items, tt.fpRate)
		}
	}
}

func TestOptimalParamsEdgeCases(t *testing.T) {
	// 0 items defaults to 1
	size, k, _ := OptimalParams(0, 0.01)
	if size == 0 || k == 0 {
		t.Error("expected non-zero params for 0 items")
	}

	// fpRate <= 0 defaults to 0.0001
	size, k, _ = OptimalParams(1000, 0)
	if size == 0 || k == 0 {
		t.Error("expected non-zero params for fpRate=0")
	}
	size, k, _ = OptimalParams(1000, -0.1)
	if size == 0 || k == 0 {
		t.Error("expected non-zero params for negative fpRate")
	}

	// fpRate >= 1 defaults to 0.99, which drives k to the minimum
	_, k, _ = OptimalParams(1000, 1.0)
	if k < 1 {
		t.Errorf("expected k >= 1, got %d", k)
	}

	// Very low FP rate clamps k at 16
	_, k, _ = OptimalParams(1000, 1e-12)
	if k > 16 {
		t.Errorf("expected k <= 16, got %d", k)
	}
}

func TestEstimateFalsePositiveRate(t *testing.T) {
	// Test against known formula
	size := uint64(100000)
	k := uint32(5)
	items := uint64(10000)

	estimated := EstimateFalsePositiveRate(size, k, items)

	// Manual calculation: (1 - e^(-kn/m))^k
	m := float64(size)
	n := float64(items)
	kf := float64(k)
	expected := math.Pow(1-math.Exp(-kf*n/m), kf)

	if math.Abs(estimated-expected) > 0.0001 {
		t.Errorf("estimated=%f, expected=%f", estimated, expected)
	}
}

func TestEstimateFalsePositiveRateMonotonic(t *testing.T) {
	size := uint64(10000)
	k := uint32(5)

	prev := 0.0
	for _, n := range []uint64{0, 1, 10, 100, 1000, 10000, 100000, 1000000} {
		rate := EstimateFalsePositiveRate(size, k, n)
		if rate < 0 || rate > 1 {
			t.Errorf("n=%d: rate %f outside [0, 1]", n, rate)
		}
		if rate < prev {
			t.Errorf("n=%d: rate %f decreased from %f", n, rate, prev)
		}
		prev = rate
	}

	// Asymptotically saturated filter approaches 1
	if rate := EstimateFalsePositiveRate(10, 5, 1000000); rate < 0.99 {
		t.Errorf("expected near-1 rate for overfull filter, got %f", rate)
	}
}

func TestEstimateFalsePositiveRateEdgeCases(t *testing.T) {
	if rate := EstimateFalsePositiveRate(100000, 5, 0); rate != 0 {
		t.Errorf("expected 0 FP rate for 0 items, got %f", rate)
	}
	if rate := EstimateFalsePositiveRate(0, 5, 1000); rate != 0 {
		t.Errorf("expected 0 FP rate for 0 size, got %f", rate)
	}
}
