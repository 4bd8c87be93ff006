package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round up", -1.235, -1.24},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Exactly one cent", 0.01, 0.01},
		{"Nearly two cents", 0.019, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRoundRate(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Four decimal places", 0.12345, 0.1235},
		{"Round down", 0.12344, 0.1234},
		{"Already exact", 0.05, 0.05},
		{"Negative rate", -0.12345, -0.1235},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundRate(tt.input)
			if math.Abs(result-tt.expected) > 0.00001 {
				t.Errorf("RoundRate(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRoundIdempotence(t *testing.T) {
	values := []float64{1.23456789, -987.654321, 0.005, 1e6 + 0.555, -0.00004999}
	for _, v := range values {
		for _, decimals := range []int{2, 4} {
			once := RoundTo(v, decimals)
			twice := RoundTo(once, decimals)
			if once != twice {
				t.Errorf("RoundTo(RoundTo(%v, %d)) = %v, expected %v", v, decimals, twice, once)
			}
		}
	}
}

func TestRoundNonFinite(t *testing.T) {
	if Round(math.NaN()) != 0 {
		t.Errorf("Round(NaN) should be 0")
	}
	if Round(math.Inf(1)) != 0 {
		t.Errorf("Round(+Inf) should be 0")
	}
}

func TestNPV(t *testing.T) {
	tests := []struct {
		name      string
		cashFlows []float64
		rate      float64
		expected  float64
	}{
		{"Zero rate is plain sum", []float64{-100, 60, 60}, 0.0, 20},
		{"Empty sequence", []float64{}, 0.05, 0},
		{"Single outlay", []float64{-100}, 0.05, -100},
		{"Ten percent two period", []float64{-100, 0, 121}, 0.10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NPV(tt.cashFlows, tt.rate)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("NPV(%v, %v) = %v, expected %v", tt.cashFlows, tt.rate, result, tt.expected)
			}
		})
	}
}

func TestIRRSentinels(t *testing.T) {
	tests := []struct {
		name      string
		cashFlows []float64
	}{
		{"Empty sequence", []float64{}},
		{"Single flow", []float64{-100}},
		{"All positive", []float64{100, 100}},
		{"All negative", []float64{-100, -100}},
		{"All zero", []float64{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IRRDefault(tt.cashFlows); result != 0 {
				t.Errorf("IRR(%v) = %v, expected sentinel 0", tt.cashFlows, result)
			}
		})
	}
}

func TestIRRKnownRoots(t *testing.T) {
	tests := []struct {
		name      string
		cashFlows []float64
		expected  float64
		tolerance float64
	}{
		{"Ten percent one period", []float64{-100, 110}, 0.10, 0.001},
		{"Ten percent two period", []float64{-100, 0, 121}, 0.10, 0.001},
		{"Five percent annuity", []float64{-1000, 230.97, 230.97, 230.97, 230.97, 230.97}, 0.05, 0.005},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IRRDefault(tt.cashFlows)
			if math.Abs(result-tt.expected) > tt.tolerance {
				t.Errorf("IRR(%v) = %v, expected %v within %v", tt.cashFlows, result, tt.expected, tt.tolerance)
			}
		})
	}
}

func TestIRRClampBounds(t *testing.T) {
	// A pathological deep-loss sequence must stay within the clamp range.
	result := IRRDefault([]float64{-1, 0.0001, 0.0001})
	if result < -0.99 || result > 10 {
		t.Errorf("IRR escaped clamp range: %v", result)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name        string
		val, lo, hi float64
		expected    float64
	}{
		{"Below range", 1, 3, 7, 3},
		{"Above range", 9, 3, 7, 7},
		{"Within range", 5, 3, 7, 5},
		{"At lower bound", 3, 3, 7, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Clamp(tt.val, tt.lo, tt.hi); result != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tt.val, tt.lo, tt.hi, result, tt.expected)
			}
		})
	}
}
