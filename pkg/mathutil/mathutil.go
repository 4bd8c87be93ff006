// Package mathutil provides common mathematical and financial utility
// functions used throughout the engine.
package mathutil

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/iwvelando/solar-economics/pkg/constants"
)

// Round rounds a value to two decimals (half up), i.e. to represent real
// currency. Every monetary output uses this precision.
func Round(val float64) float64 {
	return RoundTo(val, constants.CurrencyDecimals)
}

// RoundRate rounds a rate, ratio, or derate factor to four decimals (half up).
func RoundRate(val float64) float64 {
	return RoundTo(val, constants.RateDecimals)
}

// RoundTo rounds a value half-up to the requested number of decimal places.
// Non-finite inputs round to 0.
func RoundTo(val float64, decimals int) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	rounded, _ := decimal.NewFromFloat(val).Round(int32(decimals)).Float64()
	return rounded
}

// IsZero checks if a value is effectively zero (within currency tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Clamp constrains a value to the inclusive range [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// NPV computes the net present value of a cash-flow sequence at the given
// discount rate. cashFlows[0] is the initial outlay at t=0.
func NPV(cashFlows []float64, rate float64) float64 {
	npv := 0.0
	for t, cf := range cashFlows {
		npv += cf / math.Pow(1+rate, float64(t))
	}
	return npv
}

// IRR solves for the internal rate of return of a cash-flow sequence using
// Newton-Raphson iteration starting from a 10% guess. It returns 0 when the
// sequence has fewer than two flows or no sign change (no root exists), so
// callers must treat an IRR of exactly 0 as a possible could-not-solve
// sentinel rather than a literal zero return.
//
// This is an approximation, not a certified root: each step is clamped to
// [-0.99, 10], iteration stops when |NPV| < 0.01 or the derivative magnitude
// falls below 1e-12, and for cash-flow patterns with multiple sign changes
// (multiple valid IRRs) the result is whichever root the clamped iteration
// converges toward.
func IRR(cashFlows []float64, maxIterations int) float64 {
	if len(cashFlows) < 2 {
		return 0
	}
	hasPositive := false
	hasNegative := false
	for _, cf := range cashFlows {
		if cf > 0 {
			hasPositive = true
		}
		if cf < 0 {
			hasNegative = true
		}
	}
	if !hasPositive || !hasNegative {
		return 0
	}

	guess := constants.IRRInitialGuess
	for i := 0; i < maxIterations; i++ {
		npv := NPV(cashFlows, guess)
		if math.Abs(npv) < constants.IRRConvergenceTolerance {
			break
		}
		derivative := npvDerivative(cashFlows, guess)
		if math.Abs(derivative) < constants.IRRDerivativeFloor {
			break
		}
		guess -= npv / derivative
		guess = Clamp(guess, constants.IRRMinRate, constants.IRRMaxRate)
	}
	return guess
}

// IRRDefault runs IRR with the standard iteration bound.
func IRRDefault(cashFlows []float64) float64 {
	return IRR(cashFlows, constants.IRRDefaultMaxIterations)
}

// npvDerivative evaluates dNPV/dr at the given rate.
func npvDerivative(cashFlows []float64, rate float64) float64 {
	d := 0.0
	for t := 1; t < len(cashFlows); t++ {
		d -= float64(t) * cashFlows[t] / math.Pow(1+rate, float64(t+1))
	}
	return d
}
