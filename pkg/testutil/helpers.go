// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/solar-economics/internal/comparison"
	"github.com/iwvelando/solar-economics/pkg/analysis"
)

// FindOption finds a ranked option by financing kind in a comparison result.
// Returns a pointer to the option if found, nil otherwise.
func FindOption(result comparison.Result, kind analysis.FinancingKind) *comparison.Option {
	for i := range result.Options {
		if result.Options[i].Kind == kind {
			return &result.Options[i]
		}
	}
	return nil
}

// FindBaseline finds the do-nothing baseline row in a comparison result.
// Returns a pointer to the option if found, nil otherwise.
func FindBaseline(result comparison.Result) *comparison.Option {
	for i := range result.Options {
		if result.Options[i].Label == comparison.DoNothingLabel {
			return &result.Options[i]
		}
	}
	return nil
}
