// Package comparison runs the financing analyzers against a shared scenario,
// builds a do-nothing utility baseline, and ranks the options by horizon
// savings.
package comparison

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"

	"github.com/iwvelando/solar-economics/pkg/analysis"
	"github.com/iwvelando/solar-economics/pkg/constants"
	"github.com/iwvelando/solar-economics/pkg/format"
	"github.com/iwvelando/solar-economics/pkg/mathutil"
)

// DoNothingLabel names the baseline row in the ranked summary.
const DoNothingLabel = "Do Nothing"

// Option is one row of the ranked summary table.
type Option struct {
	Kind                 analysis.FinancingKind `json:"kind,omitempty"` // empty for the baseline
	Label                string                 `json:"label"`
	UpfrontCost          float64                `json:"upfrontCost"`
	YearOneMonthlyCost   float64                `json:"yearOneMonthlyCost"`
	TotalCost            float64                `json:"totalCost"` // horizon cost of electricity + financing
	TotalSavings         float64                `json:"totalSavings"`
	AverageAnnualSavings float64                `json:"averageAnnualSavings"`
	PaybackYears         float64                `json:"paybackYears"`  // cash/loan only
	BreakEvenYear        int                    `json:"breakEvenYear"` // lease/ppa only
}

// Result aggregates the baseline, the analyses that were requested, the
// ranked summary table, and a generated recommendation.
type Result struct {
	BaselineUtilityCost float64          `json:"baselineUtilityCost"`
	Options             []Option         `json:"options"` // ranked by TotalSavings, baseline last
	Cash                *analysis.Result `json:"cash,omitempty"`
	Loan                *analysis.Result `json:"loan,omitempty"`
	Lease               *analysis.Result `json:"lease,omitempty"`
	PPA                 *analysis.Result `json:"ppa,omitempty"`
	Recommendation      string           `json:"recommendation"`
}

// Engine orchestrates the analyzers.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a comparison engine with the given logger. If logger is
// nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Run builds the do-nothing baseline, conditionally runs each analyzer the
// scenario carries inputs for (cash when a system cost is set, loan when a
// loan amount is set, lease when a monthly payment is set, PPA when a rate
// is set), and ranks the options.
func (e *Engine) Run(s analysis.Scenario) Result {
	result := Result{
		BaselineUtilityCost: mathutil.Round(baselineUtilityCost(s)),
	}

	if s.SystemCost > 0 {
		result.Cash = analysis.AnalyzeCash(e.logger, s)
	}
	if s.LoanAmount > 0 {
		result.Loan = analysis.AnalyzeLoan(e.logger, s)
	}
	if s.MonthlyLeasePayment > 0 {
		result.Lease = analysis.AnalyzeLease(e.logger, s)
	}
	if s.PPARatePerKwh > 0 {
		result.PPA = analysis.AnalyzePPA(e.logger, s)
	}

	var options []Option
	for _, r := range []*analysis.Result{result.Cash, result.Loan, result.Lease, result.PPA} {
		if r == nil {
			continue
		}
		options = append(options, e.summarize(r, result.BaselineUtilityCost))
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].TotalSavings > options[j].TotalSavings
	})

	baseline := Option{
		Label:              DoNothingLabel,
		YearOneMonthlyCost: mathutil.Round(s.AnnualUsageKwh * s.UtilityRate / constants.MonthsPerYear),
		TotalCost:          result.BaselineUtilityCost,
	}
	result.Options = append(options, baseline)
	result.Recommendation = recommend(options, s.AnalysisYears)

	e.logger.Debug(fmt.Sprintf("compared %d financing options", len(options)),
		zap.String("op", "comparison.Run"),
	)

	return result
}

// summarize reduces one analysis to a ranked-table row.
func (e *Engine) summarize(r *analysis.Result, baselineCost float64) Option {
	opt := Option{
		Kind:         r.Kind,
		Label:        r.Kind.Label(),
		UpfrontCost:  mathutil.Round(r.UpfrontCost()),
		TotalSavings: mathutil.Round(r.TotalSavings()),
		TotalCost:    mathutil.Round(baselineCost - r.TotalSavings()),
	}

	if len(r.YearlyProjections) > 0 {
		opt.YearOneMonthlyCost = mathutil.Round(r.YearlyProjections[0].CostWithSolar / constants.MonthsPerYear)

		savings := make([]float64, len(r.YearlyProjections))
		for i, row := range r.YearlyProjections {
			savings[i] = row.NetSavings
		}
		if mean, err := stats.Mean(savings); err == nil {
			opt.AverageAnnualSavings = mathutil.Round(mean)
		}
	}

	switch {
	case r.Cash != nil:
		opt.PaybackYears = r.Cash.PaybackYears
	case r.Loan != nil:
		opt.PaybackYears = r.Loan.PaybackYears
	case r.TPO != nil:
		opt.BreakEvenYear = r.TPO.BreakEvenYear
	}
	return opt
}

// baselineUtilityCost is the horizon cost of electricity with no solar.
func baselineUtilityCost(s analysis.Scenario) float64 {
	total := 0.0
	for year := 1; year <= s.AnalysisYears; year++ {
		total += s.AnnualUsageKwh * s.UtilityRate * math.Pow(1+s.UtilityEscalationRate, float64(year-1))
	}
	return total
}

// recommend picks the option with the highest horizon savings. When a
// different option leads among zero-upfront choices, a secondary
// recommendation names it.
func recommend(ranked []Option, horizonYears int) string {
	if len(ranked) == 0 {
		return "No financing options were requested; staying with utility power is the only modeled choice."
	}

	best := ranked[0]
	recommendation := fmt.Sprintf("%s delivers the highest %d-year savings at %s.",
		best.Label, horizonYears, format.Currency(best.TotalSavings))

	var zeroUpfrontBest *Option
	for i := range ranked {
		if ranked[i].UpfrontCost == 0 {
			zeroUpfrontBest = &ranked[i]
			break
		}
	}
	if zeroUpfrontBest != nil && zeroUpfrontBest.Kind != best.Kind {
		recommendation += fmt.Sprintf(" For no money down, %s leads with %s in savings.",
			zeroUpfrontBest.Label, format.Currency(zeroUpfrontBest.TotalSavings))
	}
	return recommendation
}
