package analysis

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/iwvelando/solar-economics/pkg/constants"
	"github.com/iwvelando/solar-economics/pkg/mathutil"
)

// AnalyzeLease simulates third-party ownership with a flat monthly lease
// payment escalating annually, independent of production.
func AnalyzeLease(logger *zap.Logger, s Scenario) *Result {
	return analyzeTPO(logger, FinancingLease, s)
}

// AnalyzePPA simulates third-party ownership with a per-kWh power purchase
// agreement: the payment scales with degraded production, not a fixed fee.
func AnalyzePPA(logger *zap.Logger, s Scenario) *Result {
	return analyzeTPO(logger, FinancingPPA, s)
}

// analyzeTPO runs the shared lease/PPA simulation. There is no upfront
// outlay; payments stop after the TPO term, and years beyond the term incur
// no payment (post-term ownership or removal is outside the model). The
// host's savings are the avoided utility cost minus remaining grid purchases
// and the TPO payment; exports carry no value to the host under third-party
// ownership.
func analyzeTPO(logger *zap.Logger, kind FinancingKind, s Scenario) *Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	projections := make([]YearlyProjection, 0, s.AnalysisYears)
	cumulative := 0.0
	totalTPOPayments := 0.0
	yearOnePayment := 0.0
	breakEvenYear := 0

	for year := 1; year <= s.AnalysisYears; year++ {
		e := scenarioYear(s, year)

		payment := 0.0
		if year <= s.TPOTermYears {
			tpoEscalation := math.Pow(1+s.TPOEscalationRate, float64(year-1))
			if kind == FinancingPPA {
				payment = e.production * s.PPARatePerKwh * tpoEscalation
			} else {
				payment = s.MonthlyLeasePayment * constants.MonthsPerYear * tpoEscalation
			}
		}
		if year == 1 {
			yearOnePayment = payment
		}
		totalTPOPayments += payment

		netSavings := e.costWithoutSolar - (e.gridCost + payment)
		cumulative += netSavings
		if breakEvenYear == 0 && cumulative > 0 {
			breakEvenYear = year
		}

		projections = append(projections, YearlyProjection{
			Year:               year,
			ProductionKwh:      mathutil.Round(e.production),
			UtilityRate:        mathutil.RoundRate(e.rate),
			CostWithoutSolar:   mathutil.Round(e.costWithoutSolar),
			CostWithSolar:      mathutil.Round(e.gridCost + payment),
			NetSavings:         mathutil.Round(netSavings),
			CashFlow:           mathutil.Round(netSavings),
			CumulativeCashFlow: mathutil.Round(cumulative),
			TPOPayment:         floatPtr(mathutil.Round(payment)),
		})
	}

	logger.Debug(fmt.Sprintf("%s analysis: year-one payment %.2f, break-even year %d", kind, yearOnePayment, breakEvenYear),
		zap.String("op", "analysis.analyzeTPO"),
	)

	return &Result{
		Kind:              kind,
		YearlyProjections: projections,
		TPO: &TPOSummary{
			TermYears:      s.TPOTermYears,
			YearOnePayment: mathutil.Round(yearOnePayment),
			TotalPayments:  mathutil.Round(totalTPOPayments),
			BreakEvenYear:  breakEvenYear,
			TotalSavings:   mathutil.Round(cumulative),
		},
	}
}
