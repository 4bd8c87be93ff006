package analysis

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/iwvelando/solar-economics/pkg/mathutil"
)

// AnalyzeCash simulates ownership economics for an outright purchase. The
// net cost after the federal ITC and state/utility incentives is the initial
// outlay; every subsequent year's cash flow is the net savings from solar
// production.
func AnalyzeCash(logger *zap.Logger, s Scenario) *Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	itcAmount := s.SystemCost * s.FederalITCRate
	netCost := s.SystemCost - itcAmount - s.StateIncentive - s.UtilityIncentive

	projections := make([]YearlyProjection, 0, s.AnalysisYears)
	cashFlows := make([]float64, 0, s.AnalysisYears+1)
	cashFlows = append(cashFlows, -netCost)

	cumulative := -netCost
	payback := float64(s.AnalysisYears)
	paybackFound := false
	if cumulative >= 0 {
		// Incentives covered the entire cost; there is nothing to pay back.
		payback = 0
		paybackFound = true
	}

	totalOperatingCost := 0.0
	totalProduction := 0.0

	for year := 1; year <= s.AnalysisYears; year++ {
		e := scenarioYear(s, year)
		annualCost := ownerYearCost(s, year)
		netSavings := e.solarValue - annualCost
		cashFlow := netSavings

		prevCumulative := cumulative
		cumulative += cashFlow
		payback, paybackFound = interpolatePayback(year, prevCumulative, cumulative, cashFlow, paybackFound, payback)

		totalOperatingCost += annualCost
		totalProduction += e.production
		cashFlows = append(cashFlows, cashFlow)

		projections = append(projections, YearlyProjection{
			Year:               year,
			ProductionKwh:      mathutil.Round(e.production),
			UtilityRate:        mathutil.RoundRate(e.rate),
			CostWithoutSolar:   mathutil.Round(e.costWithoutSolar),
			CostWithSolar:      mathutil.Round(e.costWithoutSolar - e.solarValue + annualCost),
			NetSavings:         mathutil.Round(netSavings),
			CashFlow:           mathutil.Round(cashFlow),
			CumulativeCashFlow: mathutil.Round(cumulative),
		})
	}

	lcoe := 0.0
	if totalProduction > 0 {
		lcoe = (netCost + totalOperatingCost) / totalProduction
	}

	logger.Debug(fmt.Sprintf("cash analysis: net cost %.2f, payback %.2f years", netCost, payback),
		zap.String("op", "analysis.AnalyzeCash"),
	)

	return &Result{
		Kind:              FinancingCash,
		YearlyProjections: projections,
		Cash: &CashSummary{
			SystemCost:       mathutil.Round(s.SystemCost),
			FederalITCAmount: mathutil.Round(itcAmount),
			NetCost:          mathutil.Round(netCost),
			PaybackYears:     mathutil.Round(payback),
			IRR:              mathutil.RoundRate(mathutil.IRRDefault(cashFlows)),
			NPV:              mathutil.Round(mathutil.NPV(cashFlows, s.DiscountRate)),
			LCOE:             mathutil.RoundRate(lcoe),
			TotalSavings:     mathutil.Round(cumulative),
		},
	}
}
