package analysis

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/iwvelando/solar-economics/pkg/constants"
	"github.com/iwvelando/solar-economics/pkg/mathutil"
)

// CalculateMonthlyPayment calculates the fixed monthly payment for a loan
// using the standard amortization formula. Rates are fractions (0.06 = 6%).
func CalculateMonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	if annualRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicRate := annualRate / constants.MonthsPerYear
	power := math.Pow(1+periodicRate, float64(termMonths))
	return principal * periodicRate * power / (power - 1)
}

// AnalyzeLoan simulates ownership economics with amortized debt. Only the
// down payment is the initial outlay; the ITC and state/utility incentives
// land in year one, either as cash flow or (for the ITC, when ApplyITCToLoan
// is set) as a one-time principal reduction at the end of month 12.
func AnalyzeLoan(logger *zap.Logger, s Scenario) *Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	itcAmount := s.SystemCost * s.FederalITCRate
	termMonths := s.LoanTermYears * constants.MonthsPerYear
	monthlyPayment := CalculateMonthlyPayment(s.LoanAmount, s.LoanInterestRate, termMonths)
	monthlyRate := s.LoanInterestRate / constants.MonthsPerYear

	projections := make([]YearlyProjection, 0, s.AnalysisYears)
	cashFlows := make([]float64, 0, s.AnalysisYears+1)
	cashFlows = append(cashFlows, -s.DownPayment)

	cumulative := -s.DownPayment
	payback := float64(s.AnalysisYears)
	paybackFound := false
	if cumulative >= 0 {
		payback = 0
		paybackFound = true
	}

	balance := s.LoanAmount
	totalInterest := 0.0
	totalPayments := 0.0
	dayOneSavings := false

	for year := 1; year <= s.AnalysisYears; year++ {
		e := scenarioYear(s, year)
		annualCost := ownerYearCost(s, year)
		netSavings := e.solarValue - annualCost

		annualLoanPaid := 0.0
		for month := 1; month <= constants.MonthsPerYear; month++ {
			if balance <= 0 {
				break
			}
			interest := balance * monthlyRate
			principal := monthlyPayment - interest
			payment := monthlyPayment
			if principal > balance {
				// Final payment retires the remaining balance exactly.
				principal = balance
				payment = balance + interest
			}
			balance -= principal
			annualLoanPaid += payment
			totalInterest += interest
		}
		if s.ApplyITCToLoan && year == 1 {
			// The full ITC is applied against the balance once, at the end of
			// month 12 of year one.
			balance = math.Max(0, balance-itcAmount)
		}
		totalPayments += annualLoanPaid

		if year == 1 {
			dayOneSavings = e.solarValue/constants.MonthsPerYear > monthlyPayment
		}

		cashFlow := netSavings - annualLoanPaid
		if year == 1 {
			if !s.ApplyITCToLoan {
				cashFlow += itcAmount
			}
			cashFlow += s.StateIncentive + s.UtilityIncentive
		}

		prevCumulative := cumulative
		cumulative += cashFlow
		payback, paybackFound = interpolatePayback(year, prevCumulative, cumulative, cashFlow, paybackFound, payback)
		cashFlows = append(cashFlows, cashFlow)

		projections = append(projections, YearlyProjection{
			Year:                 year,
			ProductionKwh:        mathutil.Round(e.production),
			UtilityRate:          mathutil.RoundRate(e.rate),
			CostWithoutSolar:     mathutil.Round(e.costWithoutSolar),
			CostWithSolar:        mathutil.Round(e.costWithoutSolar - e.solarValue + annualCost + annualLoanPaid),
			NetSavings:           mathutil.Round(netSavings),
			CashFlow:             mathutil.Round(cashFlow),
			CumulativeCashFlow:   mathutil.Round(cumulative),
			LoanPayment:          floatPtr(mathutil.Round(annualLoanPaid)),
			LoanBalanceRemaining: floatPtr(mathutil.Round(balance)),
		})
	}

	logger.Debug(fmt.Sprintf("loan analysis: %.2f financed at %.2f%%, payment %.2f/mo, payback %.2f years",
		s.LoanAmount, s.LoanInterestRate*100, monthlyPayment, payback),
		zap.String("op", "analysis.AnalyzeLoan"),
	)

	return &Result{
		Kind:              FinancingLoan,
		YearlyProjections: projections,
		Loan: &LoanSummary{
			DownPayment:       mathutil.Round(s.DownPayment),
			LoanAmount:        mathutil.Round(s.LoanAmount),
			MonthlyPayment:    mathutil.Round(monthlyPayment),
			TotalInterestPaid: mathutil.Round(totalInterest),
			TotalPaymentsMade: mathutil.Round(totalPayments),
			FederalITCAmount:  mathutil.Round(itcAmount),
			PaybackYears:      mathutil.Round(payback),
			IRR:               mathutil.RoundRate(mathutil.IRRDefault(cashFlows)),
			NPV:               mathutil.Round(mathutil.NPV(cashFlows, s.DiscountRate)),
			DayOneSavings:     dayOneSavings,
			TotalSavings:      mathutil.Round(cumulative),
		},
	}
}
