// Package output provides utilities for formatting and displaying comparison
// results.
package output

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/solar-economics/internal/comparison"
	"github.com/iwvelando/solar-economics/pkg/analysis"
)

// PrettyFormat outputs a human-readable ranked summary table followed by the
// generated recommendation.
func PrettyFormat(name string, result comparison.Result) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Results for scenario %s ---\n", name)
	fmt.Printf("Option                   | Upfront      | Year-1 $/mo | Total Cost    | Savings       | Payback\n")
	fmt.Printf("______                   | _______      | ___________ | __________    | _______       | _______\n")
	for _, opt := range result.Options {
		_, _ = p.Printf("%-24s | $%-11.2f | $%-10.2f | $%-12.2f | $%-12.2f | %s\n",
			opt.Label, opt.UpfrontCost, opt.YearOneMonthlyCost, opt.TotalCost, opt.TotalSavings, paybackColumn(opt))
	}
	fmt.Printf("\n%s\n", result.Recommendation)
}

// CsvFormat outputs the yearly projections of every requested analysis in
// comma-separated value format, one column group per financing option.
func CsvFormat(name string, result comparison.Result) {
	analyses := requestedAnalyses(result)
	if len(analyses) == 0 {
		return
	}

	fmt.Printf(`"scenario","year"`)
	for _, a := range analyses {
		fmt.Printf(`,"cost without solar (%s)","cost with solar (%s)","cash flow (%s)","cumulative (%s)"`,
			a.Kind, a.Kind, a.Kind, a.Kind)
	}
	fmt.Printf("\n")

	// All analyses share the scenario horizon, so take the year count from
	// the first.
	for i := range analyses[0].YearlyProjections {
		fmt.Printf("%q,%d", name, i+1)
		for _, a := range analyses {
			row := a.YearlyProjections[i]
			fmt.Printf(`,"%.2f","%.2f","%.2f","%.2f"`,
				row.CostWithoutSolar, row.CostWithSolar, row.CashFlow, row.CumulativeCashFlow)
		}
		fmt.Printf("\n")
	}
}

func requestedAnalyses(result comparison.Result) []*analysis.Result {
	var analyses []*analysis.Result
	for _, a := range []*analysis.Result{result.Cash, result.Loan, result.Lease, result.PPA} {
		if a != nil {
			analyses = append(analyses, a)
		}
	}
	return analyses
}

func paybackColumn(opt comparison.Option) string {
	switch opt.Kind {
	case analysis.FinancingCash, analysis.FinancingLoan:
		return strconv.FormatFloat(opt.PaybackYears, 'f', 2, 64) + " yr"
	case analysis.FinancingLease, analysis.FinancingPPA:
		if opt.BreakEvenYear == 0 {
			return "never"
		}
		return "year " + strconv.Itoa(opt.BreakEvenYear)
	default:
		return "-"
	}
}
