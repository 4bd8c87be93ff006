package integration

import (
	"bytes"
	"io"
	"math"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/iwvelando/solar-economics/internal/comparison"
	"github.com/iwvelando/solar-economics/internal/config"
	"github.com/iwvelando/solar-economics/pkg/analysis"
	"github.com/iwvelando/solar-economics/pkg/output"
	"github.com/iwvelando/solar-economics/pkg/production"
	"github.com/iwvelando/solar-economics/pkg/testutil"
)

// runScenarios loads the shared fixture and runs the full pipeline exactly as
// main() does: estimate production where the config omits it, then compare
// financing options per active scenario.
func runScenarios(t *testing.T) (*config.Configuration, map[string]comparison.Result) {
	t.Helper()

	logger := zap.NewNop()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	estimator := production.NewEstimator(logger)
	engine := comparison.NewEngine(logger)

	results := make(map[string]comparison.Result)
	for i := range conf.Scenarios {
		scenario := &conf.Scenarios[i]
		if !scenario.Active {
			continue
		}

		annualProduction := scenario.System.AnnualProductionKwh
		if scenario.NeedsProductionEstimate() {
			annualProduction = estimator.Estimate(scenario.ProductionInput()).AnnualProductionKwh
		}

		results[scenario.Name] = engine.Run(scenario.ToAnalysisScenario(annualProduction))
	}
	return conf, results
}

// TestPipelineBaseline validates the full pipeline against hand-computed
// values for the fixture scenarios.
func TestPipelineBaseline(t *testing.T) {
	conf, results := runScenarios(t)

	if len(conf.Scenarios) != 3 {
		t.Errorf("expected 3 configured scenarios, got %d", len(conf.Scenarios))
	}
	if len(results) != 2 {
		t.Errorf("expected 2 active scenarios to run, got %d", len(results))
	}
	if _, ran := results["inactive draft"]; ran {
		t.Error("inactive scenario should not have been run")
	}

	baselineChecks := []struct {
		scenario    string
		expectedVal float64
	}{
		// 12000 kWh/yr at $0.15 escalating 2.5%: 1800 + 1845.
		{"purchase options", 3645.00},
		// 9600 kWh/yr at $0.15 escalating 2.5%: 1440 + 1476.
		{"leased array", 2916.00},
	}
	for _, check := range baselineChecks {
		result, ok := results[check.scenario]
		if !ok {
			t.Errorf("scenario %q not found in results", check.scenario)
			continue
		}
		if math.Abs(result.BaselineUtilityCost-check.expectedVal) > 0.01 {
			t.Errorf("scenario %q: expected baseline %.2f, got %.2f",
				check.scenario, check.expectedVal, result.BaselineUtilityCost)
		}
	}
}

func TestPipelineCashScenario(t *testing.T) {
	_, results := runScenarios(t)

	result := results["purchase options"]
	if result.Cash == nil {
		t.Fatal("expected a cash analysis for the purchase scenario")
	}
	if result.Loan != nil || result.Lease != nil || result.PPA != nil {
		t.Error("purchase scenario should only produce a cash analysis")
	}

	summary := result.Cash.Cash
	// $20,000 less the 30% ITC.
	if math.Abs(summary.NetCost-14000.00) > 0.01 {
		t.Errorf("expected net cost 14000.00, got %.2f", summary.NetCost)
	}
	// Year 1: 10000 kWh at $0.15 = 1500. Year 2: 9950 kWh at $0.153750 =
	// 1529.81. Cumulative: -14000 + 1500 + 1529.81.
	if math.Abs(summary.TotalSavings-(-10970.19)) > 0.01 {
		t.Errorf("expected total savings -10970.19, got %.2f", summary.TotalSavings)
	}
	// Not recovered within the 2-year horizon.
	if summary.PaybackYears != 2 {
		t.Errorf("expected payback pinned to the 2-year horizon, got %.2f", summary.PaybackYears)
	}
	// (14000 + 0) / (10000 + 9950).
	if math.Abs(summary.LCOE-0.7018) > 0.0001 {
		t.Errorf("expected LCOE 0.7018, got %.4f", summary.LCOE)
	}

	if len(result.Cash.YearlyProjections) != 2 {
		t.Fatalf("expected 2 projection rows, got %d", len(result.Cash.YearlyProjections))
	}
	year1 := result.Cash.YearlyProjections[0]
	if math.Abs(year1.CumulativeCashFlow-(-12500.00)) > 0.01 {
		t.Errorf("expected year-1 cumulative -12500.00, got %.2f", year1.CumulativeCashFlow)
	}
}

func TestPipelineEstimatedLeaseScenario(t *testing.T) {
	_, results := runScenarios(t)

	result := results["leased array"]
	if result.Lease == nil {
		t.Fatal("expected a lease analysis for the leased scenario")
	}
	if result.Cash != nil || result.Loan != nil || result.PPA != nil {
		t.Error("leased scenario should only produce a lease analysis")
	}

	// 5 kW at latitude 35 with latitude-matched tilt and 14% losses:
	// 5 * 5.0 PSH * 365 * 0.86 = 7847.5 kWh/yr from the estimator.
	year1 := result.Lease.YearlyProjections[0]
	if math.Abs(year1.ProductionKwh-7847.50) > 0.01 {
		t.Errorf("expected estimated year-1 production 7847.50, got %.2f", year1.ProductionKwh)
	}

	summary := result.Lease.TPO
	// Year 1: 1440 grid baseline less 262.88 residual grid cost less 960 in
	// lease payments = 217.13 saved; positive immediately.
	if summary.BreakEvenYear != 1 {
		t.Errorf("expected break-even in year 1, got %d", summary.BreakEvenYear)
	}
	if math.Abs(summary.TotalSavings-457.65) > 0.01 {
		t.Errorf("expected total savings 457.65, got %.2f", summary.TotalSavings)
	}
	if math.Abs(summary.YearOnePayment-960.00) > 0.01 {
		t.Errorf("expected year-1 payments 960.00, got %.2f", summary.YearOnePayment)
	}

	leaseOption := testutil.FindOption(result, analysis.FinancingLease)
	if leaseOption == nil {
		t.Fatal("expected a ranked lease option")
	}
	if leaseOption.UpfrontCost != 0 {
		t.Errorf("lease should require no upfront cost, got %.2f", leaseOption.UpfrontCost)
	}

	baseline := testutil.FindBaseline(result)
	if baseline == nil {
		t.Fatal("expected a baseline row")
	}
	if math.Abs(baseline.TotalCost-2916.00) > 0.01 {
		t.Errorf("expected baseline total cost 2916.00, got %.2f", baseline.TotalCost)
	}
}

// TestCSVOutputFormat checks the CSV rendering of a full pipeline run.
func TestCSVOutputFormat(t *testing.T) {
	_, results := runScenarios(t)

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	output.CsvFormat("purchase options", results["purchase options"])

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	csv := buf.String()

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 data rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], `"cumulative (cash)"`) {
		t.Errorf("CSV header missing cash column group: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], `"purchase options",1`) {
		t.Errorf("unexpected first data row: %s", lines[1])
	}
	if !strings.Contains(lines[1], `"-12500.00"`) {
		t.Errorf("expected year-1 cumulative in CSV row: %s", lines[1])
	}
	if !strings.Contains(lines[2], `"-10970.19"`) {
		t.Errorf("expected year-2 cumulative in CSV row: %s", lines[2])
	}
}

// TestValidationWarnings checks that the fixture passes validation cleanly.
func TestValidationWarnings(t *testing.T) {
	conf, _ := runScenarios(t)

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 0 {
		t.Errorf("expected no validation warnings for the fixture, got %v", warnings)
	}
}
