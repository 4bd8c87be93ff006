package analysis

import (
	"math"
	"testing"

	"go.uber.org/zap"
)

// baseScenario is the reference end-to-end case: a $20,000 system exactly
// covering usage at a flat $0.15/kWh with no incentives and no escalation,
// degradation, or discounting.
func baseScenario() Scenario {
	return Scenario{
		AnnualProductionKwh: 10000,
		AnnualUsageKwh:      10000,
		UtilityRate:         0.15,
		NetMeteringRate:     0.10,
		AnalysisYears:       25,
		SystemCost:          20000,
	}
}

func TestAnalyzeCashEndToEnd(t *testing.T) {
	result := AnalyzeCash(zap.NewNop(), baseScenario())

	if result.Kind != FinancingCash {
		t.Fatalf("Kind = %v, expected cash", result.Kind)
	}
	if result.Cash == nil {
		t.Fatal("Cash summary missing")
	}
	if len(result.YearlyProjections) != 25 {
		t.Fatalf("expected 25 yearly projections, got %d", len(result.YearlyProjections))
	}

	year1 := result.YearlyProjections[0]
	if year1.Year != 1 {
		t.Errorf("first projection year = %d, expected 1", year1.Year)
	}
	if year1.NetSavings != 1500 {
		t.Errorf("year-1 net savings = %v, expected 1500", year1.NetSavings)
	}
	if year1.CumulativeCashFlow != -18500 {
		t.Errorf("year-1 cumulative = %v, expected -18500", year1.CumulativeCashFlow)
	}

	if math.Abs(result.Cash.PaybackYears-13.33) > 0.01 {
		t.Errorf("payback = %v, expected about 13.33", result.Cash.PaybackYears)
	}
	// With a zero discount rate NPV degenerates to the plain cash-flow sum.
	if result.Cash.NPV != 17500 {
		t.Errorf("NPV = %v, expected 17500", result.Cash.NPV)
	}
	if result.Cash.TotalSavings != 17500 {
		t.Errorf("TotalSavings = %v, expected 17500", result.Cash.TotalSavings)
	}
	if result.Cash.IRR <= 0 {
		t.Errorf("IRR = %v, expected positive", result.Cash.IRR)
	}

	// Financing legs that were not requested stay absent.
	if year1.LoanPayment != nil || year1.LoanBalanceRemaining != nil || year1.TPOPayment != nil {
		t.Errorf("cash analysis should carry no loan or TPO fields")
	}
}

func TestAnalyzeCashPaybackNeverReached(t *testing.T) {
	s := baseScenario()
	s.AnnualProductionKwh = 0

	result := AnalyzeCash(nil, s)
	if result.Cash.PaybackYears != 25 {
		t.Errorf("payback = %v, expected exactly 25 when never reached", result.Cash.PaybackYears)
	}
	// No sign change in the flows, so the IRR solver reports its sentinel.
	if result.Cash.IRR != 0 {
		t.Errorf("IRR = %v, expected 0 sentinel", result.Cash.IRR)
	}
}

func TestAnalyzeCashIncentiveNetting(t *testing.T) {
	s := baseScenario()
	s.FederalITCRate = 0.30
	s.StateIncentive = 1000
	s.UtilityIncentive = 500

	result := AnalyzeCash(nil, s)
	if result.Cash.FederalITCAmount != 6000 {
		t.Errorf("FederalITCAmount = %v, expected 6000", result.Cash.FederalITCAmount)
	}
	if result.Cash.NetCost != 12500 {
		t.Errorf("NetCost = %v, expected 12500", result.Cash.NetCost)
	}
	if result.YearlyProjections[0].CumulativeCashFlow != -11000 {
		t.Errorf("year-1 cumulative = %v, expected -11000", result.YearlyProjections[0].CumulativeCashFlow)
	}
}

func TestAnalyzeCashLCOE(t *testing.T) {
	s := baseScenario()
	s.AnnualMaintenanceCost = 100

	result := AnalyzeCash(nil, s)
	// (20000 + 25*100) / 250000 kWh = 0.09 $/kWh.
	if result.Cash.LCOE != 0.09 {
		t.Errorf("LCOE = %v, expected 0.09", result.Cash.LCOE)
	}
}

func TestAnalyzeCashInverterReplacement(t *testing.T) {
	s := baseScenario()
	s.InverterReplacementCost = 1500
	s.InverterReplacementYear = 12

	result := AnalyzeCash(nil, s)
	year11 := result.YearlyProjections[10]
	year12 := result.YearlyProjections[11]
	if year11.NetSavings != 1500 {
		t.Errorf("year-11 net savings = %v, expected 1500", year11.NetSavings)
	}
	if year12.NetSavings != 0 {
		t.Errorf("year-12 net savings = %v, expected 0 with inverter replacement", year12.NetSavings)
	}
}

func TestAnalyzeCashExportCredit(t *testing.T) {
	s := baseScenario()
	s.AnnualProductionKwh = 12000

	result := AnalyzeCash(nil, s)
	// 10000 kWh self-consumed at $0.15 plus 2000 kWh exported at $0.10.
	if result.YearlyProjections[0].NetSavings != 1700 {
		t.Errorf("year-1 net savings = %v, expected 1700", result.YearlyProjections[0].NetSavings)
	}
}

func TestAnalyzeCashDegradationAndEscalation(t *testing.T) {
	s := baseScenario()
	s.DegradationRate = 0.005
	s.UtilityEscalationRate = 0.03

	result := AnalyzeCash(nil, s)
	year2 := result.YearlyProjections[1]
	expectedProduction := 10000 * (1 - 0.005)
	if math.Abs(year2.ProductionKwh-expectedProduction) > 0.01 {
		t.Errorf("year-2 production = %v, expected %v", year2.ProductionKwh, expectedProduction)
	}
	expectedRate := 0.15 * 1.03
	if math.Abs(year2.UtilityRate-expectedRate) > 0.0001 {
		t.Errorf("year-2 utility rate = %v, expected %v", year2.UtilityRate, expectedRate)
	}
}

func TestAnalyzeCashFullyIncentivized(t *testing.T) {
	s := baseScenario()
	s.StateIncentive = 25000

	result := AnalyzeCash(nil, s)
	if result.Cash.PaybackYears != 0 {
		t.Errorf("payback = %v, expected 0 when incentives cover the cost", result.Cash.PaybackYears)
	}
}
