package analysis

import "math"

// yearEconomics captures the production and utility economics for one
// simulated year, shared by every analyzer.
type yearEconomics struct {
	production       float64 // degraded output, kWh
	rate             float64 // escalated retail rate, $/kWh
	selfConsumed     float64 // kWh
	exported         float64 // kWh
	gridCost         float64 // remaining grid purchases with solar, $
	costWithoutSolar float64 // $
	solarValue       float64 // self-consumption offset + export credit, $
}

// scenarioYear evaluates the shared per-year economics for year 1..N.
// Exported energy is credited at the net-metering rate, but the credit
// escalates at the retail escalator; the coupling is part of the model.
func scenarioYear(s Scenario, year int) yearEconomics {
	production := s.AnnualProductionKwh * math.Pow(1-s.DegradationRate, float64(year-1))
	escalation := math.Pow(1+s.UtilityEscalationRate, float64(year-1))
	rate := s.UtilityRate * escalation

	selfConsumed := math.Min(production, s.AnnualUsageKwh)
	exported := math.Max(0, production-s.AnnualUsageKwh)

	return yearEconomics{
		production:       production,
		rate:             rate,
		selfConsumed:     selfConsumed,
		exported:         exported,
		gridCost:         (s.AnnualUsageKwh - selfConsumed) * rate,
		costWithoutSolar: s.AnnualUsageKwh * rate,
		solarValue:       selfConsumed*rate + exported*s.NetMeteringRate*escalation,
	}
}

// ownerYearCost is the out-of-pocket operating cost for an owned system:
// maintenance plus the inverter replacement in its designated year.
func ownerYearCost(s Scenario, year int) float64 {
	cost := s.AnnualMaintenanceCost
	if s.InverterReplacementYear > 0 && year == s.InverterReplacementYear {
		cost += s.InverterReplacementCost
	}
	return cost
}

// interpolatePayback advances the payback bookkeeping for one year. It
// returns the interpolated payback year the first time cumulative cash flow
// turns non-negative, and the horizon when payback is never reached.
func interpolatePayback(year int, prevCumulative, cumulative, cashFlow float64, found bool, current float64) (float64, bool) {
	if found || cumulative < 0 {
		return current, found
	}
	if cashFlow > 0 {
		return float64(year-1) + (-prevCumulative)/cashFlow, true
	}
	return float64(year), true
}
