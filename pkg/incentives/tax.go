package incentives

import (
	"fmt"
	"strings"

	"github.com/iwvelando/solar-economics/pkg/mathutil"
)

// Federal investment-tax-credit rates for systems placed in service in 2026.
const (
	commercialBaseRate            = 0.30
	commercialBaseRateNoWage      = 0.06
	bonusAdderRate                = 0.10
	bonusAdderRateNoWage          = 0.02
	lowIncomeBonusAdderRateNoWage = 0.04
)

// stateCreditRule describes one state's credit: either a percentage of cost
// capped at a fixed dollar amount, or a flat grant.
type stateCreditRule struct {
	Rate      float64
	Cap       float64
	FlatGrant float64
}

// stateCreditRules is the 2026 snapshot of state-level credits keyed by
// two-letter state code.
var stateCreditRules = map[string]stateCreditRule{
	"AZ": {Rate: 0.25, Cap: 1000},
	"HI": {Rate: 0.35, Cap: 5000},
	"MA": {Rate: 0.15, Cap: 1000},
	"MT": {FlatGrant: 500},
	"NM": {Rate: 0.10, Cap: 6000},
	"NY": {Rate: 0.25, Cap: 5000},
	"SC": {Rate: 0.25, Cap: 3500},
	"UT": {FlatGrant: 400},
}

// TaxInput holds the parameters for a tax benefit calculation.
type TaxInput struct {
	State           string  `json:"state"`
	SystemCost      float64 `json:"systemCost"`
	Commercial      bool    `json:"commercial"`
	PrevailingWage  bool    `json:"prevailingWage"`
	DomesticContent bool    `json:"domesticContent"`
	EnergyCommunity bool    `json:"energyCommunity"`
	LowIncome       bool    `json:"lowIncome"`
}

// TaxBenefit is the computed federal and state credit for a system.
type TaxBenefit struct {
	State         string   `json:"state"`
	FederalRate   float64  `json:"federalRate"`
	FederalCredit float64  `json:"federalCredit"`
	StateCredit   float64  `json:"stateCredit"`
	TotalBenefit  float64  `json:"totalBenefit"`
	Notes         []string `json:"notes,omitempty"`
}

// CalculateTaxBenefit computes the federal ITC and state credit under 2026
// rules. The residential federal credit expired at the end of 2025, so
// residential systems carry a zero federal rate with an explanatory note.
// Commercial systems earn a 30% base rate with prevailing-wage compliance or
// 6% without, plus up to three bonus adders. The low-income adder is worth
// 0.04 without prevailing wage, not the uniform 0.02 the other adders carry.
func CalculateTaxBenefit(in TaxInput) TaxBenefit {
	state := strings.ToUpper(strings.TrimSpace(in.State))
	var notes []string

	baseRate := 0.0
	if in.Commercial {
		if in.PrevailingWage {
			baseRate = commercialBaseRate
		} else {
			baseRate = commercialBaseRateNoWage
			notes = append(notes, "commercial base rate reduced to 6% without prevailing-wage compliance")
		}
	} else {
		notes = append(notes, "residential federal investment tax credit is 0% for systems placed in service in 2026; the residential credit expired at the end of 2025")
	}

	rate := baseRate
	if in.Commercial || baseRate > 0 {
		if in.DomesticContent {
			rate += adderRate(in.PrevailingWage, bonusAdderRateNoWage)
		}
		if in.EnergyCommunity {
			rate += adderRate(in.PrevailingWage, bonusAdderRateNoWage)
		}
		if in.LowIncome {
			rate += adderRate(in.PrevailingWage, lowIncomeBonusAdderRateNoWage)
		}
	}

	federalCredit := in.SystemCost * rate

	stateCredit := 0.0
	if rule, ok := stateCreditRules[state]; ok {
		if rule.FlatGrant > 0 {
			stateCredit = rule.FlatGrant
		} else {
			stateCredit = mathutil.Min(in.SystemCost*rule.Rate, rule.Cap)
		}
	} else if state != "" {
		notes = append(notes, fmt.Sprintf("no state credit on record for %s", state))
	}

	return TaxBenefit{
		State:         state,
		FederalRate:   mathutil.RoundRate(rate),
		FederalCredit: mathutil.Round(federalCredit),
		StateCredit:   mathutil.Round(stateCredit),
		TotalBenefit:  mathutil.Round(federalCredit + stateCredit),
		Notes:         notes,
	}
}

// adderRate returns the bonus adder value for the given prevailing-wage
// status. Every adder is worth 0.10 with prevailing wage; the non-compliant
// value varies per adder.
func adderRate(prevailingWage bool, noWageRate float64) float64 {
	if prevailingWage {
		return bonusAdderRate
	}
	return noWageRate
}
