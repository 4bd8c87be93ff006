// Package incentives values renewable-energy certificates and federal/state
// tax credits under the encoded 2026 rule set. Market prices and state
// credit rules are static snapshots; live market data is supplied by callers
// through the explicit override fields.
package incentives

import (
	"strings"

	"github.com/iwvelando/solar-economics/pkg/constants"
	"github.com/iwvelando/solar-economics/pkg/mathutil"
)

// srecPricesPerMwh maps state code to the prevailing SREC market price in
// $/MWh. States absent from the table have no active SREC market.
var srecPricesPerMwh = map[string]float64{
	"DC": 390,
	"DE": 30,
	"IL": 62.5,
	"MA": 45,
	"MD": 57.5,
	"NJ": 85,
	"OH": 9,
	"PA": 38,
	"VA": 45,
}

// RECInput holds the parameters for a REC valuation. PriceOverridePerMwh,
// when non-nil, takes precedence over the static market table.
type RECInput struct {
	State               string   `json:"state"`
	AnnualProductionKwh float64  `json:"annualProductionKwh"`
	PriceOverridePerMwh *float64 `json:"priceOverridePerMwh,omitempty"`
}

// RECValuation is the estimated certificate income for a system. A state
// with no active market yields a zero-valued result, not an error.
type RECValuation struct {
	State               string  `json:"state"`
	AnnualRECs          float64 `json:"annualRECs"`
	SRECPricePerMwh     float64 `json:"srecPricePerMwh"`
	HasSRECMarket       bool    `json:"hasSRECMarket"`
	AnnualValue         float64 `json:"annualValue"`
	TwentyFiveYearValue float64 `json:"twentyFiveYearValue"`
}

// CalculateRECValue estimates certificate income from annual production.
// One REC is one MWh. The 25-year value assumes flat real pricing with no
// escalation. State codes are accepted case-insensitively and normalized to
// uppercase in the result.
func CalculateRECValue(in RECInput) RECValuation {
	state := strings.ToUpper(strings.TrimSpace(in.State))
	annualRECs := in.AnnualProductionKwh / constants.KwhPerMwh

	price := 0.0
	if in.PriceOverridePerMwh != nil {
		price = *in.PriceOverridePerMwh
	} else if tablePrice, ok := srecPricesPerMwh[state]; ok {
		price = tablePrice
	}

	annualValue := annualRECs * price
	return RECValuation{
		State:               state,
		AnnualRECs:          mathutil.Round(annualRECs),
		SRECPricePerMwh:     mathutil.Round(price),
		HasSRECMarket:       price > 0,
		AnnualValue:         mathutil.Round(annualValue),
		TwentyFiveYearValue: mathutil.Round(annualValue * constants.DefaultAnalysisYears),
	}
}
