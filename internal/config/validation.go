package config

import "fmt"

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Warnings never block a run; the engine applies defensive
// defaults instead of failing.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Scenarios) == 0 {
		warnings = append(warnings, "configuration contains no scenarios")
	}

	active := 0
	for i := range conf.Scenarios {
		scenario := &conf.Scenarios[i]
		if !scenario.Active {
			continue
		}
		active++
		warnings = append(warnings, scenario.validate()...)
	}
	if active == 0 && len(conf.Scenarios) > 0 {
		warnings = append(warnings, "no scenarios are marked active")
	}

	return warnings
}

func (scenario *Scenario) validate() []string {
	var warnings []string
	prefix := fmt.Sprintf("scenario %s:", scenario.Name)

	if scenario.Usage.MonthlyUsageKwh <= 0 {
		warnings = append(warnings, fmt.Sprintf("%s monthly usage is not positive; savings will be zero", prefix))
	}
	if scenario.Rates.UtilityRate <= 0 {
		warnings = append(warnings, fmt.Sprintf("%s utility rate is not positive; savings will be zero", prefix))
	}
	if scenario.Site.ShadingFraction < 0 || scenario.Site.ShadingFraction > 1 {
		warnings = append(warnings, fmt.Sprintf("%s shading fraction %.2f is outside [0, 1]", prefix, scenario.Site.ShadingFraction))
	}
	if scenario.System.SystemCost < 0 {
		warnings = append(warnings, fmt.Sprintf("%s system cost is negative", prefix))
	}
	if scenario.System.AnnualProductionKwh == 0 && scenario.System.SystemSizeKw == 0 {
		warnings = append(warnings, fmt.Sprintf("%s has neither an annual production figure nor a system size to estimate one from", prefix))
	}
	if scenario.Incentives.FederalITCRate < 0 || scenario.Incentives.FederalITCRate > 1 {
		warnings = append(warnings, fmt.Sprintf("%s federal ITC rate %.2f is outside [0, 1]", prefix, scenario.Incentives.FederalITCRate))
	}
	if scenario.Loan.LoanAmount > 0 && scenario.Loan.TermYears <= 0 {
		warnings = append(warnings, fmt.Sprintf("%s loan amount is set but the term is zero", prefix))
	}
	if scenario.System.SystemCost <= 0 && scenario.Loan.LoanAmount <= 0 &&
		scenario.TPO.MonthlyLeasePayment <= 0 && scenario.TPO.PPARatePerKwh <= 0 {
		warnings = append(warnings, fmt.Sprintf("%s requests no financing options; only the do-nothing baseline will be produced", prefix))
	}

	return warnings
}
