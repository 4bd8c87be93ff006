// Package config defines the data structures related to configuration and
// includes functions for loading, defaulting, and validating scenario files.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/iwvelando/solar-economics/pkg/analysis"
	"github.com/iwvelando/solar-economics/pkg/constants"
	"github.com/iwvelando/solar-economics/pkg/production"
	"github.com/iwvelando/solar-economics/pkg/sizing"
)

// Configuration holds all configuration for solar-economics.
type Configuration struct {
	Scenarios []Scenario
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Scenario holds all inputs for one proposed installation.
type Scenario struct {
	Name   string
	Active bool

	Site       SiteConfig
	Usage      UsageConfig
	Rates      RatesConfig
	System     SystemConfig
	Incentives IncentivesConfig
	Loan       LoanConfig
	TPO        TPOConfig
	Analysis   AnalysisConfig
}

// SiteConfig describes the installation site.
type SiteConfig struct {
	State           string
	LatitudeDeg     float64
	TiltDeg         float64
	AzimuthDeg      float64
	ShadingFraction float64
}

// UsageConfig describes the host's electricity consumption.
type UsageConfig struct {
	MonthlyUsageKwh float64
}

// RatesConfig describes utility pricing.
type RatesConfig struct {
	UtilityRate           float64 // $/kWh retail
	UtilityEscalationRate float64
	NetMeteringRate       float64 // $/kWh for exported energy
}

// SystemConfig describes the proposed array and its operating costs. When
// AnnualProductionKwh is zero the production estimator fills it in from the
// system size and site geometry.
type SystemConfig struct {
	SystemCost              float64
	SystemSizeKw            float64
	PanelWattage            float64
	AnnualProductionKwh     float64
	SystemLossesFraction    float64
	AnnualMaintenanceCost   float64
	InverterReplacementCost float64
	InverterReplacementYear int
}

// IncentivesConfig describes purchase incentives.
type IncentivesConfig struct {
	FederalITCRate   float64
	StateIncentive   float64
	UtilityIncentive float64
}

// LoanConfig describes loan financing terms.
type LoanConfig struct {
	DownPayment    float64
	LoanAmount     float64
	InterestRate   float64
	TermYears      int
	ApplyITCToLoan bool
}

// TPOConfig describes third-party-ownership terms.
type TPOConfig struct {
	MonthlyLeasePayment float64
	PPARatePerKwh       float64
	EscalationRate      float64
	TermYears           int
}

// AnalysisConfig describes the projection horizon and discounting.
type AnalysisConfig struct {
	Years           int
	DegradationRate float64
	DiscountRate    float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills every unset optional parameter with its documented
// default in one auditable step, rather than scattering fallbacks through
// the analyzers.
func (conf *Configuration) ApplyDefaults() {
	for i := range conf.Scenarios {
		conf.Scenarios[i].applyDefaults()
	}
}

func (scenario *Scenario) applyDefaults() {
	if scenario.Analysis.Years == 0 {
		scenario.Analysis.Years = constants.DefaultAnalysisYears
	}
	if scenario.Analysis.DegradationRate == 0 {
		scenario.Analysis.DegradationRate = constants.DefaultDegradationRate
	}
	if scenario.Analysis.DiscountRate == 0 {
		scenario.Analysis.DiscountRate = constants.DefaultDiscountRate
	}
	if scenario.Rates.UtilityEscalationRate == 0 {
		scenario.Rates.UtilityEscalationRate = constants.DefaultUtilityEscalationRate
	}
	if scenario.Site.AzimuthDeg == 0 {
		scenario.Site.AzimuthDeg = constants.DefaultAzimuthDeg
	}
	if scenario.Site.TiltDeg == 0 {
		scenario.Site.TiltDeg = constants.DefaultTiltDeg
	}
	if scenario.System.PanelWattage == 0 {
		scenario.System.PanelWattage = constants.DefaultPanelWattage
	}
	if scenario.TPO.TermYears == 0 && (scenario.TPO.MonthlyLeasePayment > 0 || scenario.TPO.PPARatePerKwh > 0) {
		scenario.TPO.TermYears = scenario.Analysis.Years
	}
}

// NeedsProductionEstimate reports whether the scenario relies on the
// production estimator instead of a caller-supplied annual figure.
func (scenario *Scenario) NeedsProductionEstimate() bool {
	return scenario.System.AnnualProductionKwh == 0 && scenario.System.SystemSizeKw > 0
}

// ProductionInput converts the scenario to a production estimator input.
func (scenario *Scenario) ProductionInput() production.Input {
	return production.Input{
		SystemSizeKw:         scenario.System.SystemSizeKw,
		LatitudeDeg:          scenario.Site.LatitudeDeg,
		TiltDeg:              scenario.Site.TiltDeg,
		AzimuthDeg:           scenario.Site.AzimuthDeg,
		SystemLossesFraction: scenario.System.SystemLossesFraction,
	}
}

// SizingInput converts the scenario to a sizing calculator input using the
// supplied baseline location factor.
func (scenario *Scenario) SizingInput(locationFactor float64) sizing.Input {
	return sizing.Input{
		MonthlyUsageKwh:      scenario.Usage.MonthlyUsageKwh,
		TargetOffsetFraction: 1.0,
		PanelWattage:         scenario.System.PanelWattage,
		LocationFactor:       locationFactor,
		RoofAzimuthDeg:       scenario.Site.AzimuthDeg,
		RoofTiltDeg:          scenario.Site.TiltDeg,
		ShadingFraction:      scenario.Site.ShadingFraction,
	}
}

// ToAnalysisScenario flattens the scenario into the analyzer input, with the
// resolved annual production (either configured or estimated).
func (scenario *Scenario) ToAnalysisScenario(annualProductionKwh float64) analysis.Scenario {
	return analysis.Scenario{
		AnnualProductionKwh:   annualProductionKwh,
		AnnualUsageKwh:        scenario.Usage.MonthlyUsageKwh * constants.MonthsPerYear,
		UtilityRate:           scenario.Rates.UtilityRate,
		UtilityEscalationRate: scenario.Rates.UtilityEscalationRate,
		NetMeteringRate:       scenario.Rates.NetMeteringRate,
		DegradationRate:       scenario.Analysis.DegradationRate,
		DiscountRate:          scenario.Analysis.DiscountRate,
		AnalysisYears:         scenario.Analysis.Years,

		SystemCost:       scenario.System.SystemCost,
		FederalITCRate:   scenario.Incentives.FederalITCRate,
		StateIncentive:   scenario.Incentives.StateIncentive,
		UtilityIncentive: scenario.Incentives.UtilityIncentive,

		AnnualMaintenanceCost:   scenario.System.AnnualMaintenanceCost,
		InverterReplacementCost: scenario.System.InverterReplacementCost,
		InverterReplacementYear: scenario.System.InverterReplacementYear,

		DownPayment:      scenario.Loan.DownPayment,
		LoanAmount:       scenario.Loan.LoanAmount,
		LoanInterestRate: scenario.Loan.InterestRate,
		LoanTermYears:    scenario.Loan.TermYears,
		ApplyITCToLoan:   scenario.Loan.ApplyITCToLoan,

		MonthlyLeasePayment: scenario.TPO.MonthlyLeasePayment,
		PPARatePerKwh:       scenario.TPO.PPARatePerKwh,
		TPOEscalationRate:   scenario.TPO.EscalationRate,
		TPOTermYears:        scenario.TPO.TermYears,
	}
}
