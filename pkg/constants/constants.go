// Package constants provides shared constants for the solar-economics engine.
package constants

// Calendar and unit constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the day count used for annualizing daily production
	DaysPerYear = 365

	// HoursPerYear is the hour count used for capacity factor calculations
	HoursPerYear = 8760

	// KwhPerMwh converts kilowatt-hours to megawatt-hours (1 REC = 1 MWh)
	KwhPerMwh = 1000.0

	// WattsPerKilowatt converts panel wattage to kilowatts
	WattsPerKilowatt = 1000.0
)

// Rounding constants
const (
	// CurrencyDecimals is the precision for monetary values
	CurrencyDecimals = 2

	// RateDecimals is the precision for rates, ratios, and derate factors
	RateDecimals = 4

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Engine defaults applied by config.ApplyDefaults
const (
	// DefaultAnalysisYears is the default projection horizon
	DefaultAnalysisYears = 25

	// DefaultDegradationRate is the default annual panel output decline (0.5%/yr)
	DefaultDegradationRate = 0.005

	// DefaultDiscountRate is the default discount rate for NPV (5%)
	DefaultDiscountRate = 0.05

	// DefaultUtilityEscalationRate is the default annual utility rate increase (2.5%)
	DefaultUtilityEscalationRate = 0.025

	// DefaultAzimuthDeg is the default array azimuth (180 = due south)
	DefaultAzimuthDeg = 180.0

	// DefaultTiltDeg is the default array tilt
	DefaultTiltDeg = 30.0

	// DefaultPanelWattage is the default panel nameplate rating in watts
	DefaultPanelWattage = 400.0
)

// IRR solver parameters
const (
	// IRRDefaultMaxIterations bounds the Newton-Raphson iteration count
	IRRDefaultMaxIterations = 100

	// IRRInitialGuess is the solver's starting rate
	IRRInitialGuess = 0.10

	// IRRConvergenceTolerance is the |NPV| threshold for early convergence
	IRRConvergenceTolerance = 0.01

	// IRRDerivativeFloor stops iteration before the Newton step blows up
	IRRDerivativeFloor = 1e-12

	// IRRMinRate and IRRMaxRate clamp each Newton step to valid discount rates
	IRRMinRate = -0.99
	IRRMaxRate = 10.0
)

// Sizing and production model parameters
const (
	// SizingReferenceTiltDeg is the fixed tilt optimum used by the sizing
	// calculator; the production estimator uses site latitude instead
	SizingReferenceTiltDeg = 30.0

	// SizeIncrementKw is the granularity system sizes are rounded up to
	SizeIncrementKw = 0.25

	// MinAzimuthDerate floors the azimuth orientation penalty
	MinAzimuthDerate = 0.6

	// MinTiltDerate floors the tilt orientation penalty
	MinTiltDerate = 0.75

	// MaxSystemLossesFraction caps the modeled system losses
	MaxSystemLossesFraction = 0.5

	// MaxSeasonalAmplitude caps the monthly seasonal swing
	MaxSeasonalAmplitude = 0.4

	// BasePeakSunHours anchors the latitude-derived peak-sun-hour estimate
	BasePeakSunHours = 8.5

	// MinPeakSunHours and MaxPeakSunHours clamp the peak-sun-hour estimate
	MinPeakSunHours = 3.0
	MaxPeakSunHours = 7.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)
