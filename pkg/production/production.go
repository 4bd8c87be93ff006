// Package production estimates monthly and annual energy output for a
// photovoltaic array from its size, location, and orientation. The estimate
// is deterministic: identical inputs always produce identical output.
package production

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/iwvelando/solar-economics/pkg/constants"
	"github.com/iwvelando/solar-economics/pkg/mathutil"
)

// Input holds the parameters for a production estimate.
type Input struct {
	SystemSizeKw         float64 `json:"systemSizeKw"`
	LatitudeDeg          float64 `json:"latitudeDeg"`
	TiltDeg              float64 `json:"tiltDeg"`
	AzimuthDeg           float64 `json:"azimuthDeg"`
	SystemLossesFraction float64 `json:"systemLossesFraction"`
}

// MonthlyProduction is one month of estimated output.
type MonthlyProduction struct {
	Month                       int     `json:"month"`
	Name                        string  `json:"name"`
	ProductionKwh               float64 `json:"productionKwh"`
	SolarResourceKwhPerM2PerDay float64 `json:"solarResourceKwhPerM2PerDay"`
}

// Result holds the estimated production profile.
type Result struct {
	AnnualProductionKwh float64             `json:"annualProductionKwh"`
	Monthly             []MonthlyProduction `json:"monthly"`
	CapacityFactor      float64             `json:"capacityFactor"`
	PerformanceRatio    float64             `json:"performanceRatio"`
	PeakSunHours        float64             `json:"peakSunHours"`
}

// monthlyIrradianceFractions is the baseline distribution of annual
// irradiance across the twelve months for a mid-latitude northern-hemisphere
// site. The entries sum to exactly 1.0.
var monthlyIrradianceFractions = [constants.MonthsPerYear]float64{
	0.060, // January
	0.065, // February
	0.080, // March
	0.090, // April
	0.100, // May
	0.105, // June
	0.110, // July
	0.105, // August
	0.090, // September
	0.080, // October
	0.060, // November
	0.055, // December
}

// Estimator derives production profiles from array size and location.
type Estimator struct {
	logger *zap.Logger
}

// NewEstimator creates a new production estimator with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEstimator(logger *zap.Logger) *Estimator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Estimator{logger: logger}
}

// Estimate computes the annual and monthly production profile. The twelve
// seasonally-adjusted monthly fractions are renormalized to sum to 1 before
// they are multiplied by the annual total, so the monthly values always sum
// to the annual production within rounding tolerance.
func (e *Estimator) Estimate(in Input) Result {
	if in.AzimuthDeg == 0 {
		in.AzimuthDeg = constants.DefaultAzimuthDeg
	}

	absLatitude := math.Abs(in.LatitudeDeg)
	peakSunHours := mathutil.Clamp(constants.BasePeakSunHours-0.1*absLatitude,
		constants.MinPeakSunHours, constants.MaxPeakSunHours)

	azimuthFactor := math.Max(constants.MinAzimuthDerate, 1-0.002*math.Abs(in.AzimuthDeg-constants.DefaultAzimuthDeg))
	// The production estimator treats the site latitude as the optimal tilt;
	// the sizing calculator uses a fixed 30 degree reference. The two
	// baselines are intentionally distinct and must not be unified without
	// product input.
	tiltFactor := math.Max(constants.MinTiltDerate, 1-0.005*math.Abs(in.TiltDeg-absLatitude))
	lossFactor := 1 - math.Min(in.SystemLossesFraction, constants.MaxSystemLossesFraction)
	performanceRatio := azimuthFactor * tiltFactor * lossFactor

	annual := in.SystemSizeKw * peakSunHours * constants.DaysPerYear * performanceRatio

	// Seasonal swing grows with distance from the equator, phase-centered
	// between June and July.
	amplitude := math.Min(constants.MaxSeasonalAmplitude, 0.008*absLatitude)
	adjusted := make([]float64, constants.MonthsPerYear)
	sum := 0.0
	for i, fraction := range monthlyIrradianceFractions {
		adjusted[i] = fraction * (1 + amplitude*math.Cos(2*math.Pi*(float64(i)-5.5)/constants.MonthsPerYear))
		sum += adjusted[i]
	}
	if sum > 0 {
		for i := range adjusted {
			adjusted[i] /= sum
		}
	}

	monthly := make([]MonthlyProduction, constants.MonthsPerYear)
	for i := range monthly {
		monthly[i] = MonthlyProduction{
			Month:                       i + 1,
			Name:                        time.Month(i + 1).String(),
			ProductionKwh:               mathutil.Round(annual * adjusted[i]),
			SolarResourceKwhPerM2PerDay: mathutil.Round(peakSunHours * adjusted[i] * constants.MonthsPerYear),
		}
	}

	capacityFactor := 0.0
	if in.SystemSizeKw > 0 {
		capacityFactor = annual / (in.SystemSizeKw * constants.HoursPerYear)
	}

	e.logger.Debug(fmt.Sprintf("estimated %.0f kWh/yr for %.2f kW at latitude %.2f", annual, in.SystemSizeKw, in.LatitudeDeg),
		zap.String("op", "production.Estimate"),
	)

	return Result{
		AnnualProductionKwh: mathutil.Round(annual),
		Monthly:             monthly,
		CapacityFactor:      mathutil.RoundRate(capacityFactor),
		PerformanceRatio:    mathutil.RoundRate(performanceRatio),
		PeakSunHours:        mathutil.RoundRate(peakSunHours),
	}
}
