// Package sizing converts energy usage and site geometry into a recommended
// array size and panel count.
package sizing

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/iwvelando/solar-economics/pkg/constants"
	"github.com/iwvelando/solar-economics/pkg/mathutil"
)

// Input holds the parameters for a sizing calculation. A zero azimuth or
// tilt is treated as unset and falls back to the documented defaults
// (180 = due south, 30 degrees).
type Input struct {
	MonthlyUsageKwh      float64 `json:"monthlyUsageKwh"`
	TargetOffsetFraction float64 `json:"targetOffsetFraction"`
	PanelWattage         float64 `json:"panelWattage"`
	LocationFactor       float64 `json:"locationFactor"` // baseline annual kWh per kW per year
	RoofAzimuthDeg       float64 `json:"roofAzimuthDeg"`
	RoofTiltDeg          float64 `json:"roofTiltDeg"`
	ShadingFraction      float64 `json:"shadingFraction"`
}

// Result holds the derived system size, panel count, and production estimate.
type Result struct {
	SystemSizeKw            float64 `json:"systemSizeKw"`
	PanelCount              int     `json:"panelCount"`
	AnnualProductionKwh     float64 `json:"annualProductionKwh"`
	OffsetFraction          float64 `json:"offsetFraction"`
	AzimuthDerate           float64 `json:"azimuthDerate"`
	TiltDerate              float64 `json:"tiltDerate"`
	ShadingDerate           float64 `json:"shadingDerate"`
	EffectiveLocationFactor float64 `json:"effectiveLocationFactor"`
}

// Calculator derives array sizes from usage and site geometry.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a new sizing calculator with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Calculate sizes an array to hit the target usage offset. All divisions are
// guarded to return 0 rather than failing on non-positive denominators.
func (c *Calculator) Calculate(in Input) Result {
	if in.RoofAzimuthDeg == 0 {
		in.RoofAzimuthDeg = constants.DefaultAzimuthDeg
	}
	if in.RoofTiltDeg == 0 {
		in.RoofTiltDeg = constants.DefaultTiltDeg
	}

	// The sizing calculator keeps a fixed 30 degree tilt reference; the
	// production estimator uses site latitude instead. The two baselines are
	// intentionally distinct and must not be unified without product input.
	azimuthDerate := math.Max(constants.MinAzimuthDerate, 1-0.002*math.Abs(in.RoofAzimuthDeg-constants.DefaultAzimuthDeg))
	tiltDerate := math.Max(constants.MinTiltDerate, 1-0.005*math.Abs(in.RoofTiltDeg-constants.SizingReferenceTiltDeg))
	shadingDerate := math.Max(0, 1-in.ShadingFraction)
	effectiveFactor := in.LocationFactor * azimuthDerate * tiltDerate * shadingDerate

	annualUsage := in.MonthlyUsageKwh * constants.MonthsPerYear
	targetProduction := annualUsage * in.TargetOffsetFraction

	rawSize := 0.0
	if effectiveFactor > 0 {
		rawSize = targetProduction / effectiveFactor
	}
	roundedSize := math.Ceil(rawSize/constants.SizeIncrementKw) * constants.SizeIncrementKw

	// Panel-count granularity wins over the 0.25 kW rounding: the actual
	// system size may exceed the rounded target.
	panelCount := 0
	actualSize := 0.0
	if in.PanelWattage > 0 {
		panelKw := in.PanelWattage / constants.WattsPerKilowatt
		panelCount = int(math.Ceil(roundedSize / panelKw))
		actualSize = float64(panelCount) * panelKw
	}

	production := actualSize * effectiveFactor
	offset := 0.0
	if annualUsage > 0 {
		offset = production / annualUsage
	}

	c.logger.Debug(fmt.Sprintf("sized %.2f kW array (%d panels) for %.0f kWh/yr target", actualSize, panelCount, targetProduction),
		zap.String("op", "sizing.Calculate"),
	)

	return Result{
		SystemSizeKw:            mathutil.Round(actualSize),
		PanelCount:              panelCount,
		AnnualProductionKwh:     mathutil.Round(production),
		OffsetFraction:          mathutil.RoundRate(offset),
		AzimuthDerate:           mathutil.RoundRate(azimuthDerate),
		TiltDerate:              mathutil.RoundRate(tiltDerate),
		ShadingDerate:           mathutil.RoundRate(shadingDerate),
		EffectiveLocationFactor: mathutil.Round(effectiveFactor),
	}
}
