// Package sizing contains the off-grid PV sizing engine: a deterministic
// computation from load and site parameters to component sizes, costs, and
// financial-return metrics. It does no I/O and holds no state, so it is safe
// to call repeatedly or concurrently.
package sizing

import (
	"math"

	"github.com/helioplan/helioplan/pkg/types"
)

// GridCO2KGPerKWH is the assumed average CO2 intensity of grid electricity.
const GridCO2KGPerKWH = 0.85

// SizeSystem validates the inputs and derives the full system design. It
// returns a *types.ValidationError naming the offending field if any input is
// out of range; it never returns a partial result.
func SizeSystem(in types.SizingInputs) (types.SizingResult, error) {
	if err := in.Validate(); err != nil {
		return types.SizingResult{}, err
	}

	dailyEnergyWH := in.HouseholdLoadW * 24
	requiredBatteryWH := dailyEnergyWH * in.DaysOfAutonomy / in.BatteryDOD

	// Pick the cheapest battery bank candidate. The cost formula below does not
	// depend on the candidate voltage, so the scan always keeps the first
	// candidate; the loop is kept so a voltage-dependent cost model slots in
	// without changing the selection rules: strictly lower cost wins, ties keep
	// the earliest candidate.
	var best types.BatteryOption
	lowestCost := math.Inf(1)
	for i, voltage := range in.BatteryVoltageOptions {
		cost := in.BatteryCostPerWH * requiredBatteryWH
		if i == 0 || cost < lowestCost {
			lowestCost = cost
			best = types.BatteryOption{
				Voltage:  voltage,
				AmpHours: requiredBatteryWH / voltage,
				Cost:     cost,
			}
		}
	}

	solarPanelSizeW := (dailyEnergyWH / (in.SunHoursPerDay * in.PanelEfficiency)) * in.SolarSafetyFactor
	solarPanelCost := solarPanelSizeW * in.PVPanelCostPerWatt

	controllerAmpRating := (solarPanelSizeW / best.Voltage) * in.ControllerSafetyFactor
	controllerCost := controllerAmpRating * in.ChargeControllerCostPerAmp

	// Replacements over the system lifetime: the bank bought at install counts
	// separately, so a lifetime that covers n full cycle-life periods needs n-1
	// replacements.
	batteryReplacements := int(float64(in.SystemLifetimeYears) * 365 / float64(in.BatteryCycleLife))
	batteryReplacements = max(0, batteryReplacements-1)
	totalBatteryCost := best.Cost * float64(1+batteryReplacements)

	// Total cost is signed: a subsidy larger than the raw cost leaves it
	// negative.
	totalSystemCost := solarPanelCost + totalBatteryCost + controllerCost + in.InverterCost + in.OtherCosts
	totalSystemCost += in.AnnualMaintenanceCost * float64(in.SystemLifetimeYears)
	totalSystemCost -= in.Subsidy

	annualEnergyProductionKWH := dailyEnergyWH * 365 / 1000
	annualSavings := annualEnergyProductionKWH * in.ElectricityCostPerKWH

	// A system that saves nothing never pays for itself.
	paybackYears := types.Years(math.Inf(1))
	if annualSavings > 0 {
		paybackYears = types.Years(totalSystemCost / annualSavings)
	}

	lifetimeSavings := annualSavings*float64(in.SystemLifetimeYears) - totalSystemCost

	// A fully subsidized (or negative-cost) system has no meaningful ROI
	// denominator; report 0 rather than dividing by zero.
	var roiPercentage float64
	if totalSystemCost > 0 {
		roiPercentage = (lifetimeSavings / totalSystemCost) * 100
	}

	co2PerYear := annualEnergyProductionKWH * GridCO2KGPerKWH

	return types.SizingResult{
		BestBatteryOption:         best,
		SolarPanelSizeW:           solarPanelSizeW,
		ChargeControllerAmpRating: controllerAmpRating,
		DailyEnergyWH:             dailyEnergyWH,
		RequiredBatteryCapacityWH: requiredBatteryWH,
		TotalSystemCost:           totalSystemCost,
		BatteryReplacements:       batteryReplacements,
		TotalBatteryCost:          totalBatteryCost,
		AnnualMaintenanceCost:     in.AnnualMaintenanceCost,
		Subsidy:                   in.Subsidy,
		PaybackYears:              paybackYears,
		AnnualSavings:             annualSavings,
		LifetimeSavings:           lifetimeSavings,
		ROIPercentage:             roiPercentage,
		AnnualEnergyProductionKWH: annualEnergyProductionKWH,
		CO2ReductionKGPerYear:     co2PerYear,
		LifetimeCO2ReductionKG:    co2PerYear * float64(in.SystemLifetimeYears),
	}, nil
}
