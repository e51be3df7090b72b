package sizing

import "github.com/helioplan/helioplan/pkg/types"

// EstimateLoad sums per-appliance daily consumption into a household load.
// The average load is the daily energy spread over 24 hours, which is what
// SizingInputs.HouseholdLoadW expects.
func EstimateLoad(items []types.ApplianceUsage) types.LoadEstimate {
	var dailyWH float64
	for _, item := range items {
		dailyWH += item.Watts * item.HoursPerDay
	}
	return types.LoadEstimate{
		DailyEnergyWH: dailyWH,
		AverageLoadW:  dailyWH / 24,
	}
}
