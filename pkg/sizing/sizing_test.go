package sizing

import (
	"testing"

	"github.com/helioplan/helioplan/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInputs returns the worked example from the reference design: a 1kW
// household with 2 days of autonomy on an AGM bank.
func validInputs() types.SizingInputs {
	in := types.DefaultSizingInputs()
	in.HouseholdLoadW = 1000
	in.DaysOfAutonomy = 2
	in.BatteryDOD = 0.7
	in.SunHoursPerDay = 4.5
	in.BatteryVoltageOptions = []float64{12}
	in.PVPanelCostPerWatt = 0.85
	in.BatteryCostPerWH = 0.22
	in.ChargeControllerCostPerAmp = 8.0
	in.InverterCost = 500
	in.OtherCosts = 200
	return in
}

func TestSizeSystem(t *testing.T) {
	t.Run("Worked Example", func(t *testing.T) {
		res, err := SizeSystem(validInputs())
		require.NoError(t, err)

		assert.Equal(t, 24000.0, res.DailyEnergyWH)
		assert.InDelta(t, 68571.43, res.RequiredBatteryCapacityWH, 0.01)
		assert.InDelta(t, 35555.56, res.SolarPanelSizeW, 0.01)
		assert.InDelta(t, 3703.70, res.ChargeControllerAmpRating, 0.01)

		assert.Equal(t, 12.0, res.BestBatteryOption.Voltage)
		assert.InDelta(t, res.RequiredBatteryCapacityWH/12, res.BestBatteryOption.AmpHours, 0.01)
		assert.InDelta(t, 0.22*res.RequiredBatteryCapacityWH, res.BestBatteryOption.Cost, 0.01)

		// 25y * 365 / 1000 days = 9 full periods, so 8 replacements on top of
		// the initial bank.
		assert.Equal(t, 8, res.BatteryReplacements)
		assert.InDelta(t, res.BestBatteryOption.Cost*9, res.TotalBatteryCost, 0.01)

		assert.Equal(t, 8760.0, res.AnnualEnergyProductionKWH)
		assert.InDelta(t, 1314.0, res.AnnualSavings, 0.01)
		assert.False(t, res.PaybackYears.IsInf())
		assert.Greater(t, float64(res.PaybackYears), 0.0)

		assert.InDelta(t, 8760*0.85, res.CO2ReductionKGPerYear, 0.01)
		assert.InDelta(t, res.CO2ReductionKGPerYear*25, res.LifetimeCO2ReductionKG, 0.01)
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, err := SizeSystem(validInputs())
		require.NoError(t, err)
		b, err := SizeSystem(validInputs())
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("Invariants", func(t *testing.T) {
		in := validInputs()
		in.HouseholdLoadW = 731.5
		in.DaysOfAutonomy = 3.25
		in.BatteryDOD = 0.8
		res, err := SizeSystem(in)
		require.NoError(t, err)

		assert.Equal(t, in.HouseholdLoadW*24, res.DailyEnergyWH)
		assert.Equal(t, res.DailyEnergyWH*in.DaysOfAutonomy/in.BatteryDOD, res.RequiredBatteryCapacityWH)
		assert.Equal(t, res.BestBatteryOption.Cost*float64(1+res.BatteryReplacements), res.TotalBatteryCost)
	})

	// Characterization: the battery cost formula is independent of the
	// candidate voltage, so the selection loop always keeps the first
	// candidate. This pins the current behavior, it is not a claim that the
	// cost model is right.
	t.Run("First Voltage Wins", func(t *testing.T) {
		in := validInputs()
		in.BatteryVoltageOptions = []float64{24, 12, 48}
		res, err := SizeSystem(in)
		require.NoError(t, err)
		assert.Equal(t, 24.0, res.BestBatteryOption.Voltage)
		assert.InDelta(t, res.RequiredBatteryCapacityWH/24, res.BestBatteryOption.AmpHours, 0.01)
	})

	t.Run("Battery Replacements", func(t *testing.T) {
		for _, tc := range []struct {
			lifetimeYears int
			cycleLifeDays int
			expected      int
		}{
			{25, 1000, 8},
			{25, 3000, 2},
			{25, 500, 17},
			{1, 1000, 0},
			{2, 365, 1},
			{25, 10000, 0},
		} {
			in := validInputs()
			in.SystemLifetimeYears = tc.lifetimeYears
			in.BatteryCycleLife = tc.cycleLifeDays
			res, err := SizeSystem(in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, res.BatteryReplacements,
				"lifetime=%d cycleLife=%d", tc.lifetimeYears, tc.cycleLifeDays)
		}
	})

	t.Run("Zero Savings Means Infinite Payback", func(t *testing.T) {
		in := validInputs()
		in.ElectricityCostPerKWH = 0
		res, err := SizeSystem(in)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.AnnualSavings)
		assert.True(t, res.PaybackYears.IsInf())
		// Lifetime savings turn negative: the system is pure cost.
		assert.Negative(t, res.LifetimeSavings)
	})

	t.Run("Zero Cost Means Zero ROI", func(t *testing.T) {
		in := validInputs()
		in.PVPanelCostPerWatt = 0
		in.BatteryCostPerWH = 0
		in.ChargeControllerCostPerAmp = 0
		in.InverterCost = 0
		in.OtherCosts = 0
		res, err := SizeSystem(in)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.TotalSystemCost)
		assert.Equal(t, 0.0, res.ROIPercentage)
		// but the savings are still real
		assert.Positive(t, res.LifetimeSavings)
	})

	t.Run("Subsidy May Exceed Cost", func(t *testing.T) {
		in := validInputs()
		in.Subsidy = 1e9
		res, err := SizeSystem(in)
		require.NoError(t, err)
		assert.Negative(t, res.TotalSystemCost)
		// negative cost also yields the zero-ROI sentinel
		assert.Equal(t, 0.0, res.ROIPercentage)
	})

	t.Run("Validation", func(t *testing.T) {
		for _, tc := range []struct {
			name   string
			mutate func(*types.SizingInputs)
			field  string
		}{
			{"zero load", func(in *types.SizingInputs) { in.HouseholdLoadW = 0 }, "householdLoadW"},
			{"negative load", func(in *types.SizingInputs) { in.HouseholdLoadW = -10 }, "householdLoadW"},
			{"zero autonomy", func(in *types.SizingInputs) { in.DaysOfAutonomy = 0 }, "daysOfAutonomy"},
			{"dod too high", func(in *types.SizingInputs) { in.BatteryDOD = 1.5 }, "batteryDOD"},
			{"dod zero", func(in *types.SizingInputs) { in.BatteryDOD = 0 }, "batteryDOD"},
			{"zero sun hours", func(in *types.SizingInputs) { in.SunHoursPerDay = 0 }, "sunHoursPerDay"},
			{"no voltages", func(in *types.SizingInputs) { in.BatteryVoltageOptions = nil }, "batteryVoltageOptions"},
			{"zero efficiency", func(in *types.SizingInputs) { in.PanelEfficiency = 0 }, "panelEfficiency"},
			{"zero lifetime", func(in *types.SizingInputs) { in.SystemLifetimeYears = 0 }, "systemLifetimeYears"},
			{"zero cycle life", func(in *types.SizingInputs) { in.BatteryCycleLife = 0 }, "batteryCycleLife"},
		} {
			t.Run(tc.name, func(t *testing.T) {
				in := validInputs()
				tc.mutate(&in)
				_, err := SizeSystem(in)
				require.Error(t, err)
				var verr *types.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tc.field, verr.Field)
			})
		}
	})

	t.Run("DOD Of Exactly One Is Valid", func(t *testing.T) {
		in := validInputs()
		in.BatteryDOD = 1
		res, err := SizeSystem(in)
		require.NoError(t, err)
		assert.Equal(t, res.DailyEnergyWH*in.DaysOfAutonomy, res.RequiredBatteryCapacityWH)
	})
}
