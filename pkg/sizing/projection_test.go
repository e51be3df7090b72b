package sizing

import (
	"testing"

	"github.com/helioplan/helioplan/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	res := types.SizingResult{
		TotalSystemCost:       1000,
		AnnualSavings:         300,
		AnnualMaintenanceCost: 50,
	}

	points := Project(res, 10)
	require.Len(t, points, 10)

	// year 1: 300 - 50 - 1000 = -750, basis 1000
	assert.Equal(t, 1, points[0].Year)
	assert.InDelta(t, -750, points[0].CumulativeProfit, 0.001)
	assert.InDelta(t, -75, points[0].ROIPercent, 0.001)
	assert.False(t, points[0].PaybackYear)

	// net 250/year: profit crosses zero in year 4 (1000/250)
	assert.InDelta(t, 0, points[3].CumulativeProfit, 0.001)
	assert.False(t, points[3].PaybackYear, "profit must be strictly positive to count as payback")
	assert.Positive(t, points[4].CumulativeProfit)
	assert.True(t, points[4].PaybackYear)

	// only one year carries the payback marker
	var marked int
	for _, p := range points {
		if p.PaybackYear {
			marked++
		}
	}
	assert.Equal(t, 1, marked)

	// basis grows with elapsed maintenance: year 10 basis is 1000 + 50*9
	expectedProfit := 300*10.0 - 50*10.0 - 1000
	assert.InDelta(t, expectedProfit, points[9].CumulativeProfit, 0.001)
	assert.InDelta(t, expectedProfit/(1000+50*9)*100, points[9].ROIPercent, 0.001)
}

func TestProjectEdgeCases(t *testing.T) {
	t.Run("Non-Positive Lifetime", func(t *testing.T) {
		assert.Nil(t, Project(types.SizingResult{}, 0))
		assert.Nil(t, Project(types.SizingResult{}, -3))
	})

	t.Run("Zero Cost Basis", func(t *testing.T) {
		res := types.SizingResult{AnnualSavings: 100}
		points := Project(res, 2)
		require.Len(t, points, 2)
		// no meaningful ROI denominator, profit still accumulates
		assert.Equal(t, 0.0, points[0].ROIPercent)
		assert.InDelta(t, 100, points[0].CumulativeProfit, 0.001)
		assert.True(t, points[0].PaybackYear)
	})

	t.Run("Never Profitable", func(t *testing.T) {
		res := types.SizingResult{TotalSystemCost: 1000}
		for _, p := range Project(res, 5) {
			assert.False(t, p.PaybackYear)
			assert.Negative(t, p.CumulativeProfit)
		}
	})
}

func TestEstimateLoad(t *testing.T) {
	items := []types.ApplianceUsage{
		{Name: "Refrigerator", Watts: 150, HoursPerDay: 24},
		{Name: "LED TV", Watts: 50, HoursPerDay: 4},
		{Name: "Lights", Watts: 60, HoursPerDay: 6},
	}
	est := EstimateLoad(items)
	assert.InDelta(t, 150*24+50*4+60*6, est.DailyEnergyWH, 0.001)
	assert.InDelta(t, est.DailyEnergyWH/24, est.AverageLoadW, 0.001)

	empty := EstimateLoad(nil)
	assert.Equal(t, 0.0, empty.DailyEnergyWH)
	assert.Equal(t, 0.0, empty.AverageLoadW)
}
