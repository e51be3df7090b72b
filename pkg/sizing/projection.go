package sizing

import "github.com/helioplan/helioplan/pkg/types"

// Project expands a sizing result into the year-by-year series the chart
// layer plots: cumulative profit and running ROI for each year of the system
// lifetime, with the first profitable year marked as the payback year.
//
// Maintenance is charged per elapsed year on top of the total system cost, so
// the running ROI denominator grows over time.
func Project(res types.SizingResult, lifetimeYears int) []types.YearPoint {
	if lifetimeYears <= 0 {
		return nil
	}

	points := make([]types.YearPoint, 0, lifetimeYears)
	paybackMarked := false
	for year := 1; year <= lifetimeYears; year++ {
		y := float64(year)
		profit := res.AnnualSavings*y - res.AnnualMaintenanceCost*y - res.TotalSystemCost

		var roi float64
		basis := res.TotalSystemCost + res.AnnualMaintenanceCost*(y-1)
		if basis > 0 {
			roi = profit / basis * 100
		}

		p := types.YearPoint{
			Year:             year,
			CumulativeProfit: profit,
			ROIPercent:       roi,
		}
		if !paybackMarked && profit > 0 {
			p.PaybackYear = true
			paybackMarked = true
		}
		points = append(points, p)
	}
	return points
}
