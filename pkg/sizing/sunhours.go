package sizing

import "math"

// EstimateSunHours returns a rough peak-sun-hours estimate from latitude
// alone, without any irradiance dataset: tropical sites get 6.0, temperate
// sites 5.0, everything poleward of 40° gets 4.0.
func EstimateSunHours(latitude float64) float64 {
	equatorDistance := math.Abs(latitude)
	switch {
	case equatorDistance < 20:
		return 6.0
	case equatorDistance < 40:
		return 5.0
	default:
		return 4.0
	}
}
