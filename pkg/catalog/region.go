package catalog

// RegionForCoordinates maps a lat/lon pair to a supported pricing region
// using coarse bounding boxes. The second return is false when the point
// falls outside every box; callers should fall back to FallbackRegion.
func RegionForCoordinates(lat, lon float64) (string, bool) {
	if lat >= 47.2 && lat <= 55.1 && lon >= 5.9 && lon <= 15.1 {
		return "Germany", true
	}
	if lat >= 35 && lat <= 71 && lon >= -10 && lon <= 40 {
		return "Europe", true
	}
	return FallbackRegion, false
}
