package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/helioplan/helioplan/pkg/catalog"
	"github.com/helioplan/helioplan/pkg/geocode"
	"github.com/helioplan/helioplan/pkg/log"
	"github.com/helioplan/helioplan/pkg/sizing"
	"github.com/helioplan/helioplan/pkg/types"
)

// geocodeResponse augments the resolved location with the pricing region and
// estimated sun hours so a single lookup fills the sizing form.
type geocodeResponse struct {
	types.Location
	Region          string  `json:"region"`
	RegionSupported bool    `json:"regionSupported"`
	SunHoursPerDay  float64 `json:"sunHoursPerDay"`
}

func (s *Server) handleGeocode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	address := r.URL.Query().Get("address")
	if address == "" {
		writeJSONError(w, "address is required", http.StatusBadRequest)
		return
	}

	loc, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		if errors.Is(err, geocode.ErrNoResults) {
			writeJSONError(w, "address not found", http.StatusNotFound)
			return
		}
		log.Ctx(ctx).ErrorContext(ctx, "failed to geocode address", slog.Any("error", err))
		writeJSONError(w, "failed to geocode address", http.StatusBadGateway)
		return
	}

	region, supported := catalog.RegionForCoordinates(loc.Latitude, loc.Longitude)
	writeJSON(w, geocodeResponse{
		Location:        loc,
		Region:          region,
		RegionSupported: supported,
		SunHoursPerDay:  sizing.EstimateSunHours(loc.Latitude),
	})
}
