package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/helioplan/helioplan/pkg/catalog"
	"github.com/helioplan/helioplan/pkg/log"
	"github.com/helioplan/helioplan/pkg/sizing"
	"github.com/helioplan/helioplan/pkg/types"
)

// sizeRequest is the request body for /api/size. Explicit fields override the
// engine defaults; the optional catalog selections are merged on top before
// sizing.
type sizeRequest struct {
	types.SizingInputs
	PanelType   string `json:"panelType,omitempty"`
	BatteryType string `json:"batteryType,omitempty"`
	Region      string `json:"region,omitempty"`
}

func (s *Server) handleSize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := sizeRequest{SizingInputs: types.DefaultSizingInputs()}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to decode sizing inputs", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	in := req.SizingInputs
	var err error
	if req.PanelType != "" {
		if in, err = catalog.ApplyPanel(in, req.PanelType); err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if req.BatteryType != "" {
		if in, err = catalog.ApplyBattery(in, req.BatteryType); err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if req.Region != "" {
		if in, err = catalog.ApplyRegion(in, req.Region, req.PanelType, req.BatteryType); err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	res, err := sizing.SizeSystem(in)
	if err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			writeJSONError(w, verr.Error(), http.StatusBadRequest)
			return
		}
		log.Ctx(ctx).ErrorContext(ctx, "failed to size system", slog.Any("error", err))
		writeJSONError(w, "failed to size system", http.StatusInternalServerError)
		return
	}

	writeJSON(w, res)
}

// projectionRequest is the request body for /api/projection.
type projectionRequest struct {
	Result types.SizingResult `json:"result"`
	Years  int                `json:"years"`
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req projectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to decode projection request", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Years == 0 {
		req.Years = types.DefaultSystemLifetimeYears
	}
	if req.Years < 0 {
		writeJSONError(w, "years must be positive", http.StatusBadRequest)
		return
	}

	writeJSON(w, sizing.Project(req.Result, req.Years))
}

func (s *Server) handleSunHours(w http.ResponseWriter, r *http.Request) {
	latStr := r.URL.Query().Get("lat")
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		writeJSONError(w, "invalid lat", http.StatusBadRequest)
		return
	}
	if lat < -90 || lat > 90 {
		writeJSONError(w, "lat must be between -90 and 90", http.StatusBadRequest)
		return
	}

	writeJSON(w, struct {
		SunHoursPerDay float64 `json:"sunHoursPerDay"`
	}{SunHoursPerDay: sizing.EstimateSunHours(lat)})
}

func (s *Server) handleLoadEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var appliances []types.ApplianceUsage
	if err := json.NewDecoder(r.Body).Decode(&appliances); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to decode appliances", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(appliances) == 0 {
		writeJSONError(w, "at least one appliance is required", http.StatusBadRequest)
		return
	}
	for _, a := range appliances {
		if a.Watts < 0 || a.HoursPerDay < 0 || a.HoursPerDay > 24 {
			writeJSONError(w, "invalid appliance usage", http.StatusBadRequest)
			return
		}
	}

	writeJSON(w, sizing.EstimateLoad(appliances))
}
