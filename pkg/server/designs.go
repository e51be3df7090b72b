package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/helioplan/helioplan/pkg/log"
	"github.com/helioplan/helioplan/pkg/sizing"
	"github.com/helioplan/helioplan/pkg/storage"
	"github.com/helioplan/helioplan/pkg/types"
)

// handleSaveDesign stores a design record. The sizing result is recomputed
// from the raw input fields so a stored record never carries stale numbers.
func (s *Server) handleSaveDesign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	siteID := s.getSiteID(r)

	var rec types.DesignRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to decode design", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	in, err := rec.SizingInputs()
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := sizing.SizeSystem(in)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	rec.Result = res

	ts, err := s.storage.SaveDesign(ctx, siteID, rec)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to save design", slog.Any("error", err))
		writeJSONError(w, "failed to save design", http.StatusInternalServerError)
		return
	}

	log.Ctx(ctx).InfoContext(ctx, "saved design", slog.Time("timestamp", ts))
	writeJSON(w, struct {
		Timestamp string             `json:"timestamp"`
		Result    types.SizingResult `json:"results"`
	}{
		Timestamp: ts.UTC().Format(time.RFC3339),
		Result:    res,
	})
}

func (s *Server) handleListDesigns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	siteID := s.getSiteID(r)

	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	designs, err := s.storage.ListDesigns(ctx, siteID, start, end)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to list designs", slog.Any("error", err))
		writeJSONError(w, "failed to list designs", http.StatusInternalServerError)
		return
	}

	writeJSON(w, struct {
		Designs []types.DesignRecord `json:"designs"`
	}{Designs: designs})
}

func (s *Server) handleGetDesign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	siteID := s.getSiteID(r)

	ts, err := time.Parse(time.RFC3339, r.PathValue("ts"))
	if err != nil {
		writeJSONError(w, "invalid timestamp", http.StatusBadRequest)
		return
	}

	rec, err := s.storage.GetDesign(ctx, siteID, ts)
	if err != nil {
		if errors.Is(err, storage.ErrDesignNotFound) {
			writeJSONError(w, "design not found", http.StatusNotFound)
			return
		}
		log.Ctx(ctx).ErrorContext(ctx, "failed to get design", slog.Any("error", err))
		writeJSONError(w, "failed to get design", http.StatusInternalServerError)
		return
	}

	writeJSON(w, rec)
}

func parseTimeRange(r *http.Request) (time.Time, time.Time, error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		// Default to the last 30 days if not specified
		end := time.Now()
		start := end.AddDate(0, 0, -30)
		return start, end, nil
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start time: %w", err)
	}

	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end time: %w", err)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("start time must be before end time")
	}

	if end.Sub(start) > 366*24*time.Hour {
		return time.Time{}, time.Time{}, fmt.Errorf("time range cannot exceed one year")
	}

	return start, end, nil
}
