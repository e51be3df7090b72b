package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/helioplan/helioplan/pkg/catalog"
	"github.com/helioplan/helioplan/pkg/log"
	"github.com/helioplan/helioplan/pkg/report"
	"github.com/helioplan/helioplan/pkg/storage"
	"github.com/helioplan/helioplan/pkg/types"
)

// handleReport renders a stored design as a plain-text report. The currency
// comes from the site settings override, then the design's region, then the
// default.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	siteID := s.getSiteID(r)

	ts, err := time.Parse(time.RFC3339, r.URL.Query().Get("ts"))
	if err != nil {
		writeJSONError(w, "invalid ts", http.StatusBadRequest)
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

	currency := s.currencyFor(ctx, siteID, rec.Region)

	generatedAt := time.Now()
	if recTS, err := time.Parse(types.DesignTimestampLayout, rec.Timestamp); err == nil {
		generatedAt = recTS
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(report.Render(rec.Result, currency, generatedAt))); err != nil {
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) currencyFor(ctx context.Context, siteID, region string) string {
	settings, err := s.getSettingsWithMigration(ctx, siteID)
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to get settings for currency", slog.Any("error", err))
	} else if settings.CurrencyOverride != "" {
		return settings.CurrencyOverride
	}

	if region != "" {
		if prices, err := catalog.Region(region); err == nil {
			return prices.Currency
		}
	}
	return report.DefaultCurrency
}
