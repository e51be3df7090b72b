// Package geocode resolves free-form location queries to coordinates.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/helioplan/helioplan/pkg/common"
	"github.com/helioplan/helioplan/pkg/log"
	"github.com/helioplan/helioplan/pkg/types"
	"github.com/levenlabs/go-lflag"
)

// ErrNoResults is returned when the upstream geocoder finds nothing for the
// query.
var ErrNoResults = errors.New("no geocoding results")

// Geocoder resolves a free-form query like "Berlin, Germany" to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (types.Location, error)
}

// Nominatim implements Geocoder against the OpenStreetMap Nominatim API.
// Results are cached per query for the lifetime of the process since
// addresses don't move.
type Nominatim struct {
	apiURL string
	client *http.Client

	mu    sync.Mutex
	cache map[string]types.Location
}

// Configured sets up flags for Nominatim and returns the instance.
func Configured() *Nominatim {
	n := &Nominatim{
		client: common.HTTPClient(10 * time.Second),
		cache:  make(map[string]types.Location),
	}
	apiURL := lflag.String("nominatim-api-url", "https://nominatim.openstreetmap.org", "base URL for the Nominatim geocoding API")

	lflag.Do(func() {
		n.apiURL = *apiURL
	})

	return n
}

// Validate ensures the configuration is valid.
func (n *Nominatim) Validate() error {
	if n.apiURL == "" {
		return fmt.Errorf("nominatim-api-url is required")
	}
	if _, err := url.Parse(n.apiURL); err != nil {
		return fmt.Errorf("failed to parse nominatim url (%s): %w", n.apiURL, err)
	}
	return nil
}

// nominatimResult represents one entry of the JSON returned by Nominatim.
// Coordinates come back as strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves the query to the best-matching location.
func (n *Nominatim) Geocode(ctx context.Context, query string) (types.Location, error) {
	n.mu.Lock()
	if loc, ok := n.cache[query]; ok {
		n.mu.Unlock()
		return loc, nil
	}
	n.mu.Unlock()

	u, err := url.Parse(n.apiURL)
	if err != nil {
		return types.Location{}, fmt.Errorf("invalid api url: %w", err)
	}
	u = u.JoinPath("search")

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return types.Location{}, fmt.Errorf("failed to create request: %w", err)
	}
	log.Ctx(ctx).DebugContext(ctx, "geocoding query", slog.String("query", query))

	resp, err := n.client.Do(req)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to geocode", slog.Any("error", err))
		return types.Location{}, fmt.Errorf("failed to geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Location{}, fmt.Errorf("nominatim returned status: %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return types.Location{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(results) == 0 {
		return types.Location{}, ErrNoResults
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return types.Location{}, fmt.Errorf("failed to parse latitude (%s): %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return types.Location{}, fmt.Errorf("failed to parse longitude (%s): %w", results[0].Lon, err)
	}

	loc := types.Location{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: results[0].DisplayName,
	}

	n.mu.Lock()
	n.cache[query] = loc
	n.mu.Unlock()

	log.Ctx(ctx).DebugContext(
		ctx,
		"geocoded query",
		slog.String("query", query),
		slog.Float64("latitude", lat),
		slog.Float64("longitude", lon),
	)

	return loc, nil
}
