// Package storage persists designs and per-site settings.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/helioplan/helioplan/pkg/types"
	"github.com/levenlabs/go-lflag"
)

// ErrDesignNotFound is returned when no design exists for the requested
// timestamp.
var ErrDesignNotFound = errors.New("design not found")

// Database defines the interface for persisting designs and retrieving
// settings.
type Database interface {
	// Settings
	GetSettings(ctx context.Context, siteID string) (types.Settings, int, error)
	SetSettings(ctx context.Context, siteID string, settings types.Settings, version int) error

	// Designs
	// SaveDesign stores a design record keyed by its timestamp and returns
	// the stored timestamp.
	SaveDesign(ctx context.Context, siteID string, rec types.DesignRecord) (time.Time, error)
	GetDesign(ctx context.Context, siteID string, ts time.Time) (types.DesignRecord, error)
	ListDesigns(ctx context.Context, siteID string, start, end time.Time) ([]types.DesignRecord, error)

	// Lifecycle
	Close() error
}

// Configured sets up the Storage provider based on flags.
func Configured() Database {
	provider := lflag.String("storage-provider", "firestore", "Storage provider to use (available: firestore)")

	var p struct{ Database }

	fs := configuredFirestore()

	lflag.Do(func() {
		switch *provider {
		case "firestore":
			if err := fs.Validate(); err != nil {
				panic(fmt.Sprintf("firestore validation failed: %v", err))
			}
			p.Database = fs
			if err := fs.Init(context.Background()); err != nil {
				panic(fmt.Sprintf("firestore init failed: %v", err))
			}
		default:
			panic(fmt.Sprintf("unknown storage provider: %s", *provider))
		}
	})

	return &p
}
