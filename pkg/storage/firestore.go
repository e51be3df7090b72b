package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/helioplan/helioplan/pkg/log"
	"github.com/helioplan/helioplan/pkg/types"
	"github.com/levenlabs/go-lflag"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreProvider implements the Database interface using Google Cloud
// Firestore. It persists settings and design records to per-site
// sub-collections.
type FirestoreProvider struct {
	client    *firestore.Client
	projectID string
	database  string
}

// configuredFirestore sets up the Firestore provider.
// It registers flags for configuration.
func configuredFirestore() *FirestoreProvider {
	projectID := lflag.String("firestore-project-id", "", "Google Cloud Project ID for Firestore")
	database := lflag.String("firestore-database", "", "Google Cloud Firestore Database")
	emulator := lflag.String("firestore-emulator", "", "Use Firestore emulator")

	f := &FirestoreProvider{}

	lflag.Do(func() {
		f.projectID = *projectID
		f.database = *database

		// set this because that's how firestore client expects it
		if *emulator != "" {
			os.Setenv("FIRESTORE_EMULATOR_HOST", *emulator)
		}
	})

	return f
}

// Validate checks if the provider is properly configured.
func (f *FirestoreProvider) Validate() error {
	// Project ID verification could be here, but we allow empty if inferred.
	return nil
}

// Init initializes the Firestore client.
// This must be called before using the provider methods.
func (f *FirestoreProvider) Init(ctx context.Context) error {
	projectID := f.projectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	database := f.database
	if database == "" {
		database = firestore.DefaultDatabaseID
	}
	client, err := firestore.NewClientWithDatabase(ctx, projectID, database)
	if err != nil {
		return fmt.Errorf("failed to create firestore client (project=%s, database=%s): %w", projectID, database, err)
	}
	f.client = client
	return nil
}

// Close closes the Firestore client connection.
func (f *FirestoreProvider) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func (f *FirestoreProvider) getCollection(siteID, name string) (*firestore.CollectionRef, error) {
	if siteID == "" {
		return nil, fmt.Errorf("siteID cannot be empty")
	}
	return f.client.Collection("sites").Doc(siteID).Collection(name), nil
}

// GetSettings retrieves the dynamic configuration from the "config/settings" document.
func (f *FirestoreProvider) GetSettings(ctx context.Context, siteID string) (types.Settings, int, error) {
	coll, err := f.getCollection(siteID, "config")
	if err != nil {
		return types.Settings{}, 0, err
	}
	doc, err := coll.Doc("settings").Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			// Return default settings if not found
			return types.Settings{}, 0, nil
		}
		return types.Settings{}, 0, fmt.Errorf("failed to fetch settings doc: %w", err)
	}

	// Read version if available (default 0)
	var version int
	if v, err := doc.DataAt("version"); err == nil {
		if vInt, ok := v.(int64); ok {
			version = int(vInt)
		}
	}

	val, err := doc.DataAt("json")
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "settings doc missing json", slog.String("siteID", siteID))
		return types.Settings{}, 0, fmt.Errorf("settings document missing 'json' field: %w", err)
	}

	jsonStr, ok := val.(string)
	if !ok {
		log.Ctx(ctx).WarnContext(ctx, "settings doc json not string", slog.String("siteID", siteID))
		return types.Settings{}, 0, fmt.Errorf("settings 'json' field is not a string")
	}

	var s types.Settings
	if err := json.Unmarshal([]byte(jsonStr), &s); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to unmarshal settings json", slog.String("siteID", siteID), slog.Any("err", err))
		return types.Settings{}, 0, fmt.Errorf("failed to unmarshal settings json: %w", err)
	}
	return s, version, nil
}

// SetSettings saves the dynamic configuration to the "config/settings" document.
// It stores the settings as a JSON string for portability.
func (f *FirestoreProvider) SetSettings(ctx context.Context, siteID string, settings types.Settings, version int) error {
	jsonBytes, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	coll, err := f.getCollection(siteID, "config")
	if err != nil {
		return err
	}
	_, err = coll.Doc("settings").Set(ctx, map[string]interface{}{
		"json":    string(jsonBytes),
		"version": version,
	})
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// SaveDesign stores a design record in the "designs" collection as a JSON blob.
// The document ID is the RFC3339 timestamp for efficient range queries. A
// record with no timestamp is stamped with the current time.
func (f *FirestoreProvider) SaveDesign(ctx context.Context, siteID string, rec types.DesignRecord) (time.Time, error) {
	var ts time.Time
	if rec.Timestamp == "" {
		ts = time.Now().UTC().Truncate(time.Second)
		rec.Timestamp = ts.Format(types.DesignTimestampLayout)
	} else {
		var err error
		ts, err = time.Parse(types.DesignTimestampLayout, rec.Timestamp)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid design timestamp (%s): %w", rec.Timestamp, err)
		}
	}

	jsonBytes, err := json.Marshal(rec)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to marshal design: %w", err)
	}

	coll, err := f.getCollection(siteID, "designs")
	if err != nil {
		return time.Time{}, err
	}
	// Use RFC3339 as document ID for lexicographic ordering and efficient range queries
	docID := ts.UTC().Format(time.RFC3339)
	_, err = coll.Doc(docID).Set(ctx, map[string]interface{}{
		"json":      string(jsonBytes),
		"timestamp": ts,
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to save design: %w", err)
	}
	return ts, nil
}

// GetDesign retrieves a single design record by its timestamp.
func (f *FirestoreProvider) GetDesign(ctx context.Context, siteID string, ts time.Time) (types.DesignRecord, error) {
	coll, err := f.getCollection(siteID, "designs")
	if err != nil {
		return types.DesignRecord{}, err
	}
	docID := ts.UTC().Format(time.RFC3339)
	doc, err := coll.Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.DesignRecord{}, fmt.Errorf("%w: %s", ErrDesignNotFound, docID)
		}
		return types.DesignRecord{}, fmt.Errorf("failed to fetch design %s: %w", docID, err)
	}
	return decodeDesignDoc(ctx, siteID, doc)
}

// ListDesigns retrieves design records within the specified time range.
// Uses document ID range queries for efficient filtering without reading all documents.
func (f *FirestoreProvider) ListDesigns(ctx context.Context, siteID string, start, end time.Time) ([]types.DesignRecord, error) {
	startDocID := start.UTC().Format(time.RFC3339)
	endDocID := end.UTC().Format(time.RFC3339)

	coll, err := f.getCollection(siteID, "designs")
	if err != nil {
		return nil, err
	}
	iter := coll.
		Where(firestore.DocumentID, ">=", coll.Doc(startDocID)).
		Where(firestore.DocumentID, "<", coll.Doc(endDocID)).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var designs []types.DesignRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating designs: %w", err)
		}

		rec, err := decodeDesignDoc(ctx, siteID, doc)
		if err != nil {
			return nil, err
		}
		designs = append(designs, rec)
	}
	return designs, nil
}

func decodeDesignDoc(ctx context.Context, siteID string, doc *firestore.DocumentSnapshot) (types.DesignRecord, error) {
	val, err := doc.DataAt("json")
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "design doc missing json", slog.String("docID", doc.Ref.ID), slog.String("siteID", siteID), slog.Any("err", err))
		return types.DesignRecord{}, fmt.Errorf("design document %s missing 'json' field: %w", doc.Ref.ID, err)
	}

	jsonStr, ok := val.(string)
	if !ok {
		log.Ctx(ctx).WarnContext(ctx, "design doc json not string", slog.String("docID", doc.Ref.ID), slog.String("siteID", siteID))
		return types.DesignRecord{}, fmt.Errorf("design document %s 'json' field is not string", doc.Ref.ID)
	}

	var rec types.DesignRecord
	if err := json.Unmarshal([]byte(jsonStr), &rec); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to unmarshal design", slog.String("docID", doc.Ref.ID), slog.String("siteID", siteID), slog.Any("err", err))
		return types.DesignRecord{}, fmt.Errorf("failed to unmarshal design (id=%s): %w", doc.Ref.ID, err)
	}
	return rec, nil
}
