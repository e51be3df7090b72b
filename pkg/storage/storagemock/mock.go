// Package storagemock provides a testify mock of the storage.Database
// interface for handler tests.
package storagemock

import (
	"context"
	"time"

	"github.com/helioplan/helioplan/pkg/storage"
	"github.com/helioplan/helioplan/pkg/types"
	"github.com/stretchr/testify/mock"
)

type MockDatabase struct {
	mock.Mock
}

var _ storage.Database = (*MockDatabase)(nil)

func (m *MockDatabase) GetSettings(ctx context.Context, siteID string) (types.Settings, int, error) {
	args := m.Called(ctx, siteID)
	if len(args) > 0 {
		return args.Get(0).(types.Settings), args.Int(1), args.Error(2)
	}
	return types.Settings{}, 0, nil
}

func (m *MockDatabase) SetSettings(ctx context.Context, siteID string, settings types.Settings, version int) error {
	args := m.Called(ctx, siteID, settings, version)
	return args.Error(0)
}

func (m *MockDatabase) SaveDesign(ctx context.Context, siteID string, rec types.DesignRecord) (time.Time, error) {
	args := m.Called(ctx, siteID, rec)
	if len(args) > 0 {
		return args.Get(0).(time.Time), args.Error(1)
	}
	return time.Time{}, nil
}

func (m *MockDatabase) GetDesign(ctx context.Context, siteID string, ts time.Time) (types.DesignRecord, error) {
	args := m.Called(ctx, siteID, ts)
	if len(args) > 0 {
		return args.Get(0).(types.DesignRecord), args.Error(1)
	}
	return types.DesignRecord{}, nil
}

func (m *MockDatabase) ListDesigns(ctx context.Context, siteID string, start, end time.Time) ([]types.DesignRecord, error) {
	args := m.Called(ctx, siteID, start, end)
	if len(args) > 0 {
		recs, _ := args.Get(0).([]types.DesignRecord)
		return recs, args.Error(1)
	}
	return nil, nil
}

func (m *MockDatabase) Close() error {
	args := m.Called()
	return args.Error(0)
}
