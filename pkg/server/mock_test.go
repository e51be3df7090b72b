package server

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/helioplan/helioplan/pkg/types"
)

type mockGeocoder struct {
	mock.Mock
}

func (m *mockGeocoder) Geocode(ctx context.Context, query string) (types.Location, error) {
	args := m.Called(ctx, query)
	if len(args) > 0 {
		return args.Get(0).(types.Location), args.Error(1)
	}
	return types.Location{}, nil
}

// withSite injects a siteID into the request context the way authMiddleware
// would.
func withSite(req *http.Request) *http.Request {
	ctx := context.WithValue(req.Context(), siteIDContextKey, DefaultSiteID)
	return req.WithContext(ctx)
}

// withEmail adds an authenticated email to the request context.
func withEmail(req *http.Request, email string) *http.Request {
	ctx := context.WithValue(req.Context(), emailContextKey, email)
	return req.WithContext(ctx)
}
