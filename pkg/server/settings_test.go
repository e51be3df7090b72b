package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/helioplan/helioplan/pkg/storage/storagemock"
	"github.com/helioplan/helioplan/pkg/types"
)

func TestGetSettings(t *testing.T) {
	t.Run("Current Version", func(t *testing.T) {
		mockS := &storagemock.MockDatabase{}
		mockS.On("GetSettings", mock.Anything, DefaultSiteID).Return(types.Settings{
			DefaultRegion: "Germany",
		}, types.CurrentSettingsVersion, nil)
		srv := &Server{storage: mockS, bypassAuth: true}

		req := withSite(httptest.NewRequest("GET", "/api/settings", nil))
		w := httptest.NewRecorder()
		srv.handleGetSettings(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		assert.Contains(t, w.Body.String(), `"defaultRegion":"Germany"`)
		mockS.AssertNotCalled(t, "SetSettings", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Migrates Old Version", func(t *testing.T) {
		mockS := &storagemock.MockDatabase{}
		mockS.On("GetSettings", mock.Anything, DefaultSiteID).Return(types.Settings{}, 0, nil)
		mockS.On("SetSettings", mock.Anything, DefaultSiteID, mock.MatchedBy(func(s types.Settings) bool {
			return s.DefaultRegion == "Europe" && s.DefaultBatteryType == "AGM"
		}), types.CurrentSettingsVersion).Return(nil)
		srv := &Server{storage: mockS, bypassAuth: true}

		req := withSite(httptest.NewRequest("GET", "/api/settings", nil))
		w := httptest.NewRecorder()
		srv.handleGetSettings(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		assert.Contains(t, w.Body.String(), `"defaultRegion":"Europe"`)
		mockS.AssertExpectations(t)
	})
}

func TestUpdateSettings(t *testing.T) {
	t.Run("Admin Updates", func(t *testing.T) {
		mockS := &storagemock.MockDatabase{}
		mockS.On("SetSettings", mock.Anything, DefaultSiteID, mock.MatchedBy(func(s types.Settings) bool {
			return s.DefaultRegion == "Germany"
		}), types.CurrentSettingsVersion).Return(nil)
		srv := &Server{storage: mockS, adminEmails: []string{"admin@example.com"}}

		body := `{"defaultRegion": "Germany"}`
		req := withSite(httptest.NewRequest("POST", "/api/settings", strings.NewReader(body)))
		req = withEmail(req, "admin@example.com")
		w := httptest.NewRecorder()
		srv.handleUpdateSettings(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		mockS.AssertExpectations(t)
	})

	t.Run("Non-Admin Forbidden", func(t *testing.T) {
		srv := &Server{storage: &storagemock.MockDatabase{}, adminEmails: []string{"admin@example.com"}}

		req := withSite(httptest.NewRequest("POST", "/api/settings", strings.NewReader(`{}`)))
		req = withEmail(req, "user@example.com")
		w := httptest.NewRecorder()
		srv.handleUpdateSettings(w, req)
		assert.Equal(t, http.StatusForbidden, w.Result().StatusCode)
	})

	t.Run("Unknown Region Rejected", func(t *testing.T) {
		srv := &Server{storage: &storagemock.MockDatabase{}, bypassAuth: true}

		body := `{"defaultRegion": "Atlantis"}`
		req := withSite(httptest.NewRequest("POST", "/api/settings", strings.NewReader(body)))
		w := httptest.NewRecorder()
		srv.handleUpdateSettings(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
		assert.Contains(t, w.Body.String(), "unknown region")
	})

	t.Run("Unknown Panel Rejected", func(t *testing.T) {
		srv := &Server{storage: &storagemock.MockDatabase{}, bypassAuth: true}

		body := `{"defaultPanelType": "Quantum Panel"}`
		req := withSite(httptest.NewRequest("POST", "/api/settings", strings.NewReader(body)))
		w := httptest.NewRecorder()
		srv.handleUpdateSettings(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})
}
