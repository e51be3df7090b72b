package server

import (
	"net/http"

	"github.com/helioplan/helioplan/pkg/catalog"
)

func (s *Server) handleCatalogPanels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, catalog.Panels())
}

func (s *Server) handleCatalogBatteries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, catalog.Batteries())
}

func (s *Server) handleCatalogAppliances(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, catalog.Appliances())
}

func (s *Server) handleCatalogRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, catalog.Regions())
}
