package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/abidjan-route/internal/domain"
)

// ListLocations handles GET /locations.
// Supports ?type=, ?parent=, ?q= filters and ?page= / ?limit= pagination
// (defaults: page=1, limit=20, max=100).
func (s *Server) ListLocations(w http.ResponseWriter, r *http.Request) {
	var (
		typ, parent, query *string
		page, limit        *int
	)
	if err := bindQuery(r,
		queryParam{"type", &typ},
		queryParam{"parent", &parent},
		queryParam{"q", &query},
		queryParam{"page", &page},
		queryParam{"limit", &limit},
	); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	f := domain.LocationFilter{
		Type:     domain.LocationType(deref(typ)),
		ParentID: deref(parent),
		Query:    deref(query),
	}
	params := domain.NewPaginationParams(page, limit)
	locations, total, err := s.locations.ListPaged(r.Context(), f, params)
	if err != nil {
		s.writeError(w, r, err, "location not found")
		return
	}

	data := make([]Location, len(locations))
	for i, l := range locations {
		data[i] = locationToResponse(l)
	}
	writeJSON(w, http.StatusOK, LocationList{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetLocation handles GET /locations/{id}.
func (s *Server) GetLocation(w http.ResponseWriter, r *http.Request) {
	l, err := s.locations.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "location not found")
		return
	}
	writeJSON(w, http.StatusOK, locationToResponse(l))
}

// ListTransportModes handles GET /transport-modes.
func (s *Server) ListTransportModes(w http.ResponseWriter, _ *http.Request) {
	modes := domain.TransportModes()
	out := make([]TransportMode, len(modes))
	for i, m := range modes {
		out[i] = modeToResponse(m)
	}
	writeJSON(w, http.StatusOK, out)
}
