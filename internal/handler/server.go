// Package handler implements the HTTP handlers for the Abidjan Route API.
// All handlers are methods on Server. They are split into resource-specific
// files (health.go, locations.go, routes.go, ...) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/abidjan-route/internal/domain"
)

// LocationServicer defines the location operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the catalog or service layer.
type LocationServicer interface {
	GetByID(ctx context.Context, id string) (domain.Location, error)
	ListPaged(ctx context.Context, f domain.LocationFilter, p domain.PaginationParams) ([]domain.Location, int64, error)
}

// POIServicer defines the point-of-interest operations the handlers depend on.
type POIServicer interface {
	GetByID(ctx context.Context, id string) (domain.POI, error)
	Nearby(ctx context.Context, q domain.POIQuery) ([]domain.NearbyPOI, error)
}

// RouteServicer defines the trip planning operations the handlers depend on.
type RouteServicer interface {
	Search(ctx context.Context, fromID, toID, criterion string) (domain.RouteResult, error)
	Recommend(ctx context.Context, options []domain.TransportOption, criterion string) (string, []domain.ScoredOption, error)
}

// ExportServicer defines the comparison export operation.
type ExportServicer interface {
	Export(ctx context.Context, fromID, toID, criterion string) ([]domain.ExportRow, error)
}

// Server holds the dependencies of every endpoint.
// Wire it in main.go by mounting Server.Routes on the top-level router.
type Server struct {
	log       *slog.Logger
	locations LocationServicer
	pois      POIServicer
	routes    RouteServicer
	export    ExportServicer
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default.
func NewServer(log *slog.Logger, locations LocationServicer, pois POIServicer, routes RouteServicer, export ExportServicer) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{log: log, locations: locations, pois: pois, routes: routes, export: export}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil)
}

// Routes returns a router with every API endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Get("/locations", s.ListLocations)
	r.Get("/locations/{id}", s.GetLocation)
	r.Get("/transport-modes", s.ListTransportModes)
	r.Get("/pois", s.ListPOIs)
	r.Get("/pois/{id}", s.GetPOI)

	r.Route("/routes", func(r chi.Router) {
		r.Get("/", s.SearchRoutes)
		r.Post("/recommend", s.RecommendRoute)
		r.Get("/export", s.ExportRoutes)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody("no such endpoint"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: ErrorDetail{Code: "method_not_allowed", Message: "method not allowed"}})
	})
	return r
}
