package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/pkordes/abidjan-route/internal/domain"
	"github.com/pkordes/abidjan-route/internal/handler"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones your test needs.

type mockLocationServicer struct {
	getByID   func(ctx context.Context, id string) (domain.Location, error)
	listPaged func(ctx context.Context, f domain.LocationFilter, p domain.PaginationParams) ([]domain.Location, int64, error)
}

func (m *mockLocationServicer) GetByID(ctx context.Context, id string) (domain.Location, error) {
	return m.getByID(ctx, id)
}
func (m *mockLocationServicer) ListPaged(ctx context.Context, f domain.LocationFilter, p domain.PaginationParams) ([]domain.Location, int64, error) {
	return m.listPaged(ctx, f, p)
}

var _ handler.LocationServicer = (*mockLocationServicer)(nil)

type mockPOIServicer struct {
	getByID func(ctx context.Context, id string) (domain.POI, error)
	nearby  func(ctx context.Context, q domain.POIQuery) ([]domain.NearbyPOI, error)
}

func (m *mockPOIServicer) GetByID(ctx context.Context, id string) (domain.POI, error) {
	return m.getByID(ctx, id)
}
func (m *mockPOIServicer) Nearby(ctx context.Context, q domain.POIQuery) ([]domain.NearbyPOI, error) {
	return m.nearby(ctx, q)
}

var _ handler.POIServicer = (*mockPOIServicer)(nil)

type mockRouteServicer struct {
	search    func(ctx context.Context, fromID, toID, criterion string) (domain.RouteResult, error)
	recommend func(ctx context.Context, options []domain.TransportOption, criterion string) (string, []domain.ScoredOption, error)
}

func (m *mockRouteServicer) Search(ctx context.Context, fromID, toID, criterion string) (domain.RouteResult, error) {
	return m.search(ctx, fromID, toID, criterion)
}
func (m *mockRouteServicer) Recommend(ctx context.Context, options []domain.TransportOption, criterion string) (string, []domain.ScoredOption, error) {
	return m.recommend(ctx, options, criterion)
}

var _ handler.RouteServicer = (*mockRouteServicer)(nil)

type mockExportServicer struct {
	export func(ctx context.Context, fromID, toID, criterion string) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context, fromID, toID, criterion string) ([]domain.ExportRow, error) {
	return m.export(ctx, fromID, toID, criterion)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// do sends one request through the full router of srv.
func do(srv *handler.Server, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

// wrapValidation builds an error the way services do.
func wrapValidation(op, msg string) error {
	return fmt.Errorf("%s: %w: %s", op, domain.ErrValidation, msg)
}
