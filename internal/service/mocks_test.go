package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/abidjan-route/internal/domain"
	"github.com/pkordes/abidjan-route/internal/repo"
)

// mockLocationRepo is a hand-written test double for repo.LocationRepo.
// Each method is a function field; set only the ones your test needs.
type mockLocationRepo struct {
	getByID   func(ctx context.Context, id string) (domain.Location, error)
	list      func(ctx context.Context, f domain.LocationFilter) ([]domain.Location, error)
	listPaged func(ctx context.Context, f domain.LocationFilter, p domain.PaginationParams) ([]domain.Location, int64, error)
}

func (m *mockLocationRepo) GetByID(ctx context.Context, id string) (domain.Location, error) {
	return m.getByID(ctx, id)
}
func (m *mockLocationRepo) List(ctx context.Context, f domain.LocationFilter) ([]domain.Location, error) {
	return m.list(ctx, f)
}
func (m *mockLocationRepo) ListPaged(ctx context.Context, f domain.LocationFilter, p domain.PaginationParams) ([]domain.Location, int64, error) {
	return m.listPaged(ctx, f, p)
}

var _ repo.LocationRepo = (*mockLocationRepo)(nil)

type mockPOIRepo struct {
	getByID func(ctx context.Context, id string) (domain.POI, error)
	list    func(ctx context.Context, kind domain.POIKind) ([]domain.POI, error)
}

func (m *mockPOIRepo) GetByID(ctx context.Context, id string) (domain.POI, error) {
	return m.getByID(ctx, id)
}
func (m *mockPOIRepo) List(ctx context.Context, kind domain.POIKind) ([]domain.POI, error) {
	return m.list(ctx, kind)
}

var _ repo.POIRepo = (*mockPOIRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func catalog(t *testing.T) *repo.Catalog {
	t.Helper()
	c, err := repo.DefaultCatalog()
	require.NoError(t, err)
	return c
}

func poiIDs(pois []domain.NearbyPOI) []string {
	ids := make([]string, len(pois))
	for i, p := range pois {
		ids[i] = p.ID
	}
	return ids
}
