package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/pkordes/abidjan-route/internal/domain"
	"github.com/pkordes/abidjan-route/internal/geo"
	"github.com/pkordes/abidjan-route/internal/repo"
)

// maxCellPrecision is the finest geohash precision the POI index keeps.
const maxCellPrecision = 7

// POIService answers POI listings and proximity queries.
//
// The POI catalog is read once at construction and indexed by geohash cell at
// every precision up to maxCellPrecision. A proximity query looks up the nine
// cells covering its radius and then checks exact distance on the survivors.
type POIService struct {
	repo  repo.POIRepo
	pois  []domain.POI
	cells [maxCellPrecision + 1]map[string][]int
}

// NewPOIService loads every POI from r and builds the cell index.
func NewPOIService(ctx context.Context, r repo.POIRepo) (*POIService, error) {
	pois, err := r.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("service.NewPOIService: %w", err)
	}

	s := &POIService{repo: r, pois: pois}
	for p := uint(1); p <= maxCellPrecision; p++ {
		s.cells[p] = make(map[string][]int)
	}
	for i, poi := range pois {
		full := geo.Hash(poi.Point(), maxCellPrecision)
		for p := 1; p <= maxCellPrecision; p++ {
			s.cells[p][full[:p]] = append(s.cells[p][full[:p]], i)
		}
	}
	return s, nil
}

// GetByID returns a single POI.
func (s *POIService) GetByID(ctx context.Context, id string) (domain.POI, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.POI{}, fmt.Errorf("service.POIService.GetByID: %w", err)
	}
	return p, nil
}

// Nearby returns POIs matching q.
//
// With q.Near set, results are POIs within q.RadiusKm of that point ordered by
// distance, nearest first, ties by id. Without it, every POI of q.Kind is
// returned in catalog order with a zero distance.
func (s *POIService) Nearby(_ context.Context, q domain.POIQuery) ([]domain.NearbyPOI, error) {
	if err := validatePOIQuery(q); err != nil {
		return nil, fmt.Errorf("service.POIService.Nearby: %w", err)
	}

	var out []domain.NearbyPOI
	if q.Near == nil {
		for _, p := range s.pois {
			if q.Kind == "" || p.Kind == q.Kind {
				out = append(out, domain.NearbyPOI{POI: p})
			}
		}
		return limit(out, q.Limit), nil
	}

	for _, i := range s.candidates(*q.Near, q.RadiusKm) {
		p := s.pois[i]
		if q.Kind != "" && p.Kind != q.Kind {
			continue
		}
		if geo.HaversineKm(*q.Near, p.Point()) > q.RadiusKm {
			continue
		}
		out = append(out, domain.NearbyPOI{POI: p, DistanceKm: geo.DistanceKm(*q.Near, p.Point())})
	}
	slices.SortFunc(out, func(a, b domain.NearbyPOI) int {
		return cmp.Or(cmp.Compare(a.DistanceKm, b.DistanceKm), cmp.Compare(a.ID, b.ID))
	})
	return limit(out, q.Limit), nil
}

// candidates returns indexes of POIs that may lie within radiusKm of center.
// Radii too large for any indexed cell fall back to every POI.
func (s *POIService) candidates(center domain.Point, radiusKm float64) []int {
	precision := min(geo.PrecisionForRadius(center.Lat, radiusKm), maxCellPrecision)
	if precision == 0 {
		all := make([]int, len(s.pois))
		for i := range all {
			all[i] = i
		}
		return all
	}

	var out []int
	for _, cell := range geo.CoveringCells(center, precision) {
		out = append(out, s.cells[precision][cell]...)
	}
	return out
}

func validatePOIQuery(q domain.POIQuery) error {
	if q.Kind != "" && !q.Kind.Valid() {
		return fmt.Errorf("%w: type must be hotel, restaurant, or car_rental", domain.ErrValidation)
	}
	if q.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", domain.ErrValidation)
	}
	if q.Near == nil {
		return nil
	}
	if !geo.ValidPoint(*q.Near) {
		return fmt.Errorf("%w: coordinates out of range", domain.ErrValidation)
	}
	if q.RadiusKm <= 0 {
		return fmt.Errorf("%w: radius_km must be greater than zero", domain.ErrValidation)
	}
	return nil
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
