// Package service contains the business logic for the Abidjan Route API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// planner calls. No SQL lives here: services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/abidjan-route/internal/domain"
	"github.com/pkordes/abidjan-route/internal/repo"
)

// LocationService implements lookup and search over the location catalog.
type LocationService struct {
	repo repo.LocationRepo
}

// NewLocationService constructs a LocationService backed by the provided LocationRepo.
func NewLocationService(r repo.LocationRepo) *LocationService {
	return &LocationService{repo: r}
}

// GetByID returns a single location.
func (s *LocationService) GetByID(ctx context.Context, id string) (domain.Location, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Location{}, fmt.Errorf("service.LocationService.GetByID: %w: id is required", domain.ErrValidation)
	}
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Location{}, fmt.Errorf("service.LocationService.GetByID: %w", err)
	}
	return l, nil
}

// ListPaged returns one page of locations matching f and the total match count.
func (s *LocationService) ListPaged(ctx context.Context, f domain.LocationFilter, p domain.PaginationParams) ([]domain.Location, int64, error) {
	if f.Type != "" && !f.Type.Valid() {
		return nil, 0, fmt.Errorf("service.LocationService.ListPaged: %w: type must be commune or quartier", domain.ErrValidation)
	}
	locations, total, err := s.repo.ListPaged(ctx, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.LocationService.ListPaged: %w", err)
	}
	return locations, total, nil
}
