package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/abidjan-route/internal/domain"
	"github.com/pkordes/abidjan-route/internal/planner"
	"github.com/pkordes/abidjan-route/internal/repo"
)

// HotelsPerRoute caps the hotels attached to a route result.
const HotelsPerRoute = 3

// routeNamespace seeds the name-based UUIDs of route results.
var routeNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://abidjan-route/routes"))

// RouteService plans trips between two catalog locations.
type RouteService struct {
	locations repo.LocationRepo
	pois      *POIService
	radiusKm  float64
}

// NewRouteService constructs a RouteService. radiusKm bounds the POIs
// attached to each result around the destination.
func NewRouteService(locations repo.LocationRepo, pois *POIService, radiusKm float64) *RouteService {
	return &RouteService{locations: locations, pois: pois, radiusKm: radiusKm}
}

// Search resolves both locations, synthesizes the transport options between
// them and picks the recommended one for criterion. An empty criterion means
// domain.DefaultCriterion.
//
// Identical inputs always produce an identical result, id included.
func (s *RouteService) Search(ctx context.Context, fromID, toID, criterion string) (domain.RouteResult, error) {
	fromID, toID = strings.TrimSpace(fromID), strings.TrimSpace(toID)
	if fromID == "" || toID == "" {
		return domain.RouteResult{}, fmt.Errorf("service.RouteService.Search: %w: from and to are required", domain.ErrValidation)
	}
	if fromID == toID {
		return domain.RouteResult{}, fmt.Errorf("service.RouteService.Search: %w: from and to must differ", domain.ErrValidation)
	}
	c, err := domain.ParseCriterion(criterion)
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("service.RouteService.Search: %w", err)
	}

	from, err := s.locations.GetByID(ctx, fromID)
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("service.RouteService.Search: from %q: %w", fromID, err)
	}
	to, err := s.locations.GetByID(ctx, toID)
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("service.RouteService.Search: to %q: %w", toID, err)
	}

	options := planner.GenerateOptions(from, to)
	recommended, err := planner.Recommend(options, c)
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("service.RouteService.Search: %w", err)
	}

	near := to.Point()
	hotels, err := s.pois.Nearby(ctx, domain.POIQuery{Kind: domain.POIHotel, Near: &near, RadiusKm: s.radiusKm, Limit: HotelsPerRoute})
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("service.RouteService.Search: %w", err)
	}
	restaurants, err := s.pois.Nearby(ctx, domain.POIQuery{Kind: domain.POIRestaurant, Near: &near, RadiusKm: s.radiusKm})
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("service.RouteService.Search: %w", err)
	}

	return domain.RouteResult{
		ID:                routeID(from.ID, to.ID, c),
		From:              from,
		To:                to,
		Criterion:         c,
		Distance:          options[0].Distance,
		Options:           options,
		RecommendedOption: recommended,
		Hotels:            hotels,
		Restaurants:       restaurants,
	}, nil
}

// Recommend re-scores a client-supplied option list, so a criterion change
// does not require a new search. It returns the recommended option id and the
// balanced score of every option in input order.
func (s *RouteService) Recommend(_ context.Context, options []domain.TransportOption, criterion string) (string, []domain.ScoredOption, error) {
	c, err := domain.ParseCriterion(criterion)
	if err != nil {
		return "", nil, fmt.Errorf("service.RouteService.Recommend: %w", err)
	}
	if err := validateOptions(options); err != nil {
		return "", nil, fmt.Errorf("service.RouteService.Recommend: %w", err)
	}

	id, err := planner.Recommend(options, c)
	if err != nil {
		return "", nil, fmt.Errorf("service.RouteService.Recommend: %w", err)
	}
	return id, planner.Score(options), nil
}

func validateOptions(options []domain.TransportOption) error {
	seen := make(map[string]bool, len(options))
	var errs []error
	for i, o := range options {
		switch {
		case strings.TrimSpace(o.ID) == "":
			errs = append(errs, fmt.Errorf("%w: options[%d]: id is required", domain.ErrValidation, i))
		case seen[o.ID]:
			errs = append(errs, fmt.Errorf("%w: options[%d]: duplicate id %q", domain.ErrValidation, i, o.ID))
		}
		seen[o.ID] = true

		if o.Price < 0 || o.Duration < 0 {
			errs = append(errs, fmt.Errorf("%w: options[%d]: price and duration must not be negative", domain.ErrValidation, i))
		}
		if !validRating(o.SecurityRating) || !validRating(o.ComfortRating) {
			errs = append(errs, fmt.Errorf("%w: options[%d]: ratings must be between 1 and 5", domain.ErrValidation, i))
		}
	}
	return errors.Join(errs...)
}

func validRating(r int) bool {
	return r >= 1 && r <= 5
}

func routeID(fromID, toID string, c domain.Criterion) uuid.UUID {
	return uuid.NewSHA1(routeNamespace, []byte(fromID+"\x00"+toID+"\x00"+string(c)))
}
