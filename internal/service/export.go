package service

import (
	"context"
	"fmt"

	"github.com/pkordes/abidjan-route/internal/domain"
	"github.com/pkordes/abidjan-route/internal/planner"
)

// ExportService flattens a route search into a comparison table.
type ExportService struct {
	routes *RouteService
}

// NewExportService constructs an ExportService on top of a RouteService.
func NewExportService(routes *RouteService) *ExportService {
	return &ExportService{routes: routes}
}

// Export runs the search and returns one ExportRow per option, in the
// option order of the search result.
func (s *ExportService) Export(ctx context.Context, fromID, toID, criterion string) ([]domain.ExportRow, error) {
	result, err := s.routes.Search(ctx, fromID, toID, criterion)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	scores := planner.Score(result.Options)
	rows := make([]domain.ExportRow, len(result.Options))
	for i, o := range result.Options {
		rows[i] = domain.ExportRow{
			From:           result.From.Name,
			To:             result.To.Name,
			Criterion:      string(result.Criterion),
			OptionID:       o.ID,
			Mode:           o.Mode.Name,
			Price:          o.Price,
			Duration:       o.Duration,
			Distance:       o.Distance,
			SecurityRating: o.SecurityRating,
			ComfortRating:  o.ComfortRating,
			Score:          scores[i].Score,
			Recommended:    o.ID == result.RecommendedOption,
			Stops:          o.Stops,
		}
	}
	return rows, nil
}
