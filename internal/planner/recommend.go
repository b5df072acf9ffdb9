package planner

import (
	"fmt"

	"github.com/pkordes/abidjan-route/internal/domain"
)

// Recommend returns the id of the best option for criterion c.
//
// The scan starts from the first option and only replaces the current best on
// strict improvement, so ties always go to the earlier option. Callers rely
// on that for stable output.
//
// Returns domain.ErrNoOptions when options is empty and domain.ErrValidation
// for an unknown criterion.
func Recommend(options []domain.TransportOption, c domain.Criterion) (string, error) {
	if len(options) == 0 {
		return "", domain.ErrNoOptions
	}

	var better func(candidate, best int) bool
	switch c {
	case domain.CriterionFastest:
		better = func(i, b int) bool { return options[i].Duration < options[b].Duration }
	case domain.CriterionCheapest:
		better = func(i, b int) bool { return options[i].Price < options[b].Price }
	case domain.CriterionSafest:
		better = func(i, b int) bool { return options[i].SecurityRating > options[b].SecurityRating }
	case domain.CriterionBalanced:
		scores := balancedScores(options)
		better = func(i, b int) bool { return scores[i] > scores[b] }
	default:
		return "", fmt.Errorf("%w: unknown criterion %q", domain.ErrValidation, c)
	}

	best := 0
	for i := 1; i < len(options); i++ {
		if better(i, best) {
			best = i
		}
	}
	return options[best].ID, nil
}

// Score returns the balanced composite score of every option, in input order.
func Score(options []domain.TransportOption) []domain.ScoredOption {
	scores := balancedScores(options)
	out := make([]domain.ScoredOption, len(options))
	for i, o := range options {
		out[i] = domain.ScoredOption{OptionID: o.ID, Score: scores[i]}
	}
	return out
}

// balancedScores averages four sub-scores per option: relative cheapness,
// relative speed, security/5 and comfort/5. Price and duration are
// normalized against the maximum over the whole list; when that maximum is
// zero every option gets the full sub-score.
func balancedScores(options []domain.TransportOption) []float64 {
	var maxPrice, maxDuration int
	for _, o := range options {
		maxPrice = max(maxPrice, o.Price)
		maxDuration = max(maxDuration, o.Duration)
	}

	scores := make([]float64, len(options))
	for i, o := range options {
		price := relativeScore(o.Price, maxPrice)
		duration := relativeScore(o.Duration, maxDuration)
		security := float64(o.SecurityRating) / 5
		comfort := float64(o.ComfortRating) / 5
		scores[i] = (price + duration + security + comfort) / 4
	}
	return scores
}

func relativeScore(v, maxV int) float64 {
	if maxV == 0 {
		return 1
	}
	return 1 - float64(v)/float64(maxV)
}
