package domain

import (
	"fmt"
	"strings"
)

// Criterion is the optimization axis used to pick a recommended option.
type Criterion string

const (
	CriterionFastest  Criterion = "fastest"
	CriterionCheapest Criterion = "cheapest"
	CriterionBalanced Criterion = "balanced"
	CriterionSafest   Criterion = "safest"
)

// DefaultCriterion is used when the caller does not choose one.
const DefaultCriterion = CriterionBalanced

// Criteria lists every supported criterion.
func Criteria() []Criterion {
	return []Criterion{CriterionFastest, CriterionCheapest, CriterionBalanced, CriterionSafest}
}

// ParseCriterion converts user input into a Criterion.
// Empty input yields DefaultCriterion; anything unknown is ErrValidation.
func ParseCriterion(s string) (Criterion, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultCriterion, nil
	}
	for _, c := range Criteria() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: criterion must be one of fastest, cheapest, balanced, safest", ErrValidation)
}
