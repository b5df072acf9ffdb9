package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pkordes/abidjan-route/internal/domain"
)

// SearchRoutes handles GET /routes?from=&to=&criterion=.
// criterion defaults to balanced.
func (s *Server) SearchRoutes(w http.ResponseWriter, r *http.Request) {
	var from, to, criterion *string
	if err := bindQuery(r,
		queryParam{"from", &from},
		queryParam{"to", &to},
		queryParam{"criterion", &criterion},
	); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	result, err := s.routes.Search(r.Context(), deref(from), deref(to), deref(criterion))
	if err != nil {
		s.writeError(w, r, err, "location not found")
		return
	}
	writeJSON(w, http.StatusOK, routeToResponse(result))
}

// RecommendRoute handles POST /routes/recommend.
// It re-scores the options of an earlier search under a new criterion.
func (s *Server) RecommendRoute(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: ErrorDetail{Code: "request_too_large", Message: "request body too large"}})
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("request body must be a JSON object with options and criterion"))
		return
	}

	options := make([]domain.TransportOption, len(req.Options))
	for i, o := range req.Options {
		options[i] = optionFromRequest(o)
	}

	id, scores, err := s.routes.Recommend(r.Context(), options, req.Criterion)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}

	out := RecommendResponse{RecommendedOption: id, Scores: make([]OptionScore, len(scores))}
	for i, sc := range scores {
		out.Scores[i] = OptionScore{OptionID: sc.OptionID, Score: sc.Score}
	}
	writeJSON(w, http.StatusOK, out)
}
