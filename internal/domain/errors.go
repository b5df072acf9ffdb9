package domain

import "errors"

// ErrNotFound is returned when a requested location or POI does not exist
// in the catalog. Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (unknown criterion, origin equal to destination, bad coordinates).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrNoOptions is returned by the recommendation scorer when it is given an
// empty option list. Handlers should map this to HTTP 422.
var ErrNoOptions = errors.New("no transport options to score")
