package handler

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"
)

// queryParam describes one optional query parameter and where to bind it.
// dest must be a pointer to a pointer (e.g. **int) so an absent parameter
// leaves it nil.
type queryParam struct {
	name string
	dest any
}

// bindQuery binds every param from the request's query string using the
// OpenAPI "form" style. It stops at the first malformed value.
func bindQuery(r *http.Request, params ...queryParam) error {
	q := r.URL.Query()
	for _, p := range params {
		if err := runtime.BindQueryParameter("form", true, false, p.name, q, p.dest); err != nil {
			return fmt.Errorf("invalid value for query parameter %q", p.name)
		}
	}
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
