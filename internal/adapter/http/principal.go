package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"postcraft/internal/core/domain"
)

// PrincipalHeader carries the id of the authenticated user. Validating it is
// the job of whatever sits in front of this service.
const PrincipalHeader = "X-User-Id"

type principalKey struct{}

func principalMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := domain.Principal(strings.TrimSpace(r.Header.Get(PrincipalHeader)))
		ctx := context.WithValue(r.Context(), principalKey{}, p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// principalFrom returns the request's principal, empty when unauthenticated.
func principalFrom(r *http.Request) domain.Principal {
	p, _ := r.Context().Value(principalKey{}).(domain.Principal)
	return p
}
