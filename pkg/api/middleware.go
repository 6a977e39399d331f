package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/opsdash/opsdash/pkg/auth"
	"github.com/opsdash/opsdash/pkg/models"
)

type contextKey int

const principalKey contextKey = iota

// principalFrom returns the authenticated principal attached by withSession.
func principalFrom(ctx context.Context) *models.Principal {
	p, _ := ctx.Value(principalKey).(*models.Principal)

	return p
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}

	return strings.TrimSpace(h[len(prefix):])
}

// withSession requires a valid bearer token. A rejected token is discarded
// at once (fail-closed): the session is invalidated before the 401 goes
// out, so the same token can never be retried silently.
func (s *Server) withSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)

		principal, err := s.guard.Validate(r.Context(), token)
		if err != nil {
			if errors.Is(err, models.ErrUnauthenticated) && token != "" {
				_ = s.guard.Invalidate(r.Context(), token)
			}

			writeError(w, err)

			return
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next(w, r.WithContext(ctx))
	}
}

// withAdmin layers the role check for the given action on top of session
// validation. The server-side check is the enforcement point; any UI-side
// gating is a convenience only.
func (s *Server) withAdmin(action auth.Action, next http.HandlerFunc) http.HandlerFunc {
	return s.withSession(func(w http.ResponseWriter, r *http.Request) {
		if err := s.guard.Authorize(principalFrom(r.Context()), action); err != nil {
			writeError(w, err)
			return
		}

		next(w, r)
	})
}
