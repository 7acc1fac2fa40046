// internal/acl/middleware.go
//
// Chi middleware that gates units behind credentials.
//
// Context
// -------
// A Policy maps unit names to the credentials that may view them.  The
// middleware reads the "{unit}" URL parameter, so it must be attached to
// routes that declare it (r.With(policy.Middleware)).
//
// Rules
// -----
//   • A unit missing from the policy, or mapped to an empty list, is open.
//   • Otherwise the request needs an authenticated user (401) holding ANY
//     of the listed credentials (403).

package acl

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/xmf/internal/auth"
)

// Policy maps unit names to the credentials allowed to view them.
type Policy map[string][]string

// Allows reports whether creds satisfy the policy for unit.
func (p Policy) Allows(unit string, creds []string) bool {
	need := p[unit]
	if len(need) == 0 {
		return true
	}
	for _, n := range need {
		for _, c := range creds {
			if n == c {
				return true
			}
		}
	}
	return false
}

// Middleware enforces the policy for the routed unit.
func (p Policy) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		unit := chi.URLParam(r, "unit")
		if len(p[unit]) == 0 {
			next.ServeHTTP(w, r)
			return
		}
		uid, ok := auth.UserID(r.Context())
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		if !p.Allows(unit, auth.Credentials(r.Context())) {
			zap.S().Infow("unit access denied", "unit", unit, "user", uid)
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
