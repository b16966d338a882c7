// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"net/http"

	"photofolio/internal/auth"
)

// AdminGate is the admission policy for the admin subtree.
//
// The login page redirects already-authenticated visitors to the
// dashboard; every other admin path redirects unauthenticated visitors
// to the login page. The gate is mounted on the /admin subtree only, so
// public paths never pass through it.
func AdminGate(codec *auth.TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authed := codec.IsAuthenticated(r.Header.Get("Cookie"))

			if r.URL.Path == "/admin/login" {
				if authed {
					http.Redirect(w, r, "/admin/dashboard", http.StatusFound)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if !authed {
				http.Redirect(w, r, "/admin/login", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
