package transport

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
)

// TokenVerifier checks a Firebase ID token. *auth.Client satisfies it; tests
// substitute a stub.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// WithAdminAuth enforces the access model:
//  1. /admin/ always requires a verified Firebase ID token.
//  2. A caller with a verified token gets full access everywhere.
//  3. Guests may GET when publicRead is on, and may always use the
//     storefront writes (register, quote, tracking).
//  4. Everything else, notably event mutations, is 401 for guests.
func WithAdminAuth(next http.Handler, verifier TokenVerifier, publicRead bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, hasToken := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		verified := false
		if hasToken && token != "" {
			if _, err := verifier.VerifyIDToken(r.Context(), token); err == nil {
				verified = true
			}
		}

		if isAdminPath(r.URL.Path) {
			switch {
			case !hasToken || token == "":
				http.Error(w, "Unauthorized: Login required", http.StatusUnauthorized)
			case !verified:
				http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			default:
				next.ServeHTTP(w, r)
			}
			return
		}

		if verified {
			next.ServeHTTP(w, r)
			return
		}

		if r.Method == http.MethodGet {
			if publicRead {
				next.ServeHTTP(w, r)
				return
			}
			http.Error(w, "Unauthorized: Login required", http.StatusUnauthorized)
			return
		}

		if isStorefrontWrite(r) {
			next.ServeHTTP(w, r)
			return
		}

		http.Error(w, "Unauthorized: Login required", http.StatusUnauthorized)
	})
}

func isAdminPath(path string) bool {
	return path == "/admin" || strings.HasPrefix(path, "/admin/")
}

// isStorefrontWrite reports whether the request is one of the anonymous
// storefront actions: registering for an event, pricing a quote, or
// appending a tracking entry.
func isStorefrontWrite(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}
	path := r.URL.Path
	if path == "/tracking" || strings.HasPrefix(path, "/tracking/") {
		return true
	}
	return strings.HasPrefix(path, "/events/") &&
		(strings.HasSuffix(path, "/register") || strings.HasSuffix(path, "/quote"))
}
