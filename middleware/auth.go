package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"fitchallengeAPI/internal/identity"
)

type contextKey string

const identityKey contextKey = "identity"

// Auth builds the middleware that verifies the bearer credential on every
// request it wraps and injects the verified identity into the context.
// Handlers behind it never run without a verified subject.
func Auth(verifier identity.Verifier) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondUnauthorized(w, "Authorization header required")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == authHeader || token == "" {
				respondUnauthorized(w, "Invalid authorization format. Use 'Bearer <token>'")
				return
			}

			id, err := verifier.Verify(r.Context(), token)
			if err != nil {
				log.Printf("Token verification failed: %v", err)
				respondUnauthorized(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity extracts the verified identity placed by Auth.
func GetIdentity(ctx context.Context) (*identity.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*identity.Identity)
	return id, ok
}

// WithIdentity returns a context carrying a verified identity. Kept for
// handler tests that bypass the HTTP middleware.
func WithIdentity(ctx context.Context, id *identity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error": "` + message + `"}`))
}
