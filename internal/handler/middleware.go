package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/daybook-labs/auth-service/internal/service"
)

type contextKey string

const accountIDContextKey contextKey = "accountID"

// AccountIDFromContext extracts the authenticated account id from the
// request context. Returns the empty string if none is present.
func AccountIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(accountIDContextKey).(string)
	return id
}

// RequireAuth is middleware that protects routes requiring a bearer
// token. It only proves the token; whether the referenced account
// still exists is the downstream handler's concern.
func RequireAuth(tokens *service.TokenService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, prefix) {
			writeError(w, http.StatusUnauthorized, "Authorization required")
			return
		}

		accountID, err := tokens.Verify(strings.TrimPrefix(auth, prefix))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), accountIDContextKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CORS allows the configured browser origins to call the API with
// credentials. Preflight requests are answered directly.
func CORS(origins []string, next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && allowed[origin] {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")
			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
