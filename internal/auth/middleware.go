package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/skisyula/jobify-be/internal/apperr"
)

type contextKey string

const userIDKey = contextKey("userID")

// UserID returns the authenticated user ID stored by the middleware, if any.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// Authenticator creates a middleware protecting routes behind a bearer
// token. On success the resolved user ID is placed in the request context;
// the credential store is never consulted here.
func Authenticator(ts *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeAuthError(w)
				return
			}

			userID, err := ts.Verify(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				writeAuthError(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter) {
	err := apperr.Auth("Authentication Invalid")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperr.Status(err))
	json.NewEncoder(w).Encode(map[string]string{"msg": err.Msg})
}
