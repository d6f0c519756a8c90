package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/starbank/vendas-api/internal/response"
	"github.com/starbank/vendas-api/internal/rules"
)

type contextKey string

const sessionKey contextKey = "session"

// Middleware validates the bearer token on incoming requests and
// injects the resulting session into the request context.
func Middleware(tokens *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w)
				return
			}

			session, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom returns the session injected by Middleware. The second
// return is false on routes mounted outside the middleware.
func SessionFrom(ctx context.Context) (rules.Session, bool) {
	session, ok := ctx.Value(sessionKey).(rules.Session)
	return session, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(&response.ErrorResponse{Error: "missing or invalid session token"})
}
