package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/learnhubhq/docsearch/internal/api"
	"github.com/learnhubhq/docsearch/internal/auth"
	"github.com/learnhubhq/docsearch/internal/domain"
)

type contextKey string

const IdentityKey contextKey = "identity"

// BearerAuth rejects requests without a valid bearer token. A missing or
// malformed header and an invalid token are reported with distinct
// messages so the client can tell "sign in" apart from "sign in again".
func BearerAuth(validator auth.Validator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				api.Error(w, http.StatusUnauthorized, domain.ErrAuthRequired.Message)
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				api.Error(w, http.StatusUnauthorized, domain.ErrAuthRequired.Message)
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")

			identity, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				api.Error(w, http.StatusUnauthorized, domain.ErrInvalidToken.Message)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity returns the authenticated identity from context, or nil.
func GetIdentity(ctx context.Context) *auth.Identity {
	identity, _ := ctx.Value(IdentityKey).(*auth.Identity)
	return identity
}
