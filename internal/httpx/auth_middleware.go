package httpx

import (
	"net/http"
	"strings"

	"bookcatalog/internal/platform/crypto"
)

// AuthMiddleware guards routes behind a bearer token signed with secret.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || scheme != "Bearer" || token == "" {
				WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if secret == "" {
				WriteMessage(w, http.StatusInternalServerError, "JWT secret not configured")
				return
			}

			claims, err := crypto.ParseToken(secret, token)
			if err != nil {
				WriteMessage(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := ContextWithUser(r.Context(), claims.UserID, claims.Username, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
