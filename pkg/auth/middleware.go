package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/akulagin/creditcore/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

// AuthMiddleware rejects requests without a valid bearer identity token.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := UserIDFromRequest(r)
		if userID == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromRequest extracts the verified identity from the bearer token, or
// returns "" when the request carries no valid token. Used directly by
// endpoints that treat anonymous callers as zero-balance users.
func UserIDFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	jwtService := &JWTService{}
	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		return ""
	}
	return claims.UserID
}
