package providers

import (
	"context"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"wsd/internal/models"
)

// TokenVerifier validates a bearer token and resolves it to the canonical
// user record. Implemented by the auth service.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*models.User, error)
}

type ctxKey int

const userCtxKey ctxKey = 0

// UserFromContext returns the authenticated user stored by AuthMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userCtxKey).(*models.User)
	return u, ok
}

// ContextWithUser stores the authenticated user on the context.
func ContextWithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userCtxKey, u)
}

// AuthMiddleware enforces the bearer check. The 401 body is identical for a
// missing, malformed, or expired token.
func AuthMiddleware(verifier TokenVerifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeUnauthorized(w)
			return
		}

		user, err := verifier.Verify(r.Context(), token)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	body, _ := json.Marshal(map[string]any{"success": false, "message": "unauthorized"})
	_, _ = w.Write(body)
}
