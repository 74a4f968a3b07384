package middleware

import (
	"context"
	"net/http"
	"strings"

	"overlysocial/internal/service"
)

type contextKey string

const SessionIDKey contextKey = "sessionId"

// SessionMiddleware binds requests to their assessment session via the
// bearer token issued at session creation.
type SessionMiddleware struct {
	tokenSvc *service.TokenService
}

// NewSessionMiddleware creates a new session middleware.
func NewSessionMiddleware(tokenSvc *service.TokenService) *SessionMiddleware {
	return &SessionMiddleware{tokenSvc: tokenSvc}
}

// RequireSession validates the session token from the Authorization header
// and stores the session ID in the request context.
func (m *SessionMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.tokenSvc.ValidateSessionToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, claims.SessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID extracts the session ID from context.
func GetSessionID(ctx context.Context) string {
	if v := ctx.Value(SessionIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
