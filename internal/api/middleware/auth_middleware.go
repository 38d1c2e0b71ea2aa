package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/trystore/kiosk-platform/internal/errors"
	"github.com/trystore/kiosk-platform/internal/models"
	"github.com/trystore/kiosk-platform/internal/utils/response"
)

type userContextKey string

const UserContextKey = userContextKey("user")

type AuthMiddleware struct {
	jwtKey     []byte
	cookieName string
}

func NewAuthMiddleware(jwtKey []byte, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{jwtKey: jwtKey, cookieName: cookieName}
}

// sessionToken extracts the JWT from the Authorization header or, for
// browser navigations, from the session cookie.
func (m *AuthMiddleware) sessionToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
			return tokenParts[1]
		}

		return ""
	}

	if cookie, err := r.Cookie(m.cookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// ParseClaims validates a token and returns its claims, or nil for a
// missing/invalid/expired session.
func (m *AuthMiddleware) ParseClaims(r *http.Request) *models.Claims {
	tokenString := m.sessionToken(r)
	if tokenString == "" {
		return nil
	}

	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.BadRequestError("unexpected signing method")
		}
		return m.jwtKey, nil
	})

	if err != nil || !token.Valid {
		return nil
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return nil
	}

	return claims
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		claims := m.ParseClaims(r)
		if claims == nil {
			logger.Warn("Unauthenticated request", slog.String("path", r.URL.Path))
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)

		requestScopedLogger := logger.With(slog.String("userId", claims.UserID.String()))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// ClaimsFromContext returns the authenticated session claims, if any.
func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)
	return claims, ok
}
