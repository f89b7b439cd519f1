package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	models "github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var UserContextKey = contextKey(uuid.New())

type AuthMiddleware struct {
	jwtKey []byte
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {

	return &AuthMiddleware{jwtKey: jwtKey}

}

// ClaimsFromContext returns the authenticated user, if any.
func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)
	return claims, ok && claims != nil
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))
			return
		}

		claims, appErr := m.parseToken(logger, authHeader)
		if appErr != nil {
			response.Error(w, appErr)
			return
		}

		next.ServeHTTP(w, m.withClaims(r, logger, claims))
	}
}

// OptionalAuth lets guests through. A token that is present but invalid is still rejected.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, appErr := m.parseToken(logger, authHeader)
		if appErr != nil {
			response.Error(w, appErr)
			return
		}

		next.ServeHTTP(w, m.withClaims(r, logger, claims))
	}
}

// RequireRole must run after Authenticate.
func RequireRole(role string, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Role check without authenticated user")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		if claims.Role != role {
			logger.Warn("Insufficient role", slog.String("required", role), slog.String("role", claims.Role))
			response.Error(w, errors.ForbiddenError("You are not allowed to access this route"))
			return
		}

		next.ServeHTTP(w, r)
	}
}

func (m *AuthMiddleware) parseToken(logger *slog.Logger, authHeader string) (*models.Claims, *errors.AppError) {

	// Token is of format : "Bearer <token>"
	tokenParts := strings.Split(authHeader, " ")

	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		logger.Warn("Invalid authorization header format")
		return nil, errors.UnauthorizedError("Invalid authorization format")
	}

	claims := &models.Claims{}

	var methodErr *errors.AppError

	token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			logger.Error("Unexpected signing method used in JWT", slog.Any("alg", t.Header["alg"]))
			methodErr = errors.BadRequestError("unexpected signing method")
			return nil, methodErr
		}
		return m.jwtKey, nil
	})

	if methodErr != nil {
		return nil, methodErr
	}

	if err != nil {
		logger.Warn("JWT parsing failed", slog.String("error", err.Error()))
		return nil, errors.UnauthorizedError("Invalid or expired token")
	}

	if !token.Valid {
		logger.Warn("Invalid token")
		return nil, errors.UnauthorizedError("Invalid token")
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		logger.Warn("Expired token", slog.String("userId", claims.UserID.String()))
		return nil, errors.UnauthorizedError("Token expired")
	}

	return claims, nil
}

func (m *AuthMiddleware) withClaims(r *http.Request, logger *slog.Logger, claims *models.Claims) *http.Request {

	ctx := context.WithValue(r.Context(), UserContextKey, claims)

	requestScopedLogger := logger.With(slog.String("userId", claims.UserID.String()))
	ctx = WithLogger(ctx, requestScopedLogger)

	requestScopedLogger.Debug("User authenticated")

	return r.WithContext(ctx)
}
