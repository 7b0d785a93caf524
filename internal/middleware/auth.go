// internal/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"mussar_keep/internal/config"
	"mussar_keep/internal/model"
	"mussar_keep/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserResolver loads the user behind a token subject. Implemented by the user
// service; defined here so the middleware does not depend on the service
// package.
type UserResolver interface {
	ResolveUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

// JWTAuthMiddleware verifies the Authorization bearer token, resolves the
// current user and stores it in the request context.
func JWTAuthMiddleware(cfg *config.Config, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Not authenticated", model.ErrUnauthorized))
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("Auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Invalid Authorization header", model.ErrUnauthorized))
				return
			}
			tokenString := headerParts[1]

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("Auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Could not validate credentials", model.ErrUnauthorized))
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				logger.Warn("Auth failed: Unknown claims type")
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Could not validate credentials", model.ErrUnauthorized))
				return
			}

			subject, err := claims.GetSubject()
			if err != nil {
				logger.Warn("Auth failed: Subject (sub) claim missing", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Could not validate credentials", model.ErrUnauthorized))
				return
			}

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("Auth failed: Invalid subject format", "subject", subject)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Could not validate credentials", model.ErrUnauthorized))
				return
			}

			user, err := resolver.ResolveUser(r.Context(), userID)
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					logger.Warn("Auth failed: Token subject does not exist", "user_id", userID.String())
					webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "User not found", model.ErrUnauthorized))
					return
				}
				webutil.HandleError(w, logger, err)
				return
			}
			if !user.IsActive {
				logger.Warn("Auth failed: Inactive user", "user_id", userID.String())
				webutil.HandleError(w, logger, model.NewAppError("INACTIVE_USER", "Inactive user", model.ErrInvalidInput))
				return
			}

			ctx := context.WithValue(r.Context(), model.CurrentUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSuperuser gates mutating routes on the caller's is_superuser flag.
func RequireSuperuser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		user, err := GetCurrentUser(r.Context())
		if err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
		if !user.IsSuperuser {
			logger.Warn("Forbidden: superuser required", "user_id", user.ID.String())
			webutil.HandleError(w, logger, model.NewAppError("FORBIDDEN", "The user doesn't have enough privileges", model.ErrForbidden))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetCurrentUser returns the authenticated user placed in the context by
// JWTAuthMiddleware.
func GetCurrentUser(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(model.CurrentUserKey).(*model.User)
	if !ok || user == nil {
		return nil, model.NewAppError("UNAUTHORIZED", "Not authenticated", model.ErrUnauthorized)
	}
	return user, nil
}
