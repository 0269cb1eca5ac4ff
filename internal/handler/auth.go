package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/jwt"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
)

// AdminRole is the token role granting administrative access.
const AdminRole = "admin"

// Auth validates platform-issued bearer tokens and exposes the caller's
// identity to handlers. Tokens are issued by the platform's identity
// provider; this service never issues or refreshes them.
type Auth struct {
	middleware *jwt.HertzJWTMiddleware
	logger     *slog.Logger
}

// NewAuth creates the token validation middleware.
func NewAuth(jwtSecret string, logger *slog.Logger) *Auth {
	middleware, err := jwt.New(&jwt.HertzJWTMiddleware{
		Realm:       "sourcing-api",
		Key:         []byte(jwtSecret),
		Timeout:     time.Hour * 24,
		IdentityKey: "user_id",

		// Extract identity information from the token
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				return ""
			}
			// Store identity in RequestContext for all handlers to use
			c.Set("user_id", userID)
			c.Set("is_admin", hasRole(claims, AdminRole))
			return userID
		},

		// Access allowed with any valid, non-empty identity
		Authorizator: func(data interface{}, ctx context.Context, c *app.RequestContext) bool {
			userID, ok := data.(string)
			return ok && userID != ""
		},

		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, Response{
				Code:    "UNAUTHORIZED",
				Message: message,
			})
		},

		TokenLookup:   "header: Authorization",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
	})

	if err != nil {
		logger.Error("failed to create jwt middleware", "error", err)
		panic(err)
	}

	return &Auth{
		middleware: middleware,
		logger:     logger,
	}
}

// Middleware returns the JWT validation middleware for route protection.
func (a *Auth) Middleware() app.HandlerFunc {
	return a.middleware.MiddlewareFunc()
}

// hasRole reports whether the token's roles claim contains the role.
func hasRole(claims jwt.MapClaims, role string) bool {
	roles, ok := claims["roles"].([]interface{})
	if !ok {
		return false
	}
	for _, r := range roles {
		if name, ok := r.(string); ok && name == role {
			return true
		}
	}
	return false
}

// callerFrom reads the authenticated caller from the request context. The
// second return value is false when the request bypassed authentication.
func callerFrom(c *app.RequestContext) (domain.Caller, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return domain.Caller{}, false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return domain.Caller{}, false
	}
	isAdmin := false
	if adminVal, exists := c.Get("is_admin"); exists {
		if v, ok := adminVal.(bool); ok {
			isAdmin = v
		}
	}
	return domain.Caller{UserID: userID, IsAdmin: isAdmin}, true
}
