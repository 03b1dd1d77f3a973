package middleware

import (
	"net/http"

	"tyzox-be/internal/auth"
	"tyzox-be/internal/handler/dto"
	"tyzox-be/internal/logger"
	"tyzox-be/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth identifies the caller from the access_token cookie or a Bearer
// header. Requests without a token continue anonymously; a token that
// fails verification is rejected.
func Auth(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractAccessToken(c.Request)
		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := issuer.Parse(tokenStr)
		if err != nil {
			logger.FromCtx(c.Request.Context()).Debug("rejected access token",
				zap.String("layer", "middleware"),
				zap.Error(err),
			)
			abort(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "invalid or expired token")
			return
		}

		ctx := utils.SetUserContext(c.Request.Context(), claims.UserID, claims.Email, claims.Role)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.GetUserIDFromContext(c.Request.Context()); !ok {
			abort(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "authentication required")
			return
		}
		c.Next()
	}
}

// RequireAdmin answers 401 to anonymous callers and 403 to non-admins.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if _, ok := utils.GetUserIDFromContext(ctx); !ok {
			abort(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "authentication required")
			return
		}
		if !utils.IsAdmin(ctx) {
			abort(c, http.StatusForbidden, dto.ErrCodeForbidden, "admin access required")
			return
		}
		c.Next()
	}
}

// ServiceAuthHeader carries the shared key of internal callers such as the
// metrics scraper.
const ServiceAuthHeader = "X-Service-Auth"

// RequireServiceKey admits only callers presenting key. An empty key leaves
// the route open, which is how local setups run.
func RequireServiceKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key != "" && c.GetHeader(ServiceAuthHeader) != key {
			abort(c, http.StatusForbidden, dto.ErrCodeForbidden, "service key required")
			return
		}
		c.Next()
	}
}

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, message, logger.RequestIDFrom(c.Request.Context())))
}
