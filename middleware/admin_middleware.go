package middleware

import (
	"net/http"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/Modeva-Ecommerce/modeva-analytics/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Context keys set by AdminAuthMiddleware.
const (
	ContextAdminID    = "adminID"
	ContextAdminEmail = "adminEmail"
)

// AdminAuthMiddleware validates the CMS admin token from the admin_token
// cookie or a Bearer Authorization header.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token format"))
				return
			}
			token = parts[1]
		}

		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			logrus.Warnf("[auth] invalid token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextAdminEmail, claims.Email)
		c.Next()
	}
}
