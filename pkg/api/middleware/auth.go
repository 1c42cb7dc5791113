package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/monginis/export-api/config"
	errs "github.com/monginis/export-api/pkg/errors"
	"github.com/monginis/export-api/pkg/lumber"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// HandleAdminAuth returns a middleware that guards the admin listing
// endpoints with the configured static token. An empty configured token
// keeps the endpoints closed.
func HandleAdminAuth(cfg *config.Config, logger lumber.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AdminToken == "" {
			logger.Warnf("admin token not configured, rejecting admin API request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, errs.ErrUnauthorized)
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errs.ErrUnauthorized)
			return
		}
		token := strings.TrimPrefix(header, bearerPrefix)
		if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.AdminToken)) != 1 {
			logger.Debugf("admin API request with invalid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, errs.ErrUnauthorized)
			return
		}
		c.Next()
	}
}
