package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aerostudent/teamreg/pkg/response"
)

// SecretHeader is the header holding the shared API secret.
const SecretHeader = "X-Api-Secret"

// RequireSecret returns a middleware rejecting requests without the shared secret.
// An empty secret disables the check.
func RequireSecret(secret string, logger *zap.SugaredLogger) gin.HandlerFunc {
	if secret == "" {
		logger.Warn("API secret is empty, write routes are not protected")
		return func(c *gin.Context) { c.Next() }
	}

	expected := []byte(secret)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader(SecretHeader))
		if subtle.ConstantTimeCompare(got, expected) != 1 {
			logger.Warnw("rejected request with invalid API secret",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
			)
			response.Unauthorized(c, "invalid API secret")
			c.Abort()
			return
		}
		c.Next()
	}
}
