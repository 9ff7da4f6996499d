package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/password"

	"github.com/gin-gonic/gin"
)

const ctxAdminKey = "admin_user"

var (
	errAdminDisabled    = errors.New("admin access is not configured")
	errAdminCredentials = errors.New("invalid admin credentials")
)

type AdminMiddleware struct {
	cfg config.AdminConfig
}

func NewAdminMiddleware(cfg config.AdminConfig) *AdminMiddleware {
	if cfg.PasswordHash == "" {
		slog.Info("admin endpoints disabled: ADMIN_PASSWORD_HASH is empty")
	}
	return &AdminMiddleware{cfg: cfg}
}

// RequireAdmin checks HTTP basic credentials against the configured bcrypt hash.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cfg.PasswordHash == "" {
			httperr.AbortWithError(c, http.StatusNotFound, errAdminDisabled, "Not found", nil)
			return
		}

		user, pass, ok := c.Request.BasicAuth()
		if !ok || !password.VerifyCredentials(m.cfg.Username, m.cfg.PasswordHash, user, pass) {
			slog.Warn("admin authentication failed", "client_ip", c.ClientIP())
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			httperr.AbortWithError(c, http.StatusUnauthorized, errAdminCredentials, "Admin credentials required", nil)
			return
		}

		c.Set(ctxAdminKey, user)
		c.Next()
	}
}
