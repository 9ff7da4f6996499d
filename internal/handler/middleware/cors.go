package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"room-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware allows the configured origins to send the session cookie.
// A "*" origin cannot carry credentials, so it turns credentials off. With no
// origins configured cross-origin requests get no CORS headers at all.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	origins := slices.DeleteFunc(slices.Clone(cfg.AllowOrigins), func(o string) bool {
		return strings.TrimSpace(o) == ""
	})
	if len(origins) == 0 {
		slog.Warn("CORS disabled: no allowed origins configured")
		return func(c *gin.Context) { c.Next() }
	}

	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	if slices.Contains(origins, "*") {
		corsCfg.AllowAllOrigins = true
		if corsCfg.AllowCredentials {
			slog.Warn("CORS allows every origin, session cookies will not be sent cross-site")
			corsCfg.AllowCredentials = false
		}
	} else {
		corsCfg.AllowOrigins = origins
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", origins, "allow_credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}
