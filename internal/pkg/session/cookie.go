package session

import (
	"net/http"

	"room-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetCookie(c *gin.Context, cfg config.SessionConfig, token string) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		cfg.CookieName,
		token,
		int(cfg.TTL.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearCookie(c *gin.Context, cfg config.SessionConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(cfg.CookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

func GetToken(c *gin.Context, cfg config.SessionConfig) string {
	token, _ := c.Cookie(cfg.CookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
