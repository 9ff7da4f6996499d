package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"room-booking/internal/domain/booking"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxIdentityKey = "session_identity"

var (
	errNoIdentity = errors.New("session has no identity")
	errNoDate     = errors.New("session has no date")
)

type SessionMiddleware struct {
	sessions *session.Service
	cfg      config.SessionConfig
}

func NewSessionMiddleware(sessions *session.Service, cfg config.SessionConfig) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		cfg:      cfg,
	}
}

// Load decodes the session cookie when present. A bad or expired cookie is
// dropped and the request continues anonymously.
func (m *SessionMiddleware) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := session.GetToken(c, m.cfg)
		if token == "" {
			c.Next()
			return
		}

		id, err := m.sessions.Decode(token)
		if err != nil {
			slog.Debug("discarding session cookie", "error", err.Error())
			session.ClearCookie(c, m.cfg)
			c.Next()
			return
		}

		c.Set(ctxIdentityKey, id)
		c.Next()
	}
}

func (m *SessionMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := GetIdentity(c)
		if !id.IsIdentified() {
			httperr.AbortWithStep(c, http.StatusBadRequest, errNoIdentity,
				"Tell us your name and room first", httperr.StepIdentify)
			return
		}
		c.Next()
	}
}

// RequireDate implies RequireIdentity.
func (m *SessionMiddleware) RequireDate() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := GetIdentity(c)
		if !id.IsIdentified() {
			httperr.AbortWithStep(c, http.StatusBadRequest, errNoIdentity,
				"Tell us your name and room first", httperr.StepIdentify)
			return
		}
		if !id.HasDate() {
			httperr.AbortWithStep(c, http.StatusBadRequest, errNoDate,
				"Choose a month and day first", httperr.StepDate)
			return
		}
		c.Next()
	}
}

// Issue signs id into the session cookie and makes it visible to the rest of
// the request. The session id survives reissues.
func (m *SessionMiddleware) Issue(c *gin.Context, id session.Identity) (session.Identity, error) {
	if id.ID == uuid.Nil {
		if current, ok := GetIdentity(c); ok && current.ID != uuid.Nil {
			id.ID = current.ID
		} else {
			id.ID = uuid.New()
		}
	}
	token, err := m.sessions.Encode(id)
	if err != nil {
		return session.Identity{}, err
	}
	session.SetCookie(c, m.cfg, token)
	c.Set(ctxIdentityKey, id)
	return id, nil
}

func (m *SessionMiddleware) Clear(c *gin.Context) {
	session.ClearCookie(c, m.cfg)
	c.Set(ctxIdentityKey, session.Identity{})
}

func GetIdentity(c *gin.Context) (session.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return session.Identity{}, false
	}
	id, ok := v.(session.Identity)
	return id, ok
}

// GetOwner returns the booking owner of an identified session.
func GetOwner(c *gin.Context) (booking.Owner, bool) {
	id, ok := GetIdentity(c)
	if !ok || !id.IsIdentified() {
		return booking.Owner{}, false
	}
	owner, err := booking.NewOwner(id.Name, id.Room)
	if err != nil {
		return booking.Owner{}, false
	}
	return owner, true
}
