//go:build unit || e2e

package sessiontest

import (
	"net/http"
	"testing"

	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/session"

	"github.com/stretchr/testify/require"
)

// Cookie returns a signed session cookie for id, as the server would issue it.
func Cookie(t *testing.T, svc *session.Service, cfg config.SessionConfig, id session.Identity) *http.Cookie {
	t.Helper()

	token, err := svc.Encode(id)
	require.NoError(t, err, "Failed to encode session")

	return &http.Cookie{Name: cfg.CookieName, Value: token, Path: "/", HttpOnly: true}
}

func Identified(name, room string) session.Identity {
	return session.Identity{Name: name, Room: room}
}

func Dated(name, room, month string, day int) session.Identity {
	return session.Identity{Name: name, Room: room, Month: month, Day: day}
}

// Decode reads the identity back out of a response cookie.
func Decode(t *testing.T, svc *session.Service, c *http.Cookie) session.Identity {
	t.Helper()

	require.NotNil(t, c, "session cookie was not set")
	id, err := svc.Decode(c.Value)
	require.NoError(t, err, "Failed to decode session cookie")
	return id
}
