//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertBasicChallenge checks the 401 challenge of the admin area.
func AssertBasicChallenge(t *testing.T, w *httptest.ResponseRecorder, realm string) {
	t.Helper()
	AssertHeaders(t, w, map[string]string{"WWW-Authenticate": `Basic realm="` + realm + `"`})
}

// AssertCookieCleared checks that the response expires the named cookie.
func AssertCookieCleared(t *testing.T, w *httptest.ResponseRecorder, name string) {
	t.Helper()
	c := ExtractCookie(w, name)
	if assert.NotNil(t, c, "cookie %s not set", name) {
		assert.Empty(t, c.Value)
		assert.Less(t, c.MaxAge, 0)
	}
}
