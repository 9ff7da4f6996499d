//go:build unit

package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, ComparePassword(hash, "s3cret"))
	assert.ErrorIs(t, ComparePassword(hash, "wrong"), ErrMismatch)
	assert.ErrorIs(t, ComparePassword("", "s3cret"), ErrInvalidPassword)

	_, err = HashPassword("")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestVerifyCredentials(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, VerifyCredentials("admin", hash, "admin", "s3cret"))
	assert.False(t, VerifyCredentials("admin", hash, "root", "s3cret"))
	assert.False(t, VerifyCredentials("admin", hash, "admin", "wrong"))
	assert.False(t, VerifyCredentials("admin", "", "admin", "s3cret"), "no configured hash disables the account")
}
