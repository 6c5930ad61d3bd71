package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipherRoundTrip(t *testing.T) {
	c, err := New(strings.Repeat("ab", 32))
	require.NoError(t, err)
	require.True(t, c.Configured())

	sealed, err := c.EncryptString("1990-1234-5678")
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "1990-1234-5678")

	plain, err := c.DecryptString(sealed)
	require.NoError(t, err)
	assert.Equal(t, "1990-1234-5678", plain)
}

func TestCipherNoncesDiffer(t *testing.T) {
	c, err := New(strings.Repeat("cd", 32))
	require.NoError(t, err)

	a, err := c.EncryptString("same")
	require.NoError(t, err)
	b, err := c.EncryptString("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCipherWithoutKeyStoresPlaintext(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.False(t, c.Configured())

	sealed, err := c.EncryptString("plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), sealed)

	plain, err := c.DecryptString(sealed)
	require.NoError(t, err)
	assert.Equal(t, "plain", plain)
}

func TestCipherRejectsBadKeyLength(t *testing.T) {
	_, err := New("too-short")
	assert.Error(t, err)
}

func TestDecryptShortCiphertext(t *testing.T) {
	c, err := New(strings.Repeat("ab", 32))
	require.NoError(t, err)
	_, err = c.DecryptString([]byte{1, 2})
	assert.ErrorIs(t, err, ErrShortCiphertext)
}
