package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/config"
)

const testUserID = "6f1c1f5e-2a41-4f3a-9d0e-0c7a5b1e8c11"

func newTestTokenService(t *testing.T, secret string) *TokenService {
	t.Helper()
	s, err := NewTokenService(&config.AuthConfig{JWTSecret: secret, TokenTTL: time.Hour})
	require.NoError(t, err)
	return s
}

func TestTokenService_RoundTrip(t *testing.T) {
	s := newTestTokenService(t, "test-secret")

	token, err := s.Issue(testUserID)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	got, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, got)
}

func TestTokenService_FlippedSignatureBit(t *testing.T) {
	s := newTestTokenService(t, "test-secret")
	token, err := s.Issue(testUserID)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	sig[len(sig)/2] ^= 0x01
	parts[2] = base64.RawURLEncoding.EncodeToString(sig)

	_, err = s.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := newTestTokenService(t, "secret-a").Issue(testUserID)
	require.NoError(t, err)

	_, err = newTestTokenService(t, "secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestTokenService_Expired(t *testing.T) {
	s := newTestTokenService(t, "test-secret")
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := s.Issue(testUserID)
	require.NoError(t, err)

	_, err = newTestTokenService(t, "test-secret").Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_Malformed(t *testing.T) {
	s := newTestTokenService(t, "test-secret")

	for _, token := range []string{"", "abc", "a.b.c", "....."} {
		_, err := s.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", token)
	}
}

func TestTokenService_MissingUserID(t *testing.T) {
	s := newTestTokenService(t, "test-secret")
	token, err := s.Issue("")
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewTokenService_RejectsBadConfig(t *testing.T) {
	_, err := NewTokenService(&config.AuthConfig{JWTSecret: "", TokenTTL: time.Hour})
	require.Error(t, err)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.ConfigError, appErr.Type)

	_, err = NewTokenService(&config.AuthConfig{JWTSecret: "x", TokenTTL: 0})
	assert.Error(t, err)
}
