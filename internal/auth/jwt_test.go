package auth

import (
	"testing"
	"time"

	"github.com/DRSN-tech/eshop-backend/internal/cfg"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_IssueAndParse(t *testing.T) {
	m := NewJWTManager(&cfg.JWTCfg{Secret: "test-secret", TokenTTL: time.Hour})

	token, err := m.Issue(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	m := NewJWTManager(&cfg.JWTCfg{Secret: "test-secret", TokenTTL: -time.Minute})

	token, err := m.Issue(42, false)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, e.ErrTokenExpired)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	issuer := NewJWTManager(&cfg.JWTCfg{Secret: "secret-a", TokenTTL: time.Hour})
	verifier := NewJWTManager(&cfg.JWTCfg{Secret: "secret-b", TokenTTL: time.Hour})

	token, err := issuer.Issue(42, false)
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, e.ErrInvalidToken)
}

func TestJWTManager_GarbageToken(t *testing.T) {
	m := NewJWTManager(&cfg.JWTCfg{Secret: "test-secret", TokenTTL: time.Hour})

	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, e.ErrInvalidToken)
}

func TestBcryptHasher_Roundtrip(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", hash)

	assert.NoError(t, h.Compare(hash, "secret"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), e.ErrInvalidCredentials)
}
