// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/paylink/internal/config"
	"github.com/carterperez-dev/paylink/internal/core"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:      "test-secret-at-least-32-bytes-long!!",
		TokenExpire: time.Hour,
		Issuer:      "paylink-api",
		Audience:    "paylink-clients",
	}
}

func TestTokenManagerIssueVerify(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	token, err := manager.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	accountID, err := manager.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), accountID)
}

func TestTokenManagerVerifyExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.TokenExpire = -time.Minute

	manager, err := NewTokenManager(cfg)
	require.NoError(t, err)

	token, err := manager.Issue(42)
	require.NoError(t, err)

	_, err = manager.Verify(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnauthorized))
}

func TestTokenManagerVerifyWrongSecret(t *testing.T) {
	issuer, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = "a-completely-different-signing-key!!"
	verifier, err := NewTokenManager(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnauthorized))
}

func TestTokenManagerVerifyWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Issuer = "some-other-service"

	issuer, err := NewTokenManager(cfg)
	require.NoError(t, err)

	verifier, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnauthorized))
}

func TestTokenManagerVerifyGarbage(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	for _, token := range []string{
		"",
		"not-a-token",
		"aaaa.bbbb.cccc",
	} {
		_, err := manager.Verify(context.Background(), token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrUnauthorized))
	}
}
