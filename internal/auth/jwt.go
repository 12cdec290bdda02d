// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/carterperez-dev/paylink/internal/config"
	"github.com/carterperez-dev/paylink/internal/core"
)

// TokenManager issues and verifies HS256 bearer tokens signed with a single
// process-wide secret. Rotating the secret invalidates every outstanding
// token; there is no revocation list.
type TokenManager struct {
	key    jwk.Key
	config config.JWTConfig
}

func NewTokenManager(cfg config.JWTConfig) (*TokenManager, error) {
	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("import signing secret: %w", err)
	}

	if setErr := key.Set(jwk.AlgorithmKey, jwa.HS256()); setErr != nil {
		return nil, fmt.Errorf("set algorithm: %w", setErr)
	}

	return &TokenManager{
		key:    key,
		config: cfg,
	}, nil
}

// Issue builds a signed token for accountID. Pure function of its input, the
// secret and the clock.
func (m *TokenManager) Issue(accountID int64) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(m.config.Issuer).
		Audience([]string{m.config.Audience}).
		Subject(strconv.FormatInt(accountID, 10)).
		IssuedAt(now).
		Expiration(now.Add(m.config.TokenExpire)).
		NotBefore(now).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

// Verify checks the signature and the validity window and returns the account
// id the token was issued for. Every failure, whatever the cause, collapses
// into core.ErrUnauthorized so callers cannot distinguish a bad signature
// from an expired or malformed token.
func (m *TokenManager) Verify(
	ctx context.Context,
	tokenString string,
) (int64, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), m.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.config.Issuer),
		jwt.WithAudience(m.config.Audience),
	)
	if err != nil {
		return 0, fmt.Errorf("verify token: %w", core.ErrUnauthorized)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return 0, fmt.Errorf("verify token: %w", core.ErrUnauthorized)
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || accountID <= 0 {
		return 0, fmt.Errorf("verify token: %w", core.ErrUnauthorized)
	}

	return accountID, nil
}
