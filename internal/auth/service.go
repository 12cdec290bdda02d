// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/carterperez-dev/paylink/internal/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameExists     = errors.New("username already exists")
)

type AccountInfo struct {
	ID           int64
	Username     string
	PasswordHash string
}

type AccountProvider interface {
	GetByUsername(ctx context.Context, username string) (*AccountInfo, error)
	Create(
		ctx context.Context,
		username, passwordHash string,
	) (*AccountInfo, error)
}

type Service struct {
	accounts AccountProvider
	tokens   *TokenManager
}

func NewService(accounts AccountProvider, tokens *TokenManager) *Service {
	return &Service{
		accounts: accounts,
		tokens:   tokens,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.accounts.Create(ctx, req.Username, passwordHash); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return ErrUsernameExists
		}
		return fmt.Errorf("create account: %w", err)
	}

	return nil
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*TokenResponse, error) {
	account, err := s.accounts.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	// The rehash result is discarded: stored credentials are immutable after
	// registration, so parameter upgrades wait for a rotation flow.
	valid, _, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&account.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.tokens.config.TokenExpire.Seconds()),
	}, nil
}
