// AngelaMos | 2026
// service.go

package account

import (
	"context"

	"github.com/carterperez-dev/paylink/internal/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByUsername(
	ctx context.Context,
	username string,
) (*auth.AccountInfo, error) {
	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return toAccountInfo(account), nil
}

func (s *Service) Create(
	ctx context.Context,
	username, passwordHash string,
) (*auth.AccountInfo, error) {
	account := &Account{
		Username:     username,
		PasswordHash: passwordHash,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	return toAccountInfo(account), nil
}

func (s *Service) UsernameExists(
	ctx context.Context,
	username string,
) (bool, error) {
	return s.repo.ExistsByUsername(ctx, username)
}

func toAccountInfo(a *Account) *auth.AccountInfo {
	return &auth.AccountInfo{
		ID:           a.ID,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
	}
}

var _ auth.AccountProvider = (*Service)(nil)
