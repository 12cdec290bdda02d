// AngelaMos | 2026
// service.go

package link

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/carterperez-dev/paylink/internal/core"
)

const (
	minNameLen = 3
	maxNameLen = 64
	minPrice   = 0
	maxPrice   = 1000
)

// Provisioner obtains a hosted checkout URL from the payment provider.
type Provisioner interface {
	CreatePaymentLink(ctx context.Context, price int) (string, error)
}

type Service struct {
	repo        Repository
	provisioner Provisioner
}

func NewService(repo Repository, provisioner Provisioner) *Service {
	return &Service{
		repo:        repo,
		provisioner: provisioner,
	}
}

// Create runs the provisioning sequence: validate, provision externally,
// persist. The external call and the insert deliberately do not share a
// transaction; if the insert fails after provisioning succeeded, the checkout
// link is orphaned at the provider and the error says so distinctly.
func (s *Service) Create(
	ctx context.Context,
	name string,
	price int,
) (*Link, error) {
	if err := validateLink(name, price); err != nil {
		return nil, err
	}

	url, err := s.provisioner.CreatePaymentLink(ctx, price)
	if err != nil {
		return nil, fmt.Errorf("provision payment link: %w", err)
	}

	created, err := s.repo.Insert(ctx, name, price, url)
	if err != nil {
		slog.Error("provisioned checkout link not persisted",
			"url", url,
			"name", name,
			"price", price,
			"error", err,
		)
		return nil, fmt.Errorf(
			"persist link: %w: %w",
			core.ErrProvisionedNotPersisted,
			err,
		)
	}

	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Link, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Link, error) {
	return s.repo.List(ctx)
}

// Update overwrites name and price only. The existing checkout URL is kept;
// re-provisioning on update is an explicit non-feature.
func (s *Service) Update(
	ctx context.Context,
	id int64,
	name string,
	price int,
) (*Link, error) {
	if err := validateLink(name, price); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, name, price)
}

// Delete removes the local row only. The provider-side link is left to
// expire on its own; there is no cancellation call.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validateLink(name string, price int) error {
	if n := utf8.RuneCountInString(name); n < minNameLen || n > maxNameLen {
		return core.ValidationError(fmt.Sprintf(
			"name must be between %d and %d characters",
			minNameLen,
			maxNameLen,
		))
	}

	if price < minPrice || price > maxPrice {
		return core.ValidationError(fmt.Sprintf(
			"price must be between %d and %d",
			minPrice,
			maxPrice,
		))
	}

	return nil
}
