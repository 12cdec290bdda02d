// AngelaMos | 2026
// service_test.go

package link

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/paylink/internal/core"
)

type mockRepository struct {
	insertFn func(ctx context.Context, name string, price int, url string) (*Link, error)
	listFn   func(ctx context.Context) ([]Link, error)
	getFn    func(ctx context.Context, id int64) (*Link, error)
	updateFn func(ctx context.Context, id int64, name string, price int) (*Link, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockRepository) Insert(
	ctx context.Context,
	name string,
	price int,
	url string,
) (*Link, error) {
	return m.insertFn(ctx, name, price, url)
}

func (m *mockRepository) List(ctx context.Context) ([]Link, error) {
	return m.listFn(ctx)
}

func (m *mockRepository) Get(ctx context.Context, id int64) (*Link, error) {
	return m.getFn(ctx, id)
}

func (m *mockRepository) Update(
	ctx context.Context,
	id int64,
	name string,
	price int,
) (*Link, error) {
	return m.updateFn(ctx, id, name, price)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockProvisioner struct {
	createFn func(ctx context.Context, price int) (string, error)
	calls    int
}

func (m *mockProvisioner) CreatePaymentLink(
	ctx context.Context,
	price int,
) (string, error) {
	m.calls++
	return m.createFn(ctx, price)
}

func TestServiceCreate(t *testing.T) {
	t.Run("provisions then persists", func(t *testing.T) {
		provisioner := &mockProvisioner{
			createFn: func(ctx context.Context, price int) (string, error) {
				return "https://pay.example/PL123", nil
			},
		}
		repo := &mockRepository{
			insertFn: func(ctx context.Context, name string, price int, url string) (*Link, error) {
				assert.Equal(t, "https://pay.example/PL123", url)
				return &Link{
					ID:    1,
					Name:  name,
					Price: price,
					URL:   url,
				}, nil
			},
		}

		svc := NewService(repo, provisioner)

		created, err := svc.Create(context.Background(), "Concert ticket", 250)
		require.NoError(t, err)

		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, "https://pay.example/PL123", created.URL)
		assert.Equal(t, 1, provisioner.calls)
	})

	t.Run("validation rejects before provisioning", func(t *testing.T) {
		tests := []struct {
			name     string
			linkName string
			price    int
		}{
			{"name too short", "ab", 250},
			{"name too long", strings.Repeat("a", 65), 250},
			{"price negative", "Concert ticket", -1},
			{"price above maximum", "Concert ticket", 1001},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				provisioner := &mockProvisioner{
					createFn: func(ctx context.Context, price int) (string, error) {
						return "https://pay.example/PL123", nil
					},
				}

				svc := NewService(&mockRepository{}, provisioner)

				_, err := svc.Create(context.Background(), tt.linkName, tt.price)
				require.Error(t, err)
				assert.ErrorIs(t, err, core.ErrInvalidInput)
				assert.Zero(t, provisioner.calls)
			})
		}
	})

	t.Run("boundary values accepted", func(t *testing.T) {
		for _, tt := range []struct {
			name     string
			linkName string
			price    int
		}{
			{"minimum name and price", "abc", 0},
			{"maximum name and price", strings.Repeat("a", 64), 1000},
		} {
			t.Run(tt.name, func(t *testing.T) {
				provisioner := &mockProvisioner{
					createFn: func(ctx context.Context, price int) (string, error) {
						return "https://pay.example/PL123", nil
					},
				}
				repo := &mockRepository{
					insertFn: func(ctx context.Context, name string, price int, url string) (*Link, error) {
						return &Link{ID: 1, Name: name, Price: price, URL: url}, nil
					},
				}

				svc := NewService(repo, provisioner)

				_, err := svc.Create(context.Background(), tt.linkName, tt.price)
				assert.NoError(t, err)
			})
		}
	})

	t.Run("provisioning failure skips persistence", func(t *testing.T) {
		provisioner := &mockProvisioner{
			createFn: func(ctx context.Context, price int) (string, error) {
				return "", core.ErrProvisioning
			},
		}

		inserted := false
		repo := &mockRepository{
			insertFn: func(ctx context.Context, name string, price int, url string) (*Link, error) {
				inserted = true
				return nil, nil
			},
		}

		svc := NewService(repo, provisioner)

		_, err := svc.Create(context.Background(), "Concert ticket", 250)
		assert.ErrorIs(t, err, core.ErrProvisioning)
		assert.False(t, inserted)
	})

	t.Run("insert failure after provisioning is distinct", func(t *testing.T) {
		provisioner := &mockProvisioner{
			createFn: func(ctx context.Context, price int) (string, error) {
				return "https://pay.example/PL123", nil
			},
		}

		dbErr := errors.New("connection reset")
		repo := &mockRepository{
			insertFn: func(ctx context.Context, name string, price int, url string) (*Link, error) {
				return nil, dbErr
			},
		}

		svc := NewService(repo, provisioner)

		_, err := svc.Create(context.Background(), "Concert ticket", 250)
		assert.ErrorIs(t, err, core.ErrProvisionedNotPersisted)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, core.ErrProvisioning)
	})
}

func TestServiceUpdate(t *testing.T) {
	t.Run("validates before touching the repository", func(t *testing.T) {
		updated := false
		repo := &mockRepository{
			updateFn: func(ctx context.Context, id int64, name string, price int) (*Link, error) {
				updated = true
				return nil, nil
			},
		}

		svc := NewService(repo, &mockProvisioner{})

		_, err := svc.Update(context.Background(), 1, "ab", 250)
		assert.ErrorIs(t, err, core.ErrInvalidInput)
		assert.False(t, updated)
	})

	t.Run("never re-provisions", func(t *testing.T) {
		provisioner := &mockProvisioner{
			createFn: func(ctx context.Context, price int) (string, error) {
				return "https://pay.example/PL999", nil
			},
		}
		repo := &mockRepository{
			updateFn: func(ctx context.Context, id int64, name string, price int) (*Link, error) {
				return &Link{
					ID:    id,
					Name:  name,
					Price: price,
					URL:   "https://pay.example/PL123",
				}, nil
			},
		}

		svc := NewService(repo, provisioner)

		updated, err := svc.Update(context.Background(), 1, "Renamed ticket", 300)
		require.NoError(t, err)

		assert.Equal(t, "https://pay.example/PL123", updated.URL)
		assert.Zero(t, provisioner.calls)
	})
}

func TestServiceDelete(t *testing.T) {
	repo := &mockRepository{
		deleteFn: func(ctx context.Context, id int64) error {
			if id == 99 {
				return core.ErrNotFound
			}
			return nil
		},
	}

	svc := NewService(repo, &mockProvisioner{})

	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 99), core.ErrNotFound)
}
