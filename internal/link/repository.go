// AngelaMos | 2026
// repository.go

package link

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/paylink/internal/core"
)

type Repository interface {
	Insert(ctx context.Context, name string, price int, url string) (*Link, error)
	List(ctx context.Context) ([]Link, error)
	Get(ctx context.Context, id int64) (*Link, error)
	Update(ctx context.Context, id int64, name string, price int) (*Link, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(
	ctx context.Context,
	name string,
	price int,
	url string,
) (*Link, error) {
	query := `
		INSERT INTO items (name, price, link)
		VALUES ($1, $2, $3)
		RETURNING id, name, price, link, created_at, updated_at`

	var link Link
	err := r.db.GetContext(ctx, &link, query, name, price, url)
	if err != nil {
		return nil, fmt.Errorf("insert link: %w", err)
	}

	return &link, nil
}

func (r *repository) List(ctx context.Context) ([]Link, error) {
	query := `
		SELECT id, name, price, link, created_at, updated_at
		FROM items
		ORDER BY id`

	links := []Link{}
	if err := r.db.SelectContext(ctx, &links, query); err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	return links, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Link, error) {
	query := `
		SELECT id, name, price, link, created_at, updated_at
		FROM items
		WHERE id = $1`

	var link Link
	err := r.db.GetContext(ctx, &link, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get link: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get link: %w", err)
	}

	return &link, nil
}

// Update overwrites name and price in place. The stored checkout URL is
// deliberately untouched; links are never re-provisioned.
func (r *repository) Update(
	ctx context.Context,
	id int64,
	name string,
	price int,
) (*Link, error) {
	query := `
		UPDATE items
		SET name = $2, price = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, price, link, created_at, updated_at`

	var link Link
	err := r.db.GetContext(ctx, &link, query, id, name, price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update link: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update link: %w", err)
	}

	return &link, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM items WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete link: %w", core.ErrNotFound)
	}

	return nil
}
