// AngelaMos | 2026
// repository_test.go

package link

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/paylink/internal/core"
)

var linkColumns = []string{
	"id", "name", "price", "link", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestRepositoryInsert(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO items (name, price, link)`)).
		WithArgs("Concert ticket", 250, "https://pay.example/PL123").
		WillReturnRows(
			sqlmock.NewRows(linkColumns).
				AddRow(1, "Concert ticket", 250, "https://pay.example/PL123", now, now),
		)

	created, err := repo.Insert(
		context.Background(),
		"Concert ticket",
		250,
		"https://pay.example/PL123",
	)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Concert ticket", created.Name)
	assert.Equal(t, 250, created.Price)
	assert.Equal(t, "https://pay.example/PL123", created.URL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryList(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT id, name, price, link, created_at, updated_at`).
		WillReturnRows(
			sqlmock.NewRows(linkColumns).
				AddRow(1, "Concert ticket", 250, "https://pay.example/PL123", now, now).
				AddRow(2, "Workshop seat", 990, "https://pay.example/PL456", now, now),
		)

	links, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, links, 2)
	assert.Equal(t, "Concert ticket", links[0].Name)
	assert.Equal(t, "Workshop seat", links[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		now := time.Now()
		mock.ExpectQuery(`SELECT id, name, price, link, created_at, updated_at`).
			WithArgs(int64(1)).
			WillReturnRows(
				sqlmock.NewRows(linkColumns).
					AddRow(1, "Concert ticket", 250, "https://pay.example/PL123", now, now),
			)

		found, err := repo.Get(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, int64(1), found.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT id, name, price, link, created_at, updated_at`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), 99)
		assert.ErrorIs(t, err, core.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepositoryUpdate(t *testing.T) {
	t.Run("preserves stored url", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		now := time.Now()
		mock.ExpectQuery(`UPDATE items`).
			WithArgs(int64(1), "Renamed ticket", 300).
			WillReturnRows(
				sqlmock.NewRows(linkColumns).
					AddRow(1, "Renamed ticket", 300, "https://pay.example/PL123", now, now),
			)

		updated, err := repo.Update(context.Background(), 1, "Renamed ticket", 300)
		require.NoError(t, err)

		assert.Equal(t, "Renamed ticket", updated.Name)
		assert.Equal(t, 300, updated.Price)
		assert.Equal(t, "https://pay.example/PL123", updated.URL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`UPDATE items`).
			WithArgs(int64(99), "Renamed ticket", 300).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(context.Background(), 99, "Renamed ticket", 300)
		assert.ErrorIs(t, err, core.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepositoryDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM items WHERE id = $1`)).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 1)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM items WHERE id = $1`)).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)
		assert.ErrorIs(t, err, core.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
