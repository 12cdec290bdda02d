// AngelaMos | 2026
// entity.go

package link

import (
	"time"
)

// Link is a locally persisted payment link. A row exists only after the
// provider reported an active checkout link, so URL is never empty.
type Link struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Price     int       `db:"price"`
	URL       string    `db:"link"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
