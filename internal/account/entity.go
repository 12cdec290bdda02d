// AngelaMos | 2026
// entity.go

package account

import (
	"time"
)

// Account is immutable after registration: no profile updates, no deletion,
// credential rotation is out of scope.
type Account struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
