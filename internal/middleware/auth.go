// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/carterperez-dev/paylink/internal/core"
)

type contextKey string

const AccountIDKey contextKey = "account_id"

// TokenVerifier validates a bearer token and resolves the account it was
// issued for. Every failure mode is reported as core.ErrUnauthorized so the
// response does not reveal why a token was rejected.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (int64, error)
}

// Authenticator guards protected routes. It fails closed: a missing or
// invalid bearer token short-circuits with 401 before any handler runs. On
// success the resolved account id is placed in the request context, where
// handlers read it once and pass it on explicitly.
func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("missing authorization token"),
				)
				return
			}

			accountID, err := verifier.Verify(r.Context(), token)
			if err != nil {
				core.JSONError(w, core.UnauthorizedError(""))
				return
			}

			ctx := context.WithValue(r.Context(), AccountIDKey, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func GetAccountID(ctx context.Context) int64 {
	if id, ok := ctx.Value(AccountIDKey).(int64); ok {
		return id
	}
	return 0
}

func IsAuthenticated(ctx context.Context) bool {
	return GetAccountID(ctx) != 0
}
