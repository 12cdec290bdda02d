// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors shared across packages. Services wrap these with %w and
// handlers translate them into HTTP responses.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrProvisioning: the payment provider was reachable but did not return
	// an active link. Nothing was persisted.
	ErrProvisioning = errors.New("payment provisioning failed")

	// ErrProvisionedNotPersisted: the provider created a checkout link but the
	// local insert failed afterwards. The external resource is orphaned.
	ErrProvisionedNotPersisted = errors.New(
		"provisioned link could not be persisted",
	)

	// ErrUpstream: network-level failure talking to the provider.
	ErrUpstream = errors.New("upstream request failed")

	// ErrCrypto: entropy or hash-encoding failure. Fails the single request.
	ErrCrypto = errors.New("cryptographic operation failed")
)

type AppError struct {
	Err     error
	Message string
	Code    string
	Status  int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, status int, code string) *AppError {
	return &AppError{
		Err:     err,
		Message: message,
		Status:  status,
		Code:    code,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func ValidationError(message string) *AppError {
	return NewAppError(
		ErrInvalidInput,
		message,
		http.StatusBadRequest,
		"VALIDATION_ERROR",
	)
}

func UnauthorizedError(message string) *AppError {
	if message == "" {
		message = "authentication required"
	}
	return NewAppError(
		ErrUnauthorized,
		message,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
	)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(
		ErrForbidden,
		message,
		http.StatusForbidden,
		"FORBIDDEN",
	)
}

func NotFoundError(resource string) *AppError {
	return NewAppError(
		ErrNotFound,
		resource+" not found",
		http.StatusNotFound,
		"NOT_FOUND",
	)
}

func DuplicateError(field string) *AppError {
	return NewAppError(
		ErrDuplicateKey,
		field+" already exists",
		http.StatusConflict,
		"DUPLICATE",
	)
}

func ProvisioningError(err error) *AppError {
	return NewAppError(
		err,
		"payment provider did not return an active link",
		http.StatusBadGateway,
		"PAYMENT_PROVISIONING_FAILED",
	)
}

func UpstreamError(err error) *AppError {
	return NewAppError(
		err,
		"payment provider unreachable",
		http.StatusBadGateway,
		"UPSTREAM_UNAVAILABLE",
	)
}

// ProvisionedNotPersistedError flags a leaked external resource so operators
// can tell "nothing happened" apart from "the provider-side link exists".
func ProvisionedNotPersistedError(err error) *AppError {
	return NewAppError(
		err,
		"checkout link was created externally but could not be saved",
		http.StatusInternalServerError,
		"PROVISIONED_NOT_PERSISTED",
	)
}

func CryptoError(err error) *AppError {
	return NewAppError(
		err,
		"internal cryptographic failure",
		http.StatusInternalServerError,
		"CRYPTO_FAILURE",
	)
}
