// internal/model/error.go
package model

import "errors"

// Sentinel errors. Handlers never inspect database errors directly; the
// repository layer translates them into one of these.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrDuplicate        = errors.New("duplicate entity")
	ErrInvalidReference = errors.New("invalid reference")
	ErrConstraint       = errors.New("constraint violation")
	ErrInternalServer   = errors.New("internal server error")
)

// AppError carries a machine-readable code and the client-facing detail.
// It wraps one of the sentinel errors above, which decides the HTTP status.
type AppError struct {
	Code   string
	Detail string
	Err    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Detail + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Detail
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, detail string, err error) *AppError {
	return &AppError{Code: code, Detail: detail, Err: err}
}

// APIErrorResponse is the wire shape of every error response body.
type APIErrorResponse struct {
	Detail string `json:"detail"`
}
