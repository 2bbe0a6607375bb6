package shared

import (
	"errors"
	"net/http"
)

// AppError is the error shape every service returns to the HTTP layer.
// StatusCode drives the response, Message is safe for clients, Err keeps
// the wrapped cause for logs.
type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newAppError(statusCode int, err error, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

func NewBadRequestError(err error, message string) *AppError {
	return newAppError(http.StatusBadRequest, err, message)
}

func NewUnauthorizedError(err error, message string) *AppError {
	return newAppError(http.StatusUnauthorized, err, message)
}

func NewForbiddenError(err error, message string) *AppError {
	return newAppError(http.StatusForbidden, err, message)
}

func NewNotFoundError(err error, message string) *AppError {
	return newAppError(http.StatusNotFound, err, message)
}

func NewConflictError(err error, message string) *AppError {
	return newAppError(http.StatusConflict, err, message)
}

func NewInternalError(err error, message string) *AppError {
	return newAppError(http.StatusInternalServerError, err, message)
}

func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Domain sentinels. Services wrap these in an AppError before they reach
// the HTTP layer; tests and callers match with errors.Is.
var (
	ErrEmptyPool         = errors.New("no active facts to compose from")
	ErrEmptyRewardPool   = errors.New("no active unused rewards")
	ErrExhaustedAttempts = errors.New("no attempts left on level")
	ErrAlreadyCompleted  = errors.New("level already completed")
	ErrTokenInvalid      = errors.New("share token is invalid")
	ErrSelfUse           = errors.New("share token cannot be used by its owner")
)

func NewEmptyPoolError(ownerID string) *AppError {
	return &AppError{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    "Content owner has no active facts",
		Data:       ownerID,
		Err:        ErrEmptyPool,
	}
}

func NewEmptyRewardPoolError(ownerID string) *AppError {
	return &AppError{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    "Content owner has no rewards left",
		Data:       ownerID,
		Err:        ErrEmptyRewardPool,
	}
}

func NewExhaustedAttemptsError() *AppError {
	return newAppError(http.StatusConflict, ErrExhaustedAttempts, "No attempts left")
}

func NewAlreadyCompletedError() *AppError {
	return newAppError(http.StatusConflict, ErrAlreadyCompleted, "Level already completed")
}

func NewTokenInvalidError(reason string) *AppError {
	return newAppError(http.StatusForbidden, ErrTokenInvalid, reason)
}

func NewSelfUseError() *AppError {
	return newAppError(http.StatusForbidden, ErrSelfUse, "You cannot play your own share token")
}
