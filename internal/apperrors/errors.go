package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrDuplicateReference indicates a ledger reference id has already been used.
var ErrDuplicateReference = errors.New("reference id already used")

// ErrInsufficientBalance indicates a withdrawal would drive the wallet balance negative.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrWalletDisabled indicates a ledger write was attempted while the wallet is disabled.
var ErrWalletDisabled = errors.New("wallet is not enabled")

// ErrWalletAlreadyEnabled indicates an enable call on a wallet that is already enabled.
var ErrWalletAlreadyEnabled = errors.New("wallet is already enabled")

// AppError carries an HTTP status code alongside a user-facing message.
// The wrapped error is for logs only and is never serialized to clients.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
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

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
