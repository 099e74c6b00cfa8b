package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Precondition reason codes reported by conditional store writes. The code
// is the machine-readable reason, so callers can tell "already claimed"
// from "not the seller" without parsing messages.
const (
	ReasonAlreadyClaimed   = "ALREADY_CLAIMED"
	ReasonAlreadyOwned     = "ALREADY_OWNED"
	ReasonNotFree          = "NOT_FREE"
	ReasonNotSeller        = "NOT_SELLER"
	ReasonNotForSale       = "NOT_FOR_SALE"
	ReasonTerminalContract = "TERMINAL_CONTRACT"
	ReasonContractExists   = "CONTRACT_EXISTS"
	ReasonLocked           = "LOCKED"
)

// Precondition reports that a conditional write found stored state already
// changed. Never retried automatically.
func Precondition(reason string, message string) *AppError {
	return &AppError{
		Code:    reason,
		Message: message,
		Status:  http.StatusConflict,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Message: message,
		Status:  http.StatusConflict,
		Err:     nil,
	}
}

// Unavailable marks a collaborator (wallet provider, store) as unreachable
// or unconfigured. Callers degrade to read-only behavior where possible.
func Unavailable(collaborator string, err error) *AppError {
	return &AppError{
		Code:    "COLLABORATOR_UNAVAILABLE",
		Message: fmt.Sprintf("%s is unavailable", collaborator),
		Status:  http.StatusServiceUnavailable,
		Err:     err,
	}
}

// Cancelled represents a user abandoning an in-flight wallet interaction.
// No partial state change may have been applied when this is returned.
func Cancelled(message string, err error) *AppError {
	return &AppError{
		Code:    "USER_CANCELLED",
		Message: message,
		Status:  http.StatusConflict,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsPrecondition reports whether err carries a conditional-write reason code.
func IsPrecondition(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	switch appErr.Code {
	case ReasonAlreadyClaimed, ReasonAlreadyOwned, ReasonNotFree, ReasonNotSeller,
		ReasonNotForSale, ReasonTerminalContract, ReasonContractExists, ReasonLocked:
		return true
	}
	return false
}
