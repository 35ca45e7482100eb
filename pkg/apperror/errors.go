// Package apperror defines the tagged error taxonomy shared by the
// authentication service, the middleware and the HTTP layer. Callers switch on
// Kind rather than on message text.
package apperror

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindDuplicateAccount
	KindUnderage
	KindWeakPassword
	KindInvalidCredentials
	KindAccountDeactivated
	KindPendingApproval
	KindNoToken
	KindInvalidToken
	KindTokenExpired
	KindAccountNotFound
	KindForbidden
)

var kindNames = map[Kind]string{
	KindInternal:           "InternalError",
	KindValidation:         "ValidationError",
	KindDuplicateAccount:   "DuplicateAccountError",
	KindUnderage:           "UnderageError",
	KindWeakPassword:       "WeakPasswordError",
	KindInvalidCredentials: "InvalidCredentialsError",
	KindAccountDeactivated: "AccountDeactivatedError",
	KindPendingApproval:    "PendingApprovalError",
	KindNoToken:            "NoTokenError",
	KindInvalidToken:       "InvalidTokenError",
	KindTokenExpired:       "TokenExpiredError",
	KindAccountNotFound:    "AccountNotFoundError",
	KindForbidden:          "ForbiddenError",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UnknownError"
}

// HTTPStatus maps a kind to the status code the API responds with.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindUnderage, KindWeakPassword:
		return http.StatusBadRequest
	case KindDuplicateAccount:
		return http.StatusConflict
	case KindInvalidCredentials, KindAccountDeactivated, KindNoToken, KindInvalidToken, KindTokenExpired:
		return http.StatusUnauthorized
	case KindPendingApproval, KindForbidden:
		return http.StatusForbidden
	case KindAccountNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	// Fields holds field-level detail for validation failures, keyed by JSON field name.
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind == KindInternal {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrValidation         = &Error{Kind: KindValidation, Message: "Validation failed. Please check your input."}
	ErrDuplicateAccount   = &Error{Kind: KindDuplicateAccount, Message: "This email is already registered. Please use a different email or try logging in."}
	ErrUnderage           = &Error{Kind: KindUnderage, Message: "You must be at least 18 years old to register"}
	ErrWeakPassword       = &Error{Kind: KindWeakPassword, Message: "Password must contain at least 8 characters, including uppercase, lowercase, number, and special character"}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "Invalid email or password"}
	ErrAccountDeactivated = &Error{Kind: KindAccountDeactivated, Message: "Account is deactivated. Please contact support"}
	ErrPendingApproval    = &Error{Kind: KindPendingApproval, Message: "Pending Approval"}
	ErrNoToken            = &Error{Kind: KindNoToken, Message: "Access denied. No token provided"}
	ErrInvalidToken       = &Error{Kind: KindInvalidToken, Message: "Invalid or expired token"}
	ErrTokenExpired       = &Error{Kind: KindTokenExpired, Message: "Token expired"}
	ErrAccountNotFound    = &Error{Kind: KindAccountNotFound, Message: "User not found"}
	ErrForbidden          = &Error{Kind: KindForbidden, Message: "Access denied. Insufficient permissions"}
)

// Validation builds a ValidationError carrying per-field messages.
func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: ErrValidation.Message, Fields: fields}
}

// Internal wraps an unexpected failure. The message is safe for clients; err is not.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the taxonomy kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
