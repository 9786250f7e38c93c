// Package apierrors defines the stable error kinds the API surfaces.
// Underlying causes are collapsed deliberately so store or transport
// detail never reaches a caller.
package apierrors

import "net/http"

// Kind is a machine-checkable error category.
type Kind string

const (
	KindDuplicateAccount    Kind = "duplicate_account"
	KindInvalidCredentials  Kind = "invalid_credentials"
	KindProfileUnavailable  Kind = "profile_unavailable"
	KindNotFound            Kind = "not_found"
	KindUpstreamUnavailable Kind = "upstream_unavailable"
	KindUnauthorized        Kind = "unauthorized"
	KindInvalidRequest      Kind = "invalid_request"
)

// APIError carries an error kind, the HTTP status it maps to and a
// short human message.
type APIError struct {
	Kind       Kind
	HTTPStatus int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewErrEmailTaken reports a registration attempt against an email that
// already has an account.
func NewErrEmailTaken() *APIError {
	return &APIError{
		Kind:       KindDuplicateAccount,
		HTTPStatus: http.StatusConflict,
		Message:    "email already exists",
	}
}

// NewErrInvalidCredentials covers both unknown email and wrong password,
// with an identical message to avoid account enumeration.
func NewErrInvalidCredentials() *APIError {
	return &APIError{
		Kind:       KindInvalidCredentials,
		HTTPStatus: http.StatusUnauthorized,
		Message:    "wrong email or password",
	}
}

// NewErrProfileUnavailable reports a profile read or update that could
// not be served.
func NewErrProfileUnavailable() *APIError {
	return &APIError{
		Kind:       KindProfileUnavailable,
		HTTPStatus: http.StatusForbidden,
		Message:    "something went wrong",
	}
}

// NewErrFoodNotFound reports an upstream "product not found" signal.
func NewErrFoodNotFound() *APIError {
	return &APIError{
		Kind:       KindNotFound,
		HTTPStatus: http.StatusNotFound,
		Message:    "food not found",
	}
}

// NewErrUpstreamUnavailable reports any upstream transport failure.
func NewErrUpstreamUnavailable() *APIError {
	return &APIError{
		Kind:       KindUpstreamUnavailable,
		HTTPStatus: http.StatusBadGateway,
		Message:    "external api unavailable",
	}
}

// NewErrMissingAuthorizationToken reports a request without a bearer token.
func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{
		Kind:       KindUnauthorized,
		HTTPStatus: http.StatusUnauthorized,
		Message:    "missing authorization token",
	}
}

// NewErrInvalidAuthorizationToken reports an unparseable or expired token.
func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{
		Kind:       KindUnauthorized,
		HTTPStatus: http.StatusUnauthorized,
		Message:    "invalid authorization token",
	}
}

// NewErrInvalidRequest reports a malformed request body or parameter.
func NewErrInvalidRequest(message string) *APIError {
	return &APIError{
		Kind:       KindInvalidRequest,
		HTTPStatus: http.StatusBadRequest,
		Message:    message,
	}
}
