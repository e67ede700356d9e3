package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid phone or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrGoodsNotAvailable    = errors.New("goods posting is not open for booking")
	ErrVehicleNotAvailable  = errors.New("vehicle is not available for booking")
	ErrOrderTransition      = errors.New("order status transition is not allowed")
	ErrOrderNotCancellable  = errors.New("order can no longer be cancelled")
	ErrOrderNotCompleted    = errors.New("order is not completed yet")
	ErrRatingExists         = errors.New("order is already rated by this user")
	ErrRatingWrongUser      = errors.New("rated user is not the order counterparty")
	ErrPaymentNotPending    = errors.New("payment is not pending")
	ErrPaymentProcessed     = errors.New("payment notification already processed")
	ErrTransactionProcessed = errors.New("wallet transaction already settled")
	ErrInsufficientBalance  = errors.New("available balance is not enough")

	// * External collaborators.
	ErrGatewayUnavailable = errors.New("payment gateway request failed")
)

// ErrorCode returns the stable machine-readable code for a domain error.
// HTTP status codes are layered on top of these in the handler package.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrDataNotFound):
		return "not_found"
	case errors.Is(err, ErrConflictingData), errors.Is(err, ErrRatingExists):
		return "conflict"
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrUnauthorized):
		return "forbidden"
	case errors.Is(err, ErrGoodsNotAvailable),
		errors.Is(err, ErrVehicleNotAvailable),
		errors.Is(err, ErrOrderNotCancellable),
		errors.Is(err, ErrOrderNotCompleted),
		errors.Is(err, ErrPaymentNotPending),
		errors.Is(err, ErrPaymentProcessed),
		errors.Is(err, ErrTransactionProcessed):
		return "invalid_state"
	case errors.Is(err, ErrOrderTransition):
		return "invalid_transition"
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_funds"
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrRatingWrongUser):
		return "bad_request"
	case errors.Is(err, ErrGatewayUnavailable):
		return "gateway_error"
	default:
		return "internal"
	}
}
