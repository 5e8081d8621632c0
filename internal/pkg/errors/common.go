package errors

import stderrors "errors"

// Generic sentinel errors shared across domains. Handlers and middleware
// compare against these with Is; services attach context with WithDetails
// or a cause with Wrap before returning them.
var (
	ErrNotFound      = &DomainError{Code: CodeNotFound, Message: "Resource not found"}
	ErrAlreadyExists = &DomainError{Code: CodeAlreadyExists, Message: "Resource already exists"}
	ErrValidation    = &DomainError{Code: CodeValidation, Message: "Validation failed"}
	ErrUnauthorized  = &DomainError{Code: CodeUnauthorized, Message: "Unauthorized"}
	ErrForbidden     = &DomainError{Code: CodeForbidden, Message: "Forbidden"}
	ErrDatabase      = &DomainError{Code: CodeDatabase, Message: "Database error"}
	ErrInternal      = &DomainError{Code: CodeInternal, Message: "Internal server error"}
	ErrInvalidToken  = &DomainError{Code: CodeInvalidToken, Message: "Invalid token"}
	ErrExpiredToken  = &DomainError{Code: CodeExpiredToken, Message: "Token has expired"}
	ErrConflict      = &DomainError{Code: CodeConflict, Message: "Conflict"}
	ErrTimeout       = &DomainError{Code: CodeTimeout, Message: "Operation timed out"}
	ErrBusinessRule  = &DomainError{Code: CodeBusinessRule, Message: "Business rule violation"}

	// Reservation / inventory engine sentinels.
	ErrInsufficientStock    = &DomainError{Code: CodeInsufficientStock, Message: "Insufficient stock on hand"}
	ErrProductUnavailable   = &DomainError{Code: CodeProductUnavailable, Message: "Product is not available for reservation"}
	ErrUserReservationLimit = &DomainError{Code: CodeUserReservationLimit, Message: "User has reached the active reservation limit"}
	ErrNotOwner             = &DomainError{Code: CodeNotOwner, Message: "Reservation does not belong to this user"}
	ErrNotPending           = &DomainError{Code: CodeNotPending, Message: "Reservation is not pending"}
	ErrReservationExpired   = &DomainError{Code: CodeReservationExpired, Message: "Reservation has expired"}
	ErrNotCancellable       = &DomainError{Code: CodeNotCancellable, Message: "Reservation cannot be cancelled in its current status"}
	ErrIdempotencyConflict  = &DomainError{Code: CodeIdempotencyConflict, Message: "Idempotency key reused with a different request body"}
	ErrLedgerInvariant      = &DomainError{Code: CodeLedgerInvariant, Message: "Stock ledger invariant violated"}
	ErrTransient            = &DomainError{Code: CodeTransient, Message: "Transient failure, retry"}
)

// Wrap returns a copy of the error with cause attached, leaving the receiver
// (often a shared package-level sentinel) untouched.
func (e *DomainError) Wrap(cause error) *DomainError {
	clone := *e
	if len(e.Details) > 0 {
		clone.Details = make(map[string]interface{}, len(e.Details))
		for k, v := range e.Details {
			clone.Details[k] = v
		}
	}
	clone.Cause = cause
	return &clone
}

// Is reports whether err is, or wraps, a *DomainError with the same code as
// target. It is a thin wrapper over the standard library's errors.Is, kept
// here so callers only ever import this package for error comparisons.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain matching target, delegating to the
// standard library.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// New mirrors the standard library's errors.New, so callers that only ever
// import this package can still build plain sentinel errors.
func New(message string) error {
	return stderrors.New(message)
}

// GetHTTPStatus maps any error to an HTTP status code. Domain errors report
// their own status; anything else is treated as an unexpected internal error.
func GetHTTPStatus(err error) int {
	var domainErr *DomainError
	if stderrors.As(err, &domainErr) {
		return domainErr.HTTPStatus()
	}
	return 500
}

// Reservation / inventory engine constructors, mirroring the NotFound /
// Validation family in builders.go.

// InsufficientStock reports that on-hand stock cannot cover a requested quantity.
func InsufficientStock(productID string, requested, available int) error {
	return NewError(CodeInsufficientStock).
		WithMessagef("insufficient stock for product %s", productID).
		WithDetail("product_id", productID).
		WithDetail("requested", requested).
		WithDetail("available", available).
		Build()
}

// ProductUnavailable reports that a product is inactive or missing.
func ProductUnavailable(productID string) error {
	return NewError(CodeProductUnavailable).
		WithMessagef("product %s is not available", productID).
		WithDetail("product_id", productID).
		Build()
}

// UserReservationLimit reports that a user already holds the maximum number
// of active reservations.
func UserReservationLimit(userID string, limit int) error {
	return NewError(CodeUserReservationLimit).
		WithMessagef("user %s has reached the active reservation limit of %d", userID, limit).
		WithDetail("user_id", userID).
		WithDetail("limit", limit).
		Build()
}

// NotOwner reports that a caller attempted to act on a reservation they do
// not own.
func NotOwner(reservationID, userID string) error {
	return NewError(CodeNotOwner).
		WithMessage("reservation does not belong to this user").
		WithDetail("reservation_id", reservationID).
		WithDetail("user_id", userID).
		Build()
}

// NotPending reports that an operation requiring a pending reservation was
// attempted against a reservation in another status.
func NotPending(reservationID, status string) error {
	return NewError(CodeNotPending).
		WithMessagef("reservation %s is not pending", reservationID).
		WithDetail("reservation_id", reservationID).
		WithDetail("status", status).
		Build()
}

// ReservationExpired reports that a reservation's TTL has already elapsed.
func ReservationExpired(reservationID string) error {
	return NewError(CodeReservationExpired).
		WithMessagef("reservation %s has expired", reservationID).
		WithDetail("reservation_id", reservationID).
		Build()
}

// NotCancellable reports that a reservation's current status forbids cancellation.
func NotCancellable(reservationID, status string) error {
	return NewError(CodeNotCancellable).
		WithMessagef("reservation %s cannot be cancelled from status %s", reservationID, status).
		WithDetail("reservation_id", reservationID).
		WithDetail("status", status).
		Build()
}

// IdempotencyKeyConflict reports that an idempotency key was reused with a
// different request fingerprint.
func IdempotencyKeyConflict(key string) error {
	return NewError(CodeIdempotencyConflict).
		WithMessagef("idempotency key %s was reused with a different request", key).
		WithDetail("idempotency_key", key).
		Build()
}

// Conflict reports a generic optimistic-concurrency or uniqueness conflict.
func Conflict(entity, reason string) error {
	return NewError(CodeConflict).
		WithMessagef("%s conflict: %s", entity, reason).
		WithDetail("entity", entity).
		WithDetail("reason", reason).
		Build()
}

// Transient marks an error as safe to retry, carrying the underlying cause.
func Transient(operation string, cause error) error {
	return NewError(CodeTransient).
		WithMessagef("transient failure during %s", operation).
		WithDetail("operation", operation).
		WithCause(cause).
		Build()
}

// LedgerInvariantViolation reports that a stock ledger mutation would break
// an invariant (e.g. reserved exceeding on_hand, or a negative quantity).
func LedgerInvariantViolation(productID, reason string) error {
	return NewError(CodeLedgerInvariant).
		WithMessagef("stock ledger invariant violated for product %s: %s", productID, reason).
		WithDetail("product_id", productID).
		WithDetail("reason", reason).
		Build()
}
