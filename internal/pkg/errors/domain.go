package errors

// Domain-specific errors for the library service

// Author errors
var (
	ErrAuthorNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "Author not found",
	}

	ErrAuthorAlreadyExists = &DomainError{
		Code:    CodeAlreadyExists,
		Message: "Author with this name already exists",
	}

	ErrInvalidAuthorData = &DomainError{
		Code:    CodeValidation,
		Message: "Invalid author data provided",
	}
)

// Book errors
var (
	ErrBookNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "Book not found",
	}

	ErrBookAlreadyExists = &DomainError{
		Code:    CodeAlreadyExists,
		Message: "Book with this ISBN already exists",
	}

	ErrInvalidBookData = &DomainError{
		Code:    CodeValidation,
		Message: "Invalid book data provided",
	}

	ErrInvalidISBN = &DomainError{
		Code:    CodeValidation,
		Message: "Invalid ISBN format",
	}

	ErrBookNotAvailable = &DomainError{
		Code:    CodeConflict,
		Message: "Book is not available for borrowing",
	}

	ErrBookHasActiveLoans = &DomainError{
		Code:    CodeConflict,
		Message: "Book has active loans and cannot be deleted",
	}
)

// Member errors
var (
	ErrMemberNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "Member not found",
	}

	ErrMemberAlreadyExists = &DomainError{
		Code:    CodeAlreadyExists,
		Message: "Member with this email already exists",
	}

	ErrInvalidMemberData = &DomainError{
		Code:    CodeValidation,
		Message: "Invalid member data provided",
	}

	ErrMembershipExpired = &DomainError{
		Code:    CodeForbidden,
		Message: "Member's subscription has expired",
	}

	ErrMemberSuspended = &DomainError{
		Code:    CodeForbidden,
		Message: "Member account is suspended",
	}
)

// Subscription errors
var (
	ErrSubscriptionNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "Subscription not found",
	}

	ErrSubscriptionActive = &DomainError{
		Code:    CodeConflict,
		Message: "Member already has an active subscription",
	}

	ErrCannotCancelSubscription = &DomainError{
		Code:    CodeValidation,
		Message: "Cannot cancel subscription in current state",
	}

	ErrInvalidSubscription = &DomainError{
		Code:    CodeValidation,
		Message: "Invalid subscription type or configuration",
	}

	ErrSubscriptionExpired = &DomainError{
		Code:    CodeForbidden,
		Message: "Subscription has expired",
	}

	ErrSubscriptionNotActive = &DomainError{
		Code:    CodeForbidden,
		Message: "Member does not have an active subscription",
	}
)

// Payment errors
var (
	ErrPaymentNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "Payment not found",
	}

	ErrPaymentAlreadyProcessed = &DomainError{
		Code:    CodeConflict,
		Message: "Payment has already been processed",
	}

	ErrPaymentExpired = &DomainError{
		Code:    CodeReservationExpired,
		Message: "Payment has expired",
	}

	ErrPaymentGateway = &DomainError{
		Code:    CodeExternal,
		Message: "Payment provider error",
	}

	ErrInvalidPaymentStatus = &DomainError{
		Code:    CodeValidation,
		Message: "Invalid payment status transition",
	}

	ErrInvalidAmount = &DomainError{
		Code:    CodeValidation,
		Message: "Invalid payment amount",
	}

	ErrInsufficientFunds = &DomainError{
		Code:    CodeValidation,
		Message: "Insufficient funds for this transaction",
	}

	ErrRefundNotAllowed = &DomainError{
		Code:    CodeConflict,
		Message: "Refund is not allowed for this payment",
	}
)

// Reservation lifecycle errors (see internal/reservations and internal/stock
// for the engine that raises these).
var (
	ErrReservationNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "Reservation not found",
	}

	ErrReservationAlreadyFulfilled = &DomainError{
		Code:    CodeConflict,
		Message: "Reservation has already been fulfilled",
	}

	ErrReservationAlreadyCancelled = &DomainError{
		Code:    CodeConflict,
		Message: "Reservation has already been cancelled",
	}

	ErrBookAlreadyReserved = &DomainError{
		Code:    CodeConflict,
		Message: "Member already has an active reservation for this book",
	}

	ErrBookAlreadyBorrowed = &DomainError{
		Code:    CodeConflict,
		Message: "Member already has this book borrowed",
	}

	ErrCannotCancelReservation = &DomainError{
		Code:    CodeNotCancellable,
		Message: "Reservation cannot be cancelled in current status",
	}
)
