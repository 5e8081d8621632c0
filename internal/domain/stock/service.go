package stock

import (
	"strconv"

	"library-service/internal/pkg/errors"
)

// Service computes the next stock row for each ledger mutation. It is pure:
// it never touches storage, so the optimistic-concurrency retry loop lives
// entirely in the repository, which re-reads the row, asks Service for the
// next state, and writes it back gated on the version it read.
type Service struct{}

// NewService creates a new stock domain service.
func NewService() *Service {
	return &Service{}
}

// Reserve computes the row after holding qty units against it.
func (s *Service) Reserve(row Row, qty int) (Row, error) {
	if qty < 1 {
		return row, errors.ErrValidation.WithDetails("field", "quantity").WithDetails("reason", "quantity must be at least 1")
	}

	if row.Available() < qty {
		return row, errors.InsufficientStock(strconv.FormatInt(row.ProductID, 10), qty, row.Available())
	}

	row.Reserved += qty
	return s.checkInvariants(row)
}

// Release computes the row after returning qty previously-reserved units,
// e.g. on cancel or expiry. Releasing more than is currently reserved is
// clamped to zero rather than going negative, so a retried or duplicate
// release is a no-op instead of an invariant violation.
func (s *Service) Release(row Row, qty int) (Row, error) {
	if qty < 1 {
		return row, errors.ErrValidation.WithDetails("field", "quantity").WithDetails("reason", "quantity must be at least 1")
	}

	if qty > row.Reserved {
		qty = row.Reserved
	}

	row.Reserved -= qty
	return s.checkInvariants(row)
}

// Commit computes the row after converting qty reserved units into a
// permanent deduction from on-hand stock (a confirmed reservation).
func (s *Service) Commit(row Row, qty int) (Row, error) {
	if qty < 1 {
		return row, errors.ErrValidation.WithDetails("field", "quantity").WithDetails("reason", "quantity must be at least 1")
	}

	if qty > row.Reserved {
		return row, errors.LedgerInvariantViolation(strconv.FormatInt(row.ProductID, 10), "commit quantity exceeds reserved units")
	}

	row.Reserved -= qty
	row.OnHand -= qty
	return s.checkInvariants(row)
}

// SetOnHand computes the row after a restock or inventory correction.
func (s *Service) SetOnHand(row Row, onHand int) (Row, error) {
	if onHand < 0 {
		return row, errors.ErrValidation.WithDetails("field", "on_hand").WithDetails("reason", "on_hand cannot be negative")
	}

	if onHand < row.Reserved {
		return row, errors.LedgerInvariantViolation(strconv.FormatInt(row.ProductID, 10), "on_hand cannot drop below reserved units")
	}

	row.OnHand = onHand
	return s.checkInvariants(row)
}

// checkInvariants enforces reserved <= on_hand and available >= 0 after
// every mutation, regardless of which operation produced the row.
func (s *Service) checkInvariants(row Row) (Row, error) {
	if row.Reserved > row.OnHand {
		return row, errors.LedgerInvariantViolation(strconv.FormatInt(row.ProductID, 10), "reserved exceeds on_hand")
	}
	if row.Available() < 0 {
		return row, errors.LedgerInvariantViolation(strconv.FormatInt(row.ProductID, 10), "available units went negative")
	}
	return row, nil
}
