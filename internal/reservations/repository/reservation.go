package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"library-service/internal/pkg/repository/postgres"
	reservationdomain "library-service/internal/reservations/domain"
)

// ReservationRepository persists reservations in PostgreSQL. It embeds
// BaseRepository for Get/List/Delete against the storage row shape and
// uses Queryer for everything else, so calls made inside a
// postgres.TxManager.WithTx block participate in the caller's transaction
// instead of opening a second connection.
type ReservationRepository struct {
	postgres.BaseRepository[row]
}

// Compile-time check that ReservationRepository implements reservationdomain.Repository
var _ reservationdomain.Repository = (*ReservationRepository)(nil)

// row is the storage shape reservations are written as; CustomerInfo is a
// jsonb column, which sqlx does not map directly onto a Go map.
type row struct {
	ID           string     `db:"id"`
	UserID       string     `db:"user_id"`
	ProductID    int64      `db:"product_id"`
	Quantity     int        `db:"quantity"`
	UnitPrice    string     `db:"unit_price"`
	TotalPrice   string     `db:"total_price"`
	Status       string     `db:"status"`
	CustomerInfo []byte     `db:"customer_info"`
	CreatedAt    time.Time  `db:"created_at"`
	ExpiresAt    time.Time  `db:"expires_at"`
	ConfirmedAt  *time.Time `db:"confirmed_at"`
	CancelledAt  *time.Time `db:"cancelled_at"`
	ReminderSentAt *time.Time `db:"reminder_sent_at"`
}

func (r row) toDomain() (reservationdomain.Reservation, error) {
	unitPrice, err := decimalFromString(r.UnitPrice)
	if err != nil {
		return reservationdomain.Reservation{}, fmt.Errorf("reservation repository: parse unit_price: %w", err)
	}
	totalPrice, err := decimalFromString(r.TotalPrice)
	if err != nil {
		return reservationdomain.Reservation{}, fmt.Errorf("reservation repository: parse total_price: %w", err)
	}

	var customerInfo map[string]string
	if len(r.CustomerInfo) > 0 {
		if err := json.Unmarshal(r.CustomerInfo, &customerInfo); err != nil {
			return reservationdomain.Reservation{}, fmt.Errorf("reservation repository: unmarshal customer_info: %w", err)
		}
	}

	return reservationdomain.Reservation{
		ID:           r.ID,
		UserID:       r.UserID,
		ProductID:    r.ProductID,
		Quantity:     r.Quantity,
		UnitPrice:    unitPrice,
		TotalPrice:   totalPrice,
		Status:       reservationdomain.Status(r.Status),
		CustomerInfo: customerInfo,
		CreatedAt:    r.CreatedAt,
		ExpiresAt:    r.ExpiresAt,
		ConfirmedAt:  r.ConfirmedAt,
		CancelledAt:  r.CancelledAt,
		ReminderSentAt: r.ReminderSentAt,
	}, nil
}

func toDomainSlice(rows []row) ([]reservationdomain.Reservation, error) {
	out := make([]reservationdomain.Reservation, 0, len(rows))
	for _, r := range rows {
		reservation, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, reservation)
	}
	return out, nil
}

// NewReservationRepository creates a new PostgreSQL reservation repository.
func NewReservationRepository(db *sqlx.DB) *ReservationRepository {
	return &ReservationRepository{
		BaseRepository: postgres.NewBaseRepository[row](db, "reservations"),
	}
}

// Insert writes a new reservation. Callers that need it alongside a stock
// reserve and an outbox write in one transaction should run it inside
// postgres.TxManager.WithTx.
func (r *ReservationRepository) Insert(ctx context.Context, reservation reservationdomain.Reservation) error {
	customerInfo, err := json.Marshal(reservation.CustomerInfo)
	if err != nil {
		return fmt.Errorf("reservation repository: marshal customer_info: %w", err)
	}

	query := `
		INSERT INTO reservations (
			id, user_id, product_id, quantity, unit_price, total_price,
			status, customer_info, created_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = postgres.Queryer(ctx, r.GetDB()).ExecContext(
		ctx, query,
		reservation.ID,
		reservation.UserID,
		reservation.ProductID,
		reservation.Quantity,
		reservation.UnitPrice.String(),
		reservation.TotalPrice.String(),
		string(reservation.Status),
		customerInfo,
		reservation.CreatedAt,
		reservation.ExpiresAt,
	)
	return postgres.HandleSQLError(err)
}

// Transition moves a reservation from `from` to `to`, gated on the row
// still being in `from`. It is the sole write path for status changes: a
// false result means someone else already transitioned (or is
// concurrently transitioning) the row, and the caller treats that as a
// lost race rather than an error.
func (r *ReservationRepository) Transition(ctx context.Context, id string, from, to reservationdomain.Status, fields reservationdomain.TransitionFields) (bool, error) {
	query := `
		UPDATE reservations
		SET status=$1, confirmed_at=$2, cancelled_at=$3
		WHERE id=$4 AND status=$5
	`
	res, err := postgres.Queryer(ctx, r.GetDB()).ExecContext(
		ctx, query,
		string(to),
		fields.ConfirmedAt,
		fields.CancelledAt,
		id,
		string(from),
	)
	if err != nil {
		return false, postgres.HandleSQLError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, postgres.HandleSQLError(err)
	}
	return n == 1, nil
}

// Find retrieves a reservation by ID.
func (r *ReservationRepository) Find(ctx context.Context, id string) (reservationdomain.Reservation, error) {
	query := `SELECT * FROM reservations WHERE id=$1`
	var rec row
	err := sqlx.GetContext(ctx, postgres.Queryer(ctx, r.GetDB()), &rec, query, id)
	if err != nil {
		return reservationdomain.Reservation{}, postgres.HandleSQLError(err)
	}
	return rec.toDomain()
}

// ListByUser returns a user's reservations, optionally filtered by status.
// An empty status returns all of the user's reservations.
func (r *ReservationRepository) ListByUser(ctx context.Context, userID string, status reservationdomain.Status) ([]reservationdomain.Reservation, error) {
	var rows []row
	var err error
	if status == "" {
		query := `SELECT * FROM reservations WHERE user_id=$1 ORDER BY created_at DESC`
		err = sqlx.SelectContext(ctx, postgres.Queryer(ctx, r.GetDB()), &rows, query, userID)
	} else {
		query := `SELECT * FROM reservations WHERE user_id=$1 AND status=$2 ORDER BY created_at DESC`
		err = sqlx.SelectContext(ctx, postgres.Queryer(ctx, r.GetDB()), &rows, query, userID, string(status))
	}
	if err != nil {
		return nil, fmt.Errorf("reservation repository: list by user: %w", postgres.HandleSQLError(err))
	}
	return toDomainSlice(rows)
}

// CountActive returns how many PENDING reservations a user currently holds.
func (r *ReservationRepository) CountActive(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE user_id=$1 AND status=$2`
	var count int
	err := sqlx.GetContext(ctx, postgres.Queryer(ctx, r.GetDB()), &count, query, userID, string(reservationdomain.StatusPending))
	if err != nil {
		return 0, fmt.Errorf("reservation repository: count active: %w", postgres.HandleSQLError(err))
	}
	return count, nil
}

// ScanExpired returns up to limit PENDING reservations whose expiry is
// before now, oldest expiry first, for the reaper to sweep.
func (r *ReservationRepository) ScanExpired(ctx context.Context, now time.Time, limit int) ([]reservationdomain.Reservation, error) {
	query := `
		SELECT * FROM reservations
		WHERE status=$1 AND expires_at < $2
		ORDER BY expires_at ASC
		LIMIT $3
	`
	var rows []row
	err := sqlx.SelectContext(ctx, postgres.Queryer(ctx, r.GetDB()), &rows, query, string(reservationdomain.StatusPending), now, limit)
	if err != nil {
		return nil, fmt.Errorf("reservation repository: scan expired: %w", postgres.HandleSQLError(err))
	}
	return toDomainSlice(rows)
}

// ScanDueForReminder returns up to limit PENDING reservations that have
// crossed fraction of their TTL, have not yet expired, and have not
// already had a reminder recorded.
func (r *ReservationRepository) ScanDueForReminder(ctx context.Context, now time.Time, fraction float64, limit int) ([]reservationdomain.Reservation, error) {
	query := `
		SELECT * FROM reservations
		WHERE status=$1
		  AND reminder_sent_at IS NULL
		  AND expires_at > $2
		  AND created_at + ($3 * (expires_at - created_at)) <= $2
		ORDER BY expires_at ASC
		LIMIT $4
	`
	var rows []row
	err := sqlx.SelectContext(ctx, postgres.Queryer(ctx, r.GetDB()), &rows, query, string(reservationdomain.StatusPending), now, fraction, limit)
	if err != nil {
		return nil, fmt.Errorf("reservation repository: scan due for reminder: %w", postgres.HandleSQLError(err))
	}
	return toDomainSlice(rows)
}

// MarkReminderSent stamps reminder_sent_at so the row is not returned by
// ScanDueForReminder again. It reports whether the row was still pending.
func (r *ReservationRepository) MarkReminderSent(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `UPDATE reservations SET reminder_sent_at=$1 WHERE id=$2 AND status=$3`
	res, err := postgres.Queryer(ctx, r.GetDB()).ExecContext(ctx, query, at, id, string(reservationdomain.StatusPending))
	if err != nil {
		return false, postgres.HandleSQLError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, postgres.HandleSQLError(err)
	}
	return n == 1, nil
}
