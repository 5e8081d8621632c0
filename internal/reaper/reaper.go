// Package reaper periodically sweeps reservations that have outlived their
// TTL but are still PENDING, expiring them, and optionally emits a reminder
// event for reservations approaching expiry.
package reaper

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"library-service/internal/domain/outbox"
	"library-service/internal/infrastructure/metrics"
	"library-service/internal/pkg/repository/postgres"
	reservationservice "library-service/internal/reservations/service"
)

// Config carries the reaper's runtime tunables, sourced from
// ReservationConfig.
type Config struct {
	BatchSize        int
	ReminderEnabled  bool
	ReminderFraction float64
}

// Reaper re-checks and expires PENDING reservations whose TTL has elapsed.
// Each candidate is re-verified and transitioned inside its own transaction,
// via the same CAS Transition the confirm path uses, so a reservation being
// concurrently confirmed or cancelled never gets expired out from under it.
// ReservationRepo and OutboxRepo come from the same ExpireDeps the confirm
// path uses, so the reaper and the confirm-time expiry share one wiring.
type Reaper struct {
	txManager  postgres.TxManager
	expireDeps reservationservice.ExpireDeps
	logger     *zap.Logger
	cfg        Config
}

// New creates a new Reaper.
func New(
	txManager postgres.TxManager,
	deps reservationservice.ExpireDeps,
	logger *zap.Logger,
	cfg Config,
) *Reaper {
	return &Reaper{
		txManager:  txManager,
		expireDeps: deps,
		logger:     logger,
		cfg:        cfg,
	}
}

// SweepExpired expires every PENDING reservation whose TTL has elapsed as of
// now, one batch at a time, until a sweep comes back empty. It returns how
// many reservations were actually transitioned to EXPIRED.
func (r *Reaper) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	expired := 0
	for {
		candidates, err := r.expireDeps.ReservationRepo.ScanExpired(ctx, now, r.cfg.BatchSize)
		if err != nil {
			return expired, err
		}
		if len(candidates) == 0 {
			return expired, nil
		}

		progressed := false
		for _, candidate := range candidates {
			candidate := candidate
			var applied bool
			err := r.txManager.WithTx(ctx, func(ctx context.Context) error {
				var txErr error
				applied, txErr = reservationservice.Expire(ctx, r.expireDeps, &candidate, now)
				return txErr
			})
			if err != nil {
				r.logger.Error("reaper: expire failed",
					zap.String("reservation_id", candidate.ID), zap.Error(err))
				continue
			}
			progressed = true
			if applied {
				expired++
				metrics.Reaper.ExpiredTotal.Inc()
			}
		}

		// A full batch that made no progress at all means every candidate is
		// failing persistently (e.g. the stock repo is down); stop instead of
		// spinning on the same rows forever.
		if !progressed {
			return expired, nil
		}
		if len(candidates) < r.cfg.BatchSize {
			return expired, nil
		}
	}
}

// SweepReminders emits a reservation.reminder event for every PENDING
// reservation that has crossed its reminder threshold and has not already
// had one recorded. It is a no-op when reminders are disabled.
func (r *Reaper) SweepReminders(ctx context.Context, now time.Time) (int, error) {
	if !r.cfg.ReminderEnabled {
		return 0, nil
	}

	candidates, err := r.expireDeps.ReservationRepo.ScanDueForReminder(ctx, now, r.cfg.ReminderFraction, r.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, candidate := range candidates {
		marked, err := r.expireDeps.ReservationRepo.MarkReminderSent(ctx, candidate.ID, now)
		if err != nil {
			r.logger.Error("reaper: mark reminder sent failed",
				zap.String("reservation_id", candidate.ID), zap.Error(err))
			continue
		}
		if !marked {
			continue
		}

		entry, err := outbox.NewEntry(uuid.New().String(), outbox.EventReservationReminder, candidate, now)
		if err != nil {
			r.logger.Error("reaper: build reminder entry failed",
				zap.String("reservation_id", candidate.ID), zap.Error(err))
			continue
		}
		if err := r.expireDeps.OutboxRepo.Insert(ctx, entry); err != nil {
			r.logger.Error("reaper: insert reminder entry failed",
				zap.String("reservation_id", candidate.ID), zap.Error(err))
			continue
		}
		sent++
		metrics.Reaper.RemindedTotal.Inc()
	}

	return sent, nil
}

// Run starts the periodic sweep loop, running every interval until ctx is
// cancelled.
func (r *Reaper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.logger.Info("reservation reaper started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reservation reaper stopping")
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Reaper) runOnce(ctx context.Context) {
	now := time.Now()

	expired, err := r.SweepExpired(ctx, now)
	if err != nil {
		r.logger.Error("reaper: expiry sweep failed", zap.Error(err))
	} else if expired > 0 {
		r.logger.Info("reaper: expiry sweep completed", zap.Int("expired_count", expired))
	}

	reminded, err := r.SweepReminders(ctx, now)
	if err != nil {
		r.logger.Error("reaper: reminder sweep failed", zap.Error(err))
	} else if reminded > 0 {
		r.logger.Info("reaper: reminder sweep completed", zap.Int("reminder_count", reminded))
	}
}
