package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	pkglogutil "library-service/pkg/logutil"

	"library-service/internal/domain/idempotency"
	"library-service/internal/domain/outbox"
	"library-service/internal/domain/product"
	"library-service/internal/domain/stock"
	pkgerrors "library-service/internal/pkg/errors"
	"library-service/internal/pkg/repository/postgres"
	reservationdomain "library-service/internal/reservations/domain"
)

// CreateReservationRequest is the input for creating a reservation.
type CreateReservationRequest struct {
	reservationdomain.CreateParams
	IdempotencyKey string
}

// CreateReservationResponse is the output of creating a reservation.
type CreateReservationResponse struct {
	reservationdomain.Response
}

// CreateReservationUseCase creates a reservation, checking in order: the
// product is active, the user is under their active-reservation limit,
// and the stock ledger has enough available units. All three checks and
// the resulting writes (reservation, ledger, outbox entry) run inside one
// database transaction.
type CreateReservationUseCase struct {
	txManager       postgres.TxManager
	reservationRepo reservationdomain.Repository
	productRepo     product.Repository
	stockRepo       stock.Repository
	outboxRepo      outbox.Repository
	idempotencyRepo idempotency.Repository
	reservationSvc  *reservationdomain.Service
	ttl             time.Duration
	maxActive       int
	idempotencyTTL  time.Duration
}

// NewCreateReservationUseCase creates a new instance of CreateReservationUseCase.
func NewCreateReservationUseCase(
	txManager postgres.TxManager,
	reservationRepo reservationdomain.Repository,
	productRepo product.Repository,
	stockRepo stock.Repository,
	outboxRepo outbox.Repository,
	idempotencyRepo idempotency.Repository,
	reservationSvc *reservationdomain.Service,
	ttl time.Duration,
	maxActive int,
	idempotencyTTL time.Duration,
) *CreateReservationUseCase {
	return &CreateReservationUseCase{
		txManager:       txManager,
		reservationRepo: reservationRepo,
		productRepo:     productRepo,
		stockRepo:       stockRepo,
		outboxRepo:      outboxRepo,
		idempotencyRepo: idempotencyRepo,
		reservationSvc:  reservationSvc,
		ttl:             ttl,
		maxActive:       maxActive,
		idempotencyTTL:  idempotencyTTL,
	}
}

// Execute creates a reservation.
func (uc *CreateReservationUseCase) Execute(ctx context.Context, req CreateReservationRequest) (CreateReservationResponse, error) {
	logger := pkglogutil.UseCaseLogger(ctx, "reservation", "create")

	fingerprint := fingerprintRequest(req.CreateParams)

	if req.IdempotencyKey != "" {
		if resp, found, err := uc.replayIfSeen(ctx, req.IdempotencyKey, fingerprint); err != nil {
			return CreateReservationResponse{}, err
		} else if found {
			logger.Info("idempotent replay", zap.String("idempotency_key", req.IdempotencyKey))
			return resp, nil
		}
	}

	reservation := reservationdomain.New(uuid.New().String(), req.CreateParams, time.Now(), uc.ttl)
	if err := uc.reservationSvc.Validate(reservation); err != nil {
		return CreateReservationResponse{}, err
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		productEntity, err := uc.productRepo.Get(ctx, req.ProductID)
		if err != nil {
			return err
		}
		if !productEntity.Active {
			return pkgerrors.ProductUnavailable(strconv.FormatInt(req.ProductID, 10))
		}

		activeCount, err := uc.reservationRepo.CountActive(ctx, req.UserID)
		if err != nil {
			return err
		}
		if err := uc.reservationSvc.CanUserReserve(req.UserID, activeCount, uc.maxActive); err != nil {
			return err
		}

		if err := uc.stockRepo.Reserve(ctx, req.ProductID, req.Quantity); err != nil {
			return err
		}

		if err := uc.reservationRepo.Insert(ctx, reservation); err != nil {
			return err
		}

		entry, err := outbox.NewEntry(uuid.New().String(), outbox.EventReservationCreated, reservation, reservation.CreatedAt)
		if err != nil {
			return err
		}
		if err := uc.outboxRepo.Insert(ctx, entry); err != nil {
			return err
		}

		if req.IdempotencyKey != "" {
			record := idempotency.NewRecord(req.IdempotencyKey, fingerprint, reservation.ID, reservation.CreatedAt, uc.idempotencyTTL)
			if err := uc.idempotencyRepo.Insert(ctx, record); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		logger.Warn("reservation create failed", zap.Error(err))
		return CreateReservationResponse{}, err
	}

	logger.Info("reservation created", zap.String("reservation_id", reservation.ID))

	return CreateReservationResponse{Response: reservationdomain.ParseFromReservation(reservation)}, nil
}

// replayIfSeen checks whether the idempotency key has already produced a
// reservation. A fingerprint mismatch means the key was reused for a
// different request, which is rejected rather than replayed.
func (uc *CreateReservationUseCase) replayIfSeen(ctx context.Context, key, fingerprint string) (CreateReservationResponse, bool, error) {
	record, err := uc.idempotencyRepo.Find(ctx, key)
	if pkgerrors.Is(err, pkgerrors.ErrNotFound) {
		return CreateReservationResponse{}, false, nil
	}
	if err != nil {
		return CreateReservationResponse{}, false, err
	}

	if record.Fingerprint != fingerprint {
		return CreateReservationResponse{}, false, pkgerrors.IdempotencyKeyConflict(key)
	}

	reservation, err := uc.reservationRepo.Find(ctx, record.ReservationID)
	if err != nil {
		return CreateReservationResponse{}, false, err
	}
	return CreateReservationResponse{Response: reservationdomain.ParseFromReservation(reservation)}, true, nil
}

// fingerprintRequest hashes the request body so a repeated idempotency key
// can be checked for a matching payload without storing the payload itself.
func fingerprintRequest(params reservationdomain.CreateParams) string {
	data, _ := json.Marshal(params)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
