package http

import (
	"net/http"

	"go.uber.org/zap"

	"library-service/internal/pkg/httputil"
	"library-service/internal/pkg/logutil"
	reservationdomain "library-service/internal/reservations/domain"
	reservationops "library-service/internal/reservations/service"
)

// This file contains CRUD operations for reservations.

// @Summary Create a new reservation
// @Description Reserve stock against a product for the authenticated user
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body CreateReservationRequest true "Reservation data"
// @Success 201 {object} reservationdomain.Response
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reservations [post]
func (h *ReservationHandler) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logutil.HandlerLogger(ctx, "reservation_handler", "create")

	userID, ok := h.GetMemberID(w, r)
	if !ok {
		return
	}

	var req CreateReservationRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, r, err)
		return
	}

	if !h.validator.ValidateStruct(w, req) {
		return
	}

	result, err := h.useCases.Reservation.CreateReservation.Execute(ctx, reservationops.CreateReservationRequest{
		CreateParams: reservationdomain.CreateParams{
			UserID:       userID,
			ProductID:    req.ProductID,
			Quantity:     req.Quantity,
			UnitPrice:    req.UnitPrice,
			CustomerInfo: req.CustomerInfo,
		},
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	})
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	logger.Info("reservation created", zap.String("id", result.Response.ID))
	h.RespondJSON(w, http.StatusCreated, result.Response)
}

// @Summary Get a reservation by ID
// @Description Get details of a specific reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} reservationdomain.Response
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reservations/{id} [get]
func (h *ReservationHandler) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logutil.HandlerLogger(ctx, "reservation_handler", "get")

	id, ok := h.GetURLParam(w, r, "id")
	if !ok {
		return
	}

	result, err := h.useCases.Reservation.GetReservation.Execute(ctx, reservationops.GetReservationRequest{
		ReservationID: id,
	})
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	logger.Debug("reservation retrieved", zap.String("id", id))
	h.RespondJSON(w, http.StatusOK, result.Response)
}

// @Summary Confirm a reservation
// @Description Convert a pending reservation into a permanent stock deduction
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} reservationdomain.Response
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reservations/{id}/confirm [post]
func (h *ReservationHandler) confirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logutil.HandlerLogger(ctx, "reservation_handler", "confirm")

	userID, ok := h.GetMemberID(w, r)
	if !ok {
		return
	}

	id, ok := h.GetURLParam(w, r, "id")
	if !ok {
		return
	}

	result, err := h.useCases.Reservation.ConfirmReservation.Execute(ctx, reservationops.ConfirmReservationRequest{
		ReservationID: id,
		UserID:        userID,
	})
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	logger.Info("reservation confirmed", zap.String("id", id))
	h.RespondJSON(w, http.StatusOK, result.Response)
}

// @Summary Cancel a reservation
// @Description Cancel a reservation (only the owner can cancel)
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} reservationdomain.Response
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) cancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logutil.HandlerLogger(ctx, "reservation_handler", "cancel")

	userID, ok := h.GetMemberID(w, r)
	if !ok {
		return
	}

	id, ok := h.GetURLParam(w, r, "id")
	if !ok {
		return
	}

	result, err := h.useCases.Reservation.CancelReservation.Execute(ctx, reservationops.CancelReservationRequest{
		ReservationID: id,
		UserID:        userID,
	})
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	logger.Info("reservation cancelled", zap.String("id", id))
	h.RespondJSON(w, http.StatusOK, result.Response)
}
