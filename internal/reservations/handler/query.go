package http

import (
	"net/http"

	"go.uber.org/zap"

	"library-service/internal/pkg/logutil"
	reservationdomain "library-service/internal/reservations/domain"
	reservationops "library-service/internal/reservations/service"
)

// This file contains query operations for reservations.

// @Summary List my reservations
// @Description Get all reservations for the authenticated user, optionally filtered by status
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending, confirmed, cancelled, expired)"
// @Success 200 {array} reservationdomain.Response
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reservations [get]
func (h *ReservationHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logutil.HandlerLogger(ctx, "reservation_handler", "list")

	userID, ok := h.GetMemberID(w, r)
	if !ok {
		return
	}

	status := reservationdomain.Status(r.URL.Query().Get("status"))

	result, err := h.useCases.Reservation.ListReservations.Execute(ctx, reservationops.ListReservationsRequest{
		UserID: userID,
		Status: status,
	})
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	logger.Info("reservations listed", zap.Int("count", len(result.Reservations)))
	h.RespondJSON(w, http.StatusOK, result.Reservations)
}
