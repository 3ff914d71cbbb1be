package adaptor

import (
	"net/http"

	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Preview handles GET /api/selections/{id}/preview
func (h *BookingHandler) Preview(w http.ResponseWriter, r *http.Request) {
	// guests have no user ID in the context
	userID, _ := utils.GetUserIDFromContext(r.Context())

	preview, err := h.service.Preview(r.Context(), chi.URLParam(r, "id"), userID, r.URL.Query().Get("guest_email"))
	if err != nil {
		handleServiceError(w, h.log, err, "preview booking")
		return
	}

	utils.ResponseSuccess(w, "success", preview)
}

// Submit handles POST /api/selections/{id}/submit
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req request.SubmitBookingRequest
	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.Submit(r.Context(), chi.URLParam(r, "id"), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit booking")
		return
	}

	utils.ResponseCreated(w, "Booking submitted", booking)
}

// GetUserBookings handles GET /api/user/bookings (requires identity)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := request.PaginationFromQuery(r.URL.Query())

	bookings, err := h.service.GetUserBookings(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}
