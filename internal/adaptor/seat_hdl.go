package adaptor

import (
	"net/http"

	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SeatHandler struct {
	service usecase.SeatingService
	log     *zap.Logger
}

func NewSeatHandler(service usecase.SeatingService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		service: service,
		log:     log.With(zap.String("handler", "seat")),
	}
}

// GetSeatMap handles GET /api/sessions/{id}/seats
func (h *SeatHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	showtimeID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid session ID", nil)
		return
	}

	seatMap, err := h.service.GetSeatMap(r.Context(), showtimeID, r.URL.Query().Get("selection_id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}
