package adaptor

import (
	"net/http"
	"strconv"

	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// GetSessionsByMovie handles GET /api/sessions/by-movie
func (h *ShowtimeHandler) GetSessionsByMovie(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.SessionFilter{Date: query.Get("date")}

	var err error
	if v := query.Get("movie_id"); v != "" {
		if req.MovieID, err = strconv.ParseInt(v, 10, 64); err != nil {
			utils.ResponseBadRequest(w, "Invalid movie_id", nil)
			return
		}
	}
	if v := query.Get("theater_id"); v != "" {
		if req.TheaterID, err = strconv.ParseInt(v, 10, 64); err != nil {
			utils.ResponseBadRequest(w, "Invalid theater_id", nil)
			return
		}
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	sessions, err := h.service.GetSessionsByMovie(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get sessions by movie")
		return
	}

	utils.ResponseSuccess(w, "success", sessions)
}
