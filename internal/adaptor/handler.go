package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog   *CatalogHandler
	Showtime  *ShowtimeHandler
	Seat      *SeatHandler
	Selection *SelectionHandler
	Booking   *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Catalog:   NewCatalogHandler(service.Catalog, log),
		Showtime:  NewShowtimeHandler(service.Showtime, log),
		Seat:      NewSeatHandler(service.Seating, log),
		Selection: NewSelectionHandler(service.Selection, log),
		Booking:   NewBookingHandler(service.Booking, log),
	}
}

// decodeBody decodes an optional JSON body into dst. An empty body leaves
// dst untouched.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// handleServiceError maps service errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var taken *usecase.SeatsTakenError

	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err), zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrShowtimeNotFound),
		errors.Is(err, usecase.ErrMovieNotFound),
		errors.Is(err, usecase.ErrSelectionNotFound),
		errors.Is(err, usecase.ErrSeatNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err), zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.As(err, &taken):
		log.Warn(operation+" failed - seats taken", zap.Ints("seats", taken.Seats), zap.String("operation", operation))
		utils.ResponseConflict(w, usecase.ErrSeatsTaken.Error(), map[string][]int{"unavailable_seats": taken.Seats})

	case errors.Is(err, usecase.ErrSeatsTaken):
		log.Warn(operation+" failed - seats taken", zap.Error(err), zap.String("operation", operation))
		utils.ResponseConflict(w, usecase.ErrSeatsTaken.Error(), nil)

	case errors.Is(err, usecase.ErrCannotSubmit):
		log.Warn(operation+" failed - cannot submit", zap.String("operation", operation))
		utils.ResponseUnprocessable(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrBackendUnavailable):
		log.Error(operation+" failed - backend", zap.Error(err), zap.String("operation", operation))
		utils.ResponseBadGateway(w, usecase.ErrBackendUnavailable.Error())

	case errors.Is(err, usecase.ErrBookingUnconfirmed):
		log.Error(operation+" failed - unreadable confirmation", zap.Error(err), zap.String("operation", operation))
		utils.ResponseBadGateway(w, usecase.ErrBookingUnconfirmed.Error())

	case errors.Is(err, usecase.ErrShowtimeIncomplete):
		log.Error(operation+" failed - incomplete session", zap.String("operation", operation))
		utils.ResponseBadGateway(w, err.Error())

	case errors.Is(err, context.Canceled):
		log.Info(operation+" canceled by client", zap.String("operation", operation))

	default:
		log.Error(operation+" failed", zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
