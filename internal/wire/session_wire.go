package wire

import (
	"cinema-ticketing/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSession(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler, seatHandler *adaptor.SeatHandler) {
	r.Route("/api/sessions", func(r chi.Router) {
		// GET /api/sessions/by-movie?movie_id=&theater_id=&date=
		r.Get("/by-movie", showtimeHandler.GetSessionsByMovie)

		// GET /api/sessions/{id}/seats?selection_id=
		r.Get("/{id}/seats", seatHandler.GetSeatMap)
	})
}
