package wire

import (
	"cinema-ticketing/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireSelection mounts the draft routes. Guests and users share them; the
// identity only matters at preview and submit time.
func wireSelection(r chi.Router, selectionHandler *adaptor.SelectionHandler, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/selections", func(r chi.Router) {
		r.Post("/", selectionHandler.Start)
		r.Get("/{id}", selectionHandler.Get)
		r.Delete("/{id}", selectionHandler.Clear)
		r.Post("/{id}/toggle", selectionHandler.Toggle)

		r.Get("/{id}/preview", bookingHandler.Preview)
		r.Post("/{id}/submit", bookingHandler.Submit)
	})
}
