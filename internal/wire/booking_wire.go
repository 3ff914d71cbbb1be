package wire

import (
	"cinema-ticketing/internal/adaptor"
	"cinema-ticketing/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// ==================== PROTECTED ROUTES (require identity) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		// GET /api/user/bookings - booking history of the forwarded user
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})
}
