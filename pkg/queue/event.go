// Package queue publishes booking events to RabbitMQ for downstream
// consumers such as mailers and analytics.
package queue

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingSubmittedEvent is published after the backend accepted a booking.
type BookingSubmittedEvent struct {
	BookingID           int64           `json:"booking_id"`
	UserID              int64           `json:"user_id"`
	GuestEmail          string          `json:"guest_email,omitempty"`
	SessionCinemaID     int64           `json:"session_cinema_id"`
	MovieTitle          string          `json:"movie_title,omitempty"`
	TheaterName         string          `json:"theater_name,omitempty"`
	StartsAt            time.Time       `json:"starts_at"`
	SeatNumbers         []int           `json:"seats"`
	NumberSeatsDisabled int             `json:"number_seats_disabled"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	Status              string          `json:"status"`
	SubmittedAt         time.Time       `json:"submitted_at"`
}
