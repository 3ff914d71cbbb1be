package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusValidated BookingStatus = "VALIDATED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusValidated,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a reservation as returned by the cinema backend.
type Booking struct {
	ID                  int64
	UserID              int64
	ShowtimeID          int64
	Showtime            *Showtime
	Status              BookingStatus
	NumberSeats         int
	NumberSeatsDisabled int
	ReservedSeats       []ReservedSeat
	TotalPrice          decimal.Decimal
	CreatedAt           time.Time
}

// CreateBookingDto is the request body sent to the backend booking endpoint.
// UserID is 0 for guest bookings, which carry GuestEmail instead.
type CreateBookingDto struct {
	UserID              int64          `json:"userId"`
	GuestEmail          string         `json:"guestEmail,omitempty"`
	SessionCinemaID     int64          `json:"sessionCinemaId"`
	NumberSeats         int            `json:"numberSeats"`
	NumberSeatsDisabled int            `json:"numberSeatsDisabled"`
	TotalPrice          float64        `json:"totalPrice"`
	ReservedSeats       []ReservedSeat `json:"reservedSeats"`
}
