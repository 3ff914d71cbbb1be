package domain

import (
	"regexp"
	"strings"

	"cinema-ticketing/internal/data/entity"

	"github.com/shopspring/decimal"
)

// Identity is who a booking is made for: a logged-in user or a guest email.
type Identity struct {
	UserID     int64
	GuestEmail string
}

func (i Identity) LoggedIn() bool {
	return i.UserID > 0
}

// local@domain.tld, nothing stricter.
var guestEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidGuestEmail(email string) bool {
	return guestEmailPattern.MatchString(strings.TrimSpace(email))
}

// ComputeTotalPrice is the number of selected seats times the unit price.
func ComputeTotalPrice(selection []entity.Seat, pricePerSeat decimal.Decimal) decimal.Decimal {
	return pricePerSeat.Mul(decimal.NewFromInt(int64(len(selection))))
}

// CanSubmit reports whether a selection may be sent to the booking endpoint.
func CanSubmit(selection []entity.Seat, identity Identity) bool {
	if len(selection) == 0 {
		return false
	}
	return identity.LoggedIn() || ValidGuestEmail(identity.GuestEmail)
}

// BuildSubmission turns a selection into the booking request body. The seats
// are copied, so later changes to selection do not reach the request.
func BuildSubmission(selection []entity.Seat, showtimeID, userID int64, pricePerSeat decimal.Decimal) entity.CreateBookingDto {
	reserved := make([]entity.ReservedSeat, len(selection))
	for i, seat := range selection {
		reserved[i] = entity.ReservedSeat{SeatNumber: seat.Number, IsValidated: false}
	}

	return entity.CreateBookingDto{
		UserID:              userID,
		SessionCinemaID:     showtimeID,
		NumberSeats:         len(reserved),
		NumberSeatsDisabled: CountDisabled(selection),
		TotalPrice:          ComputeTotalPrice(selection, pricePerSeat).InexactFloat64(),
		ReservedSeats:       reserved,
	}
}

// CountDisabled returns how many accessibility seats a selection holds.
func CountDisabled(selection []entity.Seat) int {
	n := 0
	for _, s := range selection {
		if s.IsDisabled {
			n++
		}
	}
	return n
}
