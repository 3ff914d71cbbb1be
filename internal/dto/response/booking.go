package response

import (
	"time"

	"cinema-ticketing/internal/data/entity"

	"github.com/shopspring/decimal"
)

type ReservedSeatResponse struct {
	SeatNumber  int  `json:"seat_number"`
	IsValidated bool `json:"is_validated"`
}

type BookingResponse struct {
	ID                  int64                  `json:"id"`
	UserID              int64                  `json:"user_id,omitempty"`
	ShowtimeID          int64                  `json:"session_cinema_id"`
	Showtime            *ShowtimeResponse      `json:"session_cinema,omitempty"`
	MovieTitle          string                 `json:"movie_title,omitempty"`
	TheaterName         string                 `json:"theater_name,omitempty"`
	Status              entity.BookingStatus   `json:"status"`
	NumberSeats         int                    `json:"number_seats"`
	NumberSeatsDisabled int                    `json:"number_seats_disabled"`
	ReservedSeats       []ReservedSeatResponse `json:"reserved_seats"`
	TotalPrice          decimal.Decimal        `json:"total_price"`
	CreatedAt           time.Time              `json:"created_at"`
}

// BookingPreviewResponse describes what a submission would send, without
// sending it.
type BookingPreviewResponse struct {
	SelectionID         string          `json:"selection_id"`
	ShowtimeID          int64           `json:"session_cinema_id"`
	SeatNumbers         []int           `json:"seat_numbers"`
	NumberSeats         int             `json:"number_seats"`
	NumberSeatsDisabled int             `json:"number_seats_disabled"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	CanSubmit           bool            `json:"can_submit"`
	UnavailableSeats    []int           `json:"unavailable_seats,omitempty"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	seats := make([]ReservedSeatResponse, len(booking.ReservedSeats))
	for i, rs := range booking.ReservedSeats {
		seats[i] = ReservedSeatResponse{SeatNumber: rs.SeatNumber, IsValidated: rs.IsValidated}
	}

	resp := BookingResponse{
		ID:                  booking.ID,
		UserID:              booking.UserID,
		ShowtimeID:          booking.ShowtimeID,
		Status:              booking.Status,
		NumberSeats:         booking.NumberSeats,
		NumberSeatsDisabled: booking.NumberSeatsDisabled,
		ReservedSeats:       seats,
		TotalPrice:          booking.TotalPrice,
		CreatedAt:           booking.CreatedAt,
	}

	if st := booking.Showtime; st != nil {
		showtime := ShowtimeToResponse(st)
		resp.Showtime = &showtime
		if st.Movie != nil {
			resp.MovieTitle = st.Movie.Title
		}
		if theater := st.Theater(); theater != nil {
			resp.TheaterName = theater.Name
		}
	}

	return resp
}
