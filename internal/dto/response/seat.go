package response

import (
	"time"

	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/domain"

	"github.com/shopspring/decimal"
)

type SeatResponse struct {
	SeatNumber int    `json:"seat_number"`
	Row        string `json:"row"`
	Column     int    `json:"column"`
	IsOccupied bool   `json:"is_occupied"`
	IsDisabled bool   `json:"is_disabled"`
	IsSelected bool   `json:"is_selected"`
}

type SeatRowResponse struct {
	Row   string         `json:"row"`
	Seats []SeatResponse `json:"seats"`
}

type SeatMapResponse struct {
	ShowtimeID     int64             `json:"session_cinema_id"`
	TotalSeats     int               `json:"total_seats"`
	AvailableSeats int               `json:"available_seats"`
	SeatsPerRow    int               `json:"seats_per_row"`
	PricePerSeat   *decimal.Decimal  `json:"price_per_seat,omitempty"`
	SelectionID    string            `json:"selection_id,omitempty"`
	Rows           []SeatRowResponse `json:"rows"`
}

type SelectionResponse struct {
	ID                  string          `json:"id"`
	ShowtimeID          int64           `json:"session_cinema_id"`
	Seats               []SeatResponse  `json:"seats"`
	NumberSeats         int             `json:"number_seats"`
	NumberSeatsDisabled int             `json:"number_seats_disabled"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	ExpiresAt           time.Time       `json:"expires_at"`
}

func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		SeatNumber: seat.Number,
		Row:        seat.Row,
		Column:     seat.Column,
		IsOccupied: seat.IsOccupied,
		IsDisabled: seat.IsDisabled,
		IsSelected: seat.IsSelected,
	}
}

func SeatsToResponse(seats []entity.Seat) []SeatResponse {
	out := make([]SeatResponse, len(seats))
	for i := range seats {
		out[i] = SeatToResponse(&seats[i])
	}
	return out
}

func SeatMapToResponse(showtime *entity.Showtime, rows [][]entity.Seat, seatsPerRow int) *SeatMapResponse {
	resp := &SeatMapResponse{
		ShowtimeID:   showtime.ID,
		SeatsPerRow:  seatsPerRow,
		PricePerSeat: showtime.Price,
		Rows:         make([]SeatRowResponse, len(rows)),
	}
	for i, row := range rows {
		label := ""
		if len(row) > 0 {
			label = row[0].Row
		}
		resp.Rows[i] = SeatRowResponse{Row: label, Seats: SeatsToResponse(row)}
	}
	for _, seat := range domain.FlattenSeatMap(rows) {
		resp.TotalSeats++
		if !seat.IsOccupied {
			resp.AvailableSeats++
		}
	}
	return resp
}

func SelectionToResponse(selection *entity.SeatSelection, seats []entity.Seat, pricePerSeat decimal.Decimal) *SelectionResponse {
	return &SelectionResponse{
		ID:                  selection.ID.String(),
		ShowtimeID:          selection.ShowtimeID,
		Seats:               SeatsToResponse(seats),
		NumberSeats:         len(seats),
		NumberSeatsDisabled: domain.CountDisabled(seats),
		TotalPrice:          domain.ComputeTotalPrice(seats, pricePerSeat),
		ExpiresAt:           selection.ExpiresAt,
	}
}
