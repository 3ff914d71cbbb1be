package request

type StartSelectionRequest struct {
	ShowtimeID int64 `json:"session_cinema_id" validate:"required,gt=0"`
}

type ToggleSeatRequest struct {
	SeatNumber int `json:"seat_number" validate:"required,gt=0"`
}
