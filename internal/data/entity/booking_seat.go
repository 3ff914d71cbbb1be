package entity

type ReservedSeat struct {
	SeatNumber  int  `json:"seatNumber"`
	IsValidated bool `json:"isValidated"`
}
