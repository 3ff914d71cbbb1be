package entity

import (
	"time"
)

// Seat is a derived view of one seat of a showtime. It is rebuilt from the
// room capacity and the occupancy snapshot and never stored.
type Seat struct {
	Number     int
	Row        string
	Column     int // 0-based inside the row
	IsOccupied bool
	IsDisabled bool // accessibility seat
	IsSelected bool
}

// SeatSelection is the server-side draft of the seats one client is picking
// for a showtime.
type SeatSelection struct {
	BaseNoDelete
	ShowtimeID  int64     `db:"session_cinema_id"`
	SeatNumbers []int     `db:"seat_numbers"`
	ExpiresAt   time.Time `db:"expires_at"`
}
