package entity

// ScreeningRoom is a physical auditorium inside a theater location.
type ScreeningRoom struct {
	ID                  int64
	TheaterID           int64
	Theater             *Theater
	NumberSeats         int
	NumberSeatsDisabled int
	RoomNumber          int
}

type Theater struct {
	ID          int64
	Name        string
	Address     string
	City        string
	ZipCode     string
	Country     string
	OpeningTime string
	ClosingTime string
	Phone       string
}
