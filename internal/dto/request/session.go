package request

// SessionFilter narrows the showtimes listed by the browse view.
type SessionFilter struct {
	MovieID   int64  `json:"movie_id" validate:"gte=0"`
	TheaterID int64  `json:"theater_id" validate:"gte=0"`
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
