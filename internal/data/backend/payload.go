package backend

import (
	"fmt"
	"strings"
	"time"

	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/pkg/utils"

	"github.com/shopspring/decimal"
)

// Wire shapes of the cinema backend. Every payload goes through validation
// before it is turned into an entity, so the rest of the service only ever
// sees complete values.

type theaterPayload struct {
	ID          int64  `json:"id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	ZipCode     string `json:"zipCode"`
	Country     string `json:"country"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
	PhoneNumber string `json:"phoneNumber"`
}

type roomPayload struct {
	ID                  int64           `json:"id" validate:"required,gt=0"`
	TheaterID           int64           `json:"theaterId" validate:"gte=0"`
	Theater             *theaterPayload `json:"theater"`
	NumberSeats         int             `json:"numberSeats" validate:"gte=0"`
	NumberSeatsDisabled int             `json:"numberSeatsDisabled" validate:"gte=0,ltefield=NumberSeats"`
	RoomNumber          int             `json:"roomNumber" validate:"gte=0"`
}

type moviePayload struct {
	ID            int64    `json:"id" validate:"required,gt=0"`
	Title         string   `json:"title" validate:"required"`
	OriginalTitle string   `json:"originalTitle"`
	Runtime       int      `json:"runtime" validate:"gte=0"`
	ReleaseDate   string   `json:"releaseDate"`
	Synopsis      string   `json:"synopsis"`
	Director      string   `json:"director"`
	Genre         string   `json:"genre"`
	Cast          []string `json:"cast"`
	PosterURL     string   `json:"posterUrl"`
	Rating        float64  `json:"rating" validate:"gte=0"`
	RatingCount   int      `json:"ratingCount" validate:"gte=0"`
}

type showtimePayload struct {
	ID             int64            `json:"id" validate:"required,gt=0"`
	StartTime      time.Time        `json:"startTime"`
	EndTime        time.Time        `json:"endTime"`
	Quality        string           `json:"quality" validate:"required,oneof=SD HD FULL_HD UHD_4K IMAX DOLBY_CINEMA 3D"`
	Language       string           `json:"language" validate:"required,oneof=FRENCH ENGLISH SPANISH GERMAN"`
	MovieTheaterID int64            `json:"movieTheaterId" validate:"gte=0"`
	MovieID        int64            `json:"movieId" validate:"gte=0"`
	MovieTheater   *roomPayload     `json:"movieTheater"`
	Movie          *moviePayload    `json:"movie"`
	AvailableSeats *int             `json:"availableSeats" validate:"omitempty,gte=0"`
	Price          *decimal.Decimal `json:"price"`
}

type reservedSeatPayload struct {
	SeatNumber  int  `json:"seatNumber" validate:"gt=0"`
	IsValidated bool `json:"isValidated"`
}

type bookingPayload struct {
	ID                  int64                 `json:"id" validate:"required,gt=0"`
	UserID              int64                 `json:"userId" validate:"gte=0"`
	SessionCinemaID     int64                 `json:"sessionCinemaId" validate:"gte=0"`
	SessionCinema       *showtimePayload      `json:"sessionCinema"`
	Status              string                `json:"status" validate:"required,oneof=PENDING CONFIRMED VALIDATED COMPLETED CANCELLED"`
	NumberSeats         int                   `json:"numberSeats" validate:"gte=0"`
	NumberSeatsDisabled int                   `json:"numberSeatsDisabled" validate:"gte=0,ltefield=NumberSeats"`
	ReservedSeats       []reservedSeatPayload `json:"reservedSeats" validate:"dive"`
	TotalPrice          decimal.Decimal       `json:"totalPrice"`
	CreatedAt           time.Time             `json:"createdAt"`
}

func validatePayload(resource string, payload any) error {
	if err := utils.Validator().Struct(payload); err != nil {
		return validationDecodeError(resource, err)
	}
	return nil
}

func (p *theaterPayload) toEntity() *entity.Theater {
	return &entity.Theater{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		City:        p.City,
		ZipCode:     p.ZipCode,
		Country:     p.Country,
		OpeningTime: p.OpeningTime,
		ClosingTime: p.ClosingTime,
		Phone:       p.PhoneNumber,
	}
}

func (p *roomPayload) toEntity() *entity.ScreeningRoom {
	room := &entity.ScreeningRoom{
		ID:                  p.ID,
		TheaterID:           p.TheaterID,
		NumberSeats:         p.NumberSeats,
		NumberSeatsDisabled: p.NumberSeatsDisabled,
		RoomNumber:          p.RoomNumber,
	}
	if p.Theater != nil {
		room.Theater = p.Theater.toEntity()
		room.TheaterID = p.Theater.ID
	}
	return room
}

func (p *moviePayload) toEntity(resource string) (*entity.Movie, error) {
	movie := &entity.Movie{
		ID:            p.ID,
		Title:         p.Title,
		OriginalTitle: p.OriginalTitle,
		Runtime:       p.Runtime,
		Synopsis:      p.Synopsis,
		Director:      p.Director,
		Genre:         p.Genre,
		Cast:          p.Cast,
		PosterURL:     p.PosterURL,
		Rating:        p.Rating,
		RatingCount:   p.RatingCount,
	}

	if p.ReleaseDate != "" {
		released, err := parseDate(p.ReleaseDate)
		if err != nil {
			return nil, &DecodeError{Resource: resource, Field: "releaseDate", Reason: err.Error(), Err: err}
		}
		movie.ReleaseDate = released
	}

	return movie, nil
}

func (p *showtimePayload) toEntity(resource string) (*entity.Showtime, error) {
	if p.StartTime.IsZero() {
		return nil, &DecodeError{Resource: resource, Field: "startTime", Reason: "missing"}
	}
	if p.EndTime.IsZero() {
		return nil, &DecodeError{Resource: resource, Field: "endTime", Reason: "missing"}
	}
	if !p.EndTime.After(p.StartTime) {
		return nil, &DecodeError{Resource: resource, Field: "endTime", Reason: "must be after startTime"}
	}
	if p.Price != nil && p.Price.IsNegative() {
		return nil, &DecodeError{Resource: resource, Field: "price", Reason: "must not be negative"}
	}

	showtime := &entity.Showtime{
		ID:             p.ID,
		StartTime:      p.StartTime,
		EndTime:        p.EndTime,
		Quality:        entity.Quality(p.Quality),
		Language:       entity.Language(p.Language),
		RoomID:         p.MovieTheaterID,
		MovieID:        p.MovieID,
		AvailableSeats: p.AvailableSeats,
		Price:          p.Price,
	}

	if p.MovieTheater != nil {
		showtime.Room = p.MovieTheater.toEntity()
		showtime.RoomID = p.MovieTheater.ID
	}
	if p.Movie != nil {
		movie, err := p.Movie.toEntity(resource)
		if err != nil {
			return nil, err
		}
		showtime.Movie = movie
		showtime.MovieID = movie.ID
	}

	return showtime, nil
}

func (p *bookingPayload) toEntity(resource string) (*entity.Booking, error) {
	if p.TotalPrice.IsNegative() {
		return nil, &DecodeError{Resource: resource, Field: "totalPrice", Reason: "must not be negative"}
	}

	booking := &entity.Booking{
		ID:                  p.ID,
		UserID:              p.UserID,
		ShowtimeID:          p.SessionCinemaID,
		Status:              entity.BookingStatus(p.Status),
		NumberSeats:         p.NumberSeats,
		NumberSeatsDisabled: p.NumberSeatsDisabled,
		ReservedSeats:       make([]entity.ReservedSeat, len(p.ReservedSeats)),
		TotalPrice:          p.TotalPrice,
		CreatedAt:           p.CreatedAt,
	}
	for i, rs := range p.ReservedSeats {
		booking.ReservedSeats[i] = entity.ReservedSeat{SeatNumber: rs.SeatNumber, IsValidated: rs.IsValidated}
	}
	if booking.NumberSeats == 0 {
		booking.NumberSeats = len(booking.ReservedSeats)
	}

	if p.SessionCinema != nil {
		showtime, err := p.SessionCinema.toEntity(resource)
		if err != nil {
			return nil, err
		}
		booking.Showtime = showtime
		booking.ShowtimeID = showtime.ID
	}

	return booking, nil
}

// parseDate accepts a plain calendar date or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	return t, nil
}
