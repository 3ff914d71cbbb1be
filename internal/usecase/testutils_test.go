package usecase

import (
	"time"

	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	fixedNow      = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	testSelection = uuid.MustParse("0b6f5c39-7f8e-4bd4-9d7a-1c1b2c3d4e5f")
	testBooking   = utils.BookingConfig{SeatsPerRow: 10, SelectionTTL: 20 * time.Minute}
)

func testShowtime() *entity.Showtime {
	price := decimal.RequireFromString("12.50")
	theater := &entity.Theater{ID: 1, Name: "Rex"}
	return &entity.Showtime{
		ID:        7,
		StartTime: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 3, 1, 20, 30, 0, 0, time.UTC),
		Quality:   entity.QualityHD,
		Language:  entity.LanguageEnglish,
		RoomID:    2,
		MovieID:   3,
		Room:      &entity.ScreeningRoom{ID: 2, TheaterID: 1, Theater: theater, NumberSeats: 25, RoomNumber: 4},
		Movie:     &entity.Movie{ID: 3, Title: "Dune"},
		Price:     &price,
	}
}

func testDraft(seats ...int) *entity.SeatSelection {
	if seats == nil {
		seats = []int{}
	}
	return &entity.SeatSelection{
		BaseNoDelete: entity.BaseNoDelete{ID: testSelection, CreatedAt: fixedNow, UpdatedAt: fixedNow},
		ShowtimeID:   7,
		SeatNumbers:  seats,
		ExpiresAt:    fixedNow.Add(20 * time.Minute),
	}
}

func fixedClock() time.Time { return fixedNow }
