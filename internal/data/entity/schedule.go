package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Quality string

const (
	QualitySD          Quality = "SD"
	QualityHD          Quality = "HD"
	QualityFullHD      Quality = "FULL_HD"
	QualityUHD4K       Quality = "UHD_4K"
	QualityIMAX        Quality = "IMAX"
	QualityDolbyCinema Quality = "DOLBY_CINEMA"
	Quality3D          Quality = "3D"
)

func (q Quality) Valid() bool {
	switch q {
	case QualitySD, QualityHD, QualityFullHD, QualityUHD4K, QualityIMAX, QualityDolbyCinema, Quality3D:
		return true
	}
	return false
}

type Language string

const (
	LanguageFrench  Language = "FRENCH"
	LanguageEnglish Language = "ENGLISH"
	LanguageSpanish Language = "SPANISH"
	LanguageGerman  Language = "GERMAN"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageFrench, LanguageEnglish, LanguageSpanish, LanguageGerman:
		return true
	}
	return false
}

// Showtime is a single scheduled screening of a movie in a screening room.
// Room and Movie are only set when the backend embedded them in the payload.
type Showtime struct {
	ID             int64
	StartTime      time.Time
	EndTime        time.Time
	Quality        Quality
	Language       Language
	RoomID         int64
	MovieID        int64
	Room           *ScreeningRoom
	Movie          *Movie
	AvailableSeats *int
	Price          *decimal.Decimal
}

// Theater returns the embedded theater location, or nil when the room or its
// theater was not part of the payload.
func (s *Showtime) Theater() *Theater {
	if s.Room == nil {
		return nil
	}
	return s.Room.Theater
}
