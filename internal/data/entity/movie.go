package entity

import (
	"time"
)

type Movie struct {
	ID            int64
	Title         string
	OriginalTitle string
	Runtime       int // minutes
	ReleaseDate   time.Time
	Synopsis      string
	Director      string
	Genre         string
	Cast          []string
	PosterURL     string
	Rating        float64
	RatingCount   int
}
