// Package domain holds the booking flow rules that do not depend on any
// transport or storage: grouping showtimes for browsing, building seat maps
// and turning a seat selection into a booking request.
package domain

import (
	"time"

	"cinema-ticketing/internal/data/entity"
)

type DateSessions struct {
	Date      string // YYYY-MM-DD in the grouping location
	Showtimes []entity.Showtime
}

type TheaterSessions struct {
	Theater entity.Theater
	Dates   []DateSessions
}

type MovieWithSessions struct {
	Movie    entity.Movie
	Theaters []TheaterSessions
}

type theaterKey struct {
	movieID   int64
	theaterID int64
}

type dateKey struct {
	theaterKey
	date string
}

// SessionDate is the calendar date of t in loc, used as the date bucket key.
// A nil loc means UTC.
func SessionDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(time.DateOnly)
}

// GroupByMovie nests showtimes as movie -> theater -> date. Movies, theaters,
// dates and showtimes keep the order in which they first appear in the input.
// Showtimes without an embedded movie or room theater are dropped.
func GroupByMovie(showtimes []entity.Showtime, loc *time.Location) []MovieWithSessions {
	var (
		groups   []MovieWithSessions
		movies   = make(map[int64]int)
		theaters = make(map[theaterKey]int)
		dates    = make(map[dateKey]int)
	)

	for _, st := range showtimes {
		theater := st.Theater()
		if st.Movie == nil || theater == nil {
			continue
		}

		mi, ok := movies[st.Movie.ID]
		if !ok {
			mi = len(groups)
			movies[st.Movie.ID] = mi
			groups = append(groups, MovieWithSessions{Movie: *st.Movie})
		}
		group := &groups[mi]

		tk := theaterKey{movieID: st.Movie.ID, theaterID: theater.ID}
		ti, ok := theaters[tk]
		if !ok {
			ti = len(group.Theaters)
			theaters[tk] = ti
			group.Theaters = append(group.Theaters, TheaterSessions{Theater: *theater})
		}
		bucket := &group.Theaters[ti]

		dk := dateKey{theaterKey: tk, date: SessionDate(st.StartTime, loc)}
		di, ok := dates[dk]
		if !ok {
			di = len(bucket.Dates)
			dates[dk] = di
			bucket.Dates = append(bucket.Dates, DateSessions{Date: dk.date})
		}
		bucket.Dates[di].Showtimes = append(bucket.Dates[di].Showtimes, st)
	}

	return groups
}
