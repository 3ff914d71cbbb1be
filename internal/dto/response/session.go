package response

import (
	"time"

	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/domain"

	"github.com/shopspring/decimal"
)

type ShowtimeResponse struct {
	ID             int64            `json:"id"`
	StartTime      time.Time        `json:"start_time"`
	EndTime        time.Time        `json:"end_time"`
	Quality        entity.Quality   `json:"quality"`
	Language       entity.Language  `json:"language"`
	RoomID         int64            `json:"room_id"`
	RoomNumber     int              `json:"room_number,omitempty"`
	AvailableSeats *int             `json:"available_seats,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
}

type DateSessionsResponse struct {
	Date      string             `json:"date"`
	Showtimes []ShowtimeResponse `json:"showtimes"`
}

type TheaterSessionsResponse struct {
	Theater TheaterResponse        `json:"theater"`
	Dates   []DateSessionsResponse `json:"dates"`
}

type MovieSessionsResponse struct {
	Movie    MovieResponse             `json:"movie"`
	Theaters []TheaterSessionsResponse `json:"theaters"`
}

func ShowtimeToResponse(st *entity.Showtime) ShowtimeResponse {
	resp := ShowtimeResponse{
		ID:             st.ID,
		StartTime:      st.StartTime,
		EndTime:        st.EndTime,
		Quality:        st.Quality,
		Language:       st.Language,
		RoomID:         st.RoomID,
		AvailableSeats: st.AvailableSeats,
		Price:          st.Price,
	}
	if st.Room != nil {
		resp.RoomNumber = st.Room.RoomNumber
	}
	return resp
}

func MovieSessionsToResponse(groups []domain.MovieWithSessions) []MovieSessionsResponse {
	out := make([]MovieSessionsResponse, len(groups))
	for i, group := range groups {
		theaters := make([]TheaterSessionsResponse, len(group.Theaters))
		for j, theater := range group.Theaters {
			dates := make([]DateSessionsResponse, len(theater.Dates))
			for k, date := range theater.Dates {
				showtimes := make([]ShowtimeResponse, len(date.Showtimes))
				for n := range date.Showtimes {
					showtimes[n] = ShowtimeToResponse(&date.Showtimes[n])
				}
				dates[k] = DateSessionsResponse{Date: date.Date, Showtimes: showtimes}
			}
			theaters[j] = TheaterSessionsResponse{
				Theater: TheaterToResponse(&theater.Theater),
				Dates:   dates,
			}
		}
		out[i] = MovieSessionsResponse{
			Movie:    MovieToResponse(&group.Movie),
			Theaters: theaters,
		}
	}
	return out
}
