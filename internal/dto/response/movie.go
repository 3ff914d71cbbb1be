package response

import (
	"cinema-ticketing/internal/data/entity"
)

type MovieResponse struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	OriginalTitle string   `json:"original_title,omitempty"`
	Runtime       int      `json:"runtime"`
	ReleaseDate   string   `json:"release_date,omitempty"`
	Synopsis      string   `json:"synopsis,omitempty"`
	Director      string   `json:"director,omitempty"`
	Genre         string   `json:"genre,omitempty"`
	Cast          []string `json:"cast,omitempty"`
	PosterURL     string   `json:"poster_url,omitempty"`
	Rating        float64  `json:"rating"`
	RatingCount   int      `json:"rating_count"`
}

type TheaterResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	ZipCode     string `json:"zip_code,omitempty"`
	Country     string `json:"country,omitempty"`
	OpeningTime string `json:"opening_time,omitempty"`
	ClosingTime string `json:"closing_time,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	resp := MovieResponse{
		ID:            movie.ID,
		Title:         movie.Title,
		OriginalTitle: movie.OriginalTitle,
		Runtime:       movie.Runtime,
		Synopsis:      movie.Synopsis,
		Director:      movie.Director,
		Genre:         movie.Genre,
		Cast:          movie.Cast,
		PosterURL:     movie.PosterURL,
		Rating:        movie.Rating,
		RatingCount:   movie.RatingCount,
	}
	if !movie.ReleaseDate.IsZero() {
		resp.ReleaseDate = movie.ReleaseDate.Format("2006-01-02")
	}
	return resp
}

func TheaterToResponse(theater *entity.Theater) TheaterResponse {
	return TheaterResponse{
		ID:          theater.ID,
		Name:        theater.Name,
		Address:     theater.Address,
		City:        theater.City,
		ZipCode:     theater.ZipCode,
		Country:     theater.Country,
		OpeningTime: theater.OpeningTime,
		ClosingTime: theater.ClosingTime,
		Phone:       theater.Phone,
	}
}
