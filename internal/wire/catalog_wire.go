package wire

import (
	"cinema-ticketing/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/movies - movies known to the backend
	r.Get("/api/movies", catalogHandler.GetMovies)

	// GET /api/movies/{id} - movie details
	r.Get("/api/movies/{id}", catalogHandler.GetMovieByID)

	// GET /api/theaters - theaters for the filter dropdown
	r.Get("/api/theaters", catalogHandler.GetTheaters)
}
