package adaptor

import (
	"net/http"

	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetMovies handles GET /api/movies
func (h *CatalogHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.ListMovies(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *CatalogHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	movie, err := h.service.GetMovie(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// GetTheaters handles GET /api/theaters
func (h *CatalogHandler) GetTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := h.service.ListTheaters(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get theaters")
		return
	}

	utils.ResponseSuccess(w, "success", theaters)
}
