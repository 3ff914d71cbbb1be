package usecase

import (
	"context"
	"fmt"

	"cinema-ticketing/internal/data/backend"
	"cinema-ticketing/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovie(ctx context.Context, id int64) (*response.MovieResponse, error)
	ListTheaters(ctx context.Context) ([]response.TheaterResponse, error)
}

type catalogService struct {
	api backend.API
	log *zap.Logger
}

func NewCatalogService(api backend.API, log *zap.Logger) CatalogService {
	return &catalogService{
		api: api,
		log: log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.api.ListMovies(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, backendError(err, nil)
	}

	resp := make([]response.MovieResponse, len(movies))
	for i := range movies {
		resp[i] = response.MovieToResponse(&movies[i])
	}
	return resp, nil
}

func (s *catalogService) GetMovie(ctx context.Context, id int64) (*response.MovieResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: movie ID must be greater than zero", ErrValidation)
	}

	movie, err := s.api.GetMovie(ctx, id)
	if err != nil {
		return nil, backendError(err, ErrMovieNotFound)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *catalogService) ListTheaters(ctx context.Context) ([]response.TheaterResponse, error) {
	theaters, err := s.api.ListTheaters(ctx)
	if err != nil {
		s.log.Error("Failed to list theaters", zap.Error(err))
		return nil, backendError(err, nil)
	}

	resp := make([]response.TheaterResponse, len(theaters))
	for i := range theaters {
		resp[i] = response.TheaterToResponse(&theaters[i])
	}
	return resp, nil
}
