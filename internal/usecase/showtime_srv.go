package usecase

import (
	"context"
	"time"

	"cinema-ticketing/internal/data/backend"
	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/domain"
	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeService interface {
	// GetSessionsByMovie lists showtimes grouped as movie -> theater -> date.
	GetSessionsByMovie(ctx context.Context, req *request.SessionFilter) ([]response.MovieSessionsResponse, error)
}

type showtimeService struct {
	api      backend.API
	location *time.Location
	log      *zap.Logger
}

func NewShowtimeService(api backend.API, location *time.Location, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		api:      api,
		location: location,
		log:      log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) GetSessionsByMovie(ctx context.Context, req *request.SessionFilter) ([]response.MovieSessionsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Session filter validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	showtimes, err := s.api.ListShowtimes(ctx, backend.ShowtimeFilter{
		MovieID:   req.MovieID,
		TheaterID: req.TheaterID,
		Date:      req.Date,
	})
	if err != nil {
		s.log.Error("Failed to list sessions", zap.Error(err))
		return nil, backendError(err, nil)
	}

	groups := domain.GroupByMovie(s.filter(showtimes, req), s.location)
	return response.MovieSessionsToResponse(groups), nil
}

// filter applies req locally as well, so dates are bucketed in the
// configured timezone whatever the backend made of the query.
func (s *showtimeService) filter(showtimes []entity.Showtime, req *request.SessionFilter) []entity.Showtime {
	kept := make([]entity.Showtime, 0, len(showtimes))
	for _, st := range showtimes {
		if req.MovieID > 0 && st.MovieID != 0 && st.MovieID != req.MovieID {
			continue
		}
		if theater := st.Theater(); req.TheaterID > 0 && theater != nil && theater.ID != req.TheaterID {
			continue
		}
		if req.Date != "" && domain.SessionDate(st.StartTime, s.location) != req.Date {
			continue
		}
		kept = append(kept, st)
	}
	return kept
}
