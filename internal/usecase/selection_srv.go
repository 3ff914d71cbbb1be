package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-ticketing/internal/data/backend"
	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/internal/domain"
	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SelectionService interface {
	Start(ctx context.Context, req *request.StartSelectionRequest) (*response.SelectionResponse, error)
	Get(ctx context.Context, selectionID string) (*response.SelectionResponse, error)
	// Toggle selects or unselects one seat. Toggling an occupied seat leaves
	// the selection unchanged and is not an error.
	Toggle(ctx context.Context, selectionID string, req *request.ToggleSeatRequest) (*response.SelectionResponse, error)
	Clear(ctx context.Context, selectionID string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type selectionService struct {
	repo   repository.SelectionRepository
	loader seatMapLoader
	ttl    time.Duration
	now    func() time.Time
	log    *zap.Logger
}

func NewSelectionService(repo repository.SelectionRepository, api backend.API, config utils.BookingConfig, log *zap.Logger) SelectionService {
	return &selectionService{
		repo:   repo,
		loader: seatMapLoader{api: api, selections: repo, seatsPerRow: config.SeatsPerRow},
		ttl:    config.SelectionTTL,
		now:    time.Now,
		log:    log.With(zap.String("service", "selection")),
	}
}

func (s *selectionService) Start(ctx context.Context, req *request.StartSelectionRequest) (*response.SelectionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Start selection validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	showtime, err := s.loader.api.GetShowtime(ctx, req.ShowtimeID)
	if err != nil {
		return nil, backendError(err, ErrShowtimeNotFound)
	}
	if showtime.Room == nil {
		return nil, ErrShowtimeIncomplete
	}

	now := s.now().UTC()
	selection := &entity.SeatSelection{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ShowtimeID:  req.ShowtimeID,
		SeatNumbers: []int{},
		ExpiresAt:   now.Add(s.ttl),
	}

	if err := s.repo.Create(ctx, selection); err != nil {
		return nil, fmt.Errorf("create selection: %w", err)
	}

	s.log.Info("Selection started",
		zap.String("selection_id", selection.ID.String()),
		zap.Int64("session_cinema_id", selection.ShowtimeID),
	)

	return response.SelectionToResponse(selection, []entity.Seat{}, priceOf(showtime)), nil
}

func (s *selectionService) Get(ctx context.Context, selectionID string) (*response.SelectionResponse, error) {
	draft, err := s.loader.findSelection(ctx, selectionID)
	if err != nil {
		return nil, err
	}

	sm, err := s.loader.load(ctx, draft.ShowtimeID)
	if err != nil {
		return nil, err
	}

	// seats booked by someone else since the last toggle drop out here
	selection := domain.ApplySelection(sm.rows, draft.SeatNumbers)
	return response.SelectionToResponse(draft, selection, priceOf(sm.showtime)), nil
}

func (s *selectionService) Toggle(ctx context.Context, selectionID string, req *request.ToggleSeatRequest) (*response.SelectionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	draft, err := s.loader.findSelection(ctx, selectionID)
	if err != nil {
		return nil, err
	}

	sm, err := s.loader.load(ctx, draft.ShowtimeID)
	if err != nil {
		return nil, err
	}

	selection := domain.ApplySelection(sm.rows, draft.SeatNumbers)
	seat, ok := domain.FindSeat(sm.rows, req.SeatNumber)
	if !ok {
		return nil, fmt.Errorf("%w: seat %d", ErrSeatNotFound, req.SeatNumber)
	}

	if seat.IsOccupied {
		s.log.Debug("Ignoring toggle of occupied seat",
			zap.String("selection_id", draft.ID.String()),
			zap.Int("seat_number", seat.Number),
		)
		return response.SelectionToResponse(draft, selection, priceOf(sm.showtime)), nil
	}

	selection = domain.ToggleSeat(seat, selection)
	numbers := domain.SeatNumbers(selection)
	expiresAt := s.now().UTC().Add(s.ttl)

	if err := s.repo.UpdateSeats(ctx, draft.ID, numbers, expiresAt); err != nil {
		return nil, selectionWriteError("update selection", err)
	}
	draft.SeatNumbers = numbers
	draft.ExpiresAt = expiresAt

	return response.SelectionToResponse(draft, selection, priceOf(sm.showtime)), nil
}

func (s *selectionService) Clear(ctx context.Context, selectionID string) error {
	draft, err := s.loader.findSelection(ctx, selectionID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, draft.ID); err != nil {
		return selectionWriteError("delete selection", err)
	}

	s.log.Info("Selection cleared", zap.String("selection_id", draft.ID.String()))
	return nil
}

func (s *selectionService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, s.now().UTC())
}
