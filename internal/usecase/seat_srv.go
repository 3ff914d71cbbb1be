package usecase

import (
	"context"
	"fmt"

	"cinema-ticketing/internal/data/backend"
	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/internal/domain"
	"cinema-ticketing/internal/dto/response"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SeatingService interface {
	// GetSeatMap builds the seat map of a showtime from the current occupancy.
	// When selectionID is set, the seats of that draft are flagged as selected.
	GetSeatMap(ctx context.Context, showtimeID int64, selectionID string) (*response.SeatMapResponse, error)
}

// seatMapLoader regenerates seat maps from the backend. Seat maps are never
// stored: every call works on a fresh occupancy snapshot.
type seatMapLoader struct {
	api         backend.API
	selections  repository.SelectionRepository
	seatsPerRow int
}

type seatMap struct {
	showtime *entity.Showtime
	rows     [][]entity.Seat
}

func (l seatMapLoader) load(ctx context.Context, showtimeID int64) (*seatMap, error) {
	showtime, err := l.api.GetShowtime(ctx, showtimeID)
	if err != nil {
		return nil, backendError(err, ErrShowtimeNotFound)
	}
	if showtime.Room == nil {
		return nil, ErrShowtimeIncomplete
	}

	occupied, err := l.api.GetOccupiedSeats(ctx, showtimeID)
	if err != nil {
		return nil, backendError(err, ErrShowtimeNotFound)
	}

	return &seatMap{
		showtime: showtime,
		rows:     domain.GenerateSeatMap(showtime.Room.NumberSeats, occupied, l.seatsPerRow),
	}, nil
}

func (l seatMapLoader) findSelection(ctx context.Context, id string) (*entity.SeatSelection, error) {
	selectionID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid selection ID %q", ErrValidation, id)
	}

	selection, err := l.selections.FindByID(ctx, selectionID)
	if err != nil {
		return nil, fmt.Errorf("find selection: %w", err)
	}
	if selection == nil {
		return nil, ErrSelectionNotFound
	}
	return selection, nil
}

// missingSeats returns the numbers of wanted that are not in selection.
func missingSeats(wanted []int, selection []entity.Seat) []int {
	kept := make(map[int]bool, len(selection))
	for _, s := range selection {
		kept[s.Number] = true
	}

	var missing []int
	for _, n := range wanted {
		if !kept[n] {
			missing = append(missing, n)
		}
	}
	return missing
}

func priceOf(showtime *entity.Showtime) decimal.Decimal {
	if showtime.Price == nil {
		return decimal.Zero
	}
	return *showtime.Price
}

type seatingService struct {
	loader seatMapLoader
	log    *zap.Logger
}

func NewSeatingService(api backend.API, selections repository.SelectionRepository, seatsPerRow int, log *zap.Logger) SeatingService {
	return &seatingService{
		loader: seatMapLoader{api: api, selections: selections, seatsPerRow: seatsPerRow},
		log:    log.With(zap.String("service", "seating")),
	}
}

func (s *seatingService) GetSeatMap(ctx context.Context, showtimeID int64, selectionID string) (*response.SeatMapResponse, error) {
	if showtimeID <= 0 {
		return nil, fmt.Errorf("%w: session ID must be greater than zero", ErrValidation)
	}

	var draft *entity.SeatSelection
	if selectionID != "" {
		var err error
		if draft, err = s.loader.findSelection(ctx, selectionID); err != nil {
			return nil, err
		}
		if draft.ShowtimeID != showtimeID {
			return nil, fmt.Errorf("%w: selection belongs to session %d", ErrValidation, draft.ShowtimeID)
		}
	}

	sm, err := s.loader.load(ctx, showtimeID)
	if err != nil {
		s.log.Warn("Failed to load seat map", zap.Int64("session_cinema_id", showtimeID), zap.Error(err))
		return nil, err
	}

	if draft != nil {
		domain.ApplySelection(sm.rows, draft.SeatNumbers)
	}

	resp := response.SeatMapToResponse(sm.showtime, sm.rows, s.loader.seatsPerRow)
	if draft != nil {
		resp.SelectionID = draft.ID.String()
	}
	return resp, nil
}
