package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cinema-ticketing/internal/data/backend"
	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/internal/domain"
	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/pkg/queue"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

type BookingService interface {
	// Preview reports what a submission of the selection would send.
	Preview(ctx context.Context, selectionID string, userID int64, guestEmail string) (*response.BookingPreviewResponse, error)
	Submit(ctx context.Context, selectionID string, userID int64, req *request.SubmitBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo      repository.SelectionRepository
	api       backend.API
	loader    seatMapLoader
	publisher queue.Publisher
	ttl       time.Duration
	now       func() time.Time
	log       *zap.Logger
}

func NewBookingService(repo repository.SelectionRepository, api backend.API, publisher queue.Publisher, config utils.BookingConfig, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		api:       api,
		loader:    seatMapLoader{api: api, selections: repo, seatsPerRow: config.SeatsPerRow},
		publisher: publisher,
		ttl:       config.SelectionTTL,
		now:       time.Now,
		log:       log.With(zap.String("service", "booking")),
	}
}

// checkedSelection is a draft re-read against a fresh occupancy snapshot.
type checkedSelection struct {
	draft     *entity.SeatSelection
	seatMap   *seatMap
	selection []entity.Seat
	taken     []int
}

func (s *bookingService) check(ctx context.Context, selectionID string) (*checkedSelection, error) {
	draft, err := s.loader.findSelection(ctx, selectionID)
	if err != nil {
		return nil, err
	}

	sm, err := s.loader.load(ctx, draft.ShowtimeID)
	if err != nil {
		return nil, err
	}

	selection := domain.ApplySelection(sm.rows, draft.SeatNumbers)
	return &checkedSelection{
		draft:     draft,
		seatMap:   sm,
		selection: selection,
		taken:     missingSeats(draft.SeatNumbers, selection),
	}, nil
}

func (s *bookingService) Preview(ctx context.Context, selectionID string, userID int64, guestEmail string) (*response.BookingPreviewResponse, error) {
	checked, err := s.check(ctx, selectionID)
	if err != nil {
		return nil, err
	}

	identity := domain.Identity{UserID: userID, GuestEmail: strings.TrimSpace(guestEmail)}
	return &response.BookingPreviewResponse{
		SelectionID:         checked.draft.ID.String(),
		ShowtimeID:          checked.draft.ShowtimeID,
		SeatNumbers:         domain.SeatNumbers(checked.selection),
		NumberSeats:         len(checked.selection),
		NumberSeatsDisabled: domain.CountDisabled(checked.selection),
		TotalPrice:          domain.ComputeTotalPrice(checked.selection, priceOf(checked.seatMap.showtime)),
		CanSubmit:           domain.CanSubmit(checked.selection, identity) && checked.seatMap.showtime.Price != nil,
		UnavailableSeats:    checked.taken,
	}, nil
}

func (s *bookingService) Submit(ctx context.Context, selectionID string, userID int64, req *request.SubmitBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit booking validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	checked, err := s.check(ctx, selectionID)
	if err != nil {
		return nil, err
	}
	draft, showtime := checked.draft, checked.seatMap.showtime

	if len(checked.taken) > 0 {
		// keep what is still free so the user only has to replace the lost seats
		numbers := domain.SeatNumbers(checked.selection)
		if err := s.repo.UpdateSeats(ctx, draft.ID, numbers, s.now().UTC().Add(s.ttl)); err != nil {
			if errors.Is(err, repository.ErrSelectionNotFound) {
				return nil, ErrSelectionNotFound
			}
			s.log.Warn("Failed to prune taken seats", zap.String("selection_id", draft.ID.String()), zap.Error(err))
		}
		return nil, &SeatsTakenError{Seats: checked.taken}
	}

	identity := domain.Identity{UserID: userID, GuestEmail: strings.TrimSpace(req.GuestEmail)}
	if !domain.CanSubmit(checked.selection, identity) {
		return nil, ErrCannotSubmit
	}
	if showtime.Price == nil {
		return nil, ErrShowtimeIncomplete
	}

	dto := domain.BuildSubmission(checked.selection, showtime.ID, userID, *showtime.Price)
	if !identity.LoggedIn() {
		dto.GuestEmail = identity.GuestEmail
	}

	booking, err := s.api.CreateBooking(ctx, dto)
	if err != nil {
		s.log.Error("Booking submission failed",
			zap.Error(err),
			zap.String("selection_id", draft.ID.String()),
			zap.Int64("session_cinema_id", showtime.ID),
			zap.Int("seat_count", dto.NumberSeats),
		)
		if backend.IsDecodeError(err) {
			// the 2xx already created the booking, so the draft must not be resubmitted
			s.deleteDraft(ctx, draft)
			return nil, fmt.Errorf("%w: %w", ErrBookingUnconfirmed, err)
		}
		if backend.IsConflict(err) {
			return nil, fmt.Errorf("%w: %w", ErrSeatsTaken, err)
		}
		return nil, backendError(err, ErrShowtimeNotFound)
	}

	s.deleteDraft(ctx, draft)

	if booking.Showtime == nil {
		booking.Showtime = showtime
	}

	s.log.Info("Booking submitted",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("user_id", userID),
		zap.Int64("session_cinema_id", showtime.ID),
		zap.Int("seat_count", dto.NumberSeats),
		zap.String("total_price", booking.TotalPrice.String()),
	)

	s.publishSubmitted(ctx, booking, dto)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) deleteDraft(ctx context.Context, draft *entity.SeatSelection) {
	if err := s.repo.Delete(ctx, draft.ID); err != nil {
		s.log.Warn("Failed to delete submitted selection", zap.String("selection_id", draft.ID.String()), zap.Error(err))
	}
}

// publishSubmitted notifies downstream consumers. Failures are logged only:
// the booking already exists in the backend.
func (s *bookingService) publishSubmitted(ctx context.Context, booking *entity.Booking, dto entity.CreateBookingDto) {
	numbers := make([]int, len(dto.ReservedSeats))
	for i, rs := range dto.ReservedSeats {
		numbers[i] = rs.SeatNumber
	}

	event := queue.BookingSubmittedEvent{
		BookingID:           booking.ID,
		UserID:              dto.UserID,
		GuestEmail:          dto.GuestEmail,
		SessionCinemaID:     dto.SessionCinemaID,
		StartsAt:            booking.Showtime.StartTime,
		SeatNumbers:         numbers,
		NumberSeatsDisabled: dto.NumberSeatsDisabled,
		TotalPrice:          booking.TotalPrice,
		Status:              string(booking.Status),
		SubmittedAt:         s.now().UTC(),
	}
	if booking.Showtime.Movie != nil {
		event.MovieTitle = booking.Showtime.Movie.Title
	}
	if theater := booking.Showtime.Theater(); theater != nil {
		event.TheaterName = theater.Name
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.PublishBookingSubmitted(pubCtx, event); err != nil {
		s.log.Warn("Failed to publish booking event", zap.Int64("booking_id", booking.ID), zap.Error(err))
	}
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user ID must be greater than zero", ErrValidation)
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	bookings, err := s.api.ListUserBookings(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.Int64("user_id", userID))
		return nil, backendError(err, nil)
	}

	page := utils.Paginate(bookings, req.Page, req.Limit())
	data := make([]response.BookingResponse, len(page))
	for i := range page {
		data[i] = response.BookingToResponse(&page[i])
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), int64(len(bookings))), nil
}
