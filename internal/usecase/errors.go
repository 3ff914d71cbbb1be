package usecase

import (
	"context"
	"errors"
	"fmt"

	"cinema-ticketing/internal/data/backend"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/pkg/utils"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrShowtimeNotFound   = errors.New("session not found")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrSelectionNotFound  = errors.New("selection not found or expired")
	ErrSeatNotFound       = errors.New("seat not found")
	ErrShowtimeIncomplete = errors.New("session has no room or price information")
	ErrCannotSubmit       = errors.New("select at least one seat and sign in or provide a valid email")
	ErrSeatsTaken         = errors.New("some selected seats are no longer available")
	ErrBackendUnavailable = errors.New("the booking service is unavailable, please try again")
	// ErrBookingUnconfirmed means the backend accepted the booking but its
	// reply could not be read. Retrying would book the seats twice.
	ErrBookingUnconfirmed = errors.New("the booking was sent but its confirmation could not be read, check your bookings before booking again")
)

// SeatsTakenError lists the seats that were dropped from a selection because
// someone else booked them first.
type SeatsTakenError struct {
	Seats []int
}

func (e *SeatsTakenError) Error() string {
	return fmt.Sprintf("%s: %v", ErrSeatsTaken, e.Seats)
}

func (e *SeatsTakenError) Is(target error) bool {
	return target == ErrSeatsTaken
}

func validationError(errs map[string]string) error {
	return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
}

// selectionWriteError reports a draft that expired or was cleared between
// the read and the write as ErrSelectionNotFound.
func selectionWriteError(op string, err error) error {
	if errors.Is(err, repository.ErrSelectionNotFound) {
		return ErrSelectionNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// backendError translates a backend failure into a service error. A 404 is
// reported as notFound, cancellations pass through untouched.
func backendError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return err
	case notFound != nil && backend.IsNotFound(err):
		return notFound
	default:
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
}
