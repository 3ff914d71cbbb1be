package usecase

import (
	"cinema-ticketing/internal/data/backend"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/pkg/queue"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog   CatalogService
	Showtime  ShowtimeService
	Seating   SeatingService
	Selection SelectionService
	Booking   BookingService
}

func NewService(repo *repository.Repository, api backend.API, publisher queue.Publisher, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Catalog:   NewCatalogService(api, log),
		Showtime:  NewShowtimeService(api, config.App.Location, log),
		Seating:   NewSeatingService(api, repo.Selection, config.Booking.SeatsPerRow, log),
		Selection: NewSelectionService(repo.Selection, api, config.Booking, log),
		Booking:   NewBookingService(repo.Selection, api, publisher, config.Booking, log),
	}
}
