package repository

import (
	"cinema-ticketing/pkg/database"

	"go.uber.org/zap"
)

// Repository groups the tables this service owns. Showtimes, movies and
// bookings live in the backend and are reached through backend.API.
type Repository struct {
	Selection SelectionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Selection: NewSelectionRepository(db, log),
	}
}
