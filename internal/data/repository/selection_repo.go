package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrSelectionNotFound is returned by writes that matched no live draft.
var ErrSelectionNotFound = errors.New("seat selection not found or expired")

type SelectionRepository interface {
	Create(ctx context.Context, selection *entity.SeatSelection) error
	// FindByID returns nil, nil when the draft does not exist or has expired.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SeatSelection, error)
	UpdateSeats(ctx context.Context, id uuid.UUID, seatNumbers []int, expiresAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type selectionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSelectionRepository(db database.PgxIface, log *zap.Logger) SelectionRepository {
	return &selectionRepository{
		db:  db,
		log: log.With(zap.String("repository", "selection")),
	}
}

func (r *selectionRepository) Create(ctx context.Context, selection *entity.SeatSelection) error {
	query := `
		INSERT INTO seat_selections (id, session_cinema_id, seat_numbers, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		selection.ID,
		selection.ShowtimeID,
		selection.SeatNumbers,
		selection.ExpiresAt,
		selection.CreatedAt,
		selection.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create seat selection",
			zap.Error(err),
			zap.Int64("session_cinema_id", selection.ShowtimeID),
		)
		return fmt.Errorf("failed to create seat selection: %w", err)
	}

	return nil
}

func (r *selectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SeatSelection, error) {
	query := `
		SELECT id, session_cinema_id, seat_numbers, expires_at, created_at, updated_at
		FROM seat_selections
		WHERE id = $1 AND expires_at > NOW()
	`

	var selection entity.SeatSelection
	err := r.db.QueryRow(ctx, query, id).Scan(
		&selection.ID,
		&selection.ShowtimeID,
		&selection.SeatNumbers,
		&selection.ExpiresAt,
		&selection.CreatedAt,
		&selection.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat selection",
			zap.Error(err),
			zap.String("selection_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find seat selection: %w", err)
	}

	if selection.SeatNumbers == nil {
		selection.SeatNumbers = []int{}
	}
	return &selection, nil
}

func (r *selectionRepository) UpdateSeats(ctx context.Context, id uuid.UUID, seatNumbers []int, expiresAt time.Time) error {
	query := `
		UPDATE seat_selections
		SET seat_numbers = $2, expires_at = $3, updated_at = NOW()
		WHERE id = $1 AND expires_at > NOW()
	`

	result, err := r.db.Exec(ctx, query, id, seatNumbers, expiresAt)
	if err != nil {
		r.log.Error("Failed to update seat selection",
			zap.Error(err),
			zap.String("selection_id", id.String()),
			zap.Int("seat_count", len(seatNumbers)),
		)
		return fmt.Errorf("failed to update seat selection: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSelectionNotFound
	}

	return nil
}

func (r *selectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM seat_selections WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete seat selection",
			zap.Error(err),
			zap.String("selection_id", id.String()),
		)
		return fmt.Errorf("failed to delete seat selection: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSelectionNotFound
	}

	return nil
}

func (r *selectionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM seat_selections WHERE expires_at <= $1`

	result, err := r.db.Exec(ctx, query, now)
	if err != nil {
		r.log.Error("Failed to purge expired seat selections", zap.Error(err))
		return 0, fmt.Errorf("failed to purge expired seat selections: %w", err)
	}

	if n := result.RowsAffected(); n > 0 {
		r.log.Info("Expired seat selections purged", zap.Int64("count", n))
	}
	return result.RowsAffected(), nil
}
