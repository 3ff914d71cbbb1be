package backend

import (
	"context"
	"fmt"
	"time"

	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/pkg/cache"

	"go.uber.org/zap"
)

// CachedAPI serves catalog and showtime reads from a cache for a short TTL.
// Occupancy and bookings always go to the backend.
type CachedAPI struct {
	API
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedAPI(api API, c cache.Cache, ttl time.Duration, log *zap.Logger) *CachedAPI {
	return &CachedAPI{
		API:   api,
		cache: c,
		ttl:   ttl,
		log:   log.With(zap.String("client", "backend-cache")),
	}
}

func (c *CachedAPI) ListShowtimes(ctx context.Context, filter ShowtimeFilter) ([]entity.Showtime, error) {
	key := fmt.Sprintf("showtimes:m=%d:t=%d:d=%s", filter.MovieID, filter.TheaterID, filter.Date)
	return readThrough(ctx, c, key, func() ([]entity.Showtime, error) {
		return c.API.ListShowtimes(ctx, filter)
	})
}

func (c *CachedAPI) GetShowtime(ctx context.Context, id int64) (*entity.Showtime, error) {
	return readThrough(ctx, c, fmt.Sprintf("showtime:%d", id), func() (*entity.Showtime, error) {
		return c.API.GetShowtime(ctx, id)
	})
}

func (c *CachedAPI) ListMovies(ctx context.Context) ([]entity.Movie, error) {
	return readThrough(ctx, c, "movies", func() ([]entity.Movie, error) {
		return c.API.ListMovies(ctx)
	})
}

func (c *CachedAPI) GetMovie(ctx context.Context, id int64) (*entity.Movie, error) {
	return readThrough(ctx, c, fmt.Sprintf("movie:%d", id), func() (*entity.Movie, error) {
		return c.API.GetMovie(ctx, id)
	})
}

func (c *CachedAPI) ListTheaters(ctx context.Context) ([]entity.Theater, error) {
	return readThrough(ctx, c, "theaters", func() ([]entity.Theater, error) {
		return c.API.ListTheaters(ctx)
	})
}

// readThrough returns the cached value for key, or loads and stores it.
// Cache failures are logged and never fail the read.
func readThrough[T any](ctx context.Context, c *CachedAPI, key string, load func() (T, error)) (T, error) {
	var cached T
	hit, err := c.cache.Get(ctx, key, &cached)
	if err != nil {
		c.log.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if err := c.cache.Set(ctx, key, value, c.ttl); err != nil {
		c.log.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}
