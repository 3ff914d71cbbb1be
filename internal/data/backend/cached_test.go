package backend

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cinema-ticketing/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryCache struct {
	values  map[string][]byte
	failGet bool
}

func (m *memoryCache) Get(_ context.Context, key string, dst any) (bool, error) {
	if m.failGet {
		return false, errors.New("cache down")
	}
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	return nil
}

type countingAPI struct {
	API
	showtimeCalls int
	theaterCalls  int
	occupiedCalls int
	err           error
}

func (a *countingAPI) GetShowtime(_ context.Context, id int64) (*entity.Showtime, error) {
	a.showtimeCalls++
	if a.err != nil {
		return nil, a.err
	}
	return &entity.Showtime{
		ID:        id,
		StartTime: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC),
		Quality:   entity.QualityHD,
		Room:      &entity.ScreeningRoom{ID: 2, NumberSeats: 25},
	}, nil
}

func (a *countingAPI) ListTheaters(context.Context) ([]entity.Theater, error) {
	a.theaterCalls++
	return []entity.Theater{{ID: 1, Name: "Rex"}}, a.err
}

func (a *countingAPI) GetOccupiedSeats(context.Context, int64) ([]int, error) {
	a.occupiedCalls++
	return []int{3}, nil
}

func TestCachedAPIReadThrough(t *testing.T) {
	api := &countingAPI{}
	cached := NewCachedAPI(api, &memoryCache{values: map[string][]byte{}}, time.Minute, zap.NewNop())
	ctx := context.Background()

	first, err := cached.GetShowtime(ctx, 7)
	require.NoError(t, err)
	second, err := cached.GetShowtime(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, 1, api.showtimeCalls)
	assert.Equal(t, first.Room.NumberSeats, second.Room.NumberSeats)
	assert.True(t, first.StartTime.Equal(second.StartTime))

	_, err = cached.ListTheaters(ctx)
	require.NoError(t, err)
	_, err = cached.ListTheaters(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.theaterCalls)
}

func TestCachedAPIBypassesOccupancy(t *testing.T) {
	api := &countingAPI{}
	cached := NewCachedAPI(api, &memoryCache{values: map[string][]byte{}}, time.Minute, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := cached.GetOccupiedSeats(context.Background(), 7)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, api.occupiedCalls)
}

func TestCachedAPIDegradesOnCacheFailure(t *testing.T) {
	api := &countingAPI{}
	cached := NewCachedAPI(api, &memoryCache{values: map[string][]byte{}, failGet: true}, time.Minute, zap.NewNop())

	_, err := cached.GetShowtime(context.Background(), 7)
	require.NoError(t, err)
	_, err = cached.GetShowtime(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, api.showtimeCalls)
}

func TestCachedAPIDoesNotStoreErrors(t *testing.T) {
	api := &countingAPI{err: errors.New("backend down")}
	store := &memoryCache{values: map[string][]byte{}}
	cached := NewCachedAPI(api, store, time.Minute, zap.NewNop())

	_, err := cached.GetShowtime(context.Background(), 7)
	require.Error(t, err)
	assert.Empty(t, store.values)
}
