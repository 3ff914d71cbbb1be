package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinema-ticketing/internal/mocks"
	"cinema-ticketing/pkg/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cachedValue struct {
	Name  string `json:"name"`
	Seats []int  `json:"seats"`
}

func TestRedisCacheGet(t *testing.T) {
	tests := []struct {
		name    string
		cmd     *redis.StringCmd
		wantHit bool
		wantErr bool
		want    cachedValue
	}{
		{
			name:    "hit",
			cmd:     redis.NewStringResult(`{"name":"Rex","seats":[1,2]}`, nil),
			wantHit: true,
			want:    cachedValue{Name: "Rex", Seats: []int{1, 2}},
		},
		{
			name: "miss",
			cmd:  redis.NewStringResult("", redis.Nil),
		},
		{
			name:    "redis failure",
			cmd:     redis.NewStringResult("", errors.New("connection refused")),
			wantErr: true,
		},
		{
			name:    "corrupt value",
			cmd:     redis.NewStringResult(`{"name":`, nil),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.MockRedisClient)
			client.On("Get", mock.Anything, "cinema:theaters").Return(tt.cmd)

			var got cachedValue
			hit, err := cache.NewRedisCache(client, "cinema").Get(context.Background(), "theaters", &got)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantHit, hit)
			assert.Equal(t, tt.want, got)
			client.AssertExpectations(t)
		})
	}
}

func TestRedisCacheSet(t *testing.T) {
	client := new(mocks.MockRedisClient)
	client.On("Set", mock.Anything, "movies", []byte(`{"name":"Dune","seats":null}`), 30*time.Second).
		Return(redis.NewStatusResult("OK", nil))

	err := cache.NewRedisCache(client, "").Set(context.Background(), "movies", cachedValue{Name: "Dune"}, 30*time.Second)

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestNoop(t *testing.T) {
	var c cache.Cache = cache.Noop{}
	require.NoError(t, c.Set(context.Background(), "k", 1, time.Minute))

	var v int
	hit, err := c.Get(context.Background(), "k", &v)
	require.NoError(t, err)
	assert.False(t, hit)
}
