package cmd

import (
	"cinema-ticketing/internal/data/backend"
	"cinema-ticketing/pkg/cache"
	"cinema-ticketing/pkg/queue"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

const cachePrefix = "cinema"

// newBackendAPI builds the backend client behind the read cache. The cache is
// Redis when REDIS_ADDR is set and reachable, a no-op otherwise. The returned
// func releases the cache.
func newBackendAPI(config *utils.Config, log *zap.Logger) (backend.API, func()) {
	api := backend.NewClient(config.Backend, nil, log)
	uncached := backend.NewCachedAPI(api, cache.Noop{}, config.Redis.CacheTTL, log)

	if config.Redis.Addr == "" {
		log.Info("REDIS_ADDR not set, backend cache disabled")
		return uncached, func() {}
	}

	client, err := cache.NewRedisClient(config.Redis)
	if err != nil {
		log.Warn("Redis unavailable, backend cache disabled", zap.Error(err))
		return uncached, func() {}
	}

	log.Info("Backend cache enabled", zap.String("addr", config.Redis.Addr), zap.Duration("ttl", config.Redis.CacheTTL))
	cached := backend.NewCachedAPI(api, cache.NewRedisCache(client, cachePrefix), config.Redis.CacheTTL, log)
	return cached, func() {
		if err := client.Close(); err != nil {
			log.Warn("Failed to close redis client", zap.Error(err))
		}
	}
}

// newPublisher connects to RabbitMQ when RABBITMQ_URL is set. Booking events
// are dropped otherwise.
func newPublisher(config *utils.Config, log *zap.Logger) queue.Publisher {
	if config.RabbitMQ.URL == "" {
		log.Info("RABBITMQ_URL not set, booking events disabled")
		return queue.NopPublisher{}
	}

	publisher, err := queue.NewRabbitPublisher(config.RabbitMQ.URL, config.RabbitMQ.Queue, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, booking events disabled", zap.Error(err))
		return queue.NopPublisher{}
	}

	log.Info("Publishing booking events", zap.String("queue", config.RabbitMQ.Queue))
	return publisher
}

// cliEnv is what the read-only commands need: no database, no broker.
type cliEnv struct {
	config *utils.Config
	log    *zap.Logger
	api    backend.API
	close  func()
}

func newCLIEnv() (*cliEnv, error) {
	config, err := utils.LoadConfig()
	if err != nil {
		return nil, err
	}

	log := zap.NewNop()
	if verbose {
		if log, err = utils.InitLogger("", config.App.Name, true); err != nil {
			return nil, err
		}
	}

	api, closeCache := newBackendAPI(config, log)
	return &cliEnv{
		config: config,
		log:    log,
		api:    api,
		close: func() {
			closeCache()
			_ = log.Sync()
		},
	}, nil
}
