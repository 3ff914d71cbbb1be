package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/internal/wire"
	"cinema-ticketing/pkg/database"
	"cinema-ticketing/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	config, err := utils.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using production logger.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("version", Version),
		zap.String("port", config.App.Port),
		zap.String("timezone", config.App.Timezone),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		logger.Error("Failed to prepare database", zap.Error(err))
		return err
	}

	logger.Info("Database connected successfully")

	api, closeCache := newBackendAPI(config, logger)
	defer closeCache()

	publisher := newPublisher(config, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close publisher", zap.Error(err))
		}
	}()

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, api, publisher, config, logger)

	go purgeSelections(ctx, app.Service.Selection, config.Booking.PurgeEvery, logger)

	return APIServer(ctx, app.Router, config.App.Port, logger)
}

// purgeSelections deletes expired drafts every interval until ctx is done.
func purgeSelections(ctx context.Context, selections usecase.SelectionService, every time.Duration, log *zap.Logger) {
	if every <= 0 {
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := selections.PurgeExpired(ctx)
			if err != nil {
				log.Warn("Failed to purge expired selections", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Debug("Purged expired selections", zap.Int64("count", n))
			}
		}
	}
}
