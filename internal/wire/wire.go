package wire

import (
	"net/http"

	"cinema-ticketing/internal/adaptor"
	"cinema-ticketing/internal/data/backend"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/middleware"
	"cinema-ticketing/pkg/queue"
	"cinema-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired dependencies the server needs after startup.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router.
func Wiring(repo *repository.Repository, api backend.API, publisher queue.Publisher, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, api, publisher, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:  setupRouter(handler, config, logger),
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))
	r.Use(middleware.Identity(logger))
	// after Identity so the access log carries the user ID
	r.Use(middleware.Logger(logger))

	wireCatalog(r, handler.Catalog)
	wireSession(r, handler.Showtime, handler.Seat)
	wireSelection(r, handler.Selection, handler.Booking)
	wireBooking(r, handler.Booking)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
