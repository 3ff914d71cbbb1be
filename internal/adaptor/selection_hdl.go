package adaptor

import (
	"net/http"

	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SelectionHandler struct {
	service usecase.SelectionService
	log     *zap.Logger
}

func NewSelectionHandler(service usecase.SelectionService, log *zap.Logger) *SelectionHandler {
	return &SelectionHandler{
		service: service,
		log:     log.With(zap.String("handler", "selection")),
	}
}

// Start handles POST /api/selections
func (h *SelectionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartSelectionRequest
	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	selection, err := h.service.Start(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "start selection")
		return
	}

	utils.ResponseCreated(w, "success", selection)
}

// Get handles GET /api/selections/{id}
func (h *SelectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	selection, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get selection")
		return
	}

	utils.ResponseSuccess(w, "success", selection)
}

// Toggle handles POST /api/selections/{id}/toggle
func (h *SelectionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req request.ToggleSeatRequest
	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	selection, err := h.service.Toggle(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "toggle seat")
		return
	}

	utils.ResponseSuccess(w, "success", selection)
}

// Clear handles DELETE /api/selections/{id}
func (h *SelectionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "clear selection")
		return
	}

	utils.ResponseSuccess(w, "Selection cleared", nil)
}
