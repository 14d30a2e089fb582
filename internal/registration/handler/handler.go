// Package handler exposes the registration HTTP surface.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"farmgate/internal/platform/middleware"
	"farmgate/internal/registration/models"
	"farmgate/internal/transport/http/shared"
	dErrors "farmgate/pkg/domain-errors"
)

// maxRequestBody caps multi-plot registration payloads including polygon
// boundaries.
const maxRequestBody = 1 << 20

// Registrar is the service contract the handler depends on.
type Registrar interface {
	Register(ctx context.Context, req *models.RegistrationRequest, operatorID uuid.UUID) (*models.RegistrationResult, error)
}

type Handler struct {
	service Registrar
	logger  *slog.Logger
}

func New(service Registrar, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Routes mounts the registration endpoints on a fresh router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/farmers/register", h.register)
	return r
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	operatorID, err := uuid.Parse(middleware.GetOperatorID(r.Context()))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing operator identity"))
		return
	}

	var req models.RegistrationRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		shared.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed request body"))
		return
	}

	result, err := h.service.Register(r.Context(), &req, operatorID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, result)
}
