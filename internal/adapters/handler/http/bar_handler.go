package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vncsmyrnk/barvote/internal/core/domain"
	"github.com/vncsmyrnk/barvote/internal/core/ports"
)

type BarHandler struct {
	service ports.BarService
	log     *zap.Logger
}

func NewBarHandler(service ports.BarService, log *zap.Logger) *BarHandler {
	return &BarHandler{
		service: service,
		log:     log,
	}
}

type barRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Address     *string `json:"address" validate:"omitempty,max=1000"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

func (h *BarHandler) List(w http.ResponseWriter, r *http.Request) {
	bars, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bars": bars})
}

func (h *BarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "bar")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	bar, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bar": bar})
}

func (h *BarHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, r, h.log, domain.ErrUnauthenticated)
		return
	}

	var req barRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	bar, err := h.service.Create(r.Context(), ports.CreateBarInput{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		CreatedBy:   userID,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"bar": bar})
}

func (h *BarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "bar")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req barRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	bar, err := h.service.Update(r.Context(), ports.UpdateBarInput{
		ID:          id,
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bar": bar})
}

func (h *BarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "bar")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if _, err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "Bar deleted successfully")
}

func pathID(r *http.Request, param, entity string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s id", domain.ErrInvalidInput, entity)
	}
	return id, nil
}
