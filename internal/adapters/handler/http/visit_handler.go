package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vncsmyrnk/barvote/internal/core/domain"
	"github.com/vncsmyrnk/barvote/internal/core/ports"
)

type VisitHandler struct {
	service ports.VisitService
	log     *zap.Logger
}

func NewVisitHandler(service ports.VisitService, log *zap.Logger) *VisitHandler {
	return &VisitHandler{
		service: service,
		log:     log,
	}
}

type recordVisitRequest struct {
	BarID     string  `json:"bar_id" validate:"required,uuid"`
	VisitDate string  `json:"visit_date" validate:"required"`
	Notes     *string `json:"notes" validate:"omitempty,max=5000"`
}

type updateNotesRequest struct {
	Notes *string `json:"notes" validate:"omitempty,max=5000"`
}

func (h *VisitHandler) List(w http.ResponseWriter, r *http.Request) {
	visits, err := h.service.ListAll(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"visits": visits})
}

// ListByRange expects inclusive start and end query parameters as YYYY-MM-DD.
func (h *VisitHandler) ListByRange(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Get("start") == "" || query.Get("end") == "" {
		writeError(w, r, h.log, fmt.Errorf("%w: start and end dates are required", domain.ErrInvalidInput))
		return
	}

	start, err := domain.ParseDate(query.Get("start"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	end, err := domain.ParseDate(query.Get("end"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	visits, err := h.service.ListByRange(r.Context(), start, end)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"visits": visits})
}

func (h *VisitHandler) Record(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, r, h.log, domain.ErrUnauthenticated)
		return
	}

	var req recordVisitRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	visitDate, err := domain.ParseDate(req.VisitDate)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	visit, err := h.service.Record(r.Context(), ports.RecordVisitInput{
		BarID:     uuid.MustParse(req.BarID),
		VisitDate: visitDate,
		Notes:     req.Notes,
		CreatedBy: userID,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"visit": visit})
}

func (h *VisitHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "visit")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req updateNotesRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	visit, err := h.service.UpdateNotes(r.Context(), id, req.Notes)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"visit": visit})
}

func (h *VisitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "visit")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if _, err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "Visit deleted successfully")
}
