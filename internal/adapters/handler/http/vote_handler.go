package http

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vncsmyrnk/barvote/internal/core/domain"
	"github.com/vncsmyrnk/barvote/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
	log     *zap.Logger
}

func NewVoteHandler(service ports.VoteService, log *zap.Logger) *VoteHandler {
	return &VoteHandler{
		service: service,
		log:     log,
	}
}

type castVoteRequest struct {
	BarID string `json:"bar_id" validate:"required,uuid"`
}

// Current returns today's tally board.
func (h *VoteHandler) Current(w http.ResponseWriter, r *http.Request) {
	tally, err := h.service.Tally(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"votes": tally})
}

func (h *VoteHandler) MyVotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, r, h.log, domain.ErrUnauthenticated)
		return
	}

	votes, err := h.service.MyVotes(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"votes": votes})
}

func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, r, h.log, domain.ErrUnauthenticated)
		return
	}

	var req castVoteRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	vote, err := h.service.Cast(r.Context(), ports.VoteInput{
		UserID: userID,
		BarID:  uuid.MustParse(req.BarID),
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"vote": vote})
}

func (h *VoteHandler) Retract(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, r, h.log, domain.ErrUnauthenticated)
		return
	}

	barID, err := pathID(r, "barId", "bar")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if _, err := h.service.Retract(r.Context(), ports.VoteInput{UserID: userID, BarID: barID}); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "Vote removed successfully")
}
