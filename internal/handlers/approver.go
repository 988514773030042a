package handlers

import (
	"net/http"

	"github.com/a2sh3r/groupmart/internal/models"
)

// EventIDHeader carries the transport delivery id when the body has none.
const EventIDHeader = "X-Event-ID"

func (h *Handler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var cmd models.Command
	if !decode(w, r, &cmd) {
		return
	}
	if cmd.EventID == "" {
		cmd.EventID = r.Header.Get(EventIDHeader)
	}

	res, err := h.processor.Handle(r.Context(), actor, cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) GetPending(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	view, err := h.processor.Pending(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
