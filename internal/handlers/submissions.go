package handlers

import (
	"net/http"

	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/go-chi/chi/v5"
)

type draftRequest struct {
	Category string                `json:"category"`
	Kind     models.SubmissionKind `json:"kind"`
}

type draftLinkRequest struct {
	Link string `json:"link"`
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req models.SubmitRequest
	if !decode(w, r, &req) {
		return
	}

	sub, err := h.submissionService.Submit(r.Context(), actor.UserID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	list, err := h.submissionService.ListSubmissions(r.Context(), actor.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) ConfirmTransfer(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	sub, err := h.submissionService.ConfirmTransfer(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h *Handler) StartDraft(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req draftRequest
	if !decode(w, r, &req) {
		return
	}

	draft, err := h.submissionService.StartDraft(r.Context(), actor.UserID, req.Category, req.Kind)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, draft)
}

func (h *Handler) AddDraftLink(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req draftLinkRequest
	if !decode(w, r, &req) {
		return
	}

	draft, err := h.submissionService.AddDraftLink(r.Context(), actor.UserID, req.Link)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *Handler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	sub, err := h.submissionService.SubmitDraft(r.Context(), actor.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (h *Handler) CancelDraft(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	if err := h.submissionService.CancelDraft(r.Context(), actor.UserID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
