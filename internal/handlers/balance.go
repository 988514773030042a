package handlers

import (
	"net/http"

	"github.com/a2sh3r/groupmart/internal/models"
)

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	balance, err := h.balanceService.GetUserBalance(r.Context(), actor.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

func (h *Handler) GetPrices(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	prices, err := h.balanceService.PriceList(r.Context(), actor.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prices)
}

type currencyRequest struct {
	Currency string `json:"currency"`
}

func (h *Handler) SetCurrency(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req currencyRequest
	if !decode(w, r, &req) {
		return
	}

	balance, err := h.balanceService.SetCurrency(r.Context(), actor.UserID, req.Currency)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req models.WithdrawalRequest
	if !decode(w, r, &req) {
		return
	}

	record, err := h.withdrawalService.RequestWithdrawal(r.Context(), actor.UserID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *Handler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	withdrawals, err := h.withdrawalService.History(r.Context(), actor.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	if len(withdrawals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, withdrawals)
}
