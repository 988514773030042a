package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a2sh3r/groupmart/internal/apperrors"
	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/middleware"
	"github.com/a2sh3r/groupmart/internal/mocks/service_mocks"
	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func withSeller(req *http.Request, id string) *http.Request {
	return req.WithContext(middleware.WithActor(req.Context(), models.Actor{UserID: id}))
}

func TestHandler_GetBalance(t *testing.T) {
	logger.Log = zap.NewNop()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBalanceService := service_mocks.NewMockBalanceService(ctrl)
	h := &Handler{balanceService: mockBalanceService}

	tests := []struct {
		name           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			mockSetup: func() {
				mockBalanceService.EXPECT().GetUserBalance(gomock.Any(), "100").
					Return(models.Balance{Current: decimal.NewFromInt(6), Credited: decimal.NewFromInt(6), Withdrawn: decimal.Zero}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "service error",
			mockSetup: func() {
				mockBalanceService.EXPECT().GetUserBalance(gomock.Any(), "100").Return(models.Balance{}, errors.New("fail"))
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := withSeller(httptest.NewRequest(http.MethodGet, "/api/balance", nil), "100")
			w := httptest.NewRecorder()
			h.GetBalance(w, req)
			assert.Equal(t, tt.wantStatusCode, w.Code)
		})
	}

	t.Run("no actor", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.GetBalance(w, httptest.NewRequest(http.MethodGet, "/api/balance", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Withdraw(t *testing.T) {
	logger.Log = zap.NewNop()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawalService := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockWithdrawalService}

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "success", body: `{"method":"upi","address":"a@bank","amount":"5"}`, wantStatus: http.StatusCreated},
		{name: "insufficient balance", body: `{"method":"upi","address":"a@bank","amount":"15"}`, err: apperrors.ErrInsufficientFunds, wantStatus: http.StatusPaymentRequired, wantCode: apperrors.CodeInsufficientBalance},
		{name: "bad address", body: `{"method":"upi","address":"nope","amount":"5"}`, err: apperrors.ErrInvalidAddress, wantStatus: http.StatusUnprocessableEntity, wantCode: apperrors.CodeInvalidInput},
		{name: "save failed", body: `{"method":"upi","address":"a@bank","amount":"5"}`, err: apperrors.ErrSaveFailed, wantStatus: http.StatusServiceUnavailable, wantCode: apperrors.CodePersistence},
		{name: "broken json", body: `{`, wantStatus: http.StatusBadRequest, wantCode: apperrors.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.body != `{` {
				mockWithdrawalService.EXPECT().RequestWithdrawal(gomock.Any(), "100", gomock.AssignableToTypeOf(models.WithdrawalRequest{})).
					DoAndReturn(func(_ context.Context, _ string, req models.WithdrawalRequest) (models.WithdrawalRecord, error) {
						assert.Equal(t, models.MethodUPI, req.Method)
						if tt.err != nil {
							return models.WithdrawalRecord{}, tt.err
						}
						return models.WithdrawalRecord{ID: "w1", Amount: req.Amount, Status: models.WithdrawalPending}, nil
					}).Times(1)
			}

			req := withSeller(httptest.NewRequest(http.MethodPost, "/api/withdrawals", bytes.NewBufferString(tt.body)), "100")
			w := httptest.NewRecorder()
			h.Withdraw(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				var resp errorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.wantCode, resp.Error)
			}
		})
	}
}

func TestHandler_GetWithdrawals(t *testing.T) {
	logger.Log = zap.NewNop()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawalService := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockWithdrawalService}

	mockWithdrawalService.EXPECT().History(gomock.Any(), "100").Return(nil, nil).Times(1)
	w := httptest.NewRecorder()
	h.GetWithdrawals(w, withSeller(httptest.NewRequest(http.MethodGet, "/api/withdrawals", nil), "100"))
	assert.Equal(t, http.StatusNoContent, w.Code)

	mockWithdrawalService.EXPECT().History(gomock.Any(), "100").
		Return([]models.WithdrawalRecord{{ID: "w1", Status: models.WithdrawalApproved}}, nil).Times(1)
	w = httptest.NewRecorder()
	h.GetWithdrawals(w, withSeller(httptest.NewRequest(http.MethodGet, "/api/withdrawals", nil), "100"))
	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.WithdrawalRecord
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "w1", got[0].ID)
}

func TestHandler_GetPrices(t *testing.T) {
	logger.Log = zap.NewNop()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBalanceService := service_mocks.NewMockBalanceService(ctrl)
	h := &Handler{balanceService: mockBalanceService}

	mockBalanceService.EXPECT().PriceList(gomock.Any(), "100").Return([]models.PriceEntry{
		{Category: "2023", Price: decimal.NewFromInt(6)},
	}, nil).Times(1)

	w := httptest.NewRecorder()
	h.GetPrices(w, withSeller(httptest.NewRequest(http.MethodGet, "/api/prices", nil), "100"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"category":"2023","price":"6","custom":false}]`, w.Body.String())
}

func TestHandler_SetCurrency(t *testing.T) {
	logger.Log = zap.NewNop()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBalanceService := service_mocks.NewMockBalanceService(ctrl)
	h := &Handler{balanceService: mockBalanceService}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
		wantDisplay    string
	}{
		{
			name: "рупии",
			body: `{"currency":"INR"}`,
			mockSetup: func() {
				mockBalanceService.EXPECT().SetCurrency(gomock.Any(), "100", "INR").Return(models.Balance{
					Current: decimal.NewFromInt(6),
					Display: models.Money{Currency: models.CurrencyINR, Amount: decimal.NewFromInt(510)},
				}, nil)
			},
			wantStatusCode: http.StatusOK,
			wantDisplay:    "INR",
		},
		{
			name: "неизвестная валюта",
			body: `{"currency":"EUR"}`,
			mockSetup: func() {
				mockBalanceService.EXPECT().SetCurrency(gomock.Any(), "100", "EUR").
					Return(models.Balance{}, apperrors.ErrInvalidCurrency)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "битый json",
			body:           `{"currency":`,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := withSeller(httptest.NewRequest(http.MethodPut, "/api/currency", bytes.NewBufferString(tt.body)), "100")
			w := httptest.NewRecorder()
			h.SetCurrency(w, req)
			assert.Equal(t, tt.wantStatusCode, w.Code)

			if tt.wantDisplay != "" {
				var got models.Balance
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, models.Currency(tt.wantDisplay), got.Display.Currency)
				assert.True(t, got.Display.Amount.Equal(decimal.NewFromInt(510)))
			}
		})
	}
}
