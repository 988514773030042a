package service

import (
	"context"
	"testing"

	"github.com/a2sh3r/groupmart/internal/apperrors"
	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceService_GetUserBalance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})

	balance, err := f.balances.GetUserBalance(ctx, "unknown")
	require.NoError(t, err)
	assert.True(t, balance.Current.IsZero())

	var users int
	f.core.state.view(func(doc *models.Document) { users = len(doc.Users) })
	assert.Zero(t, users)

	f.settle(t, "100", "2023", "t.me/+aaaaa1")
	balance, err = f.balances.GetUserBalance(ctx, "100")
	require.NoError(t, err)
	assert.True(t, balance.Current.Equal(decimal.NewFromInt(6)))
	assert.True(t, balance.Credited.Equal(decimal.NewFromInt(6)))
	assert.True(t, balance.Withdrawn.IsZero())
}

func TestBalanceService_Price(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})

	_, err := f.processor.Handle(ctx, approver, models.Command{
		Kind: models.CmdSetCustomPrice, UserID: "100", Category: "2023", Price: decimal.NewFromInt(7),
	})
	require.NoError(t, err)
	_, err = f.processor.Handle(ctx, approver, models.Command{
		Kind: models.CmdSetCustomPrice, UserID: "100", Category: "vip", Price: decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		user     string
		category string
		want     int64
		wantErr  error
	}{
		{name: "индивидуальная цена", user: "100", category: "2023", want: 7},
		{name: "общая цена", user: "200", category: "2023", want: 6},
		{name: "категория только у продавца", user: "100", category: "vip", want: 20},
		{name: "нет в таблицах", user: "200", category: "vip", wantErr: apperrors.ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				price, err := f.balances.Price(ctx, tt.user, tt.category)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					continue
				}
				require.NoError(t, err)
				assert.True(t, price.Equal(decimal.NewFromInt(tt.want)))
			}
		})
	}

	list, err := f.balances.PriceList(ctx, "100")
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "2016-2022", list[0].Category)
	assert.Equal(t, "2023", list[1].Category)
	assert.True(t, list[1].Custom)
	assert.Equal(t, "vip", list[3].Category)
}

func TestBalanceService_SetCurrency(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{INRRate: decimal.NewFromInt(85)})
	f.settle(t, "100", "2023", "t.me/+aaaaa1")

	balance, err := f.balances.GetUserBalance(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, models.CurrencyUSD, balance.Display.Currency)
	assert.True(t, balance.Display.Amount.Equal(decimal.NewFromInt(6)))

	tests := []struct {
		name     string
		user     string
		currency string
		want     models.Currency
		wantErr  error
	}{
		{name: "рупии", user: "100", currency: "INR", want: models.CurrencyINR},
		{name: "регистр не важен", user: "100", currency: " usd ", want: models.CurrencyUSD},
		{name: "неизвестная валюта", user: "100", currency: "EUR", wantErr: apperrors.ErrInvalidCurrency},
		{name: "пустой пользователь", user: "", currency: "INR", wantErr: apperrors.ErrInvalidUserID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.balances.SetCurrency(ctx, tt.user, tt.currency)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Display.Currency)
		})
	}

	_, err = f.balances.SetCurrency(ctx, "100", "INR")
	require.NoError(t, err)

	balance, err = f.balances.GetUserBalance(ctx, "100")
	require.NoError(t, err)
	assert.True(t, balance.Current.Equal(decimal.NewFromInt(6)), "ledger stays in the base unit")
	assert.Equal(t, models.CurrencyINR, balance.Display.Currency)
	assert.True(t, balance.Display.Amount.Equal(decimal.NewFromInt(510)))

	list, err := f.balances.PriceList(ctx, "100")
	require.NoError(t, err)
	require.NotEmpty(t, list)
	for _, entry := range list {
		assert.Equal(t, models.CurrencyINR, entry.Display.Currency)
		assert.True(t, entry.Display.Amount.Equal(entry.Price.Mul(decimal.NewFromInt(85))), entry.Category)
	}

	other, err := f.balances.PriceList(ctx, "200")
	require.NoError(t, err)
	assert.Equal(t, models.CurrencyUSD, other[0].Display.Currency)
	assert.True(t, other[0].Display.Amount.Equal(other[0].Price))
}
