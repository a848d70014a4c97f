package domain_test

import (
	"testing"

	"github.com/nikolayk812/tuffpuff/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func TestPricingQuote(t *testing.T) {
	pricing := domain.DefaultPricing(currency.USD)

	usd := func(s string) domain.Money {
		return domain.NewMoney(decimal.RequireFromString(s), currency.USD)
	}

	tests := []struct {
		name      string
		lines     []domain.PricedLine
		wantSub   string
		wantFee   string
		wantTotal string
	}{
		{
			name:      "empty cart: fee applies",
			wantSub:   "0",
			wantFee:   "4.99",
			wantTotal: "4.99",
		},
		{
			name:      "below threshold: fee applies",
			lines:     []domain.PricedLine{{Price: usd("10.00"), Quantity: 2}},
			wantSub:   "20",
			wantFee:   "4.99",
			wantTotal: "24.99",
		},
		{
			name:      "just below threshold: fee applies",
			lines:     []domain.PricedLine{{Price: usd("49.99"), Quantity: 1}},
			wantSub:   "49.99",
			wantFee:   "4.99",
			wantTotal: "54.98",
		},
		{
			name:      "exactly threshold: free delivery",
			lines:     []domain.PricedLine{{Price: usd("25.00"), Quantity: 2}},
			wantSub:   "50",
			wantFee:   "0",
			wantTotal: "50",
		},
		{
			name: "several lines above threshold: free delivery",
			lines: []domain.PricedLine{
				{Price: usd("12.50"), Quantity: 3},
				{Price: usd("3.33"), Quantity: 5},
			},
			wantSub:   "54.15",
			wantFee:   "0",
			wantTotal: "54.15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := pricing.Quote(tt.lines)

			assertAmount(t, tt.wantSub, quote.Subtotal)
			assertAmount(t, tt.wantFee, quote.DeliveryFee)
			assertAmount(t, "0", quote.Discount)
			assertAmount(t, tt.wantTotal, quote.Total)

			// total = subtotal + fee - discount
			assert.True(t, quote.Total.Amount.Equal(
				quote.Subtotal.Amount.Add(quote.DeliveryFee.Amount).Sub(quote.Discount.Amount)))
			assert.Equal(t, "USD", quote.Total.Currency.String())
		})
	}
}

func TestMoneyMismatchPanics(t *testing.T) {
	usd := domain.NewMoney(decimal.NewFromInt(1), currency.USD)
	eur := domain.NewMoney(decimal.NewFromInt(1), currency.EUR)

	assert.Panics(t, func() { usd.Add(eur) })
	assert.False(t, usd.SameCurrency(eur))
	assert.Equal(t, "1.00 USD", usd.String())
}

func assertAmount(t *testing.T, want string, got domain.Money) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got.Amount), "want %s, got %s", want, got.Amount)
}
