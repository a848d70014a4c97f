package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const DefaultEstimatedDelivery = "30-45 minutes"

var (
	DefaultFreeDeliveryThreshold = decimal.NewFromInt(50)
	DefaultDeliveryFee           = decimal.RequireFromString("4.99")
)

// Pricing turns priced lines into order totals.
type Pricing struct {
	Currency              currency.Unit
	FreeDeliveryThreshold decimal.Decimal
	DeliveryFee           decimal.Decimal
	EstimatedDelivery     string
}

func DefaultPricing(unit currency.Unit) Pricing {
	return Pricing{
		Currency:              unit,
		FreeDeliveryThreshold: DefaultFreeDeliveryThreshold,
		DeliveryFee:           DefaultDeliveryFee,
		EstimatedDelivery:     DefaultEstimatedDelivery,
	}
}

type PricedLine struct {
	Price    Money
	Quantity int
}

type Quote struct {
	Subtotal    Money
	DeliveryFee Money
	Discount    Money
	Total       Money
}

func (p Pricing) Quote(lines []PricedLine) Quote {
	subtotal := ZeroMoney(p.Currency)
	for _, line := range lines {
		subtotal = subtotal.Add(line.Price.Mul(line.Quantity))
	}

	fee := NewMoney(p.DeliveryFee, p.Currency)
	if subtotal.GreaterThanOrEqual(p.FreeDeliveryThreshold) {
		fee = ZeroMoney(p.Currency)
	}

	// discounts are not offered yet
	discount := ZeroMoney(p.Currency)

	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Discount:    discount,
		Total:       subtotal.Add(fee).Sub(discount),
	}
}
