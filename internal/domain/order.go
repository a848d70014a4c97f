package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order totals are fixed at checkout: TotalAmount is the sum of item
// price*quantity and FinalAmount = TotalAmount + DeliveryFee - Discount.
type Order struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	User              *User
	AddressID         uuid.UUID
	Address           Address
	Items             []OrderItem
	TotalAmount       Money
	DeliveryFee       Money
	Discount          Money
	FinalAmount       Money
	DeliveryNotes     string
	Status            OrderStatus
	EstimatedDelivery string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem.Price is the unit price captured at order time, later catalog
// edits do not change it.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Product   Product
	Quantity  int
	Price     Money
}

func (i OrderItem) LineTotal() Money {
	return i.Price.Mul(i.Quantity)
}
