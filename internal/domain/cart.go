package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartLine struct {
	ProductID uuid.UUID
	Quantity  int
}

type CartItem struct {
	Product  Product
	Quantity int
}

// Cart is a priced preview, it is never persisted.
type Cart struct {
	Items []CartItem
	Quote
}

// DashboardStats revenue excludes cancelled orders and is expressed in the
// store currency.
type DashboardStats struct {
	TotalOrders    int64
	TotalUsers     int64
	TotalProducts  int64
	TotalRevenue   decimal.Decimal
	RecentOrders   []Order
	OrdersByStatus map[OrderStatus]int64
}
