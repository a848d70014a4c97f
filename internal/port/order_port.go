package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/tuffpuff/internal/domain"
)

type OrderRepository interface {
	// GetOrder returns the order with items and address. A non-nil ownerID
	// scopes the lookup, an order owned by someone else is reported as not found.
	GetOrder(ctx context.Context, orderID uuid.UUID, ownerID *uuid.UUID) (domain.Order, error)

	SearchOrders(ctx context.Context, filter domain.OrderFilter) (domain.Page[domain.Order], error)

	InsertOrder(ctx context.Context, order domain.Order) (uuid.UUID, error)

	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error

	OrderStats(ctx context.Context, recent int) (domain.DashboardStats, error)
}
