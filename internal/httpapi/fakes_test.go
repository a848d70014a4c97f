package httpapi_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nikolayk812/tuffpuff/internal/auth"
	"github.com/nikolayk812/tuffpuff/internal/checkout"
	"github.com/nikolayk812/tuffpuff/internal/domain"
	"github.com/nikolayk812/tuffpuff/internal/port"
)

// fakeVerifier accepts the tokens it knows about.
type fakeVerifier map[string]domain.Identity

func (f fakeVerifier) Verify(_ context.Context, token string) (domain.Identity, error) {
	identity, ok := f[token]
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return identity, nil
}

// fakeUsers embeds the interface so unexercised methods panic.
type fakeUsers struct {
	port.UserRepository

	bySubject map[string]domain.User
	updated   *domain.UserProfilePatch
}

func (f *fakeUsers) FindByIdentity(_ context.Context, identity domain.Identity) (domain.User, error) {
	user, ok := f.bySubject[identity.Subject]
	if !ok {
		return domain.User{}, domain.NotFound("User")
	}
	return user, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, userID uuid.UUID, patch domain.UserProfilePatch) (domain.User, error) {
	if err := patch.Validate(); err != nil {
		return domain.User{}, err
	}
	f.updated = &patch
	for _, u := range f.bySubject {
		if u.ID == userID {
			if patch.Name != nil {
				u.Name = *patch.Name
			}
			return u, nil
		}
	}
	return domain.User{}, domain.NotFound("User")
}

func (f *fakeUsers) CountUsers(context.Context) (int64, error) {
	return int64(len(f.bySubject)), nil
}

type fakeOrders struct {
	port.OrderRepository

	orders        map[uuid.UUID]domain.Order
	lastFilter    domain.OrderFilter
	updatedStatus domain.OrderStatus
}

func (f *fakeOrders) GetOrder(_ context.Context, orderID uuid.UUID, ownerID *uuid.UUID) (domain.Order, error) {
	order, ok := f.orders[orderID]
	if !ok || (ownerID != nil && order.UserID != *ownerID) {
		return domain.Order{}, domain.NotFound("Order")
	}
	return order, nil
}

func (f *fakeOrders) SearchOrders(_ context.Context, filter domain.OrderFilter) (domain.Page[domain.Order], error) {
	f.lastFilter = filter

	var items []domain.Order
	for _, o := range f.orders {
		if filter.UserID == nil || o.UserID == *filter.UserID {
			items = append(items, o)
		}
	}
	return domain.Page[domain.Order]{Items: items, Pagination: filter.Pagination, Total: int64(len(items))}, nil
}

func (f *fakeOrders) UpdateOrderStatus(_ context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	order, ok := f.orders[orderID]
	if !ok {
		return domain.NotFound("Order")
	}
	order.Status = status
	f.orders[orderID] = order
	f.updatedStatus = status
	return nil
}

func (f *fakeOrders) OrderStats(context.Context, int) (domain.DashboardStats, error) {
	byStatus := map[domain.OrderStatus]int64{}
	for _, o := range f.orders {
		byStatus[o.Status]++
	}
	return domain.DashboardStats{
		TotalOrders:    int64(len(f.orders)),
		OrdersByStatus: byStatus,
	}, nil
}

type fakeProducts struct {
	port.ProductRepository

	products map[uuid.UUID]domain.Product
}

func (f *fakeProducts) GetProduct(_ context.Context, productID uuid.UUID) (domain.Product, error) {
	p, ok := f.products[productID]
	if !ok {
		return domain.Product{}, domain.NotFound("Product")
	}
	return p, nil
}

func (f *fakeProducts) SearchProducts(_ context.Context, filter domain.ProductFilter) (domain.Page[domain.Product], error) {
	var items []domain.Product
	for _, p := range f.products {
		if !filter.OnlyActive || p.IsActive {
			items = append(items, p)
		}
	}
	return domain.Page[domain.Product]{Items: items, Pagination: filter.Pagination, Total: int64(len(items))}, nil
}

func (f *fakeProducts) CountActiveProducts(context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

type fakeAddresses struct {
	port.AddressRepository

	deleteErr error
}

func (f *fakeAddresses) DeleteAddress(context.Context, uuid.UUID, uuid.UUID) error {
	return f.deleteErr
}

type fakeCheckout struct {
	lastUser uuid.UUID
	lastReq  checkout.PlaceOrderRequest
	order    domain.Order
	err      error
}

func (f *fakeCheckout) PlaceOrder(_ context.Context, userID uuid.UUID, req checkout.PlaceOrderRequest) (domain.Order, error) {
	f.lastUser = userID
	f.lastReq = req
	return f.order, f.err
}

func (f *fakeCheckout) QuoteCart(_ context.Context, lines []domain.CartLine) (domain.Cart, error) {
	if len(lines) == 0 {
		return domain.Cart{}, errors.New("empty cart")
	}
	return domain.Cart{Items: []domain.CartItem{{Quantity: lines[0].Quantity}}}, nil
}

type fakeSyncer struct {
	user    domain.User
	created bool
	err     error
}

func (f fakeSyncer) Sync(context.Context, domain.Identity, auth.SyncRequest) (domain.User, bool, error) {
	return f.user, f.created, f.err
}
