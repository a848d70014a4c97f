package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/tuffpuff/internal/db"
	"github.com/nikolayk812/tuffpuff/internal/domain"
	"github.com/nikolayk812/tuffpuff/internal/port"
	"github.com/samber/lo"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	q    *db.Queries
	dbtx db.DBTX
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		dbtx: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		dbtx: tx,
	}
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID uuid.UUID, ownerID *uuid.UUID) (domain.Order, error) {
	var o domain.Order

	if orderID == uuid.Nil {
		return o, fmt.Errorf("orderID is empty")
	}

	dbOrder, err := oneOrNotFound("Order", "q.GetOrder", func() (db.GetOrderRow, error) {
		return r.q.GetOrder(ctx, db.GetOrderParams{ID: orderID, UserID: ownerID})
	})
	if err != nil {
		return o, err
	}

	dbOrderItems, err := r.q.GetOrderItems(ctx, []uuid.UUID{orderID})
	if err != nil {
		return o, fmt.Errorf("q.GetOrderItems: %w", err)
	}

	order, err := mapDBOrderToDomain(dbOrder, dbOrderItems)
	if err != nil {
		return o, fmt.Errorf("mapDBOrderToDomain: %w", err)
	}

	return order, nil
}

func (r *orderRepository) InsertOrder(ctx context.Context, order domain.Order) (uuid.UUID, error) {
	if len(order.Items) == 0 {
		return uuid.Nil, errors.New("no items in order")
	}

	if order.UserID == uuid.Nil || order.AddressID == uuid.Nil {
		return uuid.Nil, errors.New("userID and addressID are required")
	}

	orderCurrency := order.TotalAmount.Currency
	for _, m := range []domain.Money{order.DeliveryFee, order.Discount, order.FinalAmount} {
		if !m.SameCurrency(order.TotalAmount) {
			return uuid.Nil, fmt.Errorf("order totals mix currencies: %s and %s", orderCurrency, m.Currency)
		}
	}

	orderID, err := withTx(ctx, r.dbtx, func(q *db.Queries) (uuid.UUID, error) {
		orderID, err := q.InsertOrder(ctx, db.InsertOrderParams{
			UserID:            order.UserID,
			AddressID:         order.AddressID,
			TotalAmount:       order.TotalAmount.Amount,
			DeliveryFee:       order.DeliveryFee.Amount,
			Discount:          order.Discount.Amount,
			FinalAmount:       order.FinalAmount.Amount,
			Currency:          orderCurrency.String(),
			DeliveryNotes:     lo.EmptyableToPtr(order.DeliveryNotes),
			EstimatedDelivery: lo.EmptyableToPtr(order.EstimatedDelivery),
		})
		if err != nil {
			return uuid.Nil, fmt.Errorf("q.InsertOrder: %w", err)
		}

		for idx, item := range order.Items {
			if item.Quantity <= 0 {
				return uuid.Nil, fmt.Errorf("item[%d]: quantity must be positive", idx)
			}

			arg := db.InsertOrderItemParams{
				OrderID:       orderID,
				ProductID:     item.ProductID,
				Position:      int32(idx),
				Quantity:      int32(item.Quantity),
				PriceAmount:   item.Price.Amount,
				PriceCurrency: item.Price.Currency.String(),
			}
			if err := q.InsertOrderItem(ctx, arg); err != nil {
				return uuid.Nil, fmt.Errorf("q.InsertOrderItem: %w", err)
			}
		}

		return orderID, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("withTx: %w", err)
	}

	return orderID, nil
}

func (r *orderRepository) SearchOrders(ctx context.Context, filter domain.OrderFilter) (domain.Page[domain.Order], error) {
	page := domain.Page[domain.Order]{Pagination: filter.Pagination}

	if err := filter.Validate(); err != nil {
		return page, fmt.Errorf("filter.Validate: %w", err)
	}

	var status *string
	if filter.Status != nil {
		status = lo.ToPtr(string(*filter.Status))
	}

	dbOrders, err := r.q.SearchOrders(ctx, db.SearchOrdersParams{
		UserID:    filter.UserID,
		Status:    status,
		RowLimit:  int32(filter.Limit),
		RowOffset: int32(filter.Offset()),
	})
	if err != nil {
		return page, fmt.Errorf("q.SearchOrders: %w", err)
	}

	total, err := r.q.CountOrders(ctx, db.CountOrdersParams{UserID: filter.UserID, Status: status})
	if err != nil {
		return page, fmt.Errorf("q.CountOrders: %w", err)
	}

	page.Total = total
	page.Items, err = r.withItems(ctx, dbOrders)
	if err != nil {
		return page, err
	}

	return page, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	if orderID == uuid.Nil {
		return fmt.Errorf("orderID is empty")
	}

	if status == "" {
		return fmt.Errorf("status is empty")
	}

	if _, err := domain.ToOrderStatus(string(status)); err != nil {
		return fmt.Errorf("domain.ToOrderStatus[%s]: %w", status, err)
	}

	rowsAffected, err := r.q.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{ID: orderID, Status: string(status)})
	if err != nil {
		return fmt.Errorf("q.UpdateOrderStatus: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("q.UpdateOrderStatus: %w", domain.NotFound("Order"))
	}

	return nil
}

func (r *orderRepository) OrderStats(ctx context.Context, recent int) (domain.DashboardStats, error) {
	var stats domain.DashboardStats

	totalOrders, err := r.q.CountOrders(ctx, db.CountOrdersParams{})
	if err != nil {
		return stats, fmt.Errorf("q.CountOrders: %w", err)
	}

	revenue, err := r.q.SumRevenue(ctx)
	if err != nil {
		return stats, fmt.Errorf("q.SumRevenue: %w", err)
	}

	byStatus, err := r.q.CountOrdersByStatus(ctx)
	if err != nil {
		return stats, fmt.Errorf("q.CountOrdersByStatus: %w", err)
	}

	dbRecent, err := r.q.SearchOrders(ctx, db.SearchOrdersParams{RowLimit: int32(recent)})
	if err != nil {
		return stats, fmt.Errorf("q.SearchOrders: %w", err)
	}

	recentOrders, err := r.withItems(ctx, dbRecent)
	if err != nil {
		return stats, err
	}

	stats.TotalOrders = totalOrders
	stats.TotalRevenue = revenue
	stats.RecentOrders = recentOrders
	stats.OrdersByStatus = make(map[domain.OrderStatus]int64, len(byStatus))
	for _, row := range byStatus {
		stats.OrdersByStatus[domain.OrderStatus(row.Status)] = row.Count
	}

	return stats, nil
}

// withItems loads the items of all given orders in one query and keeps the row order.
func (r *orderRepository) withItems(ctx context.Context, rows []db.SearchOrdersRow) ([]domain.Order, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	orderIDs := lo.Map(rows, func(row db.SearchOrdersRow, _ int) uuid.UUID { return row.ID })

	dbOrderItems, err := r.q.GetOrderItems(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("q.GetOrderItems: %w", err)
	}

	itemsByOrder := lo.GroupBy(dbOrderItems, func(item db.GetOrderItemsRow) uuid.UUID { return item.OrderID })

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order, err := mapDBOrderToDomain(db.GetOrderRow(row), itemsByOrder[row.ID])
		if err != nil {
			return nil, fmt.Errorf("mapDBOrderToDomain: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func mapDBOrderItemToDomain(row db.GetOrderItemsRow) (domain.OrderItem, error) {
	priceCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	product, err := mapDBProductToDomain(db.Product{
		ID:            row.ProductID,
		Name:          row.Name,
		Brand:         row.Brand,
		Category:      row.Category,
		Description:   row.Description,
		PriceAmount:   row.ProductPriceAmount,
		PriceCurrency: row.ProductPriceCurrency,
		Stock:         row.Stock,
		Image:         row.Image,
		PackSize:      row.PackSize,
		IsActive:      row.IsActive,
		CreatedAt:     row.ProductCreatedAt,
		UpdatedAt:     row.ProductUpdatedAt,
	})
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("mapDBProductToDomain: %w", err)
	}

	return domain.OrderItem{
		ID:        row.ID,
		OrderID:   row.OrderID,
		ProductID: row.ProductID,
		Product:   product,
		Quantity:  int(row.Quantity),
		Price:     domain.Money{Amount: row.PriceAmount, Currency: priceCurrency},
	}, nil
}

func mapDBOrderToDomain(dbOrder db.GetOrderRow, dbOrderItems []db.GetOrderItemsRow) (domain.Order, error) {
	var o domain.Order

	orderCurrency, err := currency.ParseISO(dbOrder.Currency)
	if err != nil {
		return o, fmt.Errorf("currency[%s] is not valid: %w", dbOrder.Currency, err)
	}

	status, err := domain.ToOrderStatus(dbOrder.Status)
	if err != nil {
		return o, fmt.Errorf("domain.ToOrderStatus[%s]: %w", dbOrder.Status, err)
	}

	items := make([]domain.OrderItem, 0, len(dbOrderItems))
	for _, row := range dbOrderItems {
		item, err := mapDBOrderItemToDomain(row)
		if err != nil {
			return o, fmt.Errorf("mapDBOrderItemToDomain: %w", err)
		}
		items = append(items, item)
	}

	return domain.Order{
		ID:        dbOrder.ID,
		UserID:    dbOrder.UserID,
		AddressID: dbOrder.AddressID,
		User: &domain.User{
			ID:    dbOrder.UserID,
			Name:  dbOrder.UserName,
			Email: dbOrder.UserEmail,
			Phone: dbOrder.UserPhone,
		},
		Address: domain.Address{
			ID:          dbOrder.AddressID,
			UserID:      dbOrder.UserID,
			Label:       dbOrder.AddressLabel,
			FullAddress: dbOrder.AddressFullAddress,
			Lat:         dbOrder.AddressLat,
			Lng:         dbOrder.AddressLng,
			IsDefault:   dbOrder.AddressIsDefault,
			CreatedAt:   dbOrder.AddressCreatedAt,
		},
		Items:             items,
		TotalAmount:       domain.Money{Amount: dbOrder.TotalAmount, Currency: orderCurrency},
		DeliveryFee:       domain.Money{Amount: dbOrder.DeliveryFee, Currency: orderCurrency},
		Discount:          domain.Money{Amount: dbOrder.Discount, Currency: orderCurrency},
		FinalAmount:       domain.Money{Amount: dbOrder.FinalAmount, Currency: orderCurrency},
		DeliveryNotes:     lo.FromPtr(dbOrder.DeliveryNotes),
		Status:            status,
		EstimatedDelivery: lo.FromPtr(dbOrder.EstimatedDelivery),
		CreatedAt:         dbOrder.CreatedAt,
		UpdatedAt:         dbOrder.UpdatedAt,
	}, nil
}
