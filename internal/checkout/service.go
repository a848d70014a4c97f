// Package checkout turns a cart into a persisted order.
//
// PlaceOrder validates address ownership, product availability and stock,
// prices the order and writes it while decrementing stock, all inside one
// database transaction. Either every step commits or nothing does.
package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nikolayk812/tuffpuff/internal/domain"
	"github.com/nikolayk812/tuffpuff/internal/port"
	"github.com/samber/lo"
)

const (
	maxDeliveryNotesLen = 500

	msgProductsUnavailable = "One or more products not found or inactive"
)

type PlaceOrderRequest struct {
	AddressID     uuid.UUID
	DeliveryNotes string
	Items         []domain.CartLine
}

func (r PlaceOrderRequest) Validate() error {
	if r.AddressID == uuid.Nil {
		return domain.InvalidRequest("addressId is required")
	}

	if utf8.RuneCountInString(r.DeliveryNotes) > maxDeliveryNotesLen {
		return domain.InvalidRequest("deliveryNotes must be at most %d characters", maxDeliveryNotesLen)
	}

	if len(r.Items) == 0 {
		return domain.InvalidRequest("Order must have at least one item")
	}

	for idx, item := range r.Items {
		if item.Quantity <= 0 {
			return domain.InvalidRequest("items[%d].quantity must be positive", idx)
		}
	}

	return nil
}

type Service struct {
	txRunner port.TxRunner
	products port.ProductRepository
	pricing  domain.Pricing
	logger   *slog.Logger
}

func NewService(txRunner port.TxRunner, products port.ProductRepository, pricing domain.Pricing, logger *slog.Logger) (*Service, error) {
	if txRunner == nil {
		return nil, fmt.Errorf("txRunner is nil")
	}
	if products == nil {
		return nil, fmt.Errorf("products is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		txRunner: txRunner,
		products: products,
		pricing:  pricing,
		logger:   logger,
	}, nil
}

// PlaceOrder fails with a not found error when the address is not owned by
// userID, an invalid request error when any product is missing or inactive,
// and an *domain.InsufficientStockError when any quantity exceeds stock.
// No order is persisted and no stock changes on failure.
func (s *Service) PlaceOrder(ctx context.Context, userID uuid.UUID, req PlaceOrderRequest) (domain.Order, error) {
	if err := req.Validate(); err != nil {
		return domain.Order{}, fmt.Errorf("req.Validate: %w", err)
	}

	productIDs := lo.Uniq(lo.Map(req.Items, func(item domain.CartLine, _ int) uuid.UUID { return item.ProductID }))

	// lock rows in a stable order so concurrent checkouts cannot deadlock
	slices.SortFunc(productIDs, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })

	var placed domain.Order

	err := s.txRunner.InTx(ctx, func(repos port.Repositories) error {
		// address ownership is reported before anything about the items
		if _, err := repos.Addresses.GetAddress(ctx, userID, req.AddressID); err != nil {
			return fmt.Errorf("repos.Addresses.GetAddress: %w", err)
		}

		// duplicates would be counted once by the lookup, uuid.Nil never matches a row
		if len(productIDs) != len(req.Items) || slices.Contains(productIDs, uuid.Nil) {
			return domain.InvalidRequest(msgProductsUnavailable)
		}

		products, err := repos.Products.LockActiveProducts(ctx, productIDs)
		if err != nil {
			return fmt.Errorf("repos.Products.LockActiveProducts: %w", err)
		}

		if len(products) != len(productIDs) {
			return domain.InvalidRequest(msgProductsUnavailable)
		}

		byID := lo.KeyBy(products, func(p domain.Product) uuid.UUID { return p.ID })

		order, err := s.buildOrder(userID, req, byID)
		if err != nil {
			return err
		}

		orderID, err := repos.Orders.InsertOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("repos.Orders.InsertOrder: %w", err)
		}

		for _, productID := range productIDs {
			item, _ := lo.Find(order.Items, func(i domain.OrderItem) bool { return i.ProductID == productID })

			ok, err := repos.Products.DecrementStock(ctx, productID, item.Quantity)
			if err != nil {
				return fmt.Errorf("repos.Products.DecrementStock: %w", err)
			}
			if !ok {
				product := byID[productID]
				return &domain.InsufficientStockError{
					ProductID:   productID,
					ProductName: product.Name,
					Requested:   item.Quantity,
					Available:   product.Stock,
				}
			}
		}

		placed, err = repos.Orders.GetOrder(ctx, orderID, &userID)
		if err != nil {
			return fmt.Errorf("repos.Orders.GetOrder: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("txRunner.InTx: %w", err)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", placed.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("items", len(placed.Items)),
		slog.String("final_amount", placed.FinalAmount.String()),
	)

	return placed, nil
}

// buildOrder captures the current unit prices of the locked products.
func (s *Service) buildOrder(userID uuid.UUID, req PlaceOrderRequest, byID map[uuid.UUID]domain.Product) (domain.Order, error) {
	items := make([]domain.OrderItem, 0, len(req.Items))
	lines := make([]domain.PricedLine, 0, len(req.Items))

	for _, line := range req.Items {
		product := byID[line.ProductID]

		if product.Price.Currency.String() != s.pricing.Currency.String() {
			return domain.Order{}, domain.InvalidRequest(msgProductsUnavailable)
		}

		if line.Quantity > product.Stock {
			return domain.Order{}, &domain.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   line.Quantity,
				Available:   product.Stock,
			}
		}

		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Product:   product,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
		lines = append(lines, domain.PricedLine{Price: product.Price, Quantity: line.Quantity})
	}

	quote := s.pricing.Quote(lines)

	return domain.Order{
		UserID:            userID,
		AddressID:         req.AddressID,
		Items:             items,
		TotalAmount:       quote.Subtotal,
		DeliveryFee:       quote.DeliveryFee,
		Discount:          quote.Discount,
		FinalAmount:       quote.Total,
		DeliveryNotes:     req.DeliveryNotes,
		Status:            domain.OrderStatusPending,
		EstimatedDelivery: s.pricing.EstimatedDelivery,
	}, nil
}

// QuoteCart prices a cart without reserving anything. Unknown, inactive or
// foreign-currency products are dropped and quantities are clamped to stock.
func (s *Service) QuoteCart(ctx context.Context, lines []domain.CartLine) (domain.Cart, error) {
	for idx, line := range lines {
		if line.Quantity <= 0 {
			return domain.Cart{}, domain.InvalidRequest("items[%d].quantity must be positive", idx)
		}
	}

	productIDs := lo.Uniq(lo.Map(lines, func(line domain.CartLine, _ int) uuid.UUID { return line.ProductID }))

	products, err := s.products.ListActiveProducts(ctx, productIDs)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("products.ListActiveProducts: %w", err)
	}

	byID := lo.KeyBy(products, func(p domain.Product) uuid.UUID { return p.ID })

	cart := domain.Cart{Items: make([]domain.CartItem, 0, len(lines))}
	priced := make([]domain.PricedLine, 0, len(lines))

	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok || product.Price.Currency.String() != s.pricing.Currency.String() {
			continue
		}

		quantity := min(line.Quantity, product.Stock)
		cart.Items = append(cart.Items, domain.CartItem{Product: product, Quantity: quantity})
		priced = append(priced, domain.PricedLine{Price: product.Price, Quantity: quantity})
	}

	cart.Quote = s.pricing.Quote(priced)

	return cart, nil
}
