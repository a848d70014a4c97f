package httpapi

import (
	"encoding/json"
	"time"

	"github.com/nikolayk812/tuffpuff/internal/domain"
	"github.com/samber/lo"
)

// amount renders money as a JSON number with two decimals.
func amount(m domain.Money) json.Number {
	return json.Number(m.Amount.StringFixed(2))
}

type productDTO struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Brand       string      `json:"brand"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Currency    string      `json:"currency"`
	Stock       int         `json:"stock"`
	Image       string      `json:"image"`
	PackSize    string      `json:"packSize"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func toProductDTO(p domain.Product) productDTO {
	return productDTO{
		ID:          p.ID.String(),
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    string(p.Category),
		Description: p.Description,
		Price:       amount(p.Price),
		Currency:    p.Price.Currency.String(),
		Stock:       p.Stock,
		Image:       p.Image,
		PackSize:    p.PackSize,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type addressDTO struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Label       string    `json:"label"`
	FullAddress string    `json:"fullAddress"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toAddressDTO(a domain.Address) addressDTO {
	return addressDTO{
		ID:          a.ID.String(),
		UserID:      a.UserID.String(),
		Label:       a.Label,
		FullAddress: a.FullAddress,
		Lat:         a.Lat,
		Lng:         a.Lng,
		IsDefault:   a.IsDefault,
		CreatedAt:   a.CreatedAt,
	}
}

type userDTO struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Role          string    `json:"role"`
	AgeVerified   bool      `json:"ageVerified"`
	TermsAccepted bool      `json:"termsAccepted"`
	CreatedAt     time.Time `json:"createdAt"`
	OrderCount    *int64    `json:"orderCount,omitempty"`
}

func toUserDTO(u domain.User) userDTO {
	return userDTO{
		ID:            u.ID.String(),
		Email:         u.Email,
		Name:          u.Name,
		Phone:         u.Phone,
		Role:          string(u.Role),
		AgeVerified:   u.AgeVerified,
		TermsAccepted: u.TermsAccepted,
		CreatedAt:     u.CreatedAt,
	}
}

func toUserSummaryDTO(u domain.UserSummary) userDTO {
	dto := toUserDTO(u.User)
	dto.OrderCount = lo.ToPtr(u.OrderCount)
	return dto
}

type orderItemDTO struct {
	ID        string      `json:"id"`
	OrderID   string      `json:"orderId"`
	ProductID string      `json:"productId"`
	Quantity  int         `json:"quantity"`
	Price     json.Number `json:"price"`
	Product   productDTO  `json:"product"`
}

// orderUserDTO is the slice of the owner shown on admin order views.
type orderUserDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type orderDTO struct {
	ID                string         `json:"id"`
	UserID            string         `json:"userId"`
	AddressID         string         `json:"addressId"`
	TotalAmount       json.Number    `json:"totalAmount"`
	DeliveryFee       json.Number    `json:"deliveryFee"`
	Discount          json.Number    `json:"discount"`
	FinalAmount       json.Number    `json:"finalAmount"`
	Currency          string         `json:"currency"`
	Status            string         `json:"status"`
	DeliveryNotes     *string        `json:"deliveryNotes"`
	EstimatedDelivery *string        `json:"estimatedDelivery"`
	Items             []orderItemDTO `json:"items"`
	Address           addressDTO     `json:"address"`
	User              *orderUserDTO  `json:"user,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

func toOrderDTO(o domain.Order) orderDTO {
	return orderDTO{
		ID:                o.ID.String(),
		UserID:            o.UserID.String(),
		AddressID:         o.AddressID.String(),
		TotalAmount:       amount(o.TotalAmount),
		DeliveryFee:       amount(o.DeliveryFee),
		Discount:          amount(o.Discount),
		FinalAmount:       amount(o.FinalAmount),
		Currency:          o.TotalAmount.Currency.String(),
		Status:            string(o.Status),
		DeliveryNotes:     lo.EmptyableToPtr(o.DeliveryNotes),
		EstimatedDelivery: lo.EmptyableToPtr(o.EstimatedDelivery),
		Items: lo.Map(o.Items, func(i domain.OrderItem, _ int) orderItemDTO {
			return orderItemDTO{
				ID:        i.ID.String(),
				OrderID:   i.OrderID.String(),
				ProductID: i.ProductID.String(),
				Quantity:  i.Quantity,
				Price:     amount(i.Price),
				Product:   toProductDTO(i.Product),
			}
		}),
		Address:   toAddressDTO(o.Address),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// toAdminOrderDTO also shows who placed the order.
func toAdminOrderDTO(o domain.Order) orderDTO {
	dto := toOrderDTO(o)
	if o.User != nil {
		dto.User = &orderUserDTO{Name: o.User.Name, Email: o.User.Email, Phone: o.User.Phone}
	}
	return dto
}

type cartItemDTO struct {
	Product  productDTO `json:"product"`
	Quantity int        `json:"quantity"`
}

type cartDTO struct {
	Items       []cartItemDTO `json:"items"`
	Subtotal    json.Number   `json:"subtotal"`
	DeliveryFee json.Number   `json:"deliveryFee"`
	Discount    json.Number   `json:"discount"`
	Total       json.Number   `json:"total"`
}

func toCartDTO(cart domain.Cart) cartDTO {
	return cartDTO{
		Items: lo.Map(cart.Items, func(i domain.CartItem, _ int) cartItemDTO {
			return cartItemDTO{Product: toProductDTO(i.Product), Quantity: i.Quantity}
		}),
		Subtotal:    amount(cart.Quote.Subtotal),
		DeliveryFee: amount(cart.Quote.DeliveryFee),
		Discount:    amount(cart.Quote.Discount),
		Total:       amount(cart.Quote.Total),
	}
}

type dashboardDTO struct {
	TotalOrders    int64            `json:"totalOrders"`
	ActiveOrders   int64            `json:"activeOrders"`
	TotalUsers     int64            `json:"totalUsers"`
	TotalProducts  int64            `json:"totalProducts"`
	TotalRevenue   json.Number      `json:"totalRevenue"`
	OrdersByStatus map[string]int64 `json:"ordersByStatus"`
	RecentOrders   []orderDTO       `json:"recentOrders"`
}

func toDashboardDTO(stats domain.DashboardStats) dashboardDTO {
	var active int64
	byStatus := make(map[string]int64, len(domain.OrderStatuses()))
	for _, status := range domain.OrderStatuses() {
		byStatus[string(status)] = stats.OrdersByStatus[status]
		if !status.IsTerminal() {
			active += stats.OrdersByStatus[status]
		}
	}

	return dashboardDTO{
		TotalOrders:    stats.TotalOrders,
		ActiveOrders:   active,
		TotalUsers:     stats.TotalUsers,
		TotalProducts:  stats.TotalProducts,
		TotalRevenue:   json.Number(stats.TotalRevenue.StringFixed(2)),
		OrdersByStatus: byStatus,
		RecentOrders:   lo.Map(stats.RecentOrders, func(o domain.Order, _ int) orderDTO { return toAdminOrderDTO(o) }),
	}
}
