package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/tuffpuff/internal/domain"
	"github.com/shopspring/decimal"
)

type productRequest struct {
	Name        *string          `json:"name"`
	Brand       *string          `json:"brand"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Image       *string          `json:"image"`
	PackSize    *string          `json:"packSize"`
	IsActive    *bool            `json:"isActive"`
}

func (r productRequest) patch(s *Server) (domain.ProductPatch, error) {
	patch := domain.ProductPatch{
		Name:        r.Name,
		Brand:       r.Brand,
		Description: r.Description,
		Stock:       r.Stock,
		Image:       r.Image,
		PackSize:    r.PackSize,
		IsActive:    r.IsActive,
	}

	if r.Category != nil {
		category, err := domain.ToProductCategory(*r.Category)
		if err != nil {
			return patch, domain.InvalidRequest("Invalid category")
		}
		patch.Category = &category
	}

	if r.Price != nil {
		price := domain.NewMoney(r.Price.Round(2), s.currency)
		patch.Price = &price
	}

	return patch, nil
}

func (s *Server) dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := s.orders.OrderStats(ctx, dashboardRecentOrders)
	if err != nil {
		s.fail(c, err)
		return
	}

	if stats.TotalUsers, err = s.users.CountUsers(ctx); err != nil {
		s.fail(c, err)
		return
	}

	if stats.TotalProducts, err = s.products.CountActiveProducts(ctx); err != nil {
		s.fail(c, err)
		return
	}

	respond(c, http.StatusOK, toDashboardDTO(stats))
}

func (s *Server) adminListProducts(c *gin.Context) {
	s.searchProducts(c, defaultAdminProductLimit, false)
}

func (s *Server) adminCreateProduct(c *gin.Context) {
	var body productRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, domain.InvalidRequest("Invalid request body"))
		return
	}

	patch, err := body.patch(s)
	if err != nil {
		s.fail(c, err)
		return
	}

	// new products are active unless stated otherwise
	product := patch.Apply(domain.Product{IsActive: true, Price: domain.ZeroMoney(s.currency)})

	created, err := s.products.InsertProduct(c.Request.Context(), product)
	if err != nil {
		s.fail(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, toProductDTO(created), "Product created")
}

func (s *Server) adminUpdateProduct(c *gin.Context) {
	productID, err := pathID(c, "id", "Product")
	if err != nil {
		s.fail(c, err)
		return
	}

	var body productRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, domain.InvalidRequest("Invalid request body"))
		return
	}

	patch, err := body.patch(s)
	if err != nil {
		s.fail(c, err)
		return
	}

	updated, err := s.products.UpdateProduct(c.Request.Context(), productID, patch)
	if err != nil {
		s.fail(c, err)
		return
	}

	respondMessage(c, http.StatusOK, toProductDTO(updated), "Product updated")
}

// adminDeactivateProduct never deletes: order items keep referencing the row.
func (s *Server) adminDeactivateProduct(c *gin.Context) {
	productID, err := pathID(c, "id", "Product")
	if err != nil {
		s.fail(c, err)
		return
	}

	if err := s.products.DeactivateProduct(c.Request.Context(), productID); err != nil {
		s.fail(c, err)
		return
	}

	respondMessage(c, http.StatusOK, nil, "Product deactivated")
}

func (s *Server) adminListOrders(c *gin.Context) {
	var q orderListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.fail(c, domain.InvalidRequest("Invalid query"))
		return
	}

	filter, err := q.filter(defaultOrderLimit)
	if err != nil {
		s.fail(c, err)
		return
	}

	page, err := s.orders.SearchOrders(c.Request.Context(), filter)
	if err != nil {
		s.fail(c, err)
		return
	}

	respondPage(c, page, toAdminOrderDTO)
}

// adminUpdateOrderStatus overwrites the status without checking the transition.
func (s *Server) adminUpdateOrderStatus(c *gin.Context) {
	orderID, err := pathID(c, "id", "Order")
	if err != nil {
		s.fail(c, err)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, domain.InvalidRequest("Invalid request body"))
		return
	}

	status, err := domain.ToOrderStatus(body.Status)
	if err != nil {
		s.fail(c, domain.InvalidRequest("Invalid status"))
		return
	}

	ctx := c.Request.Context()

	if err := s.orders.UpdateOrderStatus(ctx, orderID, status); err != nil {
		s.fail(c, err)
		return
	}

	order, err := s.orders.GetOrder(ctx, orderID, nil)
	if err != nil {
		s.fail(c, err)
		return
	}

	respondMessage(c, http.StatusOK, toAdminOrderDTO(order), "Order status updated")
}

func (s *Server) adminListUsers(c *gin.Context) {
	pagination, err := bindPage(c, defaultUserLimit)
	if err != nil {
		s.fail(c, err)
		return
	}

	page, err := s.users.ListUsers(c.Request.Context(), pagination)
	if err != nil {
		s.fail(c, err)
		return
	}

	respondPage(c, page, toUserSummaryDTO)
}

func (s *Server) adminListUserOrders(c *gin.Context) {
	userID, err := pathID(c, "userId", "User")
	if err != nil {
		s.fail(c, err)
		return
	}

	pagination, err := bindPage(c, defaultOrderLimit)
	if err != nil {
		s.fail(c, err)
		return
	}

	page, err := s.orders.SearchOrders(c.Request.Context(), domain.OrderFilter{
		UserID:     &userID,
		Pagination: pagination,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	respondPage(c, page, toAdminOrderDTO)
}
