package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/tuffpuff/internal/checkout"
	"github.com/nikolayk812/tuffpuff/internal/domain"
	"github.com/nikolayk812/tuffpuff/internal/metrics"
	"github.com/samber/lo"
)

type cartLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type placeOrderRequest struct {
	AddressID     string            `json:"addressId"`
	DeliveryNotes string            `json:"deliveryNotes"`
	Items         []cartLineRequest `json:"items"`
}

func (r placeOrderRequest) toDomain() (checkout.PlaceOrderRequest, error) {
	addressID, err := uuid.Parse(r.AddressID)
	if err != nil {
		return checkout.PlaceOrderRequest{}, domain.NotFound("Address")
	}

	// a malformed product id becomes uuid.Nil, which checkout reports as an
	// unknown product once the address has been checked
	lines := lo.Map(r.Items, func(item cartLineRequest, _ int) domain.CartLine {
		productID, _ := uuid.Parse(item.ProductID)
		return domain.CartLine{ProductID: productID, Quantity: item.Quantity}
	})

	return checkout.PlaceOrderRequest{
		AddressID:     addressID,
		DeliveryNotes: r.DeliveryNotes,
		Items:         lines,
	}, nil
}

type orderListQuery struct {
	pageQuery
	Status string `form:"status"`
}

func (q orderListQuery) filter(defaultLimit int) (domain.OrderFilter, error) {
	filter := domain.OrderFilter{Pagination: q.pagination(defaultLimit)}

	if q.Status != "" {
		status, err := domain.ToOrderStatus(q.Status)
		if err != nil {
			return filter, domain.InvalidRequest("Invalid status")
		}
		filter.Status = &status
	}

	if err := filter.Validate(); err != nil {
		return filter, domain.InvalidRequest("%s", err.Error())
	}

	return filter, nil
}

func (s *Server) placeOrder(c *gin.Context) {
	user := mustUser(c)

	var body placeOrderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, domain.InvalidRequest("Invalid request body"))
		return
	}

	req, err := body.toDomain()
	if err != nil {
		s.fail(c, err)
		return
	}

	order, err := s.checkout.PlaceOrder(c.Request.Context(), user.ID, req)
	s.metrics.CheckoutOutcome(checkoutOutcome(err))
	if err != nil {
		s.fail(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, toOrderDTO(order), "Order placed successfully")
}

func checkoutOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomePlaced
	case errors.Is(err, domain.ErrInsufficientStock):
		return metrics.OutcomeInsufficientStock
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeFailed
	}
}

func (s *Server) listOrders(c *gin.Context) {
	user := mustUser(c)

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
	filter.UserID = &user.ID

	page, err := s.orders.SearchOrders(c.Request.Context(), filter)
	if err != nil {
		s.fail(c, err)
		return
	}

	respondPage(c, page, toOrderDTO)
}

// getOrder reports orders of other users as not found.
func (s *Server) getOrder(c *gin.Context) {
	user := mustUser(c)

	orderID, err := pathID(c, "id", "Order")
	if err != nil {
		s.fail(c, err)
		return
	}

	order, err := s.orders.GetOrder(c.Request.Context(), orderID, &user.ID)
	if err != nil {
		s.fail(c, err)
		return
	}

	respond(c, http.StatusOK, toOrderDTO(order))
}

func (s *Server) syncCart(c *gin.Context) {
	var body struct {
		Items []cartLineRequest `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, domain.InvalidRequest("Invalid request body"))
		return
	}

	// unknown ids are dropped like unknown products
	lines := lo.FilterMap(body.Items, func(item cartLineRequest, _ int) (domain.CartLine, bool) {
		id, err := uuid.Parse(item.ProductID)
		return domain.CartLine{ProductID: id, Quantity: item.Quantity}, err == nil
	})

	cart, err := s.checkout.QuoteCart(c.Request.Context(), lines)
	if err != nil {
		s.fail(c, err)
		return
	}

	respond(c, http.StatusOK, toCartDTO(cart))
}
