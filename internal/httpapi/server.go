// Package httpapi is the JSON HTTP surface of the delivery backend.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/tuffpuff/internal/auth"
	"github.com/nikolayk812/tuffpuff/internal/checkout"
	"github.com/nikolayk812/tuffpuff/internal/domain"
	"github.com/nikolayk812/tuffpuff/internal/metrics"
	"github.com/nikolayk812/tuffpuff/internal/port"
	"golang.org/x/text/currency"
)

type Checkout interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, req checkout.PlaceOrderRequest) (domain.Order, error)
	QuoteCart(ctx context.Context, lines []domain.CartLine) (domain.Cart, error)
}

type UserSyncer interface {
	Sync(ctx context.Context, identity domain.Identity, req auth.SyncRequest) (domain.User, bool, error)
}

type Deps struct {
	Checkout  Checkout
	Orders    port.OrderRepository
	Products  port.ProductRepository
	Addresses port.AddressRepository
	Users     port.UserRepository
	Syncer    UserSyncer
	Verifier  auth.Verifier
	Metrics   *metrics.ServerMetrics
	Logger    *slog.Logger

	// Currency is the store currency new products are priced in.
	Currency       currency.Unit
	AllowedOrigins []string
}

func (d Deps) validate() error {
	switch {
	case d.Checkout == nil:
		return errors.New("checkout is nil")
	case d.Orders == nil, d.Products == nil, d.Addresses == nil, d.Users == nil:
		return errors.New("repositories are required")
	case d.Syncer == nil:
		return errors.New("syncer is nil")
	case d.Verifier == nil:
		return errors.New("verifier is nil")
	case d.Metrics == nil:
		return errors.New("metrics is nil")
	}
	return nil
}

type Server struct {
	checkout  Checkout
	orders    port.OrderRepository
	products  port.ProductRepository
	addresses port.AddressRepository
	users     port.UserRepository
	syncer    UserSyncer
	verifier  auth.Verifier
	auth      *auth.Middleware
	metrics   *metrics.ServerMetrics
	logger    *slog.Logger

	currency       currency.Unit
	allowedOrigins []string
}

func NewServer(deps Deps) (*Server, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		checkout:       deps.Checkout,
		orders:         deps.Orders,
		products:       deps.Products,
		addresses:      deps.Addresses,
		users:          deps.Users,
		syncer:         deps.Syncer,
		verifier:       deps.Verifier,
		auth:           auth.NewMiddleware(deps.Verifier, deps.Users, logger),
		metrics:        deps.Metrics,
		logger:         logger,
		currency:       deps.Currency,
		allowedOrigins: deps.AllowedOrigins,
	}, nil
}

// Router wires every route under /api plus /metrics.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(s.recovery(), s.requestLogger(), s.metrics.Middleware(), cors.New(s.corsConfig()))

	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := router.Group("/api")
	api.GET("/health", s.health)

	authGroup := api.Group("/auth")
	authGroup.POST("/sync", s.syncUser)
	authGroup.GET("/profile", s.auth.RequireAuth(), s.getProfile)
	authGroup.PATCH("/profile", s.auth.RequireAuth(), s.updateProfile)

	products := api.Group("/products")
	products.GET("", s.listProducts)
	products.GET("/brands", s.listBrands)
	products.GET("/categories", s.listCategories)
	products.GET("/:id", s.getProduct)
	products.GET("/:id/similar", s.listSimilarProducts)

	orders := api.Group("/orders", s.auth.RequireAuth())
	orders.POST("", s.placeOrder)
	orders.GET("", s.listOrders)
	orders.GET("/:id", s.getOrder)

	addresses := api.Group("/addresses", s.auth.RequireAuth())
	addresses.GET("", s.listAddresses)
	addresses.POST("", s.createAddress)
	addresses.PATCH("/:id", s.updateAddress)
	addresses.DELETE("/:id", s.deleteAddress)

	api.POST("/cart/sync", s.auth.OptionalAuth(), s.syncCart)

	admin := api.Group("/admin", s.auth.RequireAuth(), s.auth.RequireAdmin())
	admin.GET("/dashboard", s.dashboard)
	admin.GET("/products", s.adminListProducts)
	admin.POST("/products", s.adminCreateProduct)
	admin.PATCH("/products/:id", s.adminUpdateProduct)
	admin.DELETE("/products/:id", s.adminDeactivateProduct)
	admin.GET("/orders", s.adminListOrders)
	admin.PATCH("/orders/:id/status", s.adminUpdateOrderStatus)
	admin.GET("/users", s.adminListUsers)
	admin.GET("/users/:userId/orders", s.adminListUserOrders)

	return router
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}

	// credentials cannot be combined with a wildcard origin
	if len(s.allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = s.allowedOrigins
	cfg.AllowCredentials = true
	return cfg
}

func (s *Server) health(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
}
