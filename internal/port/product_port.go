package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/tuffpuff/internal/domain"
)

type ProductRepository interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error)
	SearchProducts(ctx context.Context, filter domain.ProductFilter) (domain.Page[domain.Product], error)
	ListBrands(ctx context.Context) ([]string, error)
	ListSimilarProducts(ctx context.Context, product domain.Product, limit int) ([]domain.Product, error)
	ListActiveProducts(ctx context.Context, productIDs []uuid.UUID) ([]domain.Product, error)
	CountActiveProducts(ctx context.Context) (int64, error)

	InsertProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, patch domain.ProductPatch) (domain.Product, error)
	DeactivateProduct(ctx context.Context, productID uuid.UUID) error

	// LockActiveProducts row-locks the active products among productIDs until
	// the surrounding transaction ends. Only meaningful on a transactional repository.
	LockActiveProducts(ctx context.Context, productIDs []uuid.UUID) ([]domain.Product, error)

	// DecrementStock reports false when the product has less than quantity in stock.
	DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) (bool, error)
}
