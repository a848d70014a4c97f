package repository

import (
	"context"
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

type productRepository struct {
	q    *db.Queries
	dbtx db.DBTX
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q:    db.New(pool),
		dbtx: pool,
	}
}

func NewProductWithTx(tx pgx.Tx) port.ProductRepository {
	return &productRepository{
		q:    db.New(tx),
		dbtx: tx,
	}
}

func (r *productRepository) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	dbProduct, err := oneOrNotFound("Product", "q.GetProduct", func() (db.Product, error) {
		return r.q.GetProduct(ctx, productID)
	})
	if err != nil {
		return domain.Product{}, err
	}

	product, err := mapDBProductToDomain(dbProduct)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapDBProductToDomain: %w", err)
	}

	return product, nil
}

func (r *productRepository) SearchProducts(ctx context.Context, filter domain.ProductFilter) (domain.Page[domain.Product], error) {
	page := domain.Page[domain.Product]{Pagination: filter.Pagination}

	if err := filter.Validate(); err != nil {
		return page, fmt.Errorf("filter.Validate: %w", err)
	}

	var category *string
	if filter.Category != nil {
		category = lo.ToPtr(string(*filter.Category))
	}

	dbProducts, err := r.q.ListProducts(ctx, db.ListProductsParams{
		OnlyActive: filter.OnlyActive,
		Category:   category,
		Brand:      lo.EmptyableToPtr(filter.Brand),
		MinPrice:   filter.MinPrice,
		MaxPrice:   filter.MaxPrice,
		Search:     lo.EmptyableToPtr(filter.Search),
		SortBy:     string(filter.SortBy),
		SortDesc:   filter.SortDesc,
		RowLimit:   int32(filter.Limit),
		RowOffset:  int32(filter.Offset()),
	})
	if err != nil {
		return page, fmt.Errorf("q.ListProducts: %w", err)
	}

	total, err := r.q.CountProducts(ctx, db.CountProductsParams{
		OnlyActive: filter.OnlyActive,
		Category:   category,
		Brand:      lo.EmptyableToPtr(filter.Brand),
		MinPrice:   filter.MinPrice,
		MaxPrice:   filter.MaxPrice,
		Search:     lo.EmptyableToPtr(filter.Search),
	})
	if err != nil {
		return page, fmt.Errorf("q.CountProducts: %w", err)
	}

	page.Items, err = mapDBProductsToDomain(dbProducts)
	if err != nil {
		return page, fmt.Errorf("mapDBProductsToDomain: %w", err)
	}
	page.Total = total

	return page, nil
}

func (r *productRepository) ListBrands(ctx context.Context) ([]string, error) {
	brands, err := r.q.ListBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListBrands: %w", err)
	}

	return brands, nil
}

func (r *productRepository) ListSimilarProducts(ctx context.Context, product domain.Product, limit int) ([]domain.Product, error) {
	dbProducts, err := r.q.ListSimilarProducts(ctx, db.ListSimilarProductsParams{
		ID:       product.ID,
		Category: string(product.Category),
		Brand:    product.Brand,
		RowLimit: int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("q.ListSimilarProducts: %w", err)
	}

	products, err := mapDBProductsToDomain(dbProducts)
	if err != nil {
		return nil, fmt.Errorf("mapDBProductsToDomain: %w", err)
	}

	return products, nil
}

func (r *productRepository) ListActiveProducts(ctx context.Context, productIDs []uuid.UUID) ([]domain.Product, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	dbProducts, err := r.q.ListActiveProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("q.ListActiveProductsByIDs: %w", err)
	}

	products, err := mapDBProductsToDomain(dbProducts)
	if err != nil {
		return nil, fmt.Errorf("mapDBProductsToDomain: %w", err)
	}

	return products, nil
}

func (r *productRepository) CountActiveProducts(ctx context.Context) (int64, error) {
	count, err := r.q.CountActiveProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("q.CountActiveProducts: %w", err)
	}

	return count, nil
}

func (r *productRepository) InsertProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := product.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("product.Validate: %w", err)
	}

	dbProduct, err := r.q.InsertProduct(ctx, db.InsertProductParams{
		Name:          product.Name,
		Brand:         product.Brand,
		Category:      string(product.Category),
		Description:   product.Description,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		Stock:         int32(product.Stock),
		Image:         product.Image,
		PackSize:      product.PackSize,
		IsActive:      product.IsActive,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.InsertProduct: %w", err)
	}

	inserted, err := mapDBProductToDomain(dbProduct)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapDBProductToDomain: %w", err)
	}

	return inserted, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, productID uuid.UUID, patch domain.ProductPatch) (domain.Product, error) {
	dbProduct, err := withTx(ctx, r.dbtx, func(q *db.Queries) (db.Product, error) {
		current, err := oneOrNotFound("Product", "q.GetProduct", func() (db.Product, error) {
			return q.GetProduct(ctx, productID)
		})
		if err != nil {
			return db.Product{}, err
		}

		product, err := mapDBProductToDomain(current)
		if err != nil {
			return db.Product{}, fmt.Errorf("mapDBProductToDomain: %w", err)
		}

		product = patch.Apply(product)
		if err := product.Validate(); err != nil {
			return db.Product{}, fmt.Errorf("product.Validate: %w", err)
		}

		return q.UpdateProduct(ctx, db.UpdateProductParams{
			ID:            productID,
			Name:          product.Name,
			Brand:         product.Brand,
			Category:      string(product.Category),
			Description:   product.Description,
			PriceAmount:   product.Price.Amount,
			PriceCurrency: product.Price.Currency.String(),
			Stock:         int32(product.Stock),
			Image:         product.Image,
			PackSize:      product.PackSize,
			IsActive:      product.IsActive,
		})
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("withTx: %w", err)
	}

	updated, err := mapDBProductToDomain(dbProduct)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapDBProductToDomain: %w", err)
	}

	return updated, nil
}

func (r *productRepository) DeactivateProduct(ctx context.Context, productID uuid.UUID) error {
	rowsAffected, err := r.q.DeactivateProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("q.DeactivateProduct: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("q.DeactivateProduct: %w", domain.NotFound("Product"))
	}

	return nil
}

func (r *productRepository) LockActiveProducts(ctx context.Context, productIDs []uuid.UUID) ([]domain.Product, error) {
	if _, ok := r.dbtx.(pgx.Tx); !ok {
		return nil, fmt.Errorf("LockActiveProducts requires a transaction")
	}

	dbProducts, err := r.q.LockActiveProducts(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("q.LockActiveProducts: %w", err)
	}

	products, err := mapDBProductsToDomain(dbProducts)
	if err != nil {
		return nil, fmt.Errorf("mapDBProductsToDomain: %w", err)
	}

	return products, nil
}

func (r *productRepository) DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, fmt.Errorf("quantity must be positive")
	}

	rowsAffected, err := r.q.DecrementStock(ctx, db.DecrementStockParams{
		Quantity: int32(quantity),
		ID:       productID,
	})
	if err != nil {
		return false, fmt.Errorf("q.DecrementStock: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapDBProductToDomain(p db.Product) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(p.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", p.PriceCurrency, err)
	}

	category, err := domain.ToProductCategory(p.Category)
	if err != nil {
		return domain.Product{}, fmt.Errorf("domain.ToProductCategory[%s]: %w", p.Category, err)
	}

	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    category,
		Description: p.Description,
		Price:       domain.Money{Amount: p.PriceAmount, Currency: parsedCurrency},
		Stock:       int(p.Stock),
		Image:       p.Image,
		PackSize:    p.PackSize,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func mapDBProductsToDomain(rows []db.Product) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(rows))

	for _, row := range rows {
		product, err := mapDBProductToDomain(row)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}
