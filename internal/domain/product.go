package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type ProductCategory string

const (
	CategoryCigarettes    ProductCategory = "CIGARETTES"
	CategoryLighters      ProductCategory = "LIGHTERS"
	CategoryRollingPapers ProductCategory = "ROLLING_PAPERS"
	CategoryBeverages     ProductCategory = "BEVERAGES"
	CategorySnacks        ProductCategory = "SNACKS"
	CategoryEssentials    ProductCategory = "ESSENTIALS"
)

// ProductCategories is ordered the way the catalog presents them.
var ProductCategories = []ProductCategory{
	CategoryCigarettes,
	CategoryLighters,
	CategoryRollingPapers,
	CategoryBeverages,
	CategorySnacks,
	CategoryEssentials,
}

func ToProductCategory(s string) (ProductCategory, error) {
	for _, c := range ProductCategories {
		if string(c) == s {
			return c, nil
		}
	}

	return "", errors.New("invalid product category")
}

// Product is never deleted, deactivation clears IsActive.
type Product struct {
	ID          uuid.UUID
	Name        string
	Brand       string
	Category    ProductCategory
	Description string
	Price       Money
	Stock       int
	Image       string
	PackSize    string
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Product) Validate() error {
	if p.Name == "" || len(p.Name) > 200 {
		return InvalidRequest("name must be 1-200 characters")
	}
	if p.Brand == "" || len(p.Brand) > 100 {
		return InvalidRequest("brand must be 1-100 characters")
	}
	if _, err := ToProductCategory(string(p.Category)); err != nil {
		return InvalidRequest("invalid category")
	}
	if p.Description == "" || len(p.Description) > 2000 {
		return InvalidRequest("description must be 1-2000 characters")
	}
	if !p.Price.Amount.IsPositive() {
		return InvalidRequest("Price must be positive")
	}
	if p.Stock < 0 {
		return InvalidRequest("stock must not be negative")
	}

	return nil
}

// ProductPatch holds the fields an admin edit may change; nil means unchanged.
type ProductPatch struct {
	Name        *string
	Brand       *string
	Category    *ProductCategory
	Description *string
	Price       *Money
	Stock       *int
	Image       *string
	PackSize    *string
	IsActive    *bool
}

func (p ProductPatch) Apply(product Product) Product {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Brand != nil {
		product.Brand = *p.Brand
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Stock != nil {
		product.Stock = *p.Stock
	}
	if p.Image != nil {
		product.Image = *p.Image
	}
	if p.PackSize != nil {
		product.PackSize = *p.PackSize
	}
	if p.IsActive != nil {
		product.IsActive = *p.IsActive
	}
	return product
}
