package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type ProductSortField string

const (
	SortByCreatedAt ProductSortField = "createdAt"
	SortByPrice     ProductSortField = "price"
	SortByName      ProductSortField = "name"
)

type ProductFilter struct {
	Category   *ProductCategory
	Brand      string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Search     string
	SortBy     ProductSortField
	SortDesc   bool
	OnlyActive bool
	Pagination
}

func (f ProductFilter) Validate() error {
	switch f.SortBy {
	case SortByCreatedAt, SortByPrice, SortByName:
	default:
		return fmt.Errorf("sortBy[%s] is not supported", f.SortBy)
	}

	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return errors.New("minPrice is greater than maxPrice")
	}

	if err := f.Pagination.Validate(); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}

	return nil
}
