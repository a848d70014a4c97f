package domain

import "errors"

const MaxPageLimit = 100

type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Validate() error {
	if p.Page < 1 {
		return errors.New("page must be positive")
	}
	if p.Limit < 1 || p.Limit > MaxPageLimit {
		return errors.New("limit must be between 1 and 100")
	}
	return nil
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Page[T any] struct {
	Items []T
	Pagination
	Total int64
}

func (p Page[T]) TotalPages() int64 {
	if p.Limit <= 0 {
		return 0
	}
	limit := int64(p.Limit)
	return (p.Total + limit - 1) / limit
}
