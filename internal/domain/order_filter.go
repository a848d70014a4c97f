package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// OrderFilter has AND semantics across fields. A nil UserID lists every
// user's orders and is only used by admin endpoints.
type OrderFilter struct {
	UserID *uuid.UUID
	Status *OrderStatus
	Pagination
}

func (f OrderFilter) Validate() error {
	if f.Status != nil {
		if _, err := ToOrderStatus(string(*f.Status)); err != nil {
			return fmt.Errorf("status: %w", err)
		}
	}

	if err := f.Pagination.Validate(); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}

	return nil
}
