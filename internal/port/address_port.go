package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/tuffpuff/internal/domain"
)

// AddressRepository only ever touches addresses of the given owner.
type AddressRepository interface {
	ListAddresses(ctx context.Context, ownerID uuid.UUID) ([]domain.Address, error)
	GetAddress(ctx context.Context, ownerID, addressID uuid.UUID) (domain.Address, error)
	InsertAddress(ctx context.Context, address domain.Address) (domain.Address, error)
	UpdateAddress(ctx context.Context, ownerID, addressID uuid.UUID, patch domain.AddressPatch) (domain.Address, error)
	DeleteAddress(ctx context.Context, ownerID, addressID uuid.UUID) error
}
