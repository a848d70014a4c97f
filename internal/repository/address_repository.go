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
)

type addressRepository struct {
	q    *db.Queries
	dbtx db.DBTX
}

func NewAddress(pool *pgxpool.Pool) port.AddressRepository {
	return &addressRepository{
		q:    db.New(pool),
		dbtx: pool,
	}
}

func NewAddressWithTx(tx pgx.Tx) port.AddressRepository {
	return &addressRepository{
		q:    db.New(tx),
		dbtx: tx,
	}
}

func (r *addressRepository) ListAddresses(ctx context.Context, ownerID uuid.UUID) ([]domain.Address, error) {
	dbAddresses, err := r.q.ListAddressesByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListAddressesByUser: %w", err)
	}

	addresses := make([]domain.Address, 0, len(dbAddresses))
	for _, a := range dbAddresses {
		addresses = append(addresses, mapDBAddressToDomain(a))
	}

	return addresses, nil
}

func (r *addressRepository) GetAddress(ctx context.Context, ownerID, addressID uuid.UUID) (domain.Address, error) {
	dbAddress, err := oneOrNotFound("Address", "q.GetAddressByOwner", func() (db.Address, error) {
		return r.q.GetAddressByOwner(ctx, db.GetAddressByOwnerParams{ID: addressID, UserID: ownerID})
	})
	if err != nil {
		return domain.Address{}, err
	}

	return mapDBAddressToDomain(dbAddress), nil
}

func (r *addressRepository) InsertAddress(ctx context.Context, address domain.Address) (domain.Address, error) {
	if address.UserID == uuid.Nil {
		return domain.Address{}, fmt.Errorf("userID is empty")
	}

	if err := address.Validate(); err != nil {
		return domain.Address{}, fmt.Errorf("address.Validate: %w", err)
	}

	dbAddress, err := withTx(ctx, r.dbtx, func(q *db.Queries) (db.Address, error) {
		if address.IsDefault {
			if err := q.ClearDefaultAddresses(ctx, db.ClearDefaultAddressesParams{UserID: address.UserID, ID: uuid.Nil}); err != nil {
				return db.Address{}, fmt.Errorf("q.ClearDefaultAddresses: %w", err)
			}
		}

		inserted, err := q.InsertAddress(ctx, db.InsertAddressParams{
			UserID:      address.UserID,
			Label:       address.Label,
			FullAddress: address.FullAddress,
			Lat:         address.Lat,
			Lng:         address.Lng,
			IsDefault:   address.IsDefault,
		})
		if err != nil {
			return db.Address{}, fmt.Errorf("q.InsertAddress: %w", err)
		}

		return inserted, nil
	})
	if err != nil {
		return domain.Address{}, fmt.Errorf("withTx: %w", err)
	}

	return mapDBAddressToDomain(dbAddress), nil
}

func (r *addressRepository) UpdateAddress(ctx context.Context, ownerID, addressID uuid.UUID, patch domain.AddressPatch) (domain.Address, error) {
	dbAddress, err := withTx(ctx, r.dbtx, func(q *db.Queries) (db.Address, error) {
		current, err := oneOrNotFound("Address", "q.GetAddressByOwner", func() (db.Address, error) {
			return q.GetAddressByOwner(ctx, db.GetAddressByOwnerParams{ID: addressID, UserID: ownerID})
		})
		if err != nil {
			return db.Address{}, err
		}

		address := patch.Apply(mapDBAddressToDomain(current))
		if err := address.Validate(); err != nil {
			return db.Address{}, fmt.Errorf("address.Validate: %w", err)
		}

		if address.IsDefault {
			if err := q.ClearDefaultAddresses(ctx, db.ClearDefaultAddressesParams{UserID: ownerID, ID: addressID}); err != nil {
				return db.Address{}, fmt.Errorf("q.ClearDefaultAddresses: %w", err)
			}
		}

		updated, err := q.UpdateAddress(ctx, db.UpdateAddressParams{
			ID:          addressID,
			UserID:      ownerID,
			Label:       address.Label,
			FullAddress: address.FullAddress,
			Lat:         address.Lat,
			Lng:         address.Lng,
			IsDefault:   address.IsDefault,
		})
		if err != nil {
			return db.Address{}, fmt.Errorf("q.UpdateAddress: %w", err)
		}

		return updated, nil
	})
	if err != nil {
		return domain.Address{}, fmt.Errorf("withTx: %w", err)
	}

	return mapDBAddressToDomain(dbAddress), nil
}

func (r *addressRepository) DeleteAddress(ctx context.Context, ownerID, addressID uuid.UUID) error {
	rowsAffected, err := r.q.DeleteAddressByOwner(ctx, db.DeleteAddressByOwnerParams{ID: addressID, UserID: ownerID})
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("q.DeleteAddressByOwner: %w", &domain.ConflictError{Reason: "Address is used by an existing order"})
		}
		return fmt.Errorf("q.DeleteAddressByOwner: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("q.DeleteAddressByOwner: %w", domain.NotFound("Address"))
	}

	return nil
}

func mapDBAddressToDomain(a db.Address) domain.Address {
	return domain.Address{
		ID:          a.ID,
		UserID:      a.UserID,
		Label:       a.Label,
		FullAddress: a.FullAddress,
		Lat:         a.Lat,
		Lng:         a.Lng,
		IsDefault:   a.IsDefault,
		CreatedAt:   a.CreatedAt,
	}
}
