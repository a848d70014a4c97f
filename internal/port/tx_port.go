package port

import "context"

// Repositories share one database transaction when handed out by a TxRunner.
type Repositories struct {
	Orders    OrderRepository
	Products  ProductRepository
	Addresses AddressRepository
	Users     UserRepository
}

type TxRunner interface {
	// InTx commits when fn returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(repos Repositories) error) error
}
