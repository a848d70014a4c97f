package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/tuffpuff/internal/domain"
	"github.com/nikolayk812/tuffpuff/internal/pgtest"
	"github.com/nikolayk812/tuffpuff/internal/port"
	"github.com/nikolayk812/tuffpuff/internal/repository"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"go.uber.org/goleak"
)

type addressRepositorySuite struct {
	suite.Suite

	repo      port.AddressRepository
	pool      *pgxpool.Pool
	container testcontainers.Container
	fx        fixtures
}

func TestAddressRepositorySuite(t *testing.T) {
	defer goleak.VerifyNone(t)

	suite.Run(t, new(addressRepositorySuite))
}

func (suite *addressRepositorySuite) SetupSuite() {
	var err error

	suite.container, suite.pool, err = pgtest.Start(suite.T().Context())
	suite.Require().NoError(err)

	suite.repo = repository.NewAddress(suite.pool)
	suite.fx = fixtures{pool: suite.pool}
}

func (suite *addressRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(suite.T().Context()))
	}
}

func (suite *addressRepositorySuite) TearDownTest() {
	suite.NoError(pgtest.Truncate(suite.T().Context(), suite.pool))
}

func (suite *addressRepositorySuite) TestSingleDefaultAddress() {
	t := suite.T()
	ctx := t.Context()

	user := suite.fx.user(t)
	other := suite.fx.user(t)

	insert := func(userID uuid.UUID, isDefault bool) domain.Address {
		a := randomAddress()
		a.UserID = userID
		a.IsDefault = isDefault
		inserted, err := suite.repo.InsertAddress(ctx, a)
		require.NoError(t, err)
		return inserted
	}

	first := insert(user.ID, true)
	otherDefault := insert(other.ID, true)
	second := insert(user.ID, true)

	defaults := suite.defaultIDs(user.ID)
	assert.Equal(t, []uuid.UUID{second.ID}, defaults)

	_, err := suite.repo.UpdateAddress(ctx, user.ID, first.ID, domain.AddressPatch{IsDefault: lo.ToPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first.ID}, suite.defaultIDs(user.ID))

	// other users keep their default
	assert.Equal(t, []uuid.UUID{otherDefault.ID}, suite.defaultIDs(other.ID))

	addresses, err := suite.repo.ListAddresses(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, first.ID, addresses[0].ID, "default address is listed first")
}

func (suite *addressRepositorySuite) TestOwnerScoping() {
	t := suite.T()
	ctx := t.Context()

	owner := suite.fx.user(t)
	stranger := suite.fx.user(t)
	address := suite.fx.address(t, owner.ID)

	got, err := suite.repo.GetAddress(ctx, owner.ID, address.ID)
	require.NoError(t, err)
	assert.Equal(t, address.FullAddress, got.FullAddress)

	_, err = suite.repo.GetAddress(ctx, stranger.ID, address.ID)
	require.EqualError(t, err, "q.GetAddressByOwner: Address not found")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = suite.repo.UpdateAddress(ctx, stranger.ID, address.ID, domain.AddressPatch{Label: lo.ToPtr("Mine")})
	require.EqualError(t, err, "withTx: q.GetAddressByOwner: Address not found")

	err = suite.repo.DeleteAddress(ctx, stranger.ID, address.ID)
	require.EqualError(t, err, "q.DeleteAddressByOwner: Address not found")

	require.NoError(t, suite.repo.DeleteAddress(ctx, owner.ID, address.ID))

	_, err = suite.repo.GetAddress(ctx, owner.ID, address.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *addressRepositorySuite) TestInsertAddressValidation() {
	tests := []struct {
		name        string
		addressFunc func(userID uuid.UUID) domain.Address
		wantError   string
	}{
		{
			name: "valid address: ok",
			addressFunc: func(userID uuid.UUID) domain.Address {
				a := randomAddress()
				a.UserID = userID
				return a
			},
		},
		{
			name: "short address: fail",
			addressFunc: func(userID uuid.UUID) domain.Address {
				a := randomAddress()
				a.UserID = userID
				a.FullAddress = "1 A"
				return a
			},
			wantError: "address.Validate: Address is too short",
		},
		{
			name: "latitude out of range: fail",
			addressFunc: func(userID uuid.UUID) domain.Address {
				a := randomAddress()
				a.UserID = userID
				a.Lat = 91
				return a
			},
			wantError: "address.Validate: lat must be between -90 and 90",
		},
		{
			name: "no owner: fail",
			addressFunc: func(uuid.UUID) domain.Address {
				return randomAddress()
			},
			wantError: "userID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			user := suite.fx.user(t)

			inserted, err := suite.repo.InsertAddress(t.Context(), tt.addressFunc(user.ID))
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, inserted.ID)
			assert.Equal(t, user.ID, inserted.UserID)
		})
	}
}

func (suite *addressRepositorySuite) TestDeleteAddressUsedByOrder() {
	t := suite.T()
	ctx := t.Context()

	user := suite.fx.user(t)
	address := suite.fx.address(t, user.ID)
	product := suite.fx.product(t)

	_, err := repository.NewOrder(suite.pool).InsertOrder(ctx, suite.fx.order(user, address, product))
	require.NoError(t, err)

	err = suite.repo.DeleteAddress(ctx, user.ID, address.ID)
	require.EqualError(t, err, "q.DeleteAddressByOwner: Address is used by an existing order")
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = suite.repo.DeleteAddress(ctx, user.ID, uuid.MustParse(gofakeit.UUID()))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *addressRepositorySuite) defaultIDs(userID uuid.UUID) []uuid.UUID {
	addresses, err := suite.repo.ListAddresses(suite.T().Context(), userID)
	suite.Require().NoError(err)

	return lo.FilterMap(addresses, func(a domain.Address, _ int) (uuid.UUID, bool) {
		return a.ID, a.IsDefault
	})
}
