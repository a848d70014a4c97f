package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
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

type userRepositorySuite struct {
	suite.Suite

	repo      port.UserRepository
	pool      *pgxpool.Pool
	container testcontainers.Container
	fx        fixtures
}

func TestUserRepositorySuite(t *testing.T) {
	defer goleak.VerifyNone(t)

	suite.Run(t, new(userRepositorySuite))
}

func (suite *userRepositorySuite) SetupSuite() {
	var err error

	suite.container, suite.pool, err = pgtest.Start(suite.T().Context())
	suite.Require().NoError(err)

	suite.repo = repository.NewUser(suite.pool)
	suite.fx = fixtures{pool: suite.pool}
}

func (suite *userRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(suite.T().Context()))
	}
}

func (suite *userRepositorySuite) TearDownTest() {
	suite.NoError(pgtest.Truncate(suite.T().Context(), suite.pool))
}

func (suite *userRepositorySuite) TestInsertUser() {
	existing := suite.fx.user(suite.T())

	tests := []struct {
		name      string
		userFunc  func() domain.User
		wantError string
	}{
		{
			name:     "valid user: ok",
			userFunc: randomUser,
		},
		{
			name: "no role defaults to USER: ok",
			userFunc: func() domain.User {
				u := randomUser()
				u.Role = ""
				return u
			},
		},
		{
			name: "duplicate email: conflict",
			userFunc: func() domain.User {
				u := randomUser()
				u.Email = existing.Email
				return u
			},
			wantError: "q.InsertUser: User already exists",
		},
		{
			name: "no email: error",
			userFunc: func() domain.User {
				u := randomUser()
				u.Email = ""
				return u
			},
			wantError: "email is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			expected := tt.userFunc()

			inserted, err := suite.repo.InsertUser(ctx, expected)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			actual, err := suite.repo.GetUser(ctx, inserted.ID)
			require.NoError(t, err)

			expected.ID = inserted.ID
			expected.Role = domain.RoleUser
			diff := cmp.Diff(expected, actual, cmpopts.IgnoreFields(domain.User{}, "CreatedAt", "UpdatedAt"))
			assert.Empty(t, diff)
		})
	}
}

func (suite *userRepositorySuite) TestFindByIdentity() {
	t := suite.T()
	ctx := t.Context()

	linked := suite.fx.user(t)

	unlinked := randomUser()
	unlinked.IdentityUID = ""
	unlinked, err := suite.repo.InsertUser(ctx, unlinked)
	require.NoError(t, err)

	tests := []struct {
		name      string
		identity  domain.Identity
		wantID    uuid.UUID
		wantError string
	}{
		{
			name:     "by subject: ok",
			identity: domain.Identity{Subject: linked.IdentityUID},
			wantID:   linked.ID,
		},
		{
			name:     "subject wins over email: ok",
			identity: domain.Identity{Subject: linked.IdentityUID, Email: unlinked.Email},
			wantID:   linked.ID,
		},
		{
			name:     "unknown subject, known email: ok",
			identity: domain.Identity{Subject: gofakeit.UUID(), Email: unlinked.Email},
			wantID:   unlinked.ID,
		},
		{
			name:      "unknown subject and email: not found",
			identity:  domain.Identity{Subject: gofakeit.UUID(), Email: gofakeit.Email()},
			wantError: "q.FindUserByIdentity: User not found",
		},
		{
			name:      "empty subject: error",
			identity:  domain.Identity{Email: unlinked.Email},
			wantError: "identity subject is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			user, err := suite.repo.FindByIdentity(t.Context(), tt.identity)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
		})
	}

	subject := gofakeit.UUID()
	relinked, err := suite.repo.LinkIdentity(ctx, unlinked.ID, subject)
	require.NoError(t, err)
	assert.Equal(t, subject, relinked.IdentityUID)
}

func (suite *userRepositorySuite) TestUpdateProfile() {
	t := suite.T()
	ctx := t.Context()

	user := suite.fx.user(t)

	updated, err := suite.repo.UpdateProfile(ctx, user.ID, domain.UserProfilePatch{Name: lo.ToPtr("New Name")})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, user.Phone, updated.Phone, "nil fields are kept")

	_, err = suite.repo.UpdateProfile(ctx, user.ID, domain.UserProfilePatch{Phone: lo.ToPtr("123")})
	require.EqualError(t, err, "patch.Validate: phone must be at least 10 characters")

	_, err = suite.repo.UpdateProfile(ctx, uuid.MustParse(gofakeit.UUID()), domain.UserProfilePatch{Name: lo.ToPtr("Nobody")})
	require.EqualError(t, err, "q.UpdateUserProfile: User not found")

	taken, err := suite.repo.PhoneTaken(ctx, user.Phone)
	require.NoError(t, err)
	assert.True(t, taken)
}

func (suite *userRepositorySuite) TestListUsers() {
	t := suite.T()
	ctx := t.Context()

	buyer := suite.fx.user(t)
	suite.fx.user(t)
	address := suite.fx.address(t, buyer.ID)
	product := suite.fx.product(t)

	orders := repository.NewOrder(suite.pool)
	for range 2 {
		_, err := orders.InsertOrder(ctx, suite.fx.order(buyer, address, product))
		require.NoError(t, err)
	}

	page, err := suite.repo.ListUsers(ctx, domain.Pagination{Page: 1, Limit: 20})
	require.NoError(t, err)

	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 2)

	counts := lo.SliceToMap(page.Items, func(u domain.UserSummary) (uuid.UUID, int64) { return u.ID, u.OrderCount })
	assert.Equal(t, int64(2), counts[buyer.ID])

	total, err := suite.repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, err = suite.repo.ListUsers(ctx, domain.Pagination{})
	require.EqualError(t, err, "pagination.Validate: page must be positive")
}
