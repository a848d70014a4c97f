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
)

type userRepository struct {
	q *db.Queries
}

func NewUser(pool *pgxpool.Pool) port.UserRepository {
	return &userRepository{q: db.New(pool)}
}

func NewUserWithTx(tx pgx.Tx) port.UserRepository {
	return &userRepository{q: db.New(tx)}
}

func (r *userRepository) GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	dbUser, err := oneOrNotFound("User", "q.GetUser", func() (db.User, error) {
		return r.q.GetUser(ctx, userID)
	})
	if err != nil {
		return domain.User{}, err
	}

	return mapDBUserToDomain(dbUser), nil
}

// FindByIdentity prefers a user already linked to the subject and falls
// back to an unlinked account with the same email.
func (r *userRepository) FindByIdentity(ctx context.Context, identity domain.Identity) (domain.User, error) {
	if identity.Subject == "" {
		return domain.User{}, fmt.Errorf("identity subject is empty")
	}

	dbUser, err := oneOrNotFound("User", "q.FindUserByIdentity", func() (db.User, error) {
		return r.q.FindUserByIdentity(ctx, db.FindUserByIdentityParams{
			IdentityUid: identity.Subject,
			Email:       identity.Email,
		})
	})
	if err != nil {
		return domain.User{}, err
	}

	return mapDBUserToDomain(dbUser), nil
}

func (r *userRepository) PhoneTaken(ctx context.Context, phone string) (bool, error) {
	taken, err := r.q.PhoneTaken(ctx, phone)
	if err != nil {
		return false, fmt.Errorf("q.PhoneTaken: %w", err)
	}

	return taken, nil
}

func (r *userRepository) InsertUser(ctx context.Context, user domain.User) (domain.User, error) {
	if user.Email == "" {
		return domain.User{}, fmt.Errorf("email is empty")
	}

	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}

	dbUser, err := r.q.InsertUser(ctx, db.InsertUserParams{
		IdentityUid:   lo.EmptyableToPtr(user.IdentityUID),
		Email:         user.Email,
		Name:          user.Name,
		Phone:         user.Phone,
		Role:          string(role),
		AgeVerified:   user.AgeVerified,
		TermsAccepted: user.TermsAccepted,
	})
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return domain.User{}, fmt.Errorf("q.InsertUser: %w", &domain.ConflictError{Reason: "User already exists"})
		}
		return domain.User{}, fmt.Errorf("q.InsertUser: %w", err)
	}

	return mapDBUserToDomain(dbUser), nil
}

func (r *userRepository) LinkIdentity(ctx context.Context, userID uuid.UUID, identityUID string) (domain.User, error) {
	if identityUID == "" {
		return domain.User{}, fmt.Errorf("identityUID is empty")
	}

	dbUser, err := oneOrNotFound("User", "q.LinkUserIdentity", func() (db.User, error) {
		return r.q.LinkUserIdentity(ctx, db.LinkUserIdentityParams{ID: userID, IdentityUid: &identityUID})
	})
	if err != nil {
		return domain.User{}, err
	}

	return mapDBUserToDomain(dbUser), nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, patch domain.UserProfilePatch) (domain.User, error) {
	if err := patch.Validate(); err != nil {
		return domain.User{}, fmt.Errorf("patch.Validate: %w", err)
	}

	dbUser, err := oneOrNotFound("User", "q.UpdateUserProfile", func() (db.User, error) {
		return r.q.UpdateUserProfile(ctx, db.UpdateUserProfileParams{
			Name:  patch.Name,
			Phone: patch.Phone,
			ID:    userID,
		})
	})
	if err != nil {
		return domain.User{}, err
	}

	return mapDBUserToDomain(dbUser), nil
}

func (r *userRepository) ListUsers(ctx context.Context, pagination domain.Pagination) (domain.Page[domain.UserSummary], error) {
	page := domain.Page[domain.UserSummary]{Pagination: pagination}

	if err := pagination.Validate(); err != nil {
		return page, fmt.Errorf("pagination.Validate: %w", err)
	}

	rows, err := r.q.ListUsersWithOrderCount(ctx, db.ListUsersWithOrderCountParams{
		Limit:  int32(pagination.Limit),
		Offset: int32(pagination.Offset()),
	})
	if err != nil {
		return page, fmt.Errorf("q.ListUsersWithOrderCount: %w", err)
	}

	total, err := r.q.CountUsers(ctx)
	if err != nil {
		return page, fmt.Errorf("q.CountUsers: %w", err)
	}

	page.Total = total
	page.Items = lo.Map(rows, func(row db.ListUsersWithOrderCountRow, _ int) domain.UserSummary {
		return domain.UserSummary{
			User: mapDBUserToDomain(db.User{
				ID:            row.ID,
				IdentityUid:   row.IdentityUid,
				Email:         row.Email,
				Name:          row.Name,
				Phone:         row.Phone,
				Role:          row.Role,
				AgeVerified:   row.AgeVerified,
				TermsAccepted: row.TermsAccepted,
				CreatedAt:     row.CreatedAt,
				UpdatedAt:     row.UpdatedAt,
			}),
			OrderCount: row.OrderCount,
		}
	})

	return page, nil
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	count, err := r.q.CountUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("q.CountUsers: %w", err)
	}

	return count, nil
}

func mapDBUserToDomain(u db.User) domain.User {
	return domain.User{
		ID:            u.ID,
		IdentityUID:   lo.FromPtr(u.IdentityUid),
		Email:         u.Email,
		Name:          u.Name,
		Phone:         u.Phone,
		Role:          domain.Role(u.Role),
		AgeVerified:   u.AgeVerified,
		TermsAccepted: u.TermsAccepted,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
