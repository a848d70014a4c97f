package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/tuffpuff/internal/domain"
)

type UserRepository interface {
	GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error)
	FindByIdentity(ctx context.Context, identity domain.Identity) (domain.User, error)
	PhoneTaken(ctx context.Context, phone string) (bool, error)
	InsertUser(ctx context.Context, user domain.User) (domain.User, error)
	LinkIdentity(ctx context.Context, userID uuid.UUID, identityUID string) (domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch domain.UserProfilePatch) (domain.User, error)
	ListUsers(ctx context.Context, pagination domain.Pagination) (domain.Page[domain.UserSummary], error)
	CountUsers(ctx context.Context) (int64, error)
}
