package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/tuffpuff/internal/domain"
	"github.com/nikolayk812/tuffpuff/internal/port"
)

const defaultUserName = "TuffPuff User"

type SyncRequest struct {
	Name          string
	Phone         string
	AgeVerified   bool
	TermsAccepted bool
}

type Syncer struct {
	users port.UserRepository
}

func NewSyncer(users port.UserRepository) *Syncer {
	return &Syncer{users: users}
}

// Sync returns the user linked to identity, linking an existing account
// with the same email or creating a new one. New users always get the
// USER role; admins are granted out of band.
func (s *Syncer) Sync(ctx context.Context, identity domain.Identity, req SyncRequest) (_ domain.User, created bool, _ error) {
	existing, err := s.users.FindByIdentity(ctx, identity)
	switch {
	case err == nil:
		if existing.IdentityUID == identity.Subject {
			return existing, false, nil
		}
		linked, err := s.users.LinkIdentity(ctx, existing.ID, identity.Subject)
		if err != nil {
			return domain.User{}, false, fmt.Errorf("users.LinkIdentity: %w", err)
		}
		return linked, false, nil
	case !errors.Is(err, domain.ErrNotFound):
		return domain.User{}, false, fmt.Errorf("users.FindByIdentity: %w", err)
	}

	if req.Phone != "" {
		taken, err := s.users.PhoneTaken(ctx, req.Phone)
		if err != nil {
			return domain.User{}, false, fmt.Errorf("users.PhoneTaken: %w", err)
		}
		if taken {
			return domain.User{}, false, &domain.ConflictError{Reason: "Phone number already in use"}
		}
	}

	if identity.Email == "" {
		return domain.User{}, false, domain.InvalidRequest("token carries no email")
	}

	name := req.Name
	if name == "" {
		name = identity.Name
	}
	if name == "" {
		name = defaultUserName
	}

	user, err := s.users.InsertUser(ctx, domain.User{
		IdentityUID:   identity.Subject,
		Email:         identity.Email,
		Name:          name,
		Phone:         req.Phone,
		Role:          domain.RoleUser,
		AgeVerified:   req.AgeVerified,
		TermsAccepted: req.TermsAccepted,
	})
	if err != nil {
		return domain.User{}, false, fmt.Errorf("users.InsertUser: %w", err)
	}

	return user, true, nil
}
