package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID            uuid.UUID
	IdentityUID   string
	Email         string
	Name          string
	Phone         string
	Role          Role
	AgeVerified   bool
	TermsAccepted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSummary is the admin listing row.
type UserSummary struct {
	User
	OrderCount int64
}

// Identity is what the identity provider vouches for after token verification.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

type UserProfilePatch struct {
	Name  *string
	Phone *string
}

func (p UserProfilePatch) Validate() error {
	if p.Name != nil && (len(*p.Name) < 2 || len(*p.Name) > 100) {
		return InvalidRequest("name must be 2-100 characters")
	}
	if p.Phone != nil && len(*p.Phone) < 10 {
		return InvalidRequest("phone must be at least 10 characters")
	}
	return nil
}
