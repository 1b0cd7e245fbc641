package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access tier a user belongs to. It is fixed at signup;
// there is no role-change path.
type Role string

const (
	RoleStudent Role = "student"
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
)

// ParseRole validates a client-submitted role string.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleStudent, RoleOwner, RoleAdmin:
		return Role(raw), nil
	case "":
		return RoleStudent, nil
	default:
		return "", ErrInvalidInput
	}
}

// User is the credential aggregate. The password hash never leaves the
// persistence and application layers; handlers only ever see PublicUser.
type User struct {
	UserID               uuid.UUID
	Name                 string
	Email                string
	PasswordHash         string
	Role                 Role
	CompanyName          string
	BusinessRegistration string
	IsApproved           bool
	IsActive             bool
	LastLogin            *time.Time
	FailedLoginAttempts  int
	LockUntil            *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Locked reports whether the account is under a lockout window at now.
func (u User) Locked(now time.Time) bool {
	return u.LockUntil != nil && u.LockUntil.After(now)
}

// PublicUser is the client-facing projection of a User.
type PublicUser struct {
	UserID               uuid.UUID  `json:"id"`
	Name                 string     `json:"name"`
	Email                string     `json:"email"`
	Role                 Role       `json:"role"`
	CompanyName          string     `json:"companyName,omitempty"`
	BusinessRegistration string     `json:"businessRegistration,omitempty"`
	IsApproved           bool       `json:"isApproved"`
	LastLogin            *time.Time `json:"lastLogin,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
}

// Public strips credential state from a User.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:               u.UserID,
		Name:                 u.Name,
		Email:                u.Email,
		Role:                 u.Role,
		CompanyName:          u.CompanyName,
		BusinessRegistration: u.BusinessRegistration,
		IsApproved:           u.IsApproved,
		LastLogin:            u.LastLogin,
		CreatedAt:            u.CreatedAt,
	}
}

// SessionToken is one entry of a user's live-token list. A signed JWT is
// accepted only while its entry exists and is younger than the token TTL,
// which is what makes server-side revocation possible.
type SessionToken struct {
	Token     string
	UserID    uuid.UUID
	CreatedAt time.Time
}
