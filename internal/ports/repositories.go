package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/waytopg/accommodation-service/internal/domain"
)

// CreateUserParams captures signup inputs after validation and hashing.
// Role-conditioned fields are already resolved; owners arrive unapproved.
type CreateUserParams struct {
	Name                 string
	Email                string
	PasswordHash         string
	Role                 domain.Role
	CompanyName          string
	BusinessRegistration string
	IsApproved           bool
	CreatedAt            time.Time
}

// UserRepository defines persistence for user credentials and the per-user
// live-token list. Token append/remove and failure bookkeeping are single
// atomic statements so concurrent logins cannot lose updates.
type UserRepository interface {
	Create(ctx context.Context, params CreateUserParams) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Approve(ctx context.Context, userID uuid.UUID, approvedAt time.Time) error

	// GetByToken resolves a user only when the token is still listed for it
	// and was issued after issuedAfter. This is the revocation-list lookup.
	GetByToken(ctx context.Context, userID uuid.UUID, token string, issuedAfter time.Time) (domain.User, error)
	AppendToken(ctx context.Context, userID uuid.UUID, token string, createdAt time.Time) error
	RemoveToken(ctx context.Context, userID uuid.UUID, token string) error
	RemoveAllTokens(ctx context.Context, userID uuid.UUID) error
	// DeleteTokensIssuedBefore sweeps expired token entries; the verifier
	// also checks age on read, so the sweep is housekeeping, not correctness.
	DeleteTokensIssuedBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// RecordLoginFailure increments the consecutive-failure counter and sets
	// lock_until once the counter reaches threshold, in one conditional write.
	RecordLoginFailure(ctx context.Context, userID uuid.UUID, now time.Time, threshold int, lockout time.Duration) error
	// RecordLoginSuccess clears the failure counter and stamps last_login.
	RecordLoginSuccess(ctx context.Context, userID uuid.UUID, now time.Time) error
}

// CreateAccommodationParams captures a validated listing submission.
type CreateAccommodationParams struct {
	Name        string
	Description string
	Address     string
	Price       float64
	Amenities   []string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
}

type AccommodationRepository interface {
	Create(ctx context.Context, params CreateAccommodationParams) (domain.Accommodation, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Accommodation, error)
	List(ctx context.Context) ([]domain.Accommodation, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Accommodation, error)
}

// CreateBookingParams captures a validated booking submission.
type CreateBookingParams struct {
	AccommodationID uuid.UUID
	StudentID       uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	CreatedAt       time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, params CreateBookingParams) (domain.Booking, error)
	// ListByStudent returns the student's bookings with the accommodation
	// resolved, newest first.
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]domain.Booking, error)
}
