package postgres

import (
	"time"

	"github.com/google/uuid"
)

type userModel struct {
	UserID               uuid.UUID  `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name                 string     `gorm:"column:name"`
	Email                string     `gorm:"column:email"`
	PasswordHash         string     `gorm:"column:password_hash"`
	Role                 string     `gorm:"column:role"`
	CompanyName          *string    `gorm:"column:company_name"`
	BusinessRegistration *string    `gorm:"column:business_registration"`
	IsApproved           bool       `gorm:"column:is_approved"`
	IsActive             bool       `gorm:"column:is_active"`
	LastLogin            *time.Time `gorm:"column:last_login"`
	FailedLoginAttempts  int        `gorm:"column:failed_login_attempts"`
	LockUntil            *time.Time `gorm:"column:lock_until"`
	CreatedAt            time.Time  `gorm:"column:created_at"`
	UpdatedAt            time.Time  `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type userTokenModel struct {
	Token     string    `gorm:"column:token;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (userTokenModel) TableName() string { return "user_tokens" }

type accommodationModel struct {
	AccommodationID uuid.UUID `gorm:"column:accommodation_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string    `gorm:"column:name"`
	Description     string    `gorm:"column:description"`
	Address         string    `gorm:"column:address"`
	Price           float64   `gorm:"column:price"`
	Amenities       string    `gorm:"column:amenities;type:jsonb"`
	OwnerID         uuid.UUID `gorm:"column:owner_id"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (accommodationModel) TableName() string { return "accommodations" }

type bookingModel struct {
	BookingID       uuid.UUID `gorm:"column:booking_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AccommodationID uuid.UUID `gorm:"column:accommodation_id"`
	StudentID       uuid.UUID `gorm:"column:student_id"`
	CheckIn         time.Time `gorm:"column:check_in"`
	CheckOut        time.Time `gorm:"column:check_out"`
	Status          string    `gorm:"column:status"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }
