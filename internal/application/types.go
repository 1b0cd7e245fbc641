package application

import (
	"time"

	"github.com/waytopg/accommodation-service/internal/domain"
)

type Config struct {
	TokenTTL             time.Duration
	FailedLoginThreshold int
	LockoutDuration      time.Duration
	AdminSignupCode      string
	LoginRateLimit       int
	SignupRateLimit      int
	RateLimitWindow      time.Duration
}

type SignupRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	Role                 string `json:"role"`
	CompanyName          string `json:"companyName"`
	BusinessRegistration string `json:"businessRegistration"`
	AdminCode            string `json:"adminCode"`

	// Filled by the HTTP layer, not the client body.
	IPAddress string `json:"-"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	IPAddress string `json:"-"`
}

// AuthResponse is the shared shape of signup and login successes.
type AuthResponse struct {
	Token string            `json:"token"`
	Role  domain.Role       `json:"role"`
	User  domain.PublicUser `json:"user"`
}

type CreateAccommodationRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Price       float64  `json:"price"`
	Amenities   []string `json:"amenities"`
}

type CreateBookingRequest struct {
	AccommodationID string    `json:"accommodation"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
}
