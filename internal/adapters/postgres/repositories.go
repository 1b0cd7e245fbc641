package postgres

import (
	"errors"

	"github.com/waytopg/accommodation-service/internal/ports"
	"gorm.io/gorm"
)

type Repositories struct {
	Users          ports.UserRepository
	Accommodations ports.AccommodationRepository
	Bookings       ports.BookingRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:          &userRepository{db: db},
		Accommodations: &accommodationRepository{db: db},
		Bookings:       &bookingRepository{db: db},
	}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
