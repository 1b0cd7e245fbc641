package domain

import (
	"time"

	"github.com/google/uuid"
)

// Accommodation is a listing owned by an owner-role user.
type Accommodation struct {
	AccommodationID uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Address         string    `json:"address"`
	Price           float64   `json:"price"`
	Amenities       []string  `json:"amenities"`
	OwnerID         uuid.UUID `json:"ownerId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BookingStatus tracks the booking lifecycle. New bookings start pending;
// the owner or an admin moves them to confirmed or cancelled.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a student's reservation of an accommodation for a date range.
type Booking struct {
	BookingID       uuid.UUID      `json:"id"`
	AccommodationID uuid.UUID      `json:"accommodationId"`
	StudentID       uuid.UUID      `json:"studentId"`
	CheckIn         time.Time      `json:"checkIn"`
	CheckOut        time.Time      `json:"checkOut"`
	Status          BookingStatus  `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
	Accommodation   *Accommodation `json:"accommodation,omitempty"`
}
