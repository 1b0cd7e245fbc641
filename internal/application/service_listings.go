package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/waytopg/accommodation-service/internal/domain"
	"github.com/waytopg/accommodation-service/internal/ports"
)

func (s *Service) CreateAccommodation(ctx context.Context, ownerID uuid.UUID, req CreateAccommodationRequest) (domain.Accommodation, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.Accommodation{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Description) == "" {
		return domain.Accommodation{}, fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Address) == "" {
		return domain.Accommodation{}, fmt.Errorf("%w: address is required", domain.ErrInvalidInput)
	}
	if req.Price <= 0 {
		return domain.Accommodation{}, fmt.Errorf("%w: price must be positive", domain.ErrInvalidInput)
	}

	return s.accommodations.Create(ctx, ports.CreateAccommodationParams{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Address:     strings.TrimSpace(req.Address),
		Price:       req.Price,
		Amenities:   req.Amenities,
		OwnerID:     ownerID,
		CreatedAt:   s.nowFn(),
	})
}

func (s *Service) ListAccommodations(ctx context.Context) ([]domain.Accommodation, error) {
	return s.accommodations.List(ctx)
}

func (s *Service) GetAccommodation(ctx context.Context, id uuid.UUID) (domain.Accommodation, error) {
	return s.accommodations.GetByID(ctx, id)
}

func (s *Service) ListOwnerAccommodations(ctx context.Context, ownerID uuid.UUID) ([]domain.Accommodation, error) {
	return s.accommodations.ListByOwner(ctx, ownerID)
}

func (s *Service) CreateBooking(ctx context.Context, studentID uuid.UUID, req CreateBookingRequest) (domain.Booking, error) {
	accommodationID, err := uuid.Parse(strings.TrimSpace(req.AccommodationID))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("%w: invalid accommodation id", domain.ErrInvalidInput)
	}
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return domain.Booking{}, fmt.Errorf("%w: checkIn and checkOut are required", domain.ErrInvalidInput)
	}
	if !req.CheckOut.After(req.CheckIn) {
		return domain.Booking{}, fmt.Errorf("%w: checkOut must be after checkIn", domain.ErrInvalidInput)
	}

	// The listing must exist before the booking row is written; a dangling
	// booking would surface to the student as an empty accommodation.
	if _, err := s.accommodations.GetByID(ctx, accommodationID); err != nil {
		return domain.Booking{}, err
	}

	return s.bookings.Create(ctx, ports.CreateBookingParams{
		AccommodationID: accommodationID,
		StudentID:       studentID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		CreatedAt:       s.nowFn(),
	})
}

func (s *Service) ListStudentBookings(ctx context.Context, studentID uuid.UUID) ([]domain.Booking, error) {
	return s.bookings.ListByStudent(ctx, studentID)
}
