package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/waytopg/accommodation-service/internal/domain"
	"github.com/waytopg/accommodation-service/internal/ports"
	"gorm.io/gorm"
)

type bookingRepository struct {
	db *gorm.DB
}

func (r *bookingRepository) Create(ctx context.Context, params ports.CreateBookingParams) (domain.Booking, error) {
	rec := bookingModel{
		AccommodationID: params.AccommodationID,
		StudentID:       params.StudentID,
		CheckIn:         params.CheckIn,
		CheckOut:        params.CheckOut,
		Status:          string(domain.BookingPending),
		CreatedAt:       params.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Booking{}, err
	}
	return toDomainBooking(rec, nil), nil
}

func (r *bookingRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]domain.Booking, error) {
	var recs []bookingModel
	if err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}

	// Resolve the referenced accommodations in one query instead of per row.
	ids := make([]uuid.UUID, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.AccommodationID)
	}
	byID := make(map[uuid.UUID]domain.Accommodation, len(ids))
	if len(ids) > 0 {
		var accs []accommodationModel
		if err := r.db.WithContext(ctx).Where("accommodation_id IN ?", ids).Find(&accs).Error; err != nil {
			return nil, err
		}
		for _, acc := range accs {
			byID[acc.AccommodationID] = toDomainAccommodation(acc)
		}
	}

	out := make([]domain.Booking, 0, len(recs))
	for _, rec := range recs {
		var acc *domain.Accommodation
		if resolved, ok := byID[rec.AccommodationID]; ok {
			accCopy := resolved
			acc = &accCopy
		}
		out = append(out, toDomainBooking(rec, acc))
	}
	return out, nil
}

func toDomainBooking(rec bookingModel, acc *domain.Accommodation) domain.Booking {
	return domain.Booking{
		BookingID:       rec.BookingID,
		AccommodationID: rec.AccommodationID,
		StudentID:       rec.StudentID,
		CheckIn:         rec.CheckIn,
		CheckOut:        rec.CheckOut,
		Status:          domain.BookingStatus(rec.Status),
		CreatedAt:       rec.CreatedAt,
		Accommodation:   acc,
	}
}
