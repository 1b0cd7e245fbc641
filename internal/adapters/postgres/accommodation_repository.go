package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/waytopg/accommodation-service/internal/domain"
	"github.com/waytopg/accommodation-service/internal/ports"
	"gorm.io/gorm"
)

type accommodationRepository struct {
	db *gorm.DB
}

func (r *accommodationRepository) Create(ctx context.Context, params ports.CreateAccommodationParams) (domain.Accommodation, error) {
	amenities := params.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	raw, err := json.Marshal(amenities)
	if err != nil {
		return domain.Accommodation{}, err
	}

	rec := accommodationModel{
		Name:        params.Name,
		Description: params.Description,
		Address:     params.Address,
		Price:       params.Price,
		Amenities:   string(raw),
		OwnerID:     params.OwnerID,
		CreatedAt:   params.CreatedAt,
		UpdatedAt:   params.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Accommodation{}, err
	}
	return toDomainAccommodation(rec), nil
}

func (r *accommodationRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Accommodation, error) {
	var rec accommodationModel
	if err := r.db.WithContext(ctx).Where("accommodation_id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Accommodation{}, domain.ErrNotFound
		}
		return domain.Accommodation{}, err
	}
	return toDomainAccommodation(rec), nil
}

func (r *accommodationRepository) List(ctx context.Context) ([]domain.Accommodation, error) {
	var recs []accommodationModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return toDomainAccommodations(recs), nil
}

func (r *accommodationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Accommodation, error) {
	var recs []accommodationModel
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return toDomainAccommodations(recs), nil
}

func toDomainAccommodations(recs []accommodationModel) []domain.Accommodation {
	out := make([]domain.Accommodation, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainAccommodation(rec))
	}
	return out
}

func toDomainAccommodation(rec accommodationModel) domain.Accommodation {
	amenities := []string{}
	// Amenities are stored as a JSON array; a malformed value degrades to
	// an empty list rather than failing the read.
	_ = json.Unmarshal([]byte(rec.Amenities), &amenities)
	return domain.Accommodation{
		AccommodationID: rec.AccommodationID,
		Name:            rec.Name,
		Description:     rec.Description,
		Address:         rec.Address,
		Price:           rec.Price,
		Amenities:       amenities,
		OwnerID:         rec.OwnerID,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}
