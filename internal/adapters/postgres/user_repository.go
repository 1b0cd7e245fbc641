package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/waytopg/accommodation-service/internal/domain"
	"github.com/waytopg/accommodation-service/internal/ports"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) Create(ctx context.Context, params ports.CreateUserParams) (domain.User, error) {
	rec := userModel{
		Name:                 params.Name,
		Email:                params.Email,
		PasswordHash:         params.PasswordHash,
		Role:                 string(params.Role),
		CompanyName:          nilIfEmpty(params.CompanyName),
		BusinessRegistration: nilIfEmpty(params.BusinessRegistration),
		IsApproved:           params.IsApproved,
		IsActive:             true,
		CreatedAt:            params.CreatedAt,
		UpdatedAt:            params.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrConflict
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("lower(email) = lower(?)", email).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	var recs []userModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&recs).Error; err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(recs))
	for _, rec := range recs {
		users = append(users, toDomainUser(rec))
	}
	return users, nil
}

func (r *userRepository) Approve(ctx context.Context, userID uuid.UUID, approvedAt time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"is_approved": true,
			"updated_at":  approvedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByToken joins the live-token list into the lookup so revocation and
// token age are enforced in one read. The same read serves the
// read-your-writes ordering contract: a token appended at login is visible
// to the next request because both hit the same rows.
func (r *userRepository) GetByToken(ctx context.Context, userID uuid.UUID, token string, issuedAfter time.Time) (domain.User, error) {
	var rec userModel
	err := r.db.WithContext(ctx).
		Joins("JOIN user_tokens ON user_tokens.user_id = users.user_id").
		Where("users.user_id = ? AND user_tokens.token = ? AND user_tokens.created_at > ?", userID, token, issuedAfter).
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) AppendToken(ctx context.Context, userID uuid.UUID, token string, createdAt time.Time) error {
	rec := userTokenModel{
		Token:     token,
		UserID:    userID,
		CreatedAt: createdAt,
	}
	return r.db.WithContext(ctx).Create(&rec).Error
}

func (r *userRepository) RemoveToken(ctx context.Context, userID uuid.UUID, token string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND token = ?", userID, token).
		Delete(&userTokenModel{}).Error
}

func (r *userRepository) RemoveAllTokens(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&userTokenModel{}).Error
}

func (r *userRepository) DeleteTokensIssuedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&userTokenModel{})
	return res.RowsAffected, res.Error
}

// RecordLoginFailure is a single conditional UPDATE so two concurrent failed
// logins cannot lose an increment, and the lock engages exactly at the
// threshold.
func (r *userRepository) RecordLoginFailure(ctx context.Context, userID uuid.UUID, now time.Time, threshold int, lockout time.Duration) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE users
		SET failed_login_attempts = failed_login_attempts + 1,
		    lock_until = CASE
		        WHEN failed_login_attempts + 1 >= ? THEN ?
		        ELSE lock_until
		    END,
		    updated_at = ?
		WHERE user_id = ?`,
		threshold, now.Add(lockout), now, userID,
	).Error
}

func (r *userRepository) RecordLoginSuccess(ctx context.Context, userID uuid.UUID, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"failed_login_attempts": 0,
			"lock_until":            nil,
			"last_login":            now,
			"updated_at":            now,
		}).Error
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDomainUser(rec userModel) domain.User {
	user := domain.User{
		UserID:              rec.UserID,
		Name:                rec.Name,
		Email:               rec.Email,
		PasswordHash:        rec.PasswordHash,
		Role:                domain.Role(rec.Role),
		IsApproved:          rec.IsApproved,
		IsActive:            rec.IsActive,
		LastLogin:           rec.LastLogin,
		FailedLoginAttempts: rec.FailedLoginAttempts,
		LockUntil:           rec.LockUntil,
		CreatedAt:           rec.CreatedAt,
		UpdatedAt:           rec.UpdatedAt,
	}
	if rec.CompanyName != nil {
		user.CompanyName = *rec.CompanyName
	}
	if rec.BusinessRegistration != nil {
		user.BusinessRegistration = *rec.BusinessRegistration
	}
	return user
}
