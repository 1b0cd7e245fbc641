package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/waytopg/accommodation-service/internal/domain"
)

// ListUsers returns every account, sanitized. Route access is admin-gated
// at the HTTP layer.
func (s *Service) ListUsers(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		result = append(result, u.Public())
	}
	return result, nil
}

// ApproveOwner flips the approval flag that gates owner login. A missing
// user and a non-owner user are both a 404, matching the lookup contract.
func (s *Service) ApproveOwner(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleOwner {
		return domain.ErrNotFound
	}
	return s.users.Approve(ctx, userID, s.nowFn())
}
