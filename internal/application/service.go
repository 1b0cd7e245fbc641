package application

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/waytopg/accommodation-service/internal/domain"
	"github.com/waytopg/accommodation-service/internal/ports"
)

// Service holds the use-cases of the accommodation platform behind ports,
// so adapters stay swappable and the flows stay unit-testable with fakes.
type Service struct {
	cfg            Config
	users          ports.UserRepository
	accommodations ports.AccommodationRepository
	bookings       ports.BookingRepository
	limiter        ports.RateLimiter
	hasher         ports.PasswordHasher
	tokenSigner    ports.TokenSigner
	nowFn          func() time.Time
}

type Dependencies struct {
	Config         Config
	Users          ports.UserRepository
	Accommodations ports.AccommodationRepository
	Bookings       ports.BookingRepository
	Limiter        ports.RateLimiter
	Hasher         ports.PasswordHasher
	TokenSigner    ports.TokenSigner
}

func NewService(deps Dependencies) *Service {
	return &Service{
		cfg:            deps.Config,
		users:          deps.Users,
		accommodations: deps.Accommodations,
		bookings:       deps.Bookings,
		limiter:        deps.Limiter,
		hasher:         deps.Hasher,
		tokenSigner:    deps.TokenSigner,
		nowFn:          func() time.Time { return time.Now().UTC() },
	}
}

// allowRate consults the limiter before any credential work. A limiter
// backend error counts as allowed: availability over strictness.
func (s *Service) allowRate(ctx context.Context, class, key string) error {
	if s.limiter == nil || key == "" {
		return nil
	}
	allowed, err := s.limiter.Allow(ctx, class, key)
	if err != nil {
		return nil
	}
	if !allowed {
		return domain.ErrRateLimited
	}
	return nil
}

func normalizeEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return "", fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	return trimmed, nil
}
