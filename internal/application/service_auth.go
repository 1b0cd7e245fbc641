package application

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/waytopg/accommodation-service/internal/domain"
	"github.com/waytopg/accommodation-service/internal/ports"
)

const (
	rateClassLogin  = "login"
	rateClassSignup = "signup"
)

func (s *Service) Signup(ctx context.Context, req SignupRequest) (AuthResponse, error) {
	if err := s.allowRate(ctx, rateClassSignup, req.IPAddress); err != nil {
		return AuthResponse{}, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return AuthResponse{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return AuthResponse{}, err
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		return AuthResponse{}, err
	}
	role, err := domain.ParseRole(strings.TrimSpace(req.Role))
	if err != nil {
		return AuthResponse{}, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, req.Role)
	}

	params := ports.CreateUserParams{
		Name:       strings.TrimSpace(req.Name),
		Email:      email,
		Role:       role,
		IsApproved: true,
		CreatedAt:  s.nowFn(),
	}
	switch role {
	case domain.RoleOwner:
		if strings.TrimSpace(req.CompanyName) == "" {
			return AuthResponse{}, fmt.Errorf("%w: companyName is required for owners", domain.ErrInvalidInput)
		}
		if strings.TrimSpace(req.BusinessRegistration) == "" {
			return AuthResponse{}, fmt.Errorf("%w: businessRegistration is required for owners", domain.ErrInvalidInput)
		}
		params.CompanyName = strings.TrimSpace(req.CompanyName)
		params.BusinessRegistration = strings.TrimSpace(req.BusinessRegistration)
		// Owners wait for an admin to approve before they can log in.
		params.IsApproved = false
	case domain.RoleAdmin:
		if subtle.ConstantTimeCompare([]byte(req.AdminCode), []byte(s.cfg.AdminSignupCode)) != 1 {
			return AuthResponse{}, fmt.Errorf("%w: invalid admin code", domain.ErrForbidden)
		}
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}
	params.PasswordHash = passwordHash

	user, err := s.users.Create(ctx, params)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return AuthResponse{}, fmt.Errorf("%w: email already in use", domain.ErrConflict)
		}
		return AuthResponse{}, err
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{Token: token, Role: user.Role, User: user.Public()}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	if err := s.allowRate(ctx, rateClassLogin, req.IPAddress); err != nil {
		return AuthResponse{}, err
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return AuthResponse{}, err
	}
	if req.Password == "" {
		return AuthResponse{}, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}
	role, err := domain.ParseRole(strings.TrimSpace(req.Role))
	if err != nil {
		return AuthResponse{}, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, req.Role)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Same response as a wrong password; lookups must not reveal
		// whether the email exists.
		return AuthResponse{}, domain.ErrInvalidCredentials
	}

	now := s.nowFn()
	if user.Locked(now) {
		return AuthResponse{}, domain.ErrAccountLocked
	}
	if !user.IsActive {
		return AuthResponse{}, domain.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if recErr := s.users.RecordLoginFailure(ctx, user.UserID, now, s.cfg.FailedLoginThreshold, s.cfg.LockoutDuration); recErr != nil {
			s.logger().WarnContext(ctx, "record login failure",
				"operation", "login",
				"outcome", "failure",
				"error", recErr.Error(),
			)
		}
		return AuthResponse{}, domain.ErrInvalidCredentials
	}

	// Role is checked after the password so a role mismatch cannot confirm
	// account existence any faster than a wrong password does. The client
	// still gets the generic message; the mismatch is only logged.
	if user.Role != role {
		s.logger().WarnContext(ctx, "login role mismatch",
			"operation", "login",
			"outcome", "failure",
			"submitted_role", string(role),
		)
		return AuthResponse{}, domain.ErrInvalidCredentials
	}

	if user.Role == domain.RoleOwner && !user.IsApproved {
		return AuthResponse{}, domain.ErrPendingApproval
	}

	if err := s.users.RecordLoginSuccess(ctx, user.UserID, now); err != nil {
		return AuthResponse{}, err
	}
	user.LastLogin = &now
	user.FailedLoginAttempts = 0

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{Token: token, Role: user.Role, User: user.Public()}, nil
}

// issueToken signs a bearer token and appends it to the user's live-token
// list. A signed token that never made it into the list is rejected by
// Authenticate, so a failed append fails closed.
func (s *Service) issueToken(ctx context.Context, user domain.User) (string, error) {
	now := s.nowFn()
	token, err := s.tokenSigner.Sign(ports.AuthClaims{
		UserID:    user.UserID,
		Email:     user.Email,
		Role:      user.Role,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	})
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	if err := s.users.AppendToken(ctx, user.UserID, token, now); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	return token, nil
}

// Authenticate resolves a raw bearer token to a user. The ladder is:
// signature, explicit expiry, then membership in the user's live-token list.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (domain.User, ports.AuthClaims, error) {
	claims, err := s.verifySignedToken(rawToken)
	if err != nil {
		return domain.User{}, ports.AuthClaims{}, err
	}

	now := s.nowFn()
	user, err := s.users.GetByToken(ctx, claims.UserID, rawToken, now.Add(-s.cfg.TokenTTL))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, ports.AuthClaims{}, domain.ErrTokenRevoked
		}
		return domain.User{}, ports.AuthClaims{}, fmt.Errorf("token lookup: %w", err)
	}
	return user, claims, nil
}

// Logout removes exactly the presented token from the user's list. Other
// tokens issued to the same user stay valid. Only signature and expiry are
// verified here, not list membership, so repeated logouts stay idempotent.
func (s *Service) Logout(ctx context.Context, rawToken string) error {
	claims, err := s.verifySignedToken(rawToken)
	if err != nil {
		return err
	}
	return s.users.RemoveToken(ctx, claims.UserID, rawToken)
}

// LogoutAll clears the entire token list. Idempotent: an already-empty list
// is not an error.
func (s *Service) LogoutAll(ctx context.Context, rawToken string) error {
	claims, err := s.verifySignedToken(rawToken)
	if err != nil {
		return err
	}
	return s.users.RemoveAllTokens(ctx, claims.UserID)
}

func (s *Service) verifySignedToken(rawToken string) (ports.AuthClaims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return ports.AuthClaims{}, domain.ErrNoToken
	}
	claims, err := s.tokenSigner.ParseAndValidate(rawToken)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return ports.AuthClaims{}, domain.ErrTokenExpired
		}
		return ports.AuthClaims{}, domain.ErrInvalidToken
	}
	if !claims.ExpiresAt.After(s.nowFn()) {
		return ports.AuthClaims{}, domain.ErrTokenExpired
	}
	return claims, nil
}

func (s *Service) logger() *slog.Logger {
	return slog.Default().With("module", "application", "layer", "service")
}
