package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain lets adapters map it consistently to 404.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials hides whether the email, password or submitted
	// role failed, so lookups cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountLocked signals temporary lockout after repeated failed
	// attempts, independent of whether the submitted password was correct.
	ErrAccountLocked = errors.New("account locked")
	// ErrPendingApproval is returned for owner accounts an admin has not
	// approved yet. Distinguishable from bad credentials (403 vs 401).
	ErrPendingApproval = errors.New("account pending approval")
	// ErrNoToken means no bearer token was found in header, cookie or query.
	ErrNoToken = errors.New("no token provided")
	// ErrInvalidToken covers malformed tokens and bad signatures.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is kept separate from ErrInvalidToken so expiry is
	// checked explicitly even though the JWT library also rejects it.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenRevoked covers both logout-invalidated tokens and deleted
	// users; callers cannot tell the two apart.
	ErrTokenRevoked = errors.New("user not found or token invalidated")
	// ErrForbidden signals a role not permitted on the route, or a bad
	// admin signup code.
	ErrForbidden    = errors.New("insufficient permissions")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrRateLimited  = errors.New("rate limited")
)
