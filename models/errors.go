package models

import "errors"

// Failure taxonomy shared by services and controllers. Services return
// these sentinels (possibly wrapped); controllers translate them to HTTP
// statuses without leaking internal detail.
var (
	// ErrUnauthorized covers every authentication failure: bad credentials,
	// missing/invalid/expired token, inactive or deleted subject. The causes
	// are deliberately indistinguishable to the caller.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the caller is authenticated but does not own the
	// resource it tries to mutate.
	ErrForbidden = errors.New("forbidden")

	ErrNotFound    = errors.New("not found")
	ErrEmailTaken  = errors.New("email already taken")
	ErrInvalidFile = errors.New("invalid file")

	// Token verification outcomes, internal to the auth subsystem. Both are
	// normalized to ErrUnauthorized before they reach a client.
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)
