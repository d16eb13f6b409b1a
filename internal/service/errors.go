package service

import "errors"

var (
	// ErrInvalidCredentials is returned on any login failure, whether the
	// email is unknown or the password does not match. A single message for
	// both cases keeps account enumeration impossible.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidBookID is returned when a request carries a book ID that is
	// not a well-formed UUID. Checked before any storage access.
	ErrInvalidBookID = errors.New("invalid book ID")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
