package config

import "errors"

var (
	// ErrNoTokenSignKey is returned when no JWT signing key was provided
	// by any configuration source. The server cannot issue or verify
	// tokens without it.
	ErrNoTokenSignKey = errors.New("token sign key is not specified")

	// ErrNoDatabaseDSN is returned when no database connection string was
	// provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is not specified")

	// ErrInvalidPageSize is returned when the configured catalogue page
	// size is not a positive integer.
	ErrInvalidPageSize = errors.New("page size must be a positive integer")
)
