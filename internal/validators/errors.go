package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password is too short")

	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrEmptyAuthor      = errors.New("author is required")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidCategory  = errors.New("invalid book category")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
