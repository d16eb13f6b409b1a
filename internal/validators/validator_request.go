package validators

import (
	"context"
	"net/mail"

	"github.com/MKhiriev/go-bookshelf/models"
)

const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldAuthor      = "author"
	FieldPrice       = "price"
	FieldCategory    = "category"
)

// minPasswordLength is the minimum accepted password length on sign up and login.
const minPasswordLength = 10

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUpRequest(ctx, value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUpRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.BookCreate:
		return v.validateBookCreate(ctx, value, fields...)
	case *models.BookCreate:
		return v.validateBookCreate(ctx, *value, fields...)

	case models.BookUpdate:
		return v.validateBookUpdate(ctx, value, fields...)
	case *models.BookUpdate:
		return v.validateBookUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	address, err := mail.ParseAddress(email)
	return err == nil && address.Address == email
}

func (v *RequestValidator) validateSignUpRequest(ctx context.Context, request models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if request.Name == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(request.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLoginRequest(ctx context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(request.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateBookCreate(ctx context.Context, request models.BookCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldAuthor, FieldPrice, FieldCategory}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title == "" {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if request.Description == "" {
				return ErrEmptyDescription
			}
		case FieldAuthor:
			if request.Author == "" {
				return ErrEmptyAuthor
			}
		case FieldPrice:
			if request.Price < 0 {
				return ErrNegativePrice
			}
		case FieldCategory:
			if !request.Category.Valid() {
				return ErrInvalidCategory
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateBookUpdate(ctx context.Context, update models.BookUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldAuthor, FieldPrice, FieldCategory}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if update.Title != nil && *update.Title == "" {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if update.Description != nil && *update.Description == "" {
				return ErrEmptyDescription
			}
		case FieldAuthor:
			if update.Author != nil && *update.Author == "" {
				return ErrEmptyAuthor
			}
		case FieldPrice:
			if update.Price != nil && *update.Price < 0 {
				return ErrNegativePrice
			}
		case FieldCategory:
			if update.Category != nil && !update.Category.Valid() {
				return ErrInvalidCategory
			}
		default:
			return ErrUnknownField
		}
	}

	if update.Empty() {
		return ErrNoFieldsToUpdate
	}

	return nil
}
