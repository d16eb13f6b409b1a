package store

import (
	"context"

	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// CreateUser saves a new user and returns the stored record with
	// server-assigned fields populated. Returns [ErrEmailAlreadyExists]
	// when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by email. Returns [ErrUserNotFound]
	// when no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// BookRepository persists and retrieves catalogue records.
type BookRepository interface {
	// CreateBook saves a new book and returns the stored record with
	// server-assigned fields populated.
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)

	// FindBookByID looks up a book by its ID. Returns [ErrBookNotFound]
	// when no such book exists.
	FindBookByID(ctx context.Context, bookID uuid.UUID) (models.Book, error)

	// FindBooks returns one page of books ordered newest-first, optionally
	// filtered by a case-insensitive title keyword.
	FindBooks(ctx context.Context, keyword string, limit, offset uint64) ([]models.Book, error)

	// CountBooks returns the total number of books matching the keyword
	// filter, ignoring pagination.
	CountBooks(ctx context.Context, keyword string) (int64, error)

	// UpdateBookByID applies a partial update and returns the updated
	// record. Returns [ErrBookNotFound] when no such book exists.
	UpdateBookByID(ctx context.Context, bookID uuid.UUID, update models.BookUpdate) (models.Book, error)

	// DeleteBookByID removes a book and returns the deleted record.
	// Returns [ErrBookNotFound] when no such book exists.
	DeleteBookByID(ctx context.Context, bookID uuid.UUID) (models.Book, error)
}
