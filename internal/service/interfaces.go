package service

import (
	"context"

	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/google/uuid"
)

type AuthService interface {
	// SignUp registers a new user and returns a freshly issued token.
	SignUp(ctx context.Context, request models.SignUpRequest) (models.Token, error)

	// Login authenticates an existing user by email and password and
	// returns a freshly issued token.
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the identity it
	// carries.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type BookService interface {
	// Create adds a new book to the catalogue attributed to ownerID.
	Create(ctx context.Context, create models.BookCreate, ownerID uuid.UUID) (models.Book, error)

	// FindAll returns one catalogue page plus total match count. Pages are
	// 1-based; out-of-range pages yield an empty slice, never an error.
	FindAll(ctx context.Context, keyword string, page int) ([]models.Book, int64, error)

	// FindByID returns a single book. The ID is checked for UUID validity
	// before any storage access.
	FindByID(ctx context.Context, bookID string) (models.Book, error)

	// UpdateByID applies a partial update and returns the updated book.
	UpdateByID(ctx context.Context, bookID string, update models.BookUpdate) (models.Book, error)

	// DeleteByID removes a book from the catalogue and returns the record
	// as it was just before deletion.
	DeleteByID(ctx context.Context, bookID string) (models.Book, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
