package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookshelf/internal/config"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/store"
	"github.com/MKhiriev/go-bookshelf/internal/validators"
	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/google/uuid"
)

// bookService is the concrete implementation of BookService. It enforces
// request validation and ID well-formedness before touching the repository,
// and owns the fixed-page-size pagination rules of the catalogue.
type bookService struct {
	bookRepository store.BookRepository
	validator      validators.Validator

	// pageSize is the fixed number of books per catalogue page.
	pageSize int

	logger *logger.Logger
}

// NewBookService constructs a BookService wired to the given BookRepository.
func NewBookService(bookRepository store.BookRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		validator:      validator,
		pageSize:       cfg.PageSize,
		logger:         logger,
	}
}

// Create validates the payload, attributes the new book to ownerID and
// persists it. The owner always comes from the authenticated identity, never
// from the request body.
func (b *bookService) Create(ctx context.Context, create models.BookCreate, ownerID uuid.UUID) (models.Book, error) {
	log := logger.FromContext(ctx)

	if err := b.validator.Validate(ctx, create); err != nil {
		log.Err(err).Str("title", create.Title).Msg("invalid book create request")
		return models.Book{}, err
	}

	book := models.Book{
		Title:       create.Title,
		Description: create.Description,
		Author:      create.Author,
		Price:       create.Price,
		Category:    create.Category,
		UserID:      ownerID,
	}

	createdBook, err := b.bookRepository.CreateBook(ctx, book)
	if err != nil {
		log.Err(err).Str("title", create.Title).Msg("book creation ended with error")
		return models.Book{}, fmt.Errorf("book creation ended with error: %w", err)
	}

	return createdBook, nil
}

// FindAll returns one catalogue page plus the total number of matches.
//
// Pages are 1-based; zero and negative values are normalised to the first
// page. A page past the end of the result set yields an empty slice and the
// true total, never an error.
func (b *bookService) FindAll(ctx context.Context, keyword string, page int) ([]models.Book, int64, error) {
	log := logger.FromContext(ctx)

	if page < 1 {
		page = 1
	}

	limit := uint64(b.pageSize)
	offset := uint64(page-1) * limit

	books, err := b.bookRepository.FindBooks(ctx, keyword, limit, offset)
	if err != nil {
		log.Err(err).Str("keyword", keyword).Int("page", page).Msg("book search failed")
		return nil, 0, fmt.Errorf("book search failed: %w", err)
	}

	total, err := b.bookRepository.CountBooks(ctx, keyword)
	if err != nil {
		log.Err(err).Str("keyword", keyword).Msg("book count failed")
		return nil, 0, fmt.Errorf("book count failed: %w", err)
	}

	// an empty page serialises as [] rather than null
	if books == nil {
		books = []models.Book{}
	}

	return books, total, nil
}

// FindByID returns a single book by its ID.
//
// An ID that is not a well-formed UUID yields ErrInvalidBookID without any
// storage access; a well-formed ID with no matching record yields
// store.ErrBookNotFound.
func (b *bookService) FindByID(ctx context.Context, bookID string) (models.Book, error) {
	log := logger.FromContext(ctx)

	id, err := uuid.Parse(bookID)
	if err != nil {
		log.Warn().Str("bookID", bookID).Msg("malformed book ID")
		return models.Book{}, ErrInvalidBookID
	}

	book, err := b.bookRepository.FindBookByID(ctx, id)
	if err != nil {
		log.Err(err).Str("bookID", bookID).Msg("book search by ID failed")
		return models.Book{}, fmt.Errorf("book search by ID failed: %w", err)
	}

	return book, nil
}

// UpdateByID applies a partial update to an existing book and returns the
// updated record. ID well-formedness is checked before existence.
func (b *bookService) UpdateByID(ctx context.Context, bookID string, update models.BookUpdate) (models.Book, error) {
	log := logger.FromContext(ctx)

	id, err := uuid.Parse(bookID)
	if err != nil {
		log.Warn().Str("bookID", bookID).Msg("malformed book ID")
		return models.Book{}, ErrInvalidBookID
	}

	if err := b.validator.Validate(ctx, update); err != nil {
		log.Err(err).Str("bookID", bookID).Msg("invalid book update request")
		return models.Book{}, err
	}

	updatedBook, err := b.bookRepository.UpdateBookByID(ctx, id, update)
	if err != nil {
		log.Err(err).Str("bookID", bookID).Msg("book update ended with error")
		return models.Book{}, fmt.Errorf("book update ended with error: %w", err)
	}

	return updatedBook, nil
}

// DeleteByID removes a book from the catalogue and returns the record as it
// was just before deletion. ID well-formedness is checked before existence;
// deleting an already deleted book yields store.ErrBookNotFound.
func (b *bookService) DeleteByID(ctx context.Context, bookID string) (models.Book, error) {
	log := logger.FromContext(ctx)

	id, err := uuid.Parse(bookID)
	if err != nil {
		log.Warn().Str("bookID", bookID).Msg("malformed book ID")
		return models.Book{}, ErrInvalidBookID
	}

	deletedBook, err := b.bookRepository.DeleteBookByID(ctx, id)
	if err != nil {
		log.Err(err).Str("bookID", bookID).Msg("book deletion ended with error")
		return models.Book{}, fmt.Errorf("book deletion ended with error: %w", err)
	}

	return deletedBook, nil
}
