package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/utils"
	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/google/uuid"
)

// bookRepository is the PostgreSQL-backed implementation of [BookRepository].
// It manages catalogue records in the "books" table, including the dynamic
// keyword search and partial update queries built in sql_queries.go.
type bookRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateBook persists a new book record and returns the fully populated
// [models.Book] with server-assigned fields (BookID, CreatedAt, UpdatedAt).
// The owner (UserID) must already be set by the caller.
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	book.BookID = r.ids.Generate()
	row := r.db.QueryRowContext(ctx, createBook, book.BookID, book.Title, book.Description, book.Author, book.Price, book.Category, book.UserID)

	// create book in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error: row is nil")
		return models.Book{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved book from db
	if err := scanBook(row, &book); err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error: scanning error")
		return models.Book{}, err
	}

	return book, nil
}

// FindBookByID retrieves a single book record by its primary key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrBookNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *bookRepository) FindBookByID(ctx context.Context, bookID uuid.UUID) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	row := r.db.QueryRowContext(ctx, findBookByID, bookID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.FindBookByID").Msg("error: row is nil")
		return models.Book{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanBook(row, &book); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}
		log.Err(err).Str("func", "*bookRepository.FindBookByID").Msg("error: scanning error")
		return models.Book{}, err
	}

	return book, nil
}

// FindBooks returns one catalogue page ordered newest-first. A non-empty
// keyword narrows the result to titles containing it, case-insensitively.
func (r *bookRepository) FindBooks(ctx context.Context, keyword string, limit, offset uint64) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildBooksSearchQuery(keyword, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.FindBooks").Msg("error building search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.FindBooks").Msg("error executing search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var book models.Book
		if err := scanBook(rows, &book); err != nil {
			log.Err(err).Str("func", "*bookRepository.FindBooks").Msg("error scanning book row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.FindBooks").Msg("error iterating book rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return books, nil
}

// CountBooks returns the total number of books matching the keyword filter,
// ignoring pagination. Used alongside [bookRepository.FindBooks] so clients
// can render page controls.
func (r *bookRepository) CountBooks(ctx context.Context, keyword string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildBooksCountQuery(keyword)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.CountBooks").Msg("error building count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*bookRepository.CountBooks").Msg("error executing count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// UpdateBookByID applies a partial update to an existing book and returns the
// canonical updated record.
//
// Error handling:
//   - [sql.ErrNoRows] from the RETURNING clause → [ErrBookNotFound].
//   - Query-building failure → wrapped [ErrBuildingSQLQuery].
func (r *bookRepository) UpdateBookByID(ctx context.Context, bookID uuid.UUID, update models.BookUpdate) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildBookUpdateQuery(bookID, update)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.UpdateBookByID").Msg("error building update query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var book models.Book
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.UpdateBookByID").Msg("error: row is nil")
		return models.Book{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanBook(row, &book); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}
		log.Err(err).Str("func", "*bookRepository.UpdateBookByID").Msg("error: scanning error")
		return models.Book{}, err
	}

	return book, nil
}

// DeleteBookByID removes a book record by its primary key and returns the
// row as it was just before deletion.
//
// Error handling:
//   - [sql.ErrNoRows] from the RETURNING clause → [ErrBookNotFound].
func (r *bookRepository) DeleteBookByID(ctx context.Context, bookID uuid.UUID) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	row := r.db.QueryRowContext(ctx, deleteBookByID, bookID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBookByID").Msg("error: row is nil")
		return models.Book{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanBook(row, &book); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}
		log.Err(err).Str("func", "*bookRepository.DeleteBookByID").Msg("error: scanning error")
		return models.Book{}, err
	}

	return book, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanBook scans one book row in the [bookColumns] order.
func scanBook(row rowScanner, book *models.Book) error {
	return row.Scan(
		&book.BookID,
		&book.Title,
		&book.Description,
		&book.Author,
		&book.Price,
		&book.Category,
		&book.UserID,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
}
