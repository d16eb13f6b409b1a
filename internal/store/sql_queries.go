package store

import (
	"github.com/MKhiriev/go-bookshelf/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const (
	createUser = `INSERT INTO users (user_id, name, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createBook = `INSERT INTO books (book_id, title, description, author, price, category, user_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING book_id, title, description, author, price, category, user_id, created_at, updated_at;`

	findBookByID = `SELECT book_id, title, description, author, price, category, user_id, created_at, updated_at
    FROM books
    WHERE book_id = $1;`

	deleteBookByID = `DELETE FROM books
    WHERE book_id = $1
    RETURNING book_id, title, description, author, price, category, user_id, created_at, updated_at;`
)

// bookColumns is the canonical column order used by every book SELECT and
// RETURNING clause. Scan destinations must follow the same order.
var bookColumns = []string{
	"book_id",
	"title",
	"description",
	"author",
	"price",
	"category",
	"user_id",
	"created_at",
	"updated_at",
}

// psql is the statement builder for PostgreSQL: $1, $2, ... placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildBooksSearchQuery builds the paginated catalogue SELECT. When keyword is
// non-empty the result set is narrowed to titles containing it,
// case-insensitively. Newest books come first so pagination stays stable as
// the catalogue grows.
func buildBooksSearchQuery(keyword string, limit, offset uint64) (string, []any, error) {
	builder := psql.
		Select(bookColumns...).
		From("books").
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset)

	if keyword != "" {
		builder = builder.Where(sq.ILike{"title": "%" + keyword + "%"})
	}

	return builder.ToSql()
}

// buildBooksCountQuery builds the COUNT(*) companion of
// [buildBooksSearchQuery] with the same keyword filter and no pagination.
func buildBooksCountQuery(keyword string) (string, []any, error) {
	builder := psql.
		Select("COUNT(*)").
		From("books")

	if keyword != "" {
		builder = builder.Where(sq.ILike{"title": "%" + keyword + "%"})
	}

	return builder.ToSql()
}

// buildBookUpdateQuery builds a partial UPDATE touching only the fields set
// in update. updated_at is always refreshed. The RETURNING clause yields the
// full updated row so the caller can respond with the canonical record.
func buildBookUpdateQuery(bookID uuid.UUID, update models.BookUpdate) (string, []any, error) {
	builder := psql.
		Update("books").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Author != nil {
		builder = builder.Set("author", *update.Author)
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}

	return builder.
		Where(sq.Eq{"book_id": bookID}).
		Suffix("RETURNING book_id, title, description, author, price, category, user_id, created_at, updated_at").
		ToSql()
}
