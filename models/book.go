package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is the fixed enumeration of book genres accepted by the API.
type Category string

const (
	CategoryAdventure Category = "Adventure"
	CategoryClassics  Category = "Classics"
	CategoryCrime     Category = "Crime"
	CategoryFantasy   Category = "Fantasy"
)

// Categories lists every valid Category value.
var Categories = []Category{
	CategoryAdventure,
	CategoryClassics,
	CategoryCrime,
	CategoryFantasy,
}

// Valid reports whether c is a member of the Category enumeration.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Book represents a single catalogue entry owned by a user.
type Book struct {
	// BookID is the server-assigned unique identifier of the book.
	BookID uuid.UUID `json:"id"`

	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`

	// UserID references the user that created the book. It is set
	// server-side from the authenticated identity and is immutable
	// after creation.
	UserID uuid.UUID `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}
