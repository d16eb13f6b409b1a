package models

// SignUpRequest is the payload of POST /api/auth/signup.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BookCreate is the payload of POST /api/book. It deliberately has no
// owner field: ownership always comes from the authenticated identity.
type BookCreate struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
}

// BookUpdate is the payload of PUT /api/book/{id}. Every field is
// optional; nil means "leave unchanged". Like BookCreate it carries no
// owner field.
type BookUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Author      *string   `json:"author,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Category    *Category `json:"category,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u BookUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Author == nil &&
		u.Price == nil && u.Category == nil
}
