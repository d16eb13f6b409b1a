package models

// TokenResponse is the body returned by successful signup and login calls.
type TokenResponse struct {
	Token string `json:"token"`
}

// BookListResponse is the body returned by GET /api/book.
//
// Total is the number of books matching the keyword filter across ALL
// pages, so clients can render pagination controls; len(Items) is capped
// by the server-side page size.
type BookListResponse struct {
	Items []Book `json:"items"`
	Total int64  `json:"total"`
}

// ErrorResponse is the uniform error body for every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
