// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, UUID generation, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier
// in the context. Used together with GetUserIDFromContext for type-safe
// retrieval of the user ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, userID)
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user identifier from
// the context.
//
// Returns the user ID and an ok flag:
//   - ok == true  — value is found and has the correct uuid.UUID type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(uuid.UUID)
	return userID, ok
}
