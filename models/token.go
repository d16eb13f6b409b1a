package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the JWT claim set issued by the auth service. It carries the
// standard registered claims (the user ID travels in "sub") plus the
// user's display name.
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Token is the result of issuing or parsing a JWT.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// response bodies. UserID and Name are the identity claims extracted from
// (or embedded into) the token.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// UserID is the owner identifier carried in the "sub" claim.
	UserID uuid.UUID `json:"-"`

	// Name is the display name carried in the "name" claim.
	Name string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
