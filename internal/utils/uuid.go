package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for newly created entities.
// UUIDv7 is preferred because its time-ordered prefix keeps B-tree
// indexes compact; generation falls back to v4 if the system clock
// misbehaves.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
