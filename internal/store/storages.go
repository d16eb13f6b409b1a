package store

import (
	"context"

	"github.com/MKhiriev/go-bookshelf/internal/config"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
)

// Storages bundles the database connection and every repository built on it.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	BookRepository BookRepository
}

// NewStorages connects to PostgreSQL and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
		BookRepository: NewBookRepository(db, log),
	}, nil
}
