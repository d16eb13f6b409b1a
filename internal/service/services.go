package service

import (
	"github.com/MKhiriev/go-bookshelf/internal/config"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/store"
	"github.com/MKhiriev/go-bookshelf/internal/validators"
)

type Services struct {
	AuthService    AuthService
	BookService    BookService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg, logger),
		BookService:    NewBookService(storages.BookRepository, validator, cfg, logger),
		AppInfoService: appInfoService,
	}, nil
}
