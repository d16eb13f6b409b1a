package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/service"
	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/google/uuid"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn     func(ctx context.Context, request models.SignUpRequest) (models.Token, error)
	loginFn      func(ctx context.Context, request models.LoginRequest) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, request models.SignUpRequest) (models.Token, error) {
	return m.signUpFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockBookService implements service.BookService for unit tests.
type mockBookService struct {
	createFn     func(ctx context.Context, create models.BookCreate, ownerID uuid.UUID) (models.Book, error)
	findAllFn    func(ctx context.Context, keyword string, page int) ([]models.Book, int64, error)
	findByIDFn   func(ctx context.Context, bookID string) (models.Book, error)
	updateByIDFn func(ctx context.Context, bookID string, update models.BookUpdate) (models.Book, error)
	deleteByIDFn func(ctx context.Context, bookID string) (models.Book, error)
}

func (m *mockBookService) Create(ctx context.Context, create models.BookCreate, ownerID uuid.UUID) (models.Book, error) {
	return m.createFn(ctx, create, ownerID)
}

func (m *mockBookService) FindAll(ctx context.Context, keyword string, page int) ([]models.Book, int64, error) {
	return m.findAllFn(ctx, keyword, page)
}

func (m *mockBookService) FindByID(ctx context.Context, bookID string) (models.Book, error) {
	return m.findByIDFn(ctx, bookID)
}

func (m *mockBookService) UpdateByID(ctx context.Context, bookID string, update models.BookUpdate) (models.Book, error) {
	return m.updateByIDFn(ctx, bookID, update)
}

func (m *mockBookService) DeleteByID(ctx context.Context, bookID string) (models.Book, error) {
	return m.deleteByIDFn(ctx, bookID)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// newTestHandler builds a Handler with the given service mocks. Nil mocks are
// fine for routes a test never hits.
func newTestHandler(t *testing.T, auth service.AuthService, books service.BookService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		BookService:    books,
		AppInfoService: &mockAppInfoService{version: "test"},
	}
	return NewHandler(svcs, logger.Nop())
}
