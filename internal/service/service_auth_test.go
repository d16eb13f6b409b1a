package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-bookshelf/internal/config"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/mock"
	"github.com/MKhiriev/go-bookshelf/internal/store"
	"github.com/MKhiriev/go-bookshelf/internal/validators"
	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-bookshelf-test",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
		PageSize:      2,
		Version:       "1.0.0",
	}
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(mockUsers, validators.NewRequestValidator(), testAppConfig(), logger.Nop())
	return svc, mockUsers
}

func validSignUp() models.SignUpRequest {
	return models.SignUpRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "super-secret-password",
	}
}

// ── SignUp ───────────────────────────────────────────────────────────────────

func TestAuthService_SignUp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	request := validSignUp()
	userID := uuid.New()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, request.Name, u.Name)
			assert.Equal(t, request.Email, u.Email)
			// the stored hash must not be the plain password and must verify against it
			assert.NotEqual(t, request.Password, u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(request.Password)))
			u.UserID = userID
			return u, nil
		},
	)

	token, err := svc.SignUp(ctx, request)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, userID, token.UserID)
	assert.Equal(t, request.Name, token.Name)

	// the issued token must round-trip through ParseToken
	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed.UserID)
}

func TestAuthService_SignUp_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.SignUpRequest)
		wantErr error
	}{
		{"empty name", func(r *models.SignUpRequest) { r.Name = "" }, validators.ErrEmptyName},
		{"bad email", func(r *models.SignUpRequest) { r.Email = "nope" }, validators.ErrInvalidEmail},
		{"short password", func(r *models.SignUpRequest) { r.Password = "short" }, validators.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validSignUp()
			tt.mutate(&request)

			// no CreateUser expectation: the repository must not be called
			_, err := svc.SignUp(ctx, request)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.SignUp(ctx, validSignUp())
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	password := "super-secret-password"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		UserID:       uuid.New(),
		Name:         "Jane",
		Email:        "jane@example.com",
		PasswordHash: string(hash),
	}

	mockUsers.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)

	token, err := svc.Login(ctx, models.LoginRequest{Email: user.Email, Password: password})
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, user.UserID, token.UserID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "nobody@example.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "whatever-password"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("the-real-password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		UserID:       uuid.New(),
		Email:        "jane@example.com",
		PasswordHash: string(hash),
	}

	mockUsers.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)

	_, err = svc.Login(ctx, models.LoginRequest{Email: user.Email, Password: "the-wrong-password"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_ValidationErrors(t *testing.T) {
	// no FindUserByEmail expectation: invalid input never reaches the repository
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.LoginRequest
		wantErr error
	}{
		{"bad email", models.LoginRequest{Email: "nope", Password: "long-enough-password"}, validators.ErrInvalidEmail},
		{"empty password", models.LoginRequest{Email: "jane@example.com", Password: ""}, validators.ErrPasswordTooShort},
		{"short password", models.LoginRequest{Email: "jane@example.com", Password: "short"}, validators.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.request)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Login_UniformFailureMessage(t *testing.T) {
	// unknown email and wrong password must be indistinguishable to the caller
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)
	_, unknownEmailErr := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "irrelevant-pass"})

	hash, _ := bcrypt.GenerateFromPassword([]byte("the-right-password"), bcrypt.MinCost)
	mockUsers.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(models.User{Email: "jane@example.com", PasswordHash: string(hash)}, nil)
	_, wrongPasswordErr := svc.Login(ctx, models.LoginRequest{Email: "jane@example.com", Password: "not-the-right-one"})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}

func TestAuthService_Login_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(models.User{}, errors.New("connection refused"))

	_, err := svc.Login(ctx, models.LoginRequest{Email: "jane@example.com", Password: "whatever-pass"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── ParseToken ───────────────────────────────────────────────────────────────

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "not.a.token")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	otherCfg := testAppConfig()
	otherCfg.TokenIssuer = "someone-else"
	otherSvc := NewAuthService(mockUsers, validators.NewRequestValidator(), otherCfg, logger.Nop())

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("super-secret-password"), bcrypt.MinCost)
	user := models.User{UserID: uuid.New(), Email: "jane@example.com", PasswordHash: string(hash)}
	mockUsers.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)

	foreignToken, err := otherSvc.Login(ctx, models.LoginRequest{Email: user.Email, Password: "super-secret-password"})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, foreignToken.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
