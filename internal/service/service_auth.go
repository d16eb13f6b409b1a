package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bookshelf/internal/config"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/store"
	"github.com/MKhiriev/go-bookshelf/internal/utils"
	"github.com/MKhiriev/go-bookshelf/internal/validators"
	"github.com/MKhiriev/go-bookshelf/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator enforces structural rules on inbound requests before any
	// hashing or storage work is done.
	validator validators.Validator

	// bcryptCost is the bcrypt work factor applied when hashing passwords
	// at registration time.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// SignUp creates a new user account and immediately issues a token for it.
//
// The password is hashed with bcrypt at the configured cost; the plain text
// never reaches the repository.
//
// Returns the issued token or:
//   - A validators sentinel if the request is structurally invalid.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken — see store.ErrEmailAlreadyExists).
func (a *authService) SignUp(ctx context.Context, request models.SignUpRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("email", request.Email).Msg("invalid sign up request")
		return models.Token{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: string(passwordHash),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.createToken(registeredUser)
}

// Login authenticates an existing user by email and password.
//
// Unknown email and wrong password both collapse into ErrInvalidCredentials;
// the response never reveals which check failed.
//
// Returns the issued token or:
//   - A validators sentinel if the request is structurally invalid.
//   - ErrInvalidCredentials if the email is unknown or the password is wrong.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("email", request.Email).Msg("invalid login request")
		return models.Token{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", request.Email).Msg("login attempt for unknown email")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(request.Password)); err != nil {
		log.Warn().Str("email", request.Email).Msg("login attempt with wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.createToken(foundUser)
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// createToken issues a signed JWT for the given user.
func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Name, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
