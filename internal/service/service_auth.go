package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/smart-plant-guard/internal/config"
	"github.com/MKhiriev/smart-plant-guard/internal/crypto"
	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/rbac"
	"github.com/MKhiriev/smart-plant-guard/internal/store"
	"github.com/MKhiriev/smart-plant-guard/internal/utils"
	"github.com/MKhiriev/smart-plant-guard/internal/validators"
	"github.com/MKhiriev/smart-plant-guard/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are hashed with bcrypt; email and username are sealed with
// the field cipher and looked up through their lookup index.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// cipher seals and indexes email and username.
	cipher crypto.FieldCipher

	// challenger mails and checks the second factor of privileged logins.
	challenger Challenger

	validator validators.Validator

	// bcryptCost is the work factor of new password hashes.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository,
// cipher and second-factor challenger, with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cipher crypto.FieldCipher, challenger Challenger,
	validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		cipher:         cipher,
		challenger:     challenger,
		validator:      validator,
		bcryptCost:     bcrypt.DefaultCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register validates req, hashes the password and stores email and username
// sealed, next to their lookup indexes.
//
// Returns the new profile or:
//   - ErrInvalidDataProvided wrapping the validation error.
//   - store.ErrEmailAlreadyExists when the email index is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.Register").Logger()

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid registration data provided")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := crypto.NormalizeForIndex(req.Email)
	username := strings.TrimSpace(req.Username)
	role := rbac.NormalizeRole(req.Role)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		Role:         role.String(),
		PasswordHash: string(hash),
		IsActive:     !role.IsPrivileged(),
	}
	if user.EmailIndex, user.EmailBundle, err = a.protect(email); err != nil {
		log.Err(err).Msg("email protection failed")
		return models.UserProfile{}, err
	}
	if username != "" {
		if user.UsernameIndex, user.UsernameBundle, err = a.protect(username); err != nil {
			log.Err(err).Msg("username protection failed")
			return models.UserProfile{}, err
		}
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", utils.MaskEmail(email)).Msg("user creation ended with error")
		return models.UserProfile{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", created.ID).Str("role", created.Role).Bool("active", created.IsActive).Msg("user registered")
	return profileOf(created, a.cipher), nil
}

// StartLogin authenticates the password. Unknown emails and wrong passwords
// produce the same ErrInvalidCredentials after comparable work.
func (a *authService) StartLogin(ctx context.Context, req models.LoginRequest) (models.Session, models.LoginResult, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.StartLogin").Logger()

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Session{}, models.LoginResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	index, err := a.cipher.Index(req.Email)
	if err != nil {
		log.Err(err).Msg("email index computation failed")
		return models.Session{}, models.LoginResult{}, err
	}

	user, err := a.userRepository.GetUserByEmailIndex(ctx, index)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(req.Password))
		log.Debug().Str("email", utils.MaskEmail(req.Email)).Msg("login for unknown email")
		return models.Session{}, models.LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email index failed")
		return models.Session{}, models.LoginResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Debug().Int64("user_id", user.ID).Msg("wrong password")
		return models.Session{}, models.LoginResult{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Info().Int64("user_id", user.ID).Msg("login to deactivated account")
		return models.Session{}, models.LoginResult{}, ErrAccountDeactivated
	}

	session := models.Session{UserID: user.ID, Role: rbac.NormalizeRole(user.Role)}
	result := models.LoginResult{Role: session.Role.String()}

	if !session.Role.IsPrivileged() {
		return session, result, nil
	}

	sentTo, err := a.sendCode(ctx, user, session.Role)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("verification code was not sent")
		return models.Session{}, models.LoginResult{}, err
	}

	result.RequireMFA = true
	result.SentTo = sentTo
	return session, result, nil
}

// ResendCode re-reads the account so a deactivation between login and
// resend is honored.
func (a *authService) ResendCode(ctx context.Context, session models.Session) (string, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.ResendCode").Logger()

	if !session.Role.IsPrivileged() {
		return "", rbac.ErrForbidden
	}

	user, err := a.userRepository.GetUserByID(ctx, session.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", session.UserID).Msg("user search by id failed")
		return "", fmt.Errorf("user search by id failed: %w", err)
	}
	if !user.IsActive {
		return "", ErrAccountDeactivated
	}

	return a.sendCode(ctx, user, session.Role)
}

func (a *authService) VerifyLogin(ctx context.Context, session models.Session, code string) (models.Session, error) {
	if err := a.validator.Validate(ctx, models.VerifyCodeRequest{Code: code}); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := a.challenger.Verify(ctx, session.UserID, session.Role, strings.TrimSpace(code)); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("user_id", session.UserID).Msg("verification failed")
		return models.Session{}, err
	}

	session.MFAVerified = true
	return session, nil
}

func (a *authService) Profile(ctx context.Context, userID int64) (models.UserProfile, error) {
	user, err := a.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return profileOf(user, a.cipher), nil
}

func (a *authService) AccountStatus(ctx context.Context, userID int64) (models.AccountStatus, error) {
	user, err := a.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.AccountStatus{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return models.AccountStatus{Active: user.IsActive, Role: rbac.NormalizeRole(user.Role)}, nil
}

// CreateToken issues a signed JWT carrying the session.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, session models.Session) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, session, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Session, error) {
	session, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	return session, nil
}

// protect returns the lookup index and the sealed bundle of value.
func (a *authService) protect(value string) (index, bundle string, err error) {
	if index, err = a.cipher.Index(value); err != nil {
		return "", "", fmt.Errorf("error indexing field: %w", err)
	}
	if bundle, err = a.cipher.Seal(value); err != nil {
		return "", "", fmt.Errorf("error sealing field: %w", err)
	}
	return index, bundle, nil
}

// sendCode starts a challenge for user and returns the masked address.
func (a *authService) sendCode(ctx context.Context, user models.User, role rbac.Role) (string, error) {
	email := profileOf(user, a.cipher).Email
	if email == nil || *email == "" {
		return "", ErrEmailUnavailable
	}

	if err := a.challenger.Start(ctx, user.ID, role, *email); err != nil {
		return "", err
	}
	return utils.MaskEmail(*email), nil
}

var (
	dummyHashOnce  sync.Once
	dummyHashValue []byte
)

// dummyHash is compared against when the email is unknown so both failure
// paths cost one bcrypt comparison.
func dummyHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHashValue, _ = bcrypt.GenerateFromPassword([]byte("smart-plant-guard"), bcrypt.DefaultCost)
	})
	return dummyHashValue
}
