package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"wsd/internal/crypto"
	"wsd/internal/errs"
	"wsd/internal/models"
	"wsd/internal/providers"
	"wsd/internal/repository"
	"wsd/internal/structures"
)

// AuthServiceInterface is the credential verifier: it checks a
// username/password pair against the user store and issues a signed,
// time-limited session token.
type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (token string, user *models.User, err error)
	Verify(ctx context.Context, token string) (*models.User, error)
	Register(ctx context.Context, username, password, role string) (*models.User, error)
}

// SessionClaims embeds the writer's identity into the token.
type SessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users   repository.UserRepository
	logger  providers.Logger
	signKey []byte
	ttl     time.Duration
}

func NewAuthService(conf *structures.Config, logger providers.Logger, users repository.UserRepository) AuthServiceInterface {
	ttl := conf.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		users:   users,
		logger:  logger,
		signKey: []byte(conf.Auth.SigningKey),
		ttl:     ttl,
	}
}

// Login verifies credentials and issues a session token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	if username == "" || password == "" {
		return "", nil, fmt.Errorf("%w: username and password are required", errs.ErrValidation)
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || !crypto.VerifyPassword([]byte(password), u.SaltAuth, u.PwdHash) {
		return "", nil, errs.ErrUnauthorized
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Verify decodes and validates the token, then re-reads the canonical user
// record by id. Malformed, expired, or dangling tokens are all unauthorized.
func (s *AuthService) Verify(ctx context.Context, token string) (*models.User, error) {
	var claims SessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.signKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, errs.ErrUnauthorized
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errs.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, errs.ErrUnauthorized
	}
	return u, nil
}

// Register creates a user with a fresh salt and argon2id password hash.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", errs.ErrValidation)
	}
	if role == "" {
		role = models.RoleWriter
	}

	salt, err := crypto.RandBytes(16)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		ID:        uuid.New(),
		Username:  username,
		Role:      role,
		PwdHash:   crypto.HashPassword([]byte(password), salt),
		SaltAuth:  salt,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Infof(providers.TypeApp, "Registered user %s", username)
	return u, nil
}

// issueToken creates a signed HS256 JWT for the user.
func (s *AuthService) issueToken(u *models.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Username: u.Username,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signKey)
}
