package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"bookcatalog/internal/apperr"
	"bookcatalog/internal/platform/crypto"
	"bookcatalog/internal/user"
)

const defaultRole = "user"

var validate = validator.New()

// Config is injected at construction; the secret is checked once at
// startup instead of on every request.
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// Credentials is the login/register payload. Fields are validated in
// declared order, so a missing username is reported before a missing
// password.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisteredUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

type Service struct {
	cfg   Config
	users user.Repository
}

// NewService builds the auth service. A missing signing secret is a
// configuration error, not something callers can recover from.
func NewService(cfg Config, users user.Repository) (*Service, error) {
	if cfg.Secret == "" {
		return nil, apperr.Config("JWT secret not configured")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	return &Service{cfg: cfg, users: users}, nil
}

func validateCredentials(creds Credentials) (Credentials, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if err := validate.Struct(creds); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return Credentials{}, apperr.Invalid(fmt.Sprintf("%s is required", verrs[0].Field()))
		}
		return Credentials{}, err
	}
	return creds, nil
}

// Register creates a new account with a hashed password. The password is
// never part of the result.
func (s *Service) Register(ctx context.Context, creds Credentials) (RegisteredUser, error) {
	creds, err := validateCredentials(creds)
	if err != nil {
		return RegisteredUser{}, err
	}

	_, err = s.users.GetByUsername(ctx, creds.Username)
	if err == nil {
		return RegisteredUser{}, apperr.Conflict("Username already exists")
	}
	if !errors.Is(err, user.ErrNotFound) {
		return RegisteredUser{}, err
	}

	hash, err := HashPassword(creds.Password)
	if err != nil {
		return RegisteredUser{}, err
	}

	u := &user.User{
		Username: creds.Username,
		Password: hash,
		Role:     defaultRole,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return RegisteredUser{}, err
	}

	return RegisteredUser{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}, nil
}

// Login verifies credentials and issues a signed session token. Unknown
// username and wrong password fail identically so usernames cannot be
// enumerated.
func (s *Service) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	creds, err := validateCredentials(creds)
	if err != nil {
		return LoginResult{}, err
	}

	u, err := s.users.GetByUsername(ctx, creds.Username)
	if errors.Is(err, user.ErrNotFound) {
		return LoginResult{}, apperr.Unauthorized("Invalid username or password")
	}
	if err != nil {
		return LoginResult{}, err
	}
	if !VerifyPassword(u.Password, creds.Password) {
		return LoginResult{}, apperr.Unauthorized("Invalid username or password")
	}

	token, err := crypto.GenerateToken(s.cfg.Secret, u.ID, u.Username, u.Role, s.cfg.TokenTTL)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Token: token,
		User:  SessionUser{ID: u.ID, Username: u.Username, Role: u.Role},
	}, nil
}
