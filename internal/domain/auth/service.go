package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserStore interface {
	FindActiveUserByEmail(ctx context.Context, email string) (AuthUser, error)
	UpdateLastLogin(ctx context.Context, userID string) error
	HasPermission(ctx context.Context, roleID, permission string) (bool, error)
	PermissionsForRole(ctx context.Context, roleID string) ([]string, error)
}

type Service struct {
	Store    UserStore
	Secret   string
	TokenTTL time.Duration
}

func NewService(store UserStore, secret string, ttl time.Duration) *Service {
	return &Service{Store: store, Secret: secret, TokenTTL: ttl}
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      Principal `json:"user"`
}

// Login checks the password and issues a bearer token for the user.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.Store.FindActiveUserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, ErrUserNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}
	if CheckPassword(user.Password, password) != nil {
		return Session{}, ErrInvalidCredentials
	}

	p := Principal{UserID: user.ID, Email: user.Email, RoleID: user.RoleID, RoleName: user.RoleName}
	token, err := GenerateToken(s.Secret, p, s.TokenTTL)
	if err != nil {
		return Session{}, err
	}
	if err := s.Store.UpdateLastLogin(ctx, user.ID); err != nil {
		slog.Warn("update last login failed", "err", err, "user_id", user.ID)
	}
	return Session{Token: token, ExpiresAt: time.Now().Add(s.TokenTTL), User: p}, nil
}

func (s *Service) HasPermission(ctx context.Context, roleID, permission string) (bool, error) {
	return s.Store.HasPermission(ctx, roleID, permission)
}

func (s *Service) Permissions(ctx context.Context, p Principal) ([]string, error) {
	return s.Store.PermissionsForRole(ctx, p.RoleID)
}
