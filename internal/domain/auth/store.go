package auth

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const UserStatusActive = "active"

var ErrUserNotFound = errors.New("user not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type AuthUser struct {
	ID       string
	Email    string
	RoleID   string
	RoleName string
	Password string
}

func (s *Store) FindActiveUserByEmail(ctx context.Context, email string) (AuthUser, error) {
	var out AuthUser
	err := s.DB.QueryRow(ctx, `
    SELECT u.id, u.email, u.role_id, r.name, u.password_hash
    FROM users u
    JOIN roles r ON u.role_id = r.id
    WHERE lower(u.email) = lower($1) AND u.status = $2
  `, email, UserStatusActive).Scan(&out.ID, &out.Email, &out.RoleID, &out.RoleName, &out.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return out, ErrUserNotFound
	}
	return out, errors.Wrap(err, "find user")
}

func (s *Store) UpdateLastLogin(ctx context.Context, userID string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET last_login = now() WHERE id = $1", userID)
	return errors.Wrap(err, "update last login")
}

func (s *Store) HasPermission(ctx context.Context, roleID, permission string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM role_permissions rp
    JOIN permissions p ON rp.permission_id = p.id
    WHERE rp.role_id = $1 AND p.key = $2
  `, roleID, permission).Scan(&count)
	if err != nil {
		return false, errors.Wrap(err, "has permission")
	}
	return count > 0, nil
}

func (s *Store) PermissionsForRole(ctx context.Context, roleID string) ([]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT p.key
    FROM role_permissions rp
    JOIN permissions p ON rp.permission_id = p.id
    WHERE rp.role_id = $1
    ORDER BY p.key
  `, roleID)
	if err != nil {
		return nil, errors.Wrap(err, "role permissions")
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	return keys, errors.Wrap(err, "role permissions")
}
