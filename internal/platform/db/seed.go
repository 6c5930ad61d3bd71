package db

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/auth"
	"github.com/oleeahmmed/UniworldHrm/internal/domain/hrm"
)

type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
}

var defaultEducationLevels = []hrm.EducationLevel{
	{Name: "Secondary School Certificate", Code: "SSC", Level: 1},
	{Name: "Higher Secondary Certificate", Code: "HSC", Level: 2},
	{Name: "Diploma", Code: "DIP", Level: 3},
	{Name: "Bachelor", Code: "BACHELOR", Level: 4},
	{Name: "Master", Code: "MASTER", Level: 5},
	{Name: "Doctorate", Code: "PHD", Level: 6},
}

var defaultDocumentTypes = []hrm.DocumentType{
	{Name: "National ID", Code: "NID"},
	{Name: "Passport", Code: "PASSPORT"},
	{Name: "Birth Certificate", Code: "BIRTH_CERT"},
	{Name: "Academic Certificate", Code: "ACADEMIC"},
	{Name: "Curriculum Vitae", Code: "CV"},
	{Name: "Appointment Letter", Code: "APPOINTMENT"},
}

// Seed is idempotent: rows that already exist are left alone.
func Seed(ctx context.Context, pool *pgxpool.Pool, opts SeedOptions) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if err := ensurePermissions(ctx, tx); err != nil {
			return err
		}
		roleIDs, err := ensureRoles(ctx, tx)
		if err != nil {
			return err
		}
		if err := ensureRolePermissions(ctx, tx, roleIDs); err != nil {
			return err
		}
		if err := ensureAdminUser(ctx, tx, roleIDs[auth.RoleAdmin], opts.AdminEmail, opts.AdminPassword); err != nil {
			return err
		}
		return ensureLookups(ctx, tx)
	})
}

func ensurePermissions(ctx context.Context, tx pgx.Tx) error {
	for _, perm := range auth.DefaultPermissions {
		if _, err := tx.Exec(ctx, "INSERT INTO permissions (key) VALUES ($1) ON CONFLICT (key) DO NOTHING", perm); err != nil {
			return errors.Wrapf(err, "seed permission %s", perm)
		}
	}
	return nil
}

func ensureRoles(ctx context.Context, tx pgx.Tx) (map[string]string, error) {
	roleIDs := map[string]string{}
	for roleName := range auth.RolePermissions {
		var id string
		err := tx.QueryRow(ctx, `
      INSERT INTO roles (name) VALUES ($1)
      ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
      RETURNING id
    `, roleName).Scan(&id)
		if err != nil {
			return nil, errors.Wrapf(err, "seed role %s", roleName)
		}
		roleIDs[roleName] = id
	}
	return roleIDs, nil
}

func ensureRolePermissions(ctx context.Context, tx pgx.Tx, roleIDs map[string]string) error {
	permMap := map[string]string{}
	rows, err := tx.Query(ctx, "SELECT id, key FROM permissions")
	if err != nil {
		return errors.Wrap(err, "load permissions")
	}
	for rows.Next() {
		var id, key string
		if err := rows.Scan(&id, &key); err != nil {
			rows.Close()
			return errors.Wrap(err, "scan permission")
		}
		permMap[key] = id
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return errors.Wrap(err, "load permissions")
	}

	for roleName, perms := range auth.RolePermissions {
		roleID := roleIDs[roleName]
		for _, permKey := range perms {
			permID, ok := permMap[permKey]
			if !ok {
				return errors.New("permission not found: " + permKey)
			}
			_, err := tx.Exec(ctx, "INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2) ON CONFLICT DO NOTHING", roleID, permID)
			if err != nil {
				return errors.Wrapf(err, "grant %s to %s", permKey, roleName)
			}
		}
	}
	return nil
}

func ensureAdminUser(ctx context.Context, tx pgx.Tx, roleID, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		slog.Warn("admin user not seeded: SEED_ADMIN_EMAIL or SEED_ADMIN_PASSWORD is empty")
		return nil
	}

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists); err != nil {
		return errors.Wrap(err, "look up admin user")
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, "INSERT INTO users (email, password_hash, role_id, status) VALUES ($1, $2, $3, $4)",
		email, hash, roleID, auth.UserStatusActive)
	if err != nil {
		return errors.Wrap(err, "insert admin user")
	}
	slog.Info("admin user seeded", "email", email)
	return nil
}

func ensureLookups(ctx context.Context, tx pgx.Tx) error {
	for _, l := range defaultEducationLevels {
		_, err := tx.Exec(ctx, `
      INSERT INTO education_levels (name, code, level) VALUES ($1, $2, $3)
      ON CONFLICT DO NOTHING
    `, l.Name, l.Code, l.Level)
		if err != nil {
			return errors.Wrapf(err, "seed education level %s", l.Code)
		}
	}
	for _, t := range defaultDocumentTypes {
		_, err := tx.Exec(ctx, "INSERT INTO document_types (name, code) VALUES ($1, $2) ON CONFLICT DO NOTHING", t.Name, t.Code)
		if err != nil {
			return errors.Wrapf(err, "seed document type %s", t.Code)
		}
	}
	return nil
}
