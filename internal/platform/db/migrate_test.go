package db

import (
	"context"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/auth"
	"github.com/oleeahmmed/UniworldHrm/internal/domain/hrm"
	"github.com/oleeahmmed/UniworldHrm/internal/platform/query"
)

func readSchema(t *testing.T) string {
	t.Helper()
	files, err := fs.Glob(Migrations(), "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	var all strings.Builder
	for _, name := range files {
		body, err := fs.ReadFile(Migrations(), name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
		all.Write(body)
	}
	return all.String()
}

func TestSchemaDeclaresStoreConstraints(t *testing.T) {
	schema := readSchema(t)
	s := hrm.NewStore(nil, nil)

	maps := []map[string]string{
		s.Employees.Table.Constraints,
		s.Departments.Table.Constraints,
		s.Designations.Table.Constraints,
		s.Shifts.Table.Constraints,
		s.EducationLevels.Table.Constraints,
		s.DocumentTypes.Table.Constraints,
		s.Education.Table.Constraints,
		s.Experience.Table.Constraints,
		s.Documents.Table.Constraints,
		s.Family.Table.Constraints,
	}
	for _, m := range maps {
		for name := range m {
			assert.Contains(t, schema, "CONSTRAINT "+name+" ", "constraint %s", name)
		}
	}
}

func TestSchemaStoresSensitiveColumnsAsBytes(t *testing.T) {
	schema := readSchema(t)
	assert.Contains(t, schema, "national_id bytea")
	assert.Contains(t, schema, "bank_account_number bytea")
}

func TestSeedAgainstDatabase(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := Connect(ctx, url)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, Migrate(ctx, pool))
	opts := SeedOptions{AdminEmail: "seed-admin@example.com", AdminPassword: "Secret#123"}
	require.NoError(t, Seed(ctx, pool, opts))
	require.NoError(t, Seed(ctx, pool, opts), "seeding twice is a no-op")

	store := auth.NewStore(pool)
	user, err := store.FindActiveUserByEmail(ctx, opts.AdminEmail)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, user.RoleName)

	ok, err := store.HasPermission(ctx, user.RoleID, auth.Capability(auth.ActionDelete, auth.EntityEmployee))
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := hrm.NewStore(pool, nil).EducationLevels.Count(ctx, query.Query{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, len(defaultEducationLevels))
}
