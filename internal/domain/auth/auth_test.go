package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("super-secret")
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(hash, "super-secret"))
	assert.Error(t, CheckPassword(hash, "wrong"))
}

func TestGenerateAndParseToken(t *testing.T) {
	p := Principal{UserID: "u1", Email: "hr@example.com", RoleID: "r1", RoleName: RoleHR}

	token, err := GenerateToken("test-secret", p, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, p, claims.Principal())
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("one", Principal{UserID: "u1"}, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("two", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("secret", Principal{UserID: "u1"}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.Error(t, err)
}

func TestCapabilityKeyFormat(t *testing.T) {
	assert.Equal(t, "hrm.add_employee", Capability(ActionAdd, EntityEmployee))
	assert.Equal(t, "hrm.view_auditevent", PermAuditRead)
}

func TestRolePermissionsSubset(t *testing.T) {
	allowed := map[string]struct{}{}
	for _, perm := range DefaultPermissions {
		allowed[perm] = struct{}{}
	}
	for role, perms := range RolePermissions {
		require.NotEmpty(t, perms, role)
		for _, perm := range perms {
			assert.Contains(t, allowed, perm, "role %s", role)
		}
	}
}

func TestDefaultPermissionsUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for _, perm := range DefaultPermissions {
		_, dup := seen[perm]
		require.False(t, dup, "duplicate permission %s", perm)
		seen[perm] = struct{}{}
	}
}

func TestViewerCannotMutate(t *testing.T) {
	for _, perm := range RolePermissions[RoleViewer] {
		assert.Regexp(t, `^hrm\.view_`, perm)
	}
	assert.NotContains(t, RolePermissions[RoleHR], Capability(ActionDelete, EntityDepartment))
	assert.Contains(t, RolePermissions[RoleHR], Capability(ActionDelete, EntityEmployee))
}

func TestSensitiveEmployeeFieldsAreStaffOnly(t *testing.T) {
	assert.Equal(t, "hrm.view_sensitive_employee", PermEmployeeSensitive)
	assert.Contains(t, RolePermissions[RoleAdmin], PermEmployeeSensitive)
	assert.Contains(t, RolePermissions[RoleHR], PermEmployeeSensitive)
	assert.NotContains(t, RolePermissions[RoleViewer], PermEmployeeSensitive)
}

type stubUsers struct {
	user      AuthUser
	lastLogin string
}

func (s *stubUsers) FindActiveUserByEmail(_ context.Context, email string) (AuthUser, error) {
	if email != s.user.Email {
		return AuthUser{}, ErrUserNotFound
	}
	return s.user, nil
}

func (s *stubUsers) UpdateLastLogin(_ context.Context, userID string) error {
	s.lastLogin = userID
	return nil
}

func (s *stubUsers) HasPermission(context.Context, string, string) (bool, error) { return true, nil }

func (s *stubUsers) PermissionsForRole(context.Context, string) ([]string, error) {
	return RolePermissions[RoleHR], nil
}

func TestLogin(t *testing.T) {
	hash, err := HashPassword("pa55word")
	require.NoError(t, err)
	users := &stubUsers{user: AuthUser{ID: "u1", Email: "hr@example.com", RoleID: "r1", RoleName: RoleHR, Password: hash}}
	svc := NewService(users, "secret", time.Hour)

	session, err := svc.Login(context.Background(), " hr@example.com ", "pa55word")
	require.NoError(t, err)
	assert.Equal(t, "u1", session.User.UserID)
	assert.Equal(t, "u1", users.lastLogin)

	claims, err := ParseToken("secret", session.Token)
	require.NoError(t, err)
	assert.Equal(t, RoleHR, claims.RoleName)

	_, err = svc.Login(context.Background(), "hr@example.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "ghost@example.com", "pa55word")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
