package service

import (
	"testing"

	"github.com/civicstack/cityportal/internal/models"
	"github.com/civicstack/cityportal/internal/repository"
	"github.com/civicstack/cityportal/pkg/utils/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewMemoryUserRepository())
}

func TestRegister(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("alice", "secret123", "Alice", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotZero(t, user.ID)

	// stored credential is hashed, never the plaintext
	assert.NotEqual(t, "secret123", user.Password)
	assert.False(t, password.Parse(user.Password).IsLegacy())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newAuthService(t)

	first, err := svc.Register("alice", "secret123", "Alice", "")
	require.NoError(t, err)

	_, err = svc.Register("alice", "different", "Imposter", "")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// original account is unaffected
	got, err := svc.User(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	_, err = svc.Authenticate("alice", "secret123")
	assert.NoError(t, err)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("", "", "Nameless", "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "username")
	assert.Contains(t, vErr.Fields, "password")

	_, err = svc.Register("bob", "secret123", "Bob", "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthenticate(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Register("alice", "secret123", "Alice", "")
	require.NoError(t, err)

	user, err := svc.Authenticate("alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	_, err = svc.Authenticate("nobody", "secret123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSeed(t *testing.T) {
	svc := newAuthService(t)
	require.NoError(t, svc.Seed())

	admin, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
	// seed credentials are legacy plaintext, verified by equality
	assert.True(t, password.Parse(admin.Password).IsLegacy())

	citizen, err := svc.Authenticate("citizen", "citizen123")
	require.NoError(t, err)
	assert.False(t, citizen.IsAdmin())

	// idempotent
	require.NoError(t, svc.Seed())
	users, err := svc.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
