package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicstack/cityportal/internal/models"
)

func TestRegisterAndCurrentUser(t *testing.T) {
	app := newTestApp(t)

	rec, resp := app.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "alice",
		"password": "secret123",
		"name":     "Alice",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	var user models.PublicUser
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotZero(t, user.ID)

	// registration established a session
	rec, resp = app.do(t, http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, "alice", user.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "alice", "secret123", "Alice")

	rec, resp := app.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "alice",
		"password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ConflictException", resp.ErrorType)
	assert.Equal(t, "Username already exists", resp.Message)
}

func TestLoginFailures(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "alice", "secret123", "Alice")
	app.clearSession()

	rec, resp := app.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": "alice",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Incorrect password", resp.Message)
	assert.Empty(t, resp.Data)

	rec, resp = app.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": "nobody",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User not found", resp.Message)
}

func TestCurrentUserWithoutSession(t *testing.T) {
	app := newTestApp(t)

	rec, _ := app.do(t, http.MethodGet, "/api/user", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "alice", "secret123", "Alice")

	rec, _ := app.do(t, http.MethodPost, "/api/logout", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = app.do(t, http.MethodGet, "/api/user", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// logging out again still succeeds
	rec, _ = app.do(t, http.MethodPost, "/api/logout", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSeededAccountsCanLogIn(t *testing.T) {
	app := newTestApp(t)

	// seed credentials are legacy plaintext; login must still work
	app.login(t, "admin", "admin123")
	rec, resp := app.do(t, http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.PublicUser
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestListUsers(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "alice", "secret123", "Alice")

	// anonymous caller: forbidden
	app.clearSession()
	rec, _ := app.do(t, http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// non-admin session: forbidden
	app.login(t, "alice", "secret123")
	rec, _ = app.do(t, http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// admin session: full list, no password field on any entry
	app.clearSession()
	app.login(t, "admin", "admin123")
	rec, resp := app.do(t, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	var users []models.PublicUser
	require.NoError(t, json.Unmarshal(resp.Data, &users))
	// two seed accounts plus alice
	assert.Len(t, users, 3)
}

func TestIndexRoute(t *testing.T) {
	app := newTestApp(t)

	rec, resp := app.do(t, http.MethodGet, "/api/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", resp.Status)
}
