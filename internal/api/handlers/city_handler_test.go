package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityTabsAreOpen(t *testing.T) {
	app := newTestApp(t)

	paths := []string{
		"/api/traffic",
		"/api/healthcare",
		"/api/education",
		"/api/safety",
		"/api/tourism",
		"/api/map",
		"/api/onboarding",
	}
	for _, path := range paths {
		rec, resp := app.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "success", resp.Status, path)
	}
}

func TestAdminConsoleIsGated(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/admin/settings", "/api/admin/metrics"} {
		rec, _ := app.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}

	app.login(t, "citizen", "citizen123")
	rec, _ := app.do(t, http.MethodGet, "/api/admin/settings", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	app.clearSession()
	app.login(t, "admin", "admin123")
	for _, path := range []string{"/api/admin/settings", "/api/admin/metrics"} {
		rec, resp := app.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "success", resp.Status)
	}
}
