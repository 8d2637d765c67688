package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/civicstack/cityportal/internal/api"
	"github.com/civicstack/cityportal/internal/config"
	"github.com/civicstack/cityportal/internal/repository"
	"github.com/civicstack/cityportal/internal/service"
	"github.com/civicstack/cityportal/internal/session"
)

// apiResponse mirrors the response envelope for decoding in tests
type apiResponse struct {
	Status    string            `json:"status"`
	Data      json.RawMessage   `json:"data"`
	ErrorType string            `json:"error_type"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields"`
}

// testApp is a full portal wired against in-memory storage, with a
// cookie jar so sequential requests share a session
type testApp struct {
	e       *echo.Echo
	cookies map[string]*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{
		APIName:        "CityPortal API",
		APIVersion:     "test",
		ServerPort:     "0",
		ServerLogLevel: "error",
	}

	userRepo := repository.NewMemoryUserRepository()
	scrapbookRepo := repository.NewMemoryScrapbookRepository()

	store := session.NewStore("test-secret")
	authService := service.NewAuthService(userRepo)
	scrapbookService := service.NewScrapbookService(scrapbookRepo)
	cityService := service.NewCityService(nil, userRepo, scrapbookRepo)

	require.NoError(t, authService.Seed())

	e := echo.New()
	require.NoError(t, api.SetupRoutes(e, cfg, store, authService, scrapbookService, cityService))

	return &testApp{e: e, cookies: make(map[string]*http.Cookie)}
}

// do issues a request through the full middleware stack, carrying and
// updating the session cookie jar
func (a *testApp) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range a.cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		a.cookies[ck.Name] = ck
	}

	var resp apiResponse
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

// clearSession drops the cookie jar, simulating a fresh browser
func (a *testApp) clearSession() {
	a.cookies = make(map[string]*http.Cookie)
}

func (a *testApp) register(t *testing.T, username, password, name string) {
	t.Helper()
	rec, _ := a.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": username,
		"password": password,
		"name":     name,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func (a *testApp) login(t *testing.T, username, password string) {
	t.Helper()
	rec, _ := a.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)
}
