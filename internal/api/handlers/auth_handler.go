// Package handlers contains the handlers for the API
package handlers

import (
	"errors"
	"net/http"

	"github.com/civicstack/cityportal/internal/api/middleware"
	"github.com/civicstack/cityportal/internal/models"
	"github.com/civicstack/cityportal/internal/service"
	"github.com/civicstack/cityportal/internal/session"
	"github.com/civicstack/cityportal/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// AuthHandler is the handler for registration, login and user lookups
type AuthHandler struct {
	store       *session.Store
	authService *service.AuthService
}

// NewAuthHandler creates a new handler for the auth API
func NewAuthHandler(store *session.Store, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{store: store, authService: authService}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account and logs it in
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.ErrorTypeInput, "Invalid request body")
	}

	user, err := h.authService.Register(req.Username, req.Password, req.Name, req.Role)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return response.ValidationErrorResponse(c, "Invalid registration payload", vErr.Fields)
		case errors.Is(err, service.ErrUsernameTaken):
			return response.ErrorResponse(c, http.StatusBadRequest, response.ErrorTypeConflict, "Username already exists")
		case errors.Is(err, service.ErrInvalidRole):
			return response.ErrorResponse(c, http.StatusBadRequest, response.ErrorTypeInput, "Invalid role")
		default:
			return response.ErrorResponse(c, http.StatusInternalServerError, response.ErrorTypeServer, "Failed to register user")
		}
	}

	if err := h.store.Establish(c, user.ID); err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, response.ErrorTypeServer, "Failed to establish session")
	}
	return response.CreatedResponse(c, user.Public())
}

// Login authenticates the supplied credentials and establishes a session
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.ErrorTypeInput, "Invalid request body")
	}

	user, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return response.ErrorResponse(c, http.StatusUnauthorized, response.ErrorTypeAuthentication, "User not found")
		case errors.Is(err, service.ErrIncorrectPassword):
			return response.ErrorResponse(c, http.StatusUnauthorized, response.ErrorTypeAuthentication, "Incorrect password")
		default:
			return response.ErrorResponse(c, http.StatusInternalServerError, response.ErrorTypeServer, "Failed to log in")
		}
	}

	if err := h.store.Establish(c, user.ID); err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, response.ErrorTypeServer, "Failed to establish session")
	}
	return response.SuccessResponse(c, user.Public())
}

// Logout destroys the current session. Logging out without a session
// still succeeds; only a broken session store is an error.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.store.Destroy(c); err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, response.ErrorTypeServer, "Failed to destroy session")
	}
	return response.SuccessResponse(c, nil)
}

// CurrentUser returns the logged-in user. An unauthenticated request
// gets a status-only 401, no body.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	userID, ok := h.store.UserID(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	user, err := h.authService.User(userID)
	if err != nil {
		return c.NoContent(http.StatusUnauthorized)
	}
	return response.SuccessResponse(c, user.Public())
}

// ListUsers returns every account. Mounted behind RequireAdmin.
func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.authService.ListUsers()
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, response.ErrorTypeServer, "Failed to list users")
	}
	return response.SuccessResponse(c, models.PublicUsers(users))
}

// currentUserID is a convenience for handlers mounted behind RequireAuth
func currentUserID(c echo.Context) uint {
	userID, _ := c.Get(middleware.ContextKeyUserID).(uint)
	return userID
}
