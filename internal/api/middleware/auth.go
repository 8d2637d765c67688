package middleware

import (
	"net/http"

	"github.com/civicstack/cityportal/internal/models"
	"github.com/civicstack/cityportal/internal/service"
	"github.com/civicstack/cityportal/internal/session"
	"github.com/civicstack/cityportal/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middleware
const (
	ContextKeyUserID = "user_id"
	ContextKeyUser   = "user"
)

// RequireAuth creates a middleware that rejects requests without a
// valid session. On success the resolved user is attached to the
// request context for the handler.
func RequireAuth(store *session.Store, authService *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolveUser(c, store, authService)
			if err != nil {
				return response.ErrorResponse(c, http.StatusUnauthorized, response.ErrorTypeAuthentication, "Not authenticated")
			}

			c.Set(ContextKeyUserID, user.ID)
			c.Set(ContextKeyUser, user)
			return next(c)
		}
	}
}

// RequireAdmin creates a middleware that rejects any caller whose
// session does not resolve to an admin. Anonymous callers get the same
// forbidden signal as authenticated non-admins.
func RequireAdmin(store *session.Store, authService *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolveUser(c, store, authService)
			if err != nil || !user.IsAdmin() {
				return response.ErrorResponse(c, http.StatusForbidden, response.ErrorTypeAuthorization, "Admin access required")
			}

			c.Set(ContextKeyUserID, user.ID)
			c.Set(ContextKeyUser, user)
			return next(c)
		}
	}
}

// resolveUser maps the request's session to a user. A session whose
// user no longer resolves counts as no session.
func resolveUser(c echo.Context, store *session.Store, authService *service.AuthService) (*models.User, error) {
	userID, ok := store.UserID(c)
	if !ok {
		return nil, service.ErrUserNotFound
	}
	return authService.User(userID)
}

// UserFromContext returns the user attached by RequireAuth/RequireAdmin
func UserFromContext(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	return user, ok
}
