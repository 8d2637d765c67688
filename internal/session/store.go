// Package session binds portal logins to an HTTP cookie via a
// gorilla/sessions cookie store.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

// CookieName is the session cookie set on login
const CookieName = "cityportal_session"

// MaxAge is the session lifetime. The window slides: the cookie is
// re-saved on every authenticated request.
const MaxAge = 24 * 60 * 60 // 24 hours, in seconds

const userIDKey = "user_id"

// Store issues, resolves and destroys login sessions
type Store struct {
	store *sessions.CookieStore
}

// NewStore creates a session store signing cookies with the given secret
func NewStore(secret string) *Store {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   MaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{store: cs}
}

// Establish creates a session for the given user and sets the cookie
func (s *Store) Establish(c echo.Context, userID uint) error {
	sess, _ := s.store.Get(c.Request(), CookieName)
	sess.Values[userIDKey] = userID
	sess.Options.MaxAge = MaxAge
	return sess.Save(c.Request(), c.Response())
}

// UserID resolves the session attached to the request. The second
// return is false when no valid session exists. Resolving a valid
// session re-saves it, sliding the expiry window.
func (s *Store) UserID(c echo.Context) (uint, bool) {
	sess, err := s.store.Get(c.Request(), CookieName)
	if err != nil || sess.IsNew {
		return 0, false
	}
	userID, ok := sess.Values[userIDKey].(uint)
	if !ok {
		return 0, false
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return 0, false
	}
	return userID, true
}

// Destroy removes the session. Destroying an absent session is not an
// error; a broken cookie save is.
func (s *Store) Destroy(c echo.Context) error {
	sess, err := s.store.Get(c.Request(), CookieName)
	if err != nil {
		// undecodable cookie: expire it anyway
		sess.Options.MaxAge = -1
		return sess.Save(c.Request(), c.Response())
	}
	sess.Options.MaxAge = -1
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	return sess.Save(c.Request(), c.Response())
}
