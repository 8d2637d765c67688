package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/civicstack/cityportal/internal/models"
	"github.com/civicstack/cityportal/internal/service"
	"github.com/civicstack/cityportal/internal/session"
	"github.com/civicstack/cityportal/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// ScrapbookHandler is the handler for the scrapbook API
type ScrapbookHandler struct {
	store            *session.Store
	authService      *service.AuthService
	scrapbookService *service.ScrapbookService
}

// NewScrapbookHandler creates a new handler for the scrapbook API
func NewScrapbookHandler(store *session.Store, authService *service.AuthService, scrapbookService *service.ScrapbookService) *ScrapbookHandler {
	return &ScrapbookHandler{
		store:            store,
		authService:      authService,
		scrapbookService: scrapbookService,
	}
}

// ListPublic returns all public entries; open to any caller
func (h *ScrapbookHandler) ListPublic(c echo.Context) error {
	entries, err := h.scrapbookService.ListPublic()
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, response.ErrorTypeServer, "Failed to list entries")
	}
	return response.SuccessResponse(c, entries)
}

// MyEntries returns the caller's entries. Mounted behind RequireAuth.
func (h *ScrapbookHandler) MyEntries(c echo.Context) error {
	entries, err := h.scrapbookService.ListByOwner(currentUserID(c))
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, response.ErrorTypeServer, "Failed to list entries")
	}
	return response.SuccessResponse(c, entries)
}

// Get returns a single entry. Public entries are open; private ones
// require the owner's session, so this route carries no auth middleware
// and resolves the session itself.
func (h *ScrapbookHandler) Get(c echo.Context) error {
	id, err := entryID(c)
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.ErrorTypeInput, "Invalid entry id")
	}

	viewerID, authenticated := h.viewer(c)
	entry, err := h.scrapbookService.Get(id, viewerID, authenticated)
	if err != nil {
		return h.scrapbookError(c, err)
	}
	return response.SuccessResponse(c, entry)
}

// Create stores a new entry owned by the caller. Mounted behind RequireAuth.
func (h *ScrapbookHandler) Create(c echo.Context) error {
	var input models.ScrapbookInput
	if err := c.Bind(&input); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.ErrorTypeInput, "Invalid request body")
	}

	entry, err := h.scrapbookService.Create(currentUserID(c), input)
	if err != nil {
		return h.scrapbookError(c, err)
	}
	return response.CreatedResponse(c, entry)
}

// Update applies a partial update to the caller's entry. Mounted behind
// RequireAuth.
func (h *ScrapbookHandler) Update(c echo.Context) error {
	id, err := entryID(c)
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.ErrorTypeInput, "Invalid entry id")
	}

	var patch models.ScrapbookPatch
	if err := c.Bind(&patch); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.ErrorTypeInput, "Invalid request body")
	}

	entry, err := h.scrapbookService.Update(id, currentUserID(c), patch)
	if err != nil {
		return h.scrapbookError(c, err)
	}
	return response.SuccessResponse(c, entry)
}

// Delete removes the caller's entry. Mounted behind RequireAuth.
func (h *ScrapbookHandler) Delete(c echo.Context) error {
	id, err := entryID(c)
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.ErrorTypeInput, "Invalid entry id")
	}

	if err := h.scrapbookService.Delete(id, currentUserID(c)); err != nil {
		return h.scrapbookError(c, err)
	}
	return response.NoContentResponse(c)
}

// viewer resolves the optional session on unguarded routes
func (h *ScrapbookHandler) viewer(c echo.Context) (uint, bool) {
	userID, ok := h.store.UserID(c)
	if !ok {
		return 0, false
	}
	if _, err := h.authService.User(userID); err != nil {
		return 0, false
	}
	return userID, true
}

// scrapbookError maps service errors to the response taxonomy
func (h *ScrapbookHandler) scrapbookError(c echo.Context, err error) error {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		return response.ValidationErrorResponse(c, "Invalid entry payload", vErr.Fields)
	case errors.Is(err, service.ErrEntryNotFound):
		return response.ErrorResponse(c, http.StatusNotFound, response.ErrorTypeNotFound, "Entry not found")
	case errors.Is(err, service.ErrNotEntryOwner):
		return response.ErrorResponse(c, http.StatusForbidden, response.ErrorTypeAuthorization, "Not allowed to access this entry")
	default:
		return response.ErrorResponse(c, http.StatusInternalServerError, response.ErrorTypeServer, "Scrapbook operation failed")
	}
}

func entryID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
