package handlers

import (
	"net/http"

	"github.com/civicstack/cityportal/internal/service"
	"github.com/civicstack/cityportal/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// AdminHandler serves the admin console data. Every route using it is
// mounted behind RequireAdmin.
type AdminHandler struct {
	cityService *service.CityService
}

// NewAdminHandler creates a new handler for the admin API
func NewAdminHandler(cityService *service.CityService) *AdminHandler {
	return &AdminHandler{cityService: cityService}
}

// Settings returns the admin console settings
func (h *AdminHandler) Settings(c echo.Context) error {
	return response.SuccessResponse(c, h.cityService.AdminSettings())
}

// Metrics returns live portal counters
func (h *AdminHandler) Metrics(c echo.Context) error {
	metrics, err := h.cityService.AdminMetrics()
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, response.ErrorTypeServer, "Failed to load metrics")
	}
	return response.SuccessResponse(c, metrics)
}
