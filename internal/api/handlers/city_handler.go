package handlers

import (
	"net/http"

	"github.com/civicstack/cityportal/internal/service"
	"github.com/civicstack/cityportal/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// CityHandler serves the city data tabs
type CityHandler struct {
	cityService *service.CityService
}

// NewCityHandler creates a new handler for the city data API
func NewCityHandler(cityService *service.CityService) *CityHandler {
	return &CityHandler{cityService: cityService}
}

// Traffic returns the current traffic snapshot
func (h *CityHandler) Traffic(c echo.Context) error {
	snapshot, err := h.cityService.Traffic(c.Request().Context())
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, response.ErrorTypeServer, "Failed to load traffic data")
	}
	return response.SuccessResponse(c, snapshot)
}

// Healthcare returns the hospital and clinic listings
func (h *CityHandler) Healthcare(c echo.Context) error {
	return response.SuccessResponse(c, h.cityService.Healthcare())
}

// Education returns the school listings
func (h *CityHandler) Education(c echo.Context) error {
	return response.SuccessResponse(c, h.cityService.Education())
}

// Safety returns emergency contacts and advisories
func (h *CityHandler) Safety(c echo.Context) error {
	return response.SuccessResponse(c, h.cityService.Safety())
}

// Tourism returns the points of interest
func (h *CityHandler) Tourism(c echo.Context) error {
	return response.SuccessResponse(c, h.cityService.Tourism())
}

// Map returns the base map markers
func (h *CityHandler) Map(c echo.Context) error {
	return response.SuccessResponse(c, h.cityService.MapMarkers())
}

// Onboarding returns the first-run wizard steps
func (h *CityHandler) Onboarding(c echo.Context) error {
	return response.SuccessResponse(c, h.cityService.Onboarding())
}
