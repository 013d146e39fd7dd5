package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taralog/internal/service"
)

// AdminHandler handles the admin dashboard endpoints.
type AdminHandler struct {
	users    service.UserService
	readings service.ReadingService
	stats    service.StatsService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(users service.UserService, readings service.ReadingService, stats service.StatsService) *AdminHandler {
	return &AdminHandler{users: users, readings: readings, stats: stats}
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, users)
}

// ListReadings godoc
// @Summary List all readings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Reading
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/readings [get]
func (h *AdminHandler) ListReadings(c echo.Context) error {
	readings, err := h.readings.ListAll(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, readings)
}

// DeleteReading godoc
// @Summary Delete any reading
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reading ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/readings/{id} [delete]
func (h *AdminHandler) DeleteReading(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.readings.DeleteAny(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted by admin"})
}

// Stats godoc
// @Summary Usage statistics
// @Description Computed fresh on every call; never cached.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Stats
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.stats.Compute(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, stats)
}
