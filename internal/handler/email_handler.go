package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taralog/internal/service"
)

// EmailHandler handles the admin email test endpoint.
type EmailHandler struct {
	svc service.EmailService
}

// NewEmailHandler creates a new email handler.
func NewEmailHandler(svc service.EmailService) *EmailHandler {
	return &EmailHandler{svc: svc}
}

// TestEmailRequest represents a test email request.
type TestEmailRequest struct {
	To        string `json:"to" validate:"required,email"`
	FirstName string `json:"first_name" validate:"omitempty,max=60"`
}

// SendTest godoc
// @Summary Send a test welcome email
// @Tags email
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TestEmailRequest true "Recipient"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /email/test [post]
func (h *EmailHandler) SendTest(c echo.Context) error {
	var req TestEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.SendWelcome(c.Request().Context(), nil, req.To, req.FirstName); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "email sent"})
}
