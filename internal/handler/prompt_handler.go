package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taralog/internal/service"
)

// PromptHandler handles admin prompt template endpoints.
type PromptHandler struct {
	svc service.PromptService
}

// NewPromptHandler creates a new prompt handler.
func NewPromptHandler(svc service.PromptService) *PromptHandler {
	return &PromptHandler{svc: svc}
}

// CreatePromptRequest represents a prompt template creation.
type CreatePromptRequest struct {
	Name    string `json:"name" validate:"required,oneof=taro love money work general"`
	Content string `json:"content" validate:"required,min=10"`
}

// UpdatePromptRequest represents a partial prompt template edit.
type UpdatePromptRequest struct {
	Name    *string `json:"name" validate:"omitempty,oneof=taro love money work general"`
	Content *string `json:"content" validate:"omitempty,min=10"`
}

// Create godoc
// @Summary Create a prompt template
// @Tags prompts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePromptRequest true "Prompt template"
// @Success 201 {object} model.Prompt
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /prompts [post]
func (h *PromptHandler) Create(c echo.Context) error {
	var req CreatePromptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prompt, err := h.svc.Create(c.Request().Context(), req.Name, req.Content)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, prompt)
}

// List godoc
// @Summary List prompt templates
// @Tags prompts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Prompt
// @Router /prompts [get]
func (h *PromptHandler) List(c echo.Context) error {
	prompts, err := h.svc.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, prompts)
}

// Get godoc
// @Summary Get a prompt template by id
// @Tags prompts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Prompt ID"
// @Success 200 {object} model.Prompt
// @Failure 404 {object} errors.ErrorResponse
// @Router /prompts/{id} [get]
func (h *PromptHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	prompt, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, prompt)
}

// Update godoc
// @Summary Update a prompt template
// @Tags prompts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Prompt ID"
// @Param request body UpdatePromptRequest true "Fields to update"
// @Success 200 {object} model.Prompt
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /prompts/{id} [put]
func (h *PromptHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdatePromptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prompt, err := h.svc.Update(c.Request().Context(), id, req.Name, req.Content)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, prompt)
}

// Delete godoc
// @Summary Delete a prompt template
// @Tags prompts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Prompt ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /prompts/{id} [delete]
func (h *PromptHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "prompt deleted successfully"})
}
