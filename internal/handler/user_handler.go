package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "taralog/internal/errors"
	"taralog/internal/service"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UpdateProfileRequest represents a partial profile update. Absent fields
// are left unchanged.
type UpdateProfileRequest struct {
	Username   *string `json:"username" validate:"omitempty,min=3,max=30"`
	Email      *string `json:"email" validate:"omitempty,email"`
	FirstName  *string `json:"first_name" validate:"omitempty,max=50"`
	LastName   *string `json:"last_name" validate:"omitempty,max=50"`
	Gender     *string `json:"gender" validate:"omitempty,oneof=male female other"`
	BirthDate  *string `json:"birth_date"` // YYYY-MM-DD
	BirthPlace *string `json:"birth_place" validate:"omitempty,min=2,max=100"`
	BirthTime  *string `json:"birth_time" validate:"omitempty,datetime=15:04"`
}

// GetProfile godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	user, err := h.svc.GetProfile(c.Request().Context(), claims.UserID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/me [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := service.UpdateProfileInput{
		Username:   req.Username,
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Gender:     req.Gender,
		BirthPlace: req.BirthPlace,
		BirthTime:  req.BirthTime,
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "birth_date must be YYYY-MM-DD",
				Code:  "INVALID_BIRTH_DATE",
			})
		}
		in.BirthDate = &birthDate
	}

	user, err := h.svc.UpdateProfile(c.Request().Context(), claims.UserID, in)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, user)
}
