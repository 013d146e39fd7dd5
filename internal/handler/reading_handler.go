package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taralog/internal/errors"
	"taralog/internal/model"
	"taralog/internal/service"
)

// ReadingHandler handles reading endpoints.
type ReadingHandler struct {
	svc service.ReadingService
}

// NewReadingHandler creates a new reading handler.
func NewReadingHandler(svc service.ReadingService) *ReadingHandler {
	return &ReadingHandler{svc: svc}
}

// CardPayload is a client-supplied drawn card.
type CardPayload struct {
	CardID     string `json:"card_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	IsReversed bool   `json:"is_reversed"`
	Position   string `json:"position"`
}

// CreateReadingRequest is the body shared by the typed reading endpoints.
// Cards only apply to taro, partner data only to love.
type CreateReadingRequest struct {
	Question    string             `json:"question" validate:"omitempty,max=500"`
	Cards       []CardPayload      `json:"cards" validate:"omitempty,len=5,dive"`
	PartnerData *model.PartnerData `json:"partner_data"`
	Language    string             `json:"language" validate:"omitempty,oneof=en ru"`
}

// UpdateReadingRequest carries a partial reading edit.
type UpdateReadingRequest struct {
	SpreadType     *string            `json:"spread_type" validate:"omitempty,oneof=five_card question"`
	Question       *string            `json:"question" validate:"omitempty,max=500"`
	Interpretation *string            `json:"ai_interpretation"`
	ReadingType    *string            `json:"reading_type" validate:"omitempty,oneof=taro love money work general"`
	Cards          *[]CardPayload     `json:"cards" validate:"omitempty,dive"`
	Language       *string            `json:"language" validate:"omitempty,oneof=en ru"`
	PartnerData    *model.PartnerData `json:"partner_data"`
}

func toCards(payload []CardPayload) []model.Card {
	cards := make([]model.Card, 0, len(payload))
	for _, p := range payload {
		cards = append(cards, model.Card{
			CardID:     p.CardID,
			Name:       p.Name,
			IsReversed: p.IsReversed,
			Position:   p.Position,
		})
	}
	return cards
}

// CreateTaro godoc
// @Summary Create a five-card taro reading
// @Description Cards may be supplied pre-drawn; otherwise the server draws five.
// @Tags readings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReadingRequest true "Reading request"
// @Success 201 {object} model.Reading
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /readings/taro [post]
func (h *ReadingHandler) CreateTaro(c echo.Context) error {
	return h.create(c, model.ReadingTaro)
}

// CreateLove godoc
// @Summary Create a love reading
// @Tags readings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReadingRequest true "Reading request"
// @Success 201 {object} model.Reading
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /readings/love [post]
func (h *ReadingHandler) CreateLove(c echo.Context) error {
	return h.create(c, model.ReadingLove)
}

// CreateMoney godoc
// @Summary Create a money reading
// @Tags readings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReadingRequest true "Reading request"
// @Success 201 {object} model.Reading
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /readings/money [post]
func (h *ReadingHandler) CreateMoney(c echo.Context) error {
	return h.create(c, model.ReadingMoney)
}

// CreateWork godoc
// @Summary Create a work reading
// @Tags readings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReadingRequest true "Reading request"
// @Success 201 {object} model.Reading
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /readings/work [post]
func (h *ReadingHandler) CreateWork(c echo.Context) error {
	return h.create(c, model.ReadingWork)
}

// CreateGeneral godoc
// @Summary Create a general reading
// @Tags readings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReadingRequest true "Reading request"
// @Success 201 {object} model.Reading
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /readings/general [post]
func (h *ReadingHandler) CreateGeneral(c echo.Context) error {
	return h.create(c, model.ReadingGeneral)
}

func (h *ReadingHandler) create(c echo.Context, readingType string) error {
	claims, err := currentClaims(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req CreateReadingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Question-style readings need an actual question; taro works without one.
	if readingType != model.ReadingTaro && len(req.Question) < 5 {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "question must be between 5 and 500 characters",
			Code:  "INVALID_QUESTION",
		})
	}

	reading, err := h.svc.CreateTyped(c.Request().Context(), claims.UserID, readingType, service.CreateReadingInput{
		Question: req.Question,
		Cards:    toCards(req.Cards),
		Partner:  req.PartnerData,
		Language: req.Language,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, reading)
}

// ListMine godoc
// @Summary List own readings, newest first
// @Tags readings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Reading
// @Router /readings [get]
func (h *ReadingHandler) ListMine(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	readings, err := h.svc.ListMine(c.Request().Context(), claims.UserID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, readings)
}

// Get godoc
// @Summary Get a reading by id
// @Tags readings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reading ID"
// @Success 200 {object} model.Reading
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /readings/{id} [get]
func (h *ReadingHandler) Get(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	reading, err := h.svc.Get(c.Request().Context(), claims.UserID, claims.Role, id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, reading)
}

// Update godoc
// @Summary Update a reading
// @Tags readings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reading ID"
// @Param request body UpdateReadingRequest true "Fields to update"
// @Success 200 {object} model.Reading
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /readings/{id} [put]
func (h *ReadingHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateReadingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := service.UpdateReadingInput{
		SpreadType:     req.SpreadType,
		Question:       req.Question,
		Interpretation: req.Interpretation,
		ReadingType:    req.ReadingType,
		Language:       req.Language,
		Partner:        req.PartnerData,
	}
	if req.Cards != nil {
		cards := toCards(*req.Cards)
		in.Cards = &cards
	}

	reading, err := h.svc.Update(c.Request().Context(), claims.UserID, claims.Role, id, in)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, reading)
}

// Delete godoc
// @Summary Delete a reading
// @Tags readings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reading ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /readings/{id} [delete]
func (h *ReadingHandler) Delete(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), claims.UserID, claims.Role, id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}
