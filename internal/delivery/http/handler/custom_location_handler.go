package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/destination-service/internal/pkg/errors"
	"github.com/destination-service/internal/pkg/utils"
	"github.com/destination-service/internal/pkg/validator"
	"github.com/destination-service/internal/usecase"
	"github.com/destination-service/internal/usecase/dto"
)

// CustomLocationHandler - обработчик запросов к пользовательским меткам
type CustomLocationHandler struct {
	locUC  *usecase.CustomLocationUseCase
	logger *zap.Logger
}

// NewCustomLocationHandler - создание нового CustomLocationHandler
func NewCustomLocationHandler(locUC *usecase.CustomLocationUseCase, logger *zap.Logger) *CustomLocationHandler {
	return &CustomLocationHandler{
		locUC:  locUC,
		logger: logger,
	}
}

// List - все метки
func (h *CustomLocationHandler) List(c *fiber.Ctx) error {
	locations, err := h.locUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(locations)
}

// GetByID - метка по id
func (h *CustomLocationHandler) GetByID(c *fiber.Ctx) error {
	loc, err := h.locUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(loc)
}

// Create - создание метки
func (h *CustomLocationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.ErrMissingFields)
	}

	loc, err := h.locUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(loc)
}

// Update - частичное слияние предоставленных полей
func (h *CustomLocationHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateCustomLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := h.locUC.Update(c.Context(), c.Params("id"), req); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "updated"})
}

// Delete - удаление метки; идемпотентно
func (h *CustomLocationHandler) Delete(c *fiber.Ctx) error {
	if err := h.locUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "deleted"})
}
