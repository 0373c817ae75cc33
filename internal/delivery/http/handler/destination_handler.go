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

// DestinationHandler - обработчик запросов к дестинациям
type DestinationHandler struct {
	destUC *usecase.DestinationUseCase
	logger *zap.Logger
}

// NewDestinationHandler - создание нового DestinationHandler
func NewDestinationHandler(destUC *usecase.DestinationUseCase, logger *zap.Logger) *DestinationHandler {
	return &DestinationHandler{
		destUC: destUC,
		logger: logger,
	}
}

// List - все дестинации
func (h *DestinationHandler) List(c *fiber.Ctx) error {
	destinations, err := h.destUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(destinations)
}

// GetByID - дестинация по id
func (h *DestinationHandler) GetByID(c *fiber.Ctx) error {
	dest, err := h.destUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dest)
}

// GetListItem - элемент спискового поля по позиции
func (h *DestinationHandler) GetListItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return utils.SendError(c, apperrors.ErrInvalidIndex)
	}

	item, err := h.destUC.GetListItem(c.Context(), c.Params("id"), c.Params("field"), index)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.ListItemResponse{Item: *item})
}

// Create - создание дестинации через workflow обогащения
func (h *DestinationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDestinationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.ErrCityRequired)
	}

	dest, err := h.destUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dest)
}

// Update - частичное обновление дестинации
func (h *DestinationHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateDestinationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := h.destUC.Update(c.Context(), c.Params("id"), req); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "updated"})
}

// RemoveListItem - удаление элемента спискового поля по позиции
func (h *DestinationHandler) RemoveListItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return utils.SendError(c, apperrors.ErrInvalidIndex)
	}

	if err := h.destUC.RemoveListItem(c.Context(), c.Params("id"), c.Params("field"), index); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "deleted"})
}

// Delete - удаление дестинации целиком
func (h *DestinationHandler) Delete(c *fiber.Ctx) error {
	if err := h.destUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "deleted"})
}
