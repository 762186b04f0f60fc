package handlers

import (
	"errors"

	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/middleware"
	"github.com/condomanager/condomanager-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CondominiumHandler struct {
	condoService *services.CondominiumService
}

func NewCondominiumHandler(condoService *services.CondominiumService) *CondominiumHandler {
	return &CondominiumHandler{condoService: condoService}
}

func (h *CondominiumHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCondominiumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	condo, err := h.condoService.Create(&req)
	if err != nil {
		// ErrTaxIDTaken and validation failures are all client errors.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(condo)
}

func (h *CondominiumHandler) Get(c *fiber.Ctx) error {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid condominium id",
		})
	}

	condo, err := h.condoService.Get(caller, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCondominiumNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Access denied to this condominium",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(condo)
}

func (h *CondominiumHandler) List(c *fiber.Ctx) error {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	condos, err := h.condoService.List(caller)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(condos)
}
