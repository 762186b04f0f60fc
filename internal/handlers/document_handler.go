package handlers

import (
	"errors"
	"io"

	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/middleware"
	"github.com/condomanager/condomanager-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	documentService *services.DocumentService
}

func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Upload receives a multipart PDF with title and condominium_id fields.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	condominiumID, err := uuid.Parse(c.FormValue("condominium_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid condominium_id",
		})
	}
	title := c.FormValue("title")
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "title is required",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "file is required",
		})
	}
	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not read uploaded file",
		})
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not read uploaded file",
		})
	}

	doc, err := h.documentService.Upload(c.Context(), title, condominiumID, file.Filename, file.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotPDF),
			errors.Is(err, services.ErrIntegrityViolation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.DocumentUploadResponse{
		Status: "success",
		ID:     doc.ID,
	})
}

// Ask answers ?question= from the caller's condominium documents.
func (h *DocumentHandler) Ask(c *fiber.Ctx) error {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	if caller.CondominiumID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "User is not linked to a condominium",
		})
	}

	question := c.Query("question")
	if question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "question is required",
		})
	}

	answer, err := h.documentService.Ask(c.Context(), *caller.CondominiumID, question)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(dto.AskResponse{Answer: answer})
}
