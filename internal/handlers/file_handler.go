package handlers

import (
	"errors"
	"io"

	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FileHandler struct {
	uploader storage.Uploader
}

func NewFileHandler(uploader storage.Uploader) *FileHandler {
	return &FileHandler{uploader: uploader}
}

// Upload pushes a single multipart file to object storage and returns
// its public URL.
func (h *FileHandler) Upload(c *fiber.Ctx) error {
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

	name := uuid.NewString() + "_" + file.Filename
	url, err := h.uploader.Upload(c.Context(), name, file.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: "File storage is not configured",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Upload failed",
		})
	}

	return c.JSON(dto.FileUploadResponse{URL: url})
}
