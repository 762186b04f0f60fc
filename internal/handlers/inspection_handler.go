package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/middleware"
	"github.com/condomanager/condomanager-api/internal/services"
	"github.com/condomanager/condomanager-api/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InspectionHandler struct {
	inspectionService *services.InspectionService
	uploader          storage.Uploader
}

func NewInspectionHandler(inspectionService *services.InspectionService, uploader storage.Uploader) *InspectionHandler {
	return &InspectionHandler{inspectionService: inspectionService, uploader: uploader}
}

// Upload receives the multipart inspection form: condominium_id,
// is_custom, analysis, items_json and the item photos.
func (h *InspectionHandler) Upload(c *fiber.Ctx) error {
	surveyor, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	condominiumID, err := uuid.Parse(c.FormValue("condominium_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid condominium_id",
		})
	}
	isCustom := c.FormValue("is_custom") == "true"
	analysis := c.FormValue("analysis")

	var items []dto.InspectionItemPayload
	if err := json.Unmarshal([]byte(c.FormValue("items_json")), &items); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid JSON format for inspection items",
		})
	}

	h.attachPhotos(c, items)

	inspection, err := h.inspectionService.Create(surveyor, condominiumID, isCustom, analysis, items)
	if err != nil {
		if errors.Is(err, services.ErrIntegrityViolation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.InspectionUploadResponse{
		Status:       "success",
		InspectionID: inspection.ID,
		Message:      "Inspection and any generated work orders created successfully",
	})
}

// attachPhotos uploads the posted files in order and fills each item's
// photo URL. Upload failures are logged, not fatal: the inspection
// still commits without photos.
func (h *InspectionHandler) attachPhotos(c *fiber.Ctx, items []dto.InspectionItemPayload) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return
	}
	files := form.File["files"]

	for i, file := range files {
		if i >= len(items) {
			break
		}

		src, err := file.Open()
		if err != nil {
			slog.Warn("failed to open uploaded photo", "file", file.Filename, "error", err)
			continue
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			slog.Warn("failed to read uploaded photo", "file", file.Filename, "error", err)
			continue
		}

		name := uuid.NewString() + "_" + file.Filename
		url, err := h.uploader.Upload(c.Context(), name, file.Header.Get("Content-Type"), data)
		if err != nil {
			if !errors.Is(err, storage.ErrNotConfigured) {
				slog.Warn("photo upload failed", "file", file.Filename, "error", err)
			}
			continue
		}
		items[i].PhotoURL = url
	}
}

func (h *InspectionHandler) List(c *fiber.Ctx) error {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	inspections, err := h.inspectionService.List(caller)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(inspections)
}
