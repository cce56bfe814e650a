package handlers

import (
	"Mediabox/internal/config"
	"Mediabox/internal/models"
	"Mediabox/internal/services"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ImageHandler struct {
	service       services.ImageService
	resizeService services.ResizeService
	configuration *config.Configuration
}

func NewImageHandler(
	service services.ImageService,
	resizeService services.ResizeService,
	configuration *config.Configuration,
) *ImageHandler {
	return &ImageHandler{
		service:       service,
		resizeService: resizeService,
		configuration: configuration,
	}
}

func (h *ImageHandler) ListImages(c *fiber.Ctx) error {
	images, err := h.service.GetImages()
	if err != nil {
		status, body := errorResponse(err)
		return c.Status(status).JSON(body)
	}
	return c.JSON(images)
}

// CreateImage registers metadata for an asset the storage worker has already
// ingested. The image starts at the implicit root until it is filed.
func (h *ImageHandler) CreateImage(c *fiber.Ctx) error {
	var image models.Image
	if err := c.BodyParser(&image); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if image.Filename == "" || image.Src == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "filename and src are required"})
	}

	if err := h.service.CreateImage(&image); err != nil {
		status, body := errorResponse(err)
		return c.Status(status).JSON(body)
	}
	return c.Status(http.StatusCreated).JSON(image)
}

func (h *ImageHandler) MoveImages(c *fiber.Ctx) error {
	var req struct {
		ImageIDs   []string `json:"imageIds"`
		TargetPath string   `json:"targetPath"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if len(req.ImageIDs) == 0 {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "missing or invalid image IDs"})
	}

	imageIDs := make([]uint, 0, len(req.ImageIDs))
	for _, raw := range req.ImageIDs {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid image ID: " + raw})
		}
		imageIDs = append(imageIDs, uint(id))
	}

	results, err := h.service.MoveImages(imageIDs, req.TargetPath)
	if err != nil {
		status, body := errorResponse(err)
		return c.Status(status).JSON(body)
	}

	moved := 0
	for _, r := range results {
		if r.Success {
			moved++
		}
	}

	status := http.StatusOK
	if moved < len(results) {
		// Bulk moves are not all-or-nothing; partial failure is reported per
		// id so the client can retry the stragglers.
		status = http.StatusInternalServerError
	}
	return c.Status(status).JSON(map[string]interface{}{
		"moved":   moved,
		"total":   len(results),
		"results": results,
	})
}

func (h *ImageHandler) ResizeImage(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if filename == "" || strings.Contains(filename, "..") {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid filename"})
	}

	var req struct {
		Size string `json:"size"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if !services.IsValidSize(req.Size) {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid or missing size parameter"})
	}

	sourceURL := h.configuration.Media.StorageWorkerURL + "/original/" + filename

	result, err := h.resizeService.Resize(sourceURL, req.Size)
	if err != nil {
		var workerErr *services.WorkerError
		if errors.As(err, &workerErr) {
			return c.Status(http.StatusBadGateway).JSON(map[string]interface{}{
				"error":        "could not create resized image",
				"workerStatus": workerErr.StatusCode,
			})
		}
		return c.Status(http.StatusBadGateway).JSON(map[string]interface{}{"error": "could not create resized image"})
	}

	return c.JSON(result)
}
