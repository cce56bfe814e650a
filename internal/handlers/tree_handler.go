package handlers

import (
	"Mediabox/internal/services"
	"Mediabox/internal/tree"

	"github.com/gofiber/fiber/v2"
)

// TreeHandler serves the fully assembled folder tree so clients can rebuild
// their navigation state in a single round trip instead of one request per
// level.
type TreeHandler struct {
	folderService services.FolderService
	imageService  services.ImageService
}

func NewTreeHandler(folderService services.FolderService, imageService services.ImageService) *TreeHandler {
	return &TreeHandler{folderService: folderService, imageService: imageService}
}

func (h *TreeHandler) GetMediaTree(c *fiber.Ctx) error {
	folders, err := h.folderService.ListAllFolders()
	if err != nil {
		status, body := errorResponse(err)
		return c.Status(status).JSON(body)
	}
	images, err := h.imageService.GetImages()
	if err != nil {
		status, body := errorResponse(err)
		return c.Status(status).JSON(body)
	}
	links, err := h.imageService.GetImageLinks()
	if err != nil {
		status, body := errorResponse(err)
		return c.Status(status).JSON(body)
	}

	root := tree.Rebuild(folders, images, links)
	return c.JSON(map[string]interface{}{"root": root})
}
