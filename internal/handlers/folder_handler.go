package handlers

import (
	"Mediabox/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type FolderHandler struct {
	service services.FolderService
}

func NewFolderHandler(service services.FolderService) *FolderHandler {
	return &FolderHandler{service: service}
}

func (h *FolderHandler) ListFolders(c *fiber.Ctx) error {
	folders, err := h.service.ListAllFolders()
	if err != nil {
		status, body := errorResponse(err)
		return c.Status(status).JSON(body)
	}
	return c.JSON(folders)
}

func (h *FolderHandler) CreatePath(c *fiber.Ctx) error {
	var req struct {
		Path string `json:"path"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.Path == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "path is required"})
	}

	path, err := h.service.CreatePath(req.Path)
	if err != nil {
		status, body := errorResponse(err)
		return c.Status(status).JSON(body)
	}

	return c.Status(http.StatusCreated).JSON(map[string]interface{}{"path": path})
}

func (h *FolderHandler) ListChildren(c *fiber.Ctx) error {
	path := c.Query("path", "")

	listing, err := h.service.ListChildren(path)
	if err != nil {
		status, body := errorResponse(err)
		return c.Status(status).JSON(body)
	}
	return c.JSON(listing)
}

func (h *FolderHandler) RenameFolder(c *fiber.Ctx) error {
	var req struct {
		FolderPath string `json:"folderPath"`
		NewName    string `json:"newName"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.FolderPath == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "folderPath is required"})
	}
	if req.NewName == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "newName is required"})
	}

	oldPath, err := h.service.Rename(req.FolderPath, req.NewName)
	if err != nil {
		status, body := errorResponse(err)
		return c.Status(status).JSON(body)
	}

	return c.JSON(map[string]interface{}{"oldPath": oldPath, "newName": req.NewName})
}

func (h *FolderHandler) MoveFolder(c *fiber.Ctx) error {
	var req struct {
		Source string  `json:"source"`
		Target *string `json:"target"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.Source == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "source is required"})
	}

	newPath, err := h.service.Move(req.Source, req.Target)
	if err != nil {
		status, body := errorResponse(err)
		return c.Status(status).JSON(body)
	}

	target := ""
	if req.Target != nil {
		target = *req.Target
	}
	return c.JSON(map[string]interface{}{
		"source":  req.Source,
		"target":  target,
		"newPath": newPath,
	})
}

func (h *FolderHandler) DeleteFolder(c *fiber.Ctx) error {
	var req struct {
		FolderPath string `json:"folderPath"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.FolderPath == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "folderPath is required"})
	}

	deleted, err := h.service.Delete(req.FolderPath)
	if err != nil {
		status, body := errorResponse(err)
		return c.Status(status).JSON(body)
	}

	return c.JSON(map[string]interface{}{
		"deletedPath":    req.FolderPath,
		"deletedFolders": deleted,
	})
}
