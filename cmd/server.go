package cmd

import (
	"Mediabox/internal/config"
	"Mediabox/internal/handlers"
	"Mediabox/internal/services"
)

type Server struct {
	Configuration  *config.Configuration
	FolderService  services.FolderService
	FolderHandler  *handlers.FolderHandler
	ImageService   services.ImageService
	ImageHandler   *handlers.ImageHandler
	TreeHandler    *handlers.TreeHandler
	LogService     services.LogService
	JanitorService *services.Janitor
}

func NewServer(
	configuration *config.Configuration,
	folderService services.FolderService,
	folderHandler *handlers.FolderHandler,
	imageService services.ImageService,
	imageHandler *handlers.ImageHandler,
	treeHandler *handlers.TreeHandler,
	logService services.LogService,
	janitorService *services.Janitor,
) *Server {
	return &Server{
		Configuration:  configuration,
		FolderService:  folderService,
		FolderHandler:  folderHandler,
		ImageService:   imageService,
		ImageHandler:   imageHandler,
		TreeHandler:    treeHandler,
		LogService:     logService,
		JanitorService: janitorService,
	}
}
