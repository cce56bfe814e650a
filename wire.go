//go:build wireinject
// +build wireinject

package main

import (
	"Mediabox/cmd"
	"Mediabox/database"
	"Mediabox/internal/handlers"
	"Mediabox/internal/repository"
	"Mediabox/internal/services"
	"github.com/google/wire"
)

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		database.SetupDatabase,
		repository.NewFolderRepository,
		repository.NewImageRepository,
		services.NewPathService,
		services.NewFolderService,
		handlers.NewFolderHandler,
		services.NewImageService,
		services.NewResizeService,
		handlers.NewImageHandler,
		handlers.NewTreeHandler,
		services.NewLogService,
		services.NewJanitorService,
		Provider,
	)
	return nil, nil
}
