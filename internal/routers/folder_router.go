package routers

import (
	"Mediabox/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupFolderRouter(app *fiber.App, server *cmd.Server) {
	folderHandler := server.FolderHandler
	app.Get("/folders", folderHandler.ListFolders)
	app.Post("/folders", folderHandler.CreatePath)
	app.Patch("/folders", folderHandler.RenameFolder)
	app.Put("/folders", folderHandler.MoveFolder)
	app.Delete("/folders", folderHandler.DeleteFolder)
	app.Get("/folders/children", folderHandler.ListChildren)
}
