package routers

import (
	"Mediabox/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupImageRouter(app *fiber.App, server *cmd.Server) {
	imageHandler := server.ImageHandler
	app.Get("/images", imageHandler.ListImages)
	app.Post("/images", imageHandler.CreateImage)
	app.Post("/images/move", imageHandler.MoveImages)
	app.Post("/images/:filename/resize", imageHandler.ResizeImage)

	app.Get("/media/tree", server.TreeHandler.GetMediaTree)
}
