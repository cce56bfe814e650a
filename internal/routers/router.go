package routers

import (
	"Mediabox/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupFolderRouter(app, server)
	SetupImageRouter(app, server)
	SetupJanitorRouter(app, server)
}
