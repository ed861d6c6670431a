package routes

import (
	handlers "studycards.app/handlers/api"
	"studycards.app/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerUploadRoutes(app *fiber.App, deps Dependencies) {
	uploadHandler := handlers.NewUploadHandler(deps.ImportService, deps.UploadMaxBytes)

	app.Post("/upload", middlewares.AuthMiddleware(deps.AuthService, deps.AuthRequired), uploadHandler.Upload)
}
