package routes

import (
	handlers "studycards.app/handlers/api"
	"studycards.app/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerCardRoutes(app *fiber.App, deps Dependencies) {
	cardHandler := handlers.NewCardHandler(deps.CardService)

	cardGroup := app.Group("/cards", middlewares.AuthMiddleware(deps.AuthService, deps.AuthRequired))
	cardGroup.Get("/", cardHandler.ListCards)
	cardGroup.Post("/", cardHandler.CreateCard)
	cardGroup.Get("/:id", cardHandler.GetCard)
	cardGroup.Put("/:id", cardHandler.UpdateCard)
	cardGroup.Delete("/:id", cardHandler.DeleteCard)
}
