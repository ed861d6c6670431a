package routes

import (
	handlers "studycards.app/handlers/api"
	"studycards.app/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerStartRoutes tekrar oturumu uç noktaları.
func registerStartRoutes(app *fiber.App, deps Dependencies) {
	reviewHandler := handlers.NewReviewHandler(deps.ReviewService)

	startGroup := app.Group("/start", middlewares.AuthMiddleware(deps.AuthService, deps.AuthRequired))
	startGroup.Get("/due", reviewHandler.GetDueCards)
	startGroup.Get("/all", reviewHandler.GetAllCards)
	startGroup.Patch("/update", reviewHandler.UpdateCards)
	startGroup.Put("/update", reviewHandler.UpdateCards)
	startGroup.Post("/check", reviewHandler.CheckAnswer)
}
