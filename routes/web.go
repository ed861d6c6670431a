package routes

import (
	handlers "studycards.app/handlers/web"
	"studycards.app/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerWebRoutes /app altındaki sunucu tarafı sayfalar.
// Middleware'ler rota bazında verilir; grup Use'u /app/login'i de kapsardı.
func registerWebRoutes(app *fiber.App, deps Dependencies) {
	webHandler := handlers.NewWebHandler(deps.CardService)
	requireSession := middlewares.WebAuthMiddleware(deps.AuthService, deps.AuthRequired)

	app.Get("/app/login", middlewares.GuestMiddleware(deps.AuthService), webHandler.ShowLogin)
	app.Get("/app", requireSession, webHandler.Dashboard)
	app.Get("/app/review", requireSession, webHandler.Review)
}
