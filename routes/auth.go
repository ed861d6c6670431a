package routes

import (
	handlers "studycards.app/handlers/api"
	"studycards.app/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App, deps Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.AuthService, deps.SecureCookie)
	limit := middlewares.NewRateLimiter(deps.RatePerSecond, deps.RateBurst).Handler()

	authGroup := app.Group("/auth")
	authGroup.Post("/register", limit, authHandler.Register)
	authGroup.Post("/login", limit, authHandler.Login)
	authGroup.Get("/verify", middlewares.AuthMiddleware(deps.AuthService, true), authHandler.Verify)
	authGroup.Post("/logout", authHandler.Logout)
}
