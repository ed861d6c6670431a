package handlers

import (
	"time"

	"studycards.app/middlewares"
	"studycards.app/models"
	"studycards.app/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service      services.IAuthService
	secureCookie bool
}

// NewAuthHandler secureCookie true ise cookie yalnızca HTTPS üzerinden gönderilir.
func NewAuthHandler(service services.IAuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{service: service, secureCookie: secureCookie}
}

type userResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.service.Register(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    toUserResponse(user),
	})
}

// Login başarılı girişte token'ı hem gövdede hem httpOnly cookie'de döndürür.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in services.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, token, err := h.service.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}

	ttl := h.service.TokenTTL()
	c.Cookie(&fiber.Cookie{
		Name:     middlewares.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    toUserResponse(user),
		"token":   token,
	})
}

func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	claims, err := h.service.VerifyToken(middlewares.TokenFromRequest(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Token is valid",
		"user":    userResponse{ID: claims.UserID, Email: claims.Email},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middlewares.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}
