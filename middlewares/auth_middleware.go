package middlewares

import (
	"strings"

	"studycards.app/services"

	"github.com/gofiber/fiber/v2"
)

const (
	// AuthCookieName oturum token'ını taşıyan cookie.
	AuthCookieName = "authToken"

	LocalsUserID    = "userID"
	LocalsUserEmail = "userEmail"
)

// TokenFromRequest önce Authorization: Bearer başlığına, sonra cookie'ye bakar.
func TokenFromRequest(c *fiber.Ctx) string {
	if h := c.Get(fiber.HeaderAuthorization); h != "" {
		if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
			return strings.TrimSpace(h[7:])
		}
	}
	return c.Cookies(AuthCookieName)
}

// authenticate geçerli token varsa kullanıcıyı Locals'a yazar.
func authenticate(c *fiber.Ctx, authService services.IAuthService) bool {
	token := TokenFromRequest(c)
	if token == "" {
		return false
	}
	claims, err := authService.VerifyToken(token)
	if err != nil {
		return false
	}
	c.Locals(LocalsUserID, claims.UserID)
	c.Locals(LocalsUserEmail, claims.Email)
	return true
}

// AuthMiddleware API isteklerinde geçerli token ister; yoksa 401 döner.
// required false ise token isteğe bağlıdır ama varsa yine çözülür.
func AuthMiddleware(authService services.IAuthService, required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authenticate(c, authService) || !required {
			return c.Next()
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
}

// WebAuthMiddleware tarayıcı sayfaları için; oturum yoksa giriş sayfasına yönlendirir.
func WebAuthMiddleware(authService services.IAuthService, required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authenticate(c, authService) || !required {
			return c.Next()
		}
		return c.Redirect("/app/login", fiber.StatusSeeOther)
	}
}

// GuestMiddleware giriş yapmış kullanıcıyı giriş sayfası yerine panele gönderir.
func GuestMiddleware(authService services.IAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authenticate(c, authService) {
			return c.Redirect("/app", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// UserIDFromLocals middleware tarafından yazılan kullanıcı id'sini döndürür.
func UserIDFromLocals(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(LocalsUserID).(uint)
	return id, ok && id != 0
}
