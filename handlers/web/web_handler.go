package handlers

import (
	"studycards.app/configs/configslog"
	"studycards.app/middlewares"
	"studycards.app/models"
	"studycards.app/pkg/queryparams"
	"studycards.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const mainLayout = "layouts/main"

// WebHandler sunucu tarafında render edilen sayfalar.
type WebHandler struct {
	cardService services.ICardService
}

func NewWebHandler(cardService services.ICardService) *WebHandler {
	return &WebHandler{cardService: cardService}
}

func (h *WebHandler) ShowLogin(c *fiber.Ctx) error {
	return c.Render("auth/login", fiber.Map{
		"Title": "Sign in",
	}, mainLayout)
}

// Dashboard kart ve tekrar sayıları ile ilk sayfa kartları gösterir.
func (h *WebHandler) Dashboard(c *fiber.Ctx) error {
	ctx := c.UserContext()
	data := fiber.Map{
		"Title":     "Your cards",
		"UserEmail": c.Locals(middlewares.LocalsUserEmail),
	}

	params := queryparams.DefaultListParams()
	cards, total, err := h.cardService.ListCards(ctx, params)
	if err != nil {
		configslog.Log.Error("Web - Dashboard kartlar alınamadı", zap.Error(err))
		data["Error"] = "Cards could not be loaded."
		cards = []models.Card{}
	}
	due, err := h.cardService.CountDue(ctx)
	if err != nil {
		configslog.Log.Error("Web - Dashboard due sayısı alınamadı", zap.Error(err))
		data["Error"] = "Cards could not be loaded."
	}

	data["Cards"] = cards
	data["Total"] = total
	data["Due"] = due
	return c.Render("app/dashboard", data, mainLayout)
}

// Review tekrar oturumu sayfası; kartlar tarayıcıda /start uç noktalarından çekilir.
func (h *WebHandler) Review(c *fiber.Ctx) error {
	mode := c.Query("mode", "due")
	if mode != "due" && mode != "all" {
		mode = "due"
	}
	return c.Render("app/review", fiber.Map{
		"Title": "Review",
		"Mode":  mode,
	}, mainLayout)
}

// NotFound JSON isteyen istemcilere JSON, diğerlerine HTML 404 döner.
func NotFound(c *fiber.Ctx) error {
	switch c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) {
	case fiber.MIMETextHTML:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Page not found"}, mainLayout)
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
	}
}
