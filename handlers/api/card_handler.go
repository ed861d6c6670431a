package handlers

import (
	"fmt"
	"strconv"

	"studycards.app/pkg/queryparams"
	"studycards.app/services"

	"github.com/gofiber/fiber/v2"
)

// CardHandler /cards uç noktaları.
type CardHandler struct {
	service services.ICardService
}

func NewCardHandler(service services.ICardService) *CardHandler {
	return &CardHandler{service: service}
}

// ListCards kartları dizi olarak döndürür; toplam sayı X-Total-Count başlığındadır.
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	params := queryparams.DefaultListParams()
	if err := c.QueryParser(&params); err != nil {
		return badRequest(c, "Invalid query parameters")
	}

	cards, total, err := h.service.ListCards(c.UserContext(), params)
	if err != nil {
		return respondError(c, err)
	}
	c.Set("X-Total-Count", strconv.FormatInt(total, 10))
	return c.JSON(cards)
}

func (h *CardHandler) GetCard(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid card id")
	}
	card, err := h.service.GetCard(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(card)
}

func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	var in services.CardInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	card, err := h.service.CreateCard(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

func (h *CardHandler) UpdateCard(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid card id")
	}
	var in services.CardInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	card, err := h.service.UpdateCard(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(card)
}

func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid card id")
	}
	if err := h.service.DeleteCard(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Card id: %d deleted successfully", id)})
}
