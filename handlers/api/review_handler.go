package handlers

import (
	"studycards.app/services"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler /start uç noktaları.
type ReviewHandler struct {
	service services.IReviewService
}

func NewReviewHandler(service services.IReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type reviewBatchRequest struct {
	Updates []services.ReviewUpdate `json:"updates"`
}

type checkAnswerRequest struct {
	CardID uint   `json:"card_id"`
	Answer string `json:"answer"`
}

func (h *ReviewHandler) GetDueCards(c *fiber.Ctx) error {
	cards, err := h.service.GetDueCards(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cards)
}

func (h *ReviewHandler) GetAllCards(c *fiber.Ctx) error {
	cards, err := h.service.GetAllCards(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cards)
}

// UpdateCards bir tekrar turunun sonuçlarını tek seferde uygular.
func (h *ReviewHandler) UpdateCards(c *fiber.Ctx) error {
	var req reviewBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	saved, err := h.service.ApplyReviewBatch(c.UserContext(), req.Updates)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"status":        "success",
		"message":       "Cards updated successfully",
		"updated_count": len(saved),
		"cards":         saved,
	})
}

func (h *ReviewHandler) CheckAnswer(c *fiber.Ctx) error {
	var req checkAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	res, err := h.service.CheckAnswer(c.UserContext(), req.CardID, req.Answer)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
