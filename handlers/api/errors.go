package handlers

import (
	"errors"

	"studycards.app/configs/configslog"
	"studycards.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// errorStatuses servis hatalarını HTTP durum kodlarına eşler.
var errorStatuses = []struct {
	err    error
	status int
}{
	{services.ErrCardNotFound, fiber.StatusNotFound},
	{services.ErrReviewCardNotFound, fiber.StatusNotFound},
	{services.ErrCardInvalidInput, fiber.StatusBadRequest},
	{services.ErrReviewInvalidInput, fiber.StatusBadRequest},
	{services.ErrReviewEmptyBatch, fiber.StatusBadRequest},
	{services.ErrAuthInvalidInput, fiber.StatusBadRequest},
	{services.ErrUnsupportedFile, fiber.StatusBadRequest},
	{services.ErrEmptyFile, fiber.StatusBadRequest},
	{services.ErrNoFlashcards, fiber.StatusBadRequest},
	{services.ErrInvalidCredentials, fiber.StatusUnauthorized},
	{services.ErrInvalidToken, fiber.StatusUnauthorized},
	{services.ErrEmailExists, fiber.StatusConflict},
	{services.ErrExtractionFailed, fiber.StatusBadGateway},
	{services.ErrGenerationFailed, fiber.StatusBadGateway},
}

func statusFor(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return fiber.StatusInternalServerError
}

// respondError hatayı {error: mesaj} olarak yazar; eşlenmemiş hatalar loglanır.
func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		configslog.Log.Error("İstek işlenirken hata",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// parseID :id parametresini pozitif bir sayı olarak okur.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
