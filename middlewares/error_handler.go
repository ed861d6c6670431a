package middlewares

import (
	"errors"

	"studycards.app/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler işlenmemiş hataları {error: mesaj} JSON'u olarak yazar.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := err.Error()

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		configslog.Log.Error("İşlenmemiş hata",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.Status(code).JSON(fiber.Map{"error": msg})
}
