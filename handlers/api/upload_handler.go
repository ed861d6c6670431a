package handlers

import (
	"io"

	"studycards.app/services"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler dosyadan kart üretme uç noktası.
type UploadHandler struct {
	service  services.IImportService
	maxBytes int64
}

func NewUploadHandler(service services.IImportService, maxBytes int) *UploadHandler {
	return &UploadHandler{service: service, maxBytes: int64(maxBytes)}
}

type uploadedCard struct {
	CardID   uint   `json:"cardId"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file uploaded")
	}
	if fh.Size > h.maxBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "File is too large"})
	}

	f, err := fh.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		return respondError(c, err)
	}
	if int64(len(data)) > h.maxBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "File is too large"})
	}

	cards, err := h.service.ImportFile(c.UserContext(), fh.Filename, fh.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]uploadedCard, 0, len(cards))
	for _, card := range cards {
		out = append(out, uploadedCard{CardID: card.ID, Question: card.Question, Answer: card.Answer})
	}
	return c.JSON(fiber.Map{"flashcards": out, "status": "success"})
}
