package contact

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the contact-form endpoint.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs a contact HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Submit stores a contact message.
func (h *Handler) Submit(c *fiber.Ctx) error {
	var msg Message
	if err := c.BodyParser(&msg); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Submit(c.UserContext(), msg); err != nil {
		h.logger.Error("save contact message failed", "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Failed to save contact message")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Contact message saved successfully"})
}
