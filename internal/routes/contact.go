package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/loandesk/loandesk/internal/contact"
)

// RegisterContactRoutes wires the contact-form endpoint.
func RegisterContactRoutes(r fiber.Router, h *contact.Handler) {
	r.Post("/contact", h.Submit)
}
