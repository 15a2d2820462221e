package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/loandesk/loandesk/internal/identity"
)

// RegisterIdentityRoutes wires registration, login, and user listing.
func RegisterIdentityRoutes(r fiber.Router, h *identity.Handler) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/users", h.ListUsers)
}
