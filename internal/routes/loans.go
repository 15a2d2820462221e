package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/loandesk/loandesk/internal/loans"
)

// RegisterLoanRoutes wires the loan application endpoints.
func RegisterLoanRoutes(r fiber.Router, h *loans.Handler) {
	r.Post("/apply-loan", h.Apply)
	r.Get("/loan-applications", h.ListAll)
	r.Get("/my-loans/:username", h.ListMine)
	r.Put("/update-loan-status/:id", h.UpdateStatus)
	r.Get("/loan-stats/:username", h.Stats)
}
