package loans

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes loan application endpoints.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs a loan HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Apply accepts a loan application with any subset of the loan fields.
func (h *Handler) Apply(c *fiber.Ctx) error {
	var loan Loan
	if err := c.BodyParser(&loan); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Apply(c.UserContext(), loan); err != nil {
		h.logger.Error("apply loan failed", "loanType", loan.LoanType, "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Failed to submit loan application")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Loan application submitted successfully"})
}

// ListAll returns every application, newest first.
func (h *Handler) ListAll(c *fiber.Ctx) error {
	loans, err := h.service.ListAll(c.UserContext())
	if err != nil {
		h.logger.Error("list loans failed", "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Failed to fetch loan applications")
	}
	if loans == nil {
		loans = []Loan{}
	}
	return c.Status(http.StatusOK).JSON(loans)
}

// ListMine returns applications whose fullName matches the path username.
func (h *Handler) ListMine(c *fiber.Ctx) error {
	username := c.Params("username")
	loans, err := h.service.ListByApplicant(c.UserContext(), username)
	if err != nil {
		h.logger.Error("list user loans failed", "username", username, "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Failed to fetch user loans")
	}
	if loans == nil {
		loans = []Loan{}
	}
	return c.Status(http.StatusOK).JSON(loans)
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus sets the status of one application.
func (h *Handler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	loan, err := h.service.UpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			return fiber.NewError(http.StatusBadRequest, "Invalid loan ID format")
		case errors.Is(err, ErrNotFound):
			return fiber.NewError(http.StatusNotFound, "Loan not found")
		default:
			h.logger.Error("update loan status failed", "id", id, "error", err)
			return fiber.NewError(http.StatusInternalServerError, "Failed to update loan status")
		}
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Status updated successfully",
		"loan":    loan,
	})
}

// Stats returns per-applicant aggregate counts.
func (h *Handler) Stats(c *fiber.Ctx) error {
	username := c.Params("username")
	stats, err := h.service.StatsFor(c.UserContext(), username)
	if err != nil {
		h.logger.Error("loan stats failed", "username", username, "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Failed to fetch loan stats")
	}
	return c.Status(http.StatusOK).JSON(stats)
}
