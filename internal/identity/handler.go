package identity

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes identity endpoints.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs an identity HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type registerRequest struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles new account creation.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	_, err := h.service.Register(c.UserContext(), Credentials{
		Username: req.Username,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return fiber.NewError(http.StatusBadRequest, "Username already exists")
		}
		h.logger.Error("register failed", "username", req.Username, "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Registration failed")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Registration successful"})
}

// Login verifies credentials and returns the stored user projection.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Authenticate(c.UserContext(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return fiber.NewError(http.StatusNotFound, "User not found")
		case errors.Is(err, ErrInvalidPassword):
			return fiber.NewError(http.StatusBadRequest, "Invalid password")
		default:
			h.logger.Error("login failed", "username", req.Username, "error", err)
			return fiber.NewError(http.StatusInternalServerError, "Login failed")
		}
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"user":    user.Profile(),
	})
}

// ListUsers returns every registered user projected to public fields.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	profiles, err := h.service.List(c.UserContext())
	if err != nil {
		h.logger.Error("list users failed", "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Error fetching users")
	}
	return c.Status(http.StatusOK).JSON(profiles)
}
