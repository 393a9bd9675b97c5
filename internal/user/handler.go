package user

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

type createUserRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/user/create", h.createUser)
	// id route must be registered before the :username param route so
	// /api/user/id/... does not get captured as a username
	app.Get("/api/user/id/:id", h.getByID)
	app.Get("/api/user/:username", h.getByUsername)
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	payload := new(createUserRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(payload.Username, payload.Password, payload.ConfirmPassword)
	if err != nil {
		switch err {
		case ErrPasswordMismatch:
			// the original API contract maps a mismatch to 401
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "password and confirmation do not match"})
		case ErrPasswordTooShort:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "password must be at least 5 characters"})
		case ErrUsernameTaken:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "username already exists"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(created)
}

func (h *Handler) getByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	u, err := h.service.GetByID(id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(u)
}

func (h *Handler) getByUsername(c *fiber.Ctx) error {
	u, err := h.service.GetByUsername(c.Params("username"))
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(u)
}
