package order

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pakin42/ecommerce-backend/internal/cart"
	"github.com/pakin42/ecommerce-backend/internal/user"
)

// Handler delegates order operations to the order service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/order/submit/:username", h.submitOrder)
	app.Get("/api/order/history/:username", h.getHistory)
}

func (h *Handler) submitOrder(c *fiber.Ctx) error {
	created, err := h.service.Submit(c.Params("username"))
	if err != nil {
		return mapOrderError(c, err)
	}
	return c.JSON(created)
}

func (h *Handler) getHistory(c *fiber.Ctx) error {
	orders, err := h.service.History(c.Params("username"))
	if err != nil {
		return mapOrderError(c, err)
	}
	return c.JSON(orders)
}

func mapOrderError(c *fiber.Ctx, err error) error {
	switch err {
	case user.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	case cart.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "cart not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
