package cart

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pakin42/ecommerce-backend/internal/item"
	"github.com/pakin42/ecommerce-backend/internal/user"
)

// Handler delegates cart operations to the cart service. This keeps
// cart-specific HTTP routing isolated.
type Handler struct {
	service *Service
}

type cartRequest struct {
	Username string `json:"username"`
	ItemID   int    `json:"itemId"`
	Quantity int    `json:"quantity"`
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/cart/addToCart", h.addToCart)
	app.Post("/api/cart/removeFromCart", h.removeFromCart)
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	payload := new(cartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.AddToCart(payload.Username, payload.ItemID, payload.Quantity)
	if err != nil {
		return mapCartError(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) removeFromCart(c *fiber.Ctx) error {
	payload := new(cartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.RemoveFromCart(payload.Username, payload.ItemID, payload.Quantity)
	if err != nil {
		return mapCartError(c, err)
	}
	return c.JSON(updated)
}

func mapCartError(c *fiber.Ctx, err error) error {
	switch err {
	case user.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	case item.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "item not found"})
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "cart not found"})
	case ErrInvalidQuantity:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "quantity must not be negative"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
