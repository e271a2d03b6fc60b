package order

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aurelia-jewels/jewelry-shop-backend/internal/session"
)

// Handler delegates order operations to the order service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/orders", h.createOrder)
	app.Get("/api/orders", h.getOrders)
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(CreateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	sessionID, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing session"})
	}

	created, err := h.service.Create(sessionID, *payload)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "invalid customer info",
				"errors":  vErr.Fields,
			})
		case errors.Is(err, ErrMissingPayment):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ErrMissingPayment.Error()})
		case errors.Is(err, ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ErrEmptyCart.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(created)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}
