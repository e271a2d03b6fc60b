package wishlist

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/aurelia-jewels/jewelry-shop-backend/internal/session"
)

// Handler delegates wishlist operations to the wishlist service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/wishlist", h.getWishlist)
	app.Get("/api/wishlist/items", h.getItems)
	app.Post("/api/wishlist/:productId", h.toggle)
}

func (h *Handler) getWishlist(c *fiber.Ctx) error {
	sessionID, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing session"})
	}
	return c.JSON(h.service.GetWishlist(sessionID))
}

func (h *Handler) getItems(c *fiber.Ctx) error {
	sessionID, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing session"})
	}
	return c.JSON(h.service.GetItems(sessionID))
}

func (h *Handler) toggle(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	sessionID, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing session"})
	}
	return c.JSON(h.service.Toggle(sessionID, productID))
}
