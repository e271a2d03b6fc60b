package session

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// CookieName is the cookie carrying the opaque visitor id.
	CookieName = "session_id"

	localsKey = "sessionID"
)

var ErrNoSession = errors.New("no session in context")

// Middleware makes sure every request carries a stable session id. A new
// uuid is minted and set as a cookie when the visitor has none yet; the id
// is stored in ctx locals for handlers.
//
// The same id follows the visitor across cart, wishlist and order calls,
// so an order submission clears the cart it was actually built from.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(CookieName)
		if id == "" {
			id = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     CookieName,
				Value:    id,
				Expires:  time.Now().Add(30 * 24 * time.Hour),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(localsKey, id)
		return c.Next()
	}
}

// FromCtx extracts the session id placed in locals by Middleware.
func FromCtx(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals(localsKey).(string)
	if !ok || id == "" {
		return "", ErrNoSession
	}
	return id, nil
}
