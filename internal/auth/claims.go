package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// UserID extracts the acting admin's id from the JWT the middleware stored in
// locals. Returns 0 when no valid token is present.
func UserID(c *fiber.Ctx) int {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return 0
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0
	}
	return int(id)
}
