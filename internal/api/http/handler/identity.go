package handler

import (
	"duel-service/domain"

	"github.com/gofiber/fiber/v2"
)

// caller reads the identity the gateway injects upstream.
func caller(c *fiber.Ctx) (accountID, name string, err error) {
	accountID = c.Get("X-User-ID")
	if accountID == "" {
		return "", "", domain.ErrUnauthorized
	}
	name = c.Get("X-User-Name")
	if name == "" {
		name = "Player-" + accountID[:min(6, len(accountID))]
	}
	return accountID, name, nil
}
