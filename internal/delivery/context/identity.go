package context

import (
	"tutoria/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const keyIdentity = "identity"

// SetIdentity stores the identity verified by the route gate.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(keyIdentity, identity)
}

// GetIdentity returns the identity attached by the route gate, if any.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(keyIdentity).(*entity.Identity)

	return identity, ok && identity != nil
}
