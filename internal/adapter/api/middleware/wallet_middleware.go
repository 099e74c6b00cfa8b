package middleware

import (
	"github.com/labstack/echo/v4"

	"numberzz/internal/domain/entity"
	"numberzz/pkg/errors"
	"numberzz/pkg/response"
)

// WalletMiddleware resolves the acting account from the X-Wallet-Address
// header. There is no session: the wallet address is the identity.
type WalletMiddleware struct{}

func NewWalletMiddleware() *WalletMiddleware {
	return &WalletMiddleware{}
}

// RequireWallet rejects requests without a well-formed wallet address and
// stores the normalized address under "account".
func (m *WalletMiddleware) RequireWallet(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		addr := c.Request().Header.Get("X-Wallet-Address")
		if !entity.ValidAddress(addr) {
			return response.Error(c, errors.BadRequest("Missing or invalid X-Wallet-Address header", nil))
		}
		c.Set("account", entity.NormalizeAddress(addr))
		return next(c)
	}
}

// OptionalWallet stores the address when present and well-formed, and lets
// the request through either way. Read endpoints use it to scope ownership
// filters.
func (m *WalletMiddleware) OptionalWallet(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		addr := c.Request().Header.Get("X-Wallet-Address")
		if entity.ValidAddress(addr) {
			c.Set("account", entity.NormalizeAddress(addr))
		}
		return next(c)
	}
}

// Account returns the acting account set by the middleware, or "".
func Account(c echo.Context) string {
	if v, ok := c.Get("account").(string); ok {
		return v
	}
	return ""
}
