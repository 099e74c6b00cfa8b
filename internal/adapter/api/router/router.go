package router

import (
	"github.com/labstack/echo/v4"

	"numberzz/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, walletMiddleware *middleware.WalletMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupItemRouter(e, walletMiddleware, rateLimitMiddleware)
	SetupContractRouter(e, walletMiddleware, rateLimitMiddleware)
	SetupCertificateRouter(e)
	SetupAchievementRouter(e, walletMiddleware)
	SetupWalletRouter(e, walletMiddleware)
	SetupAdminRouter(e, walletMiddleware)
	SetupHealthRouter(e)
}
