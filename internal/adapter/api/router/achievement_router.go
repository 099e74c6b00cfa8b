package router

import (
	"github.com/labstack/echo/v4"

	"numberzz/internal/adapter/api/handler"
	"numberzz/internal/adapter/api/middleware"
)

func SetupAchievementRouter(e *echo.Echo, walletMiddleware *middleware.WalletMiddleware) {
	achievementHandler := handler.GetAchievementHandler()

	achievements := e.Group("/v1/achievements")
	achievements.Use(walletMiddleware.RequireWallet)
	achievements.GET("", achievementHandler.GetAchievements)
}
