package router

import (
	"github.com/labstack/echo/v4"

	"numberzz/internal/adapter/api/handler"
	"numberzz/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, walletMiddleware *middleware.WalletMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(walletMiddleware.RequireWallet)
	admin.POST("/reset", adminHandler.Reset)
}
