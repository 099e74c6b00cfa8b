package router

import (
	"github.com/labstack/echo/v4"

	"numberzz/internal/adapter/api/handler"
	"numberzz/internal/adapter/api/middleware"
)

func SetupWalletRouter(e *echo.Echo, walletMiddleware *middleware.WalletMiddleware) {
	walletHandler := handler.GetWalletHandler()

	wallet := e.Group("/v1/wallet")
	wallet.POST("/connect", walletHandler.Connect)

	balance := e.Group("/v1/wallet")
	balance.Use(walletMiddleware.RequireWallet)
	balance.GET("/balance", walletHandler.GetBalance)
}
