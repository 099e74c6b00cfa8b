package router

import (
	"github.com/labstack/echo/v4"

	"numberzz/internal/adapter/api/handler"
	"numberzz/internal/adapter/api/middleware"
)

func SetupContractRouter(e *echo.Echo, walletMiddleware *middleware.WalletMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	contractHandler := handler.GetContractHandler()

	contracts := e.Group("/v1/contracts")
	contracts.GET("", contractHandler.ListContracts)
	contracts.GET("/:id", contractHandler.GetContract)

	selling := e.Group("/v1/contracts")
	selling.Use(walletMiddleware.RequireWallet)
	selling.POST("", contractHandler.CreateContract)
	selling.POST("/:id/offers", contractHandler.MakeOffer, rateLimitMiddleware.Limit("make_offer"))
	selling.POST("/:id/accept", contractHandler.AcceptOffer, rateLimitMiddleware.Limit("accept_offer"))
	selling.POST("/:id/cancel", contractHandler.CancelContract)

	listings := e.Group("/v1/listings")
	listings.Use(walletMiddleware.RequireWallet)
	listings.DELETE("/:id", contractHandler.CancelListing)
}
