package router

import (
	"github.com/labstack/echo/v4"

	"numberzz/internal/adapter/api/handler"
	"numberzz/internal/adapter/api/middleware"
)

func SetupItemRouter(e *echo.Echo, walletMiddleware *middleware.WalletMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	itemHandler := handler.GetItemHandler()

	items := e.Group("/v1/items")
	items.Use(walletMiddleware.OptionalWallet)
	items.GET("", itemHandler.ListItems)
	items.GET("/:id", itemHandler.GetItem)
	items.GET("/:id/history", itemHandler.GetItemHistory)
	items.GET("/:id/interested", itemHandler.ListInterestedBuyers)
	items.POST("/triggers", itemHandler.TriggerEasterEgg)

	owned := e.Group("/v1/items")
	owned.Use(walletMiddleware.RequireWallet)
	owned.POST("/:id/claim", itemHandler.ClaimItem, rateLimitMiddleware.Limit("claim"))
	owned.POST("/:id/buy", itemHandler.BuyItem, rateLimitMiddleware.Limit("buy"))
	owned.POST("/:id/transfer", itemHandler.TransferItem, rateLimitMiddleware.Limit("buy"))
	owned.POST("/:id/interested", itemHandler.MarkInterested, rateLimitMiddleware.Limit("interest"))
	owned.DELETE("/:id/interested", itemHandler.RemoveInterest, rateLimitMiddleware.Limit("interest"))
}
