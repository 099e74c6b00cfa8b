package router

import (
	"github.com/labstack/echo/v4"

	"numberzz/internal/adapter/api/handler"
)

func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/ws/sync", wsHandler.HandleWebSocket)
}
