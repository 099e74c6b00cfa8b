package router

import (
	"github.com/labstack/echo/v4"

	"numberzz/internal/adapter/api/handler"
)

func SetupCertificateRouter(e *echo.Echo) {
	certificateHandler := handler.GetCertificateHandler()

	e.GET("/v1/certificates", certificateHandler.ListCertificates)
}
