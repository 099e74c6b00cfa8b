package handler

import (
	"github.com/labstack/echo/v4"

	"numberzz/internal/adapter/api/middleware"
	"numberzz/internal/usecase"
	"numberzz/pkg/response"
)

type AdminHandler struct {
	ledgerUseCase *usecase.LedgerUseCase
}

func NewAdminHandler(ledgerUseCase *usecase.LedgerUseCase) *AdminHandler {
	return &AdminHandler{
		ledgerUseCase: ledgerUseCase,
	}
}

// Reset wipes every table and reseeds the catalogue. Restricted to the
// bank wallet inside the use case.
func (h *AdminHandler) Reset(c echo.Context) error {
	if err := h.ledgerUseCase.ResetAll(c.Request().Context(), middleware.Account(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "reset"})
}
