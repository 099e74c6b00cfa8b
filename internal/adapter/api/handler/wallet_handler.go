package handler

import (
	"github.com/labstack/echo/v4"

	"numberzz/internal/adapter/api/middleware"
	"numberzz/internal/usecase"
	"numberzz/pkg/response"
)

type WalletHandler struct {
	walletUseCase *usecase.WalletUseCase
}

func NewWalletHandler(walletUseCase *usecase.WalletUseCase) *WalletHandler {
	return &WalletHandler{
		walletUseCase: walletUseCase,
	}
}

func (h *WalletHandler) Connect(c echo.Context) error {
	result, err := h.walletUseCase.Connect(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

func (h *WalletHandler) GetBalance(c echo.Context) error {
	balance, err := h.walletUseCase.Balance(c.Request().Context(), middleware.Account(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"balance": balance})
}
