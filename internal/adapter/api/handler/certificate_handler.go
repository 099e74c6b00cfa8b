package handler

import (
	"github.com/labstack/echo/v4"

	"numberzz/internal/usecase"
	"numberzz/pkg/response"
)

type CertificateHandler struct {
	ledgerUseCase *usecase.LedgerUseCase
}

func NewCertificateHandler(ledgerUseCase *usecase.LedgerUseCase) *CertificateHandler {
	return &CertificateHandler{
		ledgerUseCase: ledgerUseCase,
	}
}

func (h *CertificateHandler) ListCertificates(c echo.Context) error {
	certs, err := h.ledgerUseCase.Certificates(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, certs)
}
