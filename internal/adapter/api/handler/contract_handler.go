package handler

import (
	"github.com/labstack/echo/v4"

	"numberzz/internal/adapter/api/middleware"
	"numberzz/internal/usecase"
	"numberzz/pkg/response"
)

type ContractHandler struct {
	ledgerUseCase *usecase.LedgerUseCase
}

func NewContractHandler(ledgerUseCase *usecase.LedgerUseCase) *ContractHandler {
	return &ContractHandler{
		ledgerUseCase: ledgerUseCase,
	}
}

func (h *ContractHandler) ListContracts(c echo.Context) error {
	contracts, err := h.ledgerUseCase.Contracts(c.Request().Context(), c.QueryParam("item_id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, contracts)
}

func (h *ContractHandler) GetContract(c echo.Context) error {
	contract, err := h.ledgerUseCase.GetContract(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, contract)
}

type listForSaleRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Mode     string `json:"mode" validate:"required,oneof=fixedPrice buyOffer"`
	PriceEth string `json:"price_eth"`
	Comment  string `json:"comment"`
}

func (h *ContractHandler) CreateContract(c echo.Context) error {
	var req listForSaleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	account := middleware.Account(c)

	result, err := h.ledgerUseCase.ListForSale(c.Request().Context(), account, usecase.ListForSaleInput{
		ItemID:   req.ItemID,
		Mode:     req.Mode,
		PriceEth: req.PriceEth,
		Comment:  req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, result)
}

type makeOfferRequest struct {
	PriceEth string `json:"price_eth" validate:"required"`
	Comment  string `json:"comment"`
}

func (h *ContractHandler) MakeOffer(c echo.Context) error {
	var req makeOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	account := middleware.Account(c)

	contract, err := h.ledgerUseCase.MakeOffer(c.Request().Context(), account, usecase.MakeOfferInput{
		ContractID: c.Param("id"),
		PriceEth:   req.PriceEth,
		Comment:    req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, contract)
}

type acceptOfferRequest struct {
	OfferIndex int `json:"offer_index" validate:"gte=0"`
}

func (h *ContractHandler) AcceptOffer(c echo.Context) error {
	var req acceptOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	account := middleware.Account(c)

	result, err := h.ledgerUseCase.AcceptOffer(c.Request().Context(), account, c.Param("id"), req.OfferIndex)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

func (h *ContractHandler) CancelContract(c echo.Context) error {
	account := middleware.Account(c)

	contract, err := h.ledgerUseCase.CancelContract(c.Request().Context(), account, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, contract)
}

// CancelListing withdraws an item's fixed-price listing by item id rather
// than contract id, matching how sellers think about it.
func (h *ContractHandler) CancelListing(c echo.Context) error {
	account := middleware.Account(c)

	item, err := h.ledgerUseCase.CancelListing(c.Request().Context(), c.Param("id"), account)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, item)
}
