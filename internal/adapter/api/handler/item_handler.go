package handler

import (
	"github.com/labstack/echo/v4"

	"numberzz/internal/adapter/api/middleware"
	"numberzz/internal/usecase"
	"numberzz/pkg/response"
	"numberzz/pkg/utils"
)

type ItemHandler struct {
	catalogUseCase *usecase.CatalogUseCase
	ledgerUseCase  *usecase.LedgerUseCase
}

func NewItemHandler(catalogUseCase *usecase.CatalogUseCase, ledgerUseCase *usecase.LedgerUseCase) *ItemHandler {
	return &ItemHandler{
		catalogUseCase: catalogUseCase,
		ledgerUseCase:  ledgerUseCase,
	}
}

func (h *ItemHandler) ListItems(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := usecase.ItemFilter{
		Query:   c.QueryParam("q"),
		Type:    c.QueryParam("type"),
		SortBy:  c.QueryParam("sort"),
		Account: middleware.Account(c),
	}

	items, total, err := h.catalogUseCase.ListItems(c.Request().Context(), filter, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, items, int64(total), pagination.Page, pagination.PageSize)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	item, err := h.catalogUseCase.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, item)
}

func (h *ItemHandler) GetItemHistory(c echo.Context) error {
	certs, err := h.ledgerUseCase.ItemHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, certs)
}

func (h *ItemHandler) ClaimItem(c echo.Context) error {
	account := middleware.Account(c)

	item, err := h.ledgerUseCase.ClaimFreeItem(c.Request().Context(), c.Param("id"), account)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, item)
}

func (h *ItemHandler) BuyItem(c echo.Context) error {
	account := middleware.Account(c)

	result, err := h.ledgerUseCase.Buy(c.Request().Context(), c.Param("id"), account)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

type transferRequest struct {
	To string `json:"to" validate:"required"`
}

func (h *ItemHandler) TransferItem(c echo.Context) error {
	var req transferRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	account := middleware.Account(c)

	result, err := h.ledgerUseCase.Transfer(c.Request().Context(), c.Param("id"), account, req.To)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

type triggerRequest struct {
	Kind  string `json:"kind" validate:"required,oneof=search counter"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// TriggerEasterEgg resolves a client-side trigger (search phrase, click
// counter) to a hidden item and unlocks it.
func (h *ItemHandler) TriggerEasterEgg(c echo.Context) error {
	var req triggerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.ledgerUseCase.Trigger(c.Request().Context(), middleware.Account(c), req.Kind, req.Value, req.Count)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

type interestRequest struct {
	PriceEth string `json:"price_eth" validate:"required"`
	Comment  string `json:"comment"`
}

func (h *ItemHandler) MarkInterested(c echo.Context) error {
	var req interestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	account := middleware.Account(c)

	result, err := h.ledgerUseCase.MarkInterested(c.Request().Context(), account, usecase.InterestInput{
		ItemID:   c.Param("id"),
		PriceEth: req.PriceEth,
		Comment:  req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, result)
}

func (h *ItemHandler) RemoveInterest(c echo.Context) error {
	account := middleware.Account(c)

	count, err := h.ledgerUseCase.RemoveInterest(c.Request().Context(), c.Param("id"), account)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{"interested_count": count})
}

func (h *ItemHandler) ListInterestedBuyers(c echo.Context) error {
	buyers, err := h.ledgerUseCase.InterestedBuyers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, buyers)
}
