package handler

import (
	"github.com/labstack/echo/v4"

	"numberzz/internal/adapter/api/middleware"
	"numberzz/internal/usecase"
	"numberzz/pkg/response"
)

type AchievementHandler struct {
	achievementUseCase *usecase.AchievementUseCase
}

func NewAchievementHandler(achievementUseCase *usecase.AchievementUseCase) *AchievementHandler {
	return &AchievementHandler{
		achievementUseCase: achievementUseCase,
	}
}

func (h *AchievementHandler) GetAchievements(c echo.Context) error {
	result, err := h.achievementUseCase.Evaluate(c.Request().Context(), middleware.Account(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}
