package handler

import (
	"numberzz/internal/usecase"
)

var (
	itemHandler        *ItemHandler
	contractHandler    *ContractHandler
	certificateHandler *CertificateHandler
	achievementHandler *AchievementHandler
	walletHandler      *WalletHandler
	adminHandler       *AdminHandler
)

func Setup(
	catalogUseCase *usecase.CatalogUseCase,
	ledgerUseCase *usecase.LedgerUseCase,
	achievementUseCase *usecase.AchievementUseCase,
	walletUseCase *usecase.WalletUseCase,
) {
	itemHandler = NewItemHandler(catalogUseCase, ledgerUseCase)
	contractHandler = NewContractHandler(ledgerUseCase)
	certificateHandler = NewCertificateHandler(ledgerUseCase)
	achievementHandler = NewAchievementHandler(achievementUseCase)
	walletHandler = NewWalletHandler(walletUseCase)
	adminHandler = NewAdminHandler(ledgerUseCase)
}

func GetItemHandler() *ItemHandler {
	return itemHandler
}

func GetContractHandler() *ContractHandler {
	return contractHandler
}

func GetCertificateHandler() *CertificateHandler {
	return certificateHandler
}

func GetAchievementHandler() *AchievementHandler {
	return achievementHandler
}

func GetWalletHandler() *WalletHandler {
	return walletHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
