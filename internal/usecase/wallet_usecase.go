package usecase

import (
	"context"

	"numberzz/internal/domain/entity"
	"numberzz/internal/domain/service"
	"numberzz/pkg/errors"
	"numberzz/pkg/logger"
)

// WalletUseCase fronts the external wallet collaborator for the connect
// flow: account discovery, chain alignment and balance reads.
type WalletUseCase struct {
	wallet      service.WalletService
	baseChainID string
}

func NewWalletUseCase(wallet service.WalletService, baseChainID string) *WalletUseCase {
	return &WalletUseCase{
		wallet:      wallet,
		baseChainID: baseChainID,
	}
}

// ConnectResult is what a client needs after connecting: the active
// account, its balance and the chain the provider ended up on.
type ConnectResult struct {
	Account string `json:"account"`
	Balance string `json:"balance"`
	ChainID string `json:"chain_id"`
}

// Connect discovers the provider's first account and moves the provider to
// the expected chain when it sits elsewhere. Provider failures surface as
// unavailability, a declined chain switch as a user cancellation.
func (uc *WalletUseCase) Connect(ctx context.Context) (*ConnectResult, error) {
	accounts, err := uc.wallet.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, errors.Unavailable("wallet provider", nil)
	}
	account := entity.NormalizeAddress(accounts[0])

	chainID, err := uc.wallet.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	if chainID != uc.baseChainID {
		if err := uc.wallet.SwitchChain(ctx, uc.baseChainID); err != nil {
			return nil, err
		}
		chainID = uc.baseChainID
		logger.Debug("Wallet switched to chain %s", chainID)
	}

	balance, err := uc.wallet.Balance(ctx, account)
	if err != nil {
		return nil, err
	}
	return &ConnectResult{Account: account, Balance: balance, ChainID: chainID}, nil
}

// Balance reads one address's balance straight from the provider.
func (uc *WalletUseCase) Balance(ctx context.Context, address string) (string, error) {
	if !entity.ValidAddress(address) {
		return "", errors.BadRequest("Invalid wallet address", nil)
	}
	return uc.wallet.Balance(ctx, address)
}
