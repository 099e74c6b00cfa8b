package repository

import (
	"context"

	"numberzz/internal/domain/entity"
)

type SaleContractRepository interface {
	// Create persists a new contract iff the item has no active contract
	// yet; a second active contract for the same item is rejected with
	// CONTRACT_EXISTS. The check and the write are a single conditional
	// operation at the store.
	Create(ctx context.Context, contract *entity.SaleContract) error
	GetByID(ctx context.Context, id string) (*entity.SaleContract, error)
	List(ctx context.Context) ([]*entity.SaleContract, error)
	ListByItem(ctx context.Context, itemID string) ([]*entity.SaleContract, error)

	// GetActiveByItem returns the single active contract for an item, or
	// nil when none exists.
	GetActiveByItem(ctx context.Context, itemID string) (*entity.SaleContract, error)

	// AddOffer appends an offer iff the contract is still active. A
	// terminal contract yields TERMINAL_CONTRACT.
	AddOffer(ctx context.Context, id string, offer entity.BuyOffer) (*entity.SaleContract, error)

	// Finalize moves an active contract to a terminal status, recording the
	// accepted offer when completing. Finalizing a terminal contract is an
	// illegal transition, reported as TERMINAL_CONTRACT.
	Finalize(ctx context.Context, id string, status entity.ContractStatus, accepted *entity.BuyOffer) (*entity.SaleContract, error)

	DeleteAll(ctx context.Context) error
}
