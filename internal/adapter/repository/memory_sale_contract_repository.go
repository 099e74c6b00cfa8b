package repository

import (
	"context"
	"sort"
	"time"

	"numberzz/internal/domain/entity"
	"numberzz/internal/domain/repository"
	"numberzz/pkg/errors"
)

type memorySaleContractRepository struct {
	store *MemoryStore
}

func NewMemorySaleContractRepository(store *MemoryStore) repository.SaleContractRepository {
	return &memorySaleContractRepository{store: store}
}

func (r *memorySaleContractRepository) Create(ctx context.Context, contract *entity.SaleContract) error {
	r.store.mu.Lock()
	for _, c := range r.store.contracts {
		if c.ItemID == contract.ItemID && c.Status == entity.ContractStatusActive {
			r.store.mu.Unlock()
			return errors.Precondition(errors.ReasonContractExists, "Item already has an active sale contract")
		}
	}
	now := time.Now()
	if contract.CreatedAt.IsZero() {
		contract.CreatedAt = now
	}
	contract.UpdatedAt = now
	r.store.contracts[contract.ID] = copyContract(contract)
	r.store.mu.Unlock()

	r.store.publish(repository.Change{Table: repository.TableSaleContracts, Kind: repository.ChangeInsert, Key: contract.ID, Row: contract})
	return nil
}

func (r *memorySaleContractRepository) GetByID(ctx context.Context, id string) (*entity.SaleContract, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	contract, ok := r.store.contracts[id]
	if !ok {
		return nil, errors.NotFound("Sale contract", nil)
	}
	return copyContract(contract), nil
}

func (r *memorySaleContractRepository) List(ctx context.Context) ([]*entity.SaleContract, error) {
	r.store.mu.Lock()
	out := make([]*entity.SaleContract, 0, len(r.store.contracts))
	for _, c := range r.store.contracts {
		out = append(out, copyContract(c))
	}
	r.store.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memorySaleContractRepository) ListByItem(ctx context.Context, itemID string) ([]*entity.SaleContract, error) {
	all, _ := r.List(ctx)
	out := make([]*entity.SaleContract, 0)
	for _, c := range all {
		if c.ItemID == itemID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memorySaleContractRepository) GetActiveByItem(ctx context.Context, itemID string) (*entity.SaleContract, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.contracts {
		if c.ItemID == itemID && c.Status == entity.ContractStatusActive {
			return copyContract(c), nil
		}
	}
	return nil, nil
}

func (r *memorySaleContractRepository) mutate(id string, fn func(*entity.SaleContract) error) (*entity.SaleContract, error) {
	r.store.mu.Lock()
	contract, ok := r.store.contracts[id]
	if !ok {
		r.store.mu.Unlock()
		return nil, errors.NotFound("Sale contract", nil)
	}
	if err := fn(contract); err != nil {
		r.store.mu.Unlock()
		return nil, err
	}
	contract.UpdatedAt = time.Now()
	updated := copyContract(contract)
	r.store.mu.Unlock()

	r.store.publish(repository.Change{Table: repository.TableSaleContracts, Kind: repository.ChangeUpdate, Key: id, Row: updated})
	return updated, nil
}

func (r *memorySaleContractRepository) AddOffer(ctx context.Context, id string, offer entity.BuyOffer) (*entity.SaleContract, error) {
	return r.mutate(id, func(contract *entity.SaleContract) error {
		if contract.Status != entity.ContractStatusActive {
			return errors.Precondition(errors.ReasonTerminalContract, "Contract is no longer active")
		}
		contract.Offers = append(contract.Offers, offer)
		return nil
	})
}

func (r *memorySaleContractRepository) Finalize(ctx context.Context, id string, status entity.ContractStatus, accepted *entity.BuyOffer) (*entity.SaleContract, error) {
	return r.mutate(id, func(contract *entity.SaleContract) error {
		if !contract.CanTransition(status) {
			return errors.Precondition(errors.ReasonTerminalContract, "Contract already reached a terminal state")
		}
		contract.Status = status
		contract.AcceptedOffer = accepted
		return nil
	})
}

func (r *memorySaleContractRepository) DeleteAll(ctx context.Context) error {
	r.store.mu.Lock()
	r.store.contracts = make(map[string]*entity.SaleContract)
	r.store.mu.Unlock()

	r.store.publish(repository.Change{Table: repository.TableSaleContracts, Kind: repository.ChangeDelete, Key: "*"})
	return nil
}
