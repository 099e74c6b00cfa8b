package repository

import (
	"context"
	"sort"
	"time"

	"numberzz/internal/domain/entity"
	"numberzz/internal/domain/repository"
	"numberzz/pkg/errors"
)

type memoryItemRepository struct {
	store *MemoryStore
}

func NewMemoryItemRepository(store *MemoryStore) repository.ItemRepository {
	return &memoryItemRepository{store: store}
}

func (r *memoryItemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.items[id]
	if !ok {
		return nil, errors.NotFound("Item", nil)
	}
	return copyItem(item), nil
}

func (r *memoryItemRepository) List(ctx context.Context) ([]*entity.Item, error) {
	r.store.mu.Lock()
	out := make([]*entity.Item, 0, len(r.store.items))
	for _, item := range r.store.items {
		out = append(out, copyItem(item))
	}
	r.store.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryItemRepository) Upsert(ctx context.Context, item *entity.Item) error {
	r.store.mu.Lock()
	item.UpdatedAt = time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = item.UpdatedAt
	}
	_, existed := r.store.items[item.ID]
	r.store.items[item.ID] = copyItem(item)
	r.store.mu.Unlock()

	kind := repository.ChangeInsert
	if existed {
		kind = repository.ChangeUpdate
	}
	r.store.publish(repository.Change{Table: repository.TableItems, Kind: kind, Key: item.ID, Row: item})
	return nil
}

func (r *memoryItemRepository) UpsertBatch(ctx context.Context, items []*entity.Item) error {
	for _, item := range items {
		if err := r.Upsert(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (r *memoryItemRepository) SeedIfEmpty(ctx context.Context, items []*entity.Item) (bool, error) {
	r.store.mu.Lock()
	if len(r.store.items) > 0 {
		r.store.mu.Unlock()
		return false, nil
	}
	now := time.Now()
	for _, item := range items {
		item.CreatedAt = now
		item.UpdatedAt = now
		r.store.items[item.ID] = copyItem(item)
	}
	r.store.mu.Unlock()
	return true, nil
}

// mutate applies fn to the stored row under the lock and publishes the
// update on success. fn runs against live stored state, which is what makes
// these writes conditional.
func (r *memoryItemRepository) mutate(id string, fn func(*entity.Item) error) (*entity.Item, error) {
	r.store.mu.Lock()
	item, ok := r.store.items[id]
	if !ok {
		r.store.mu.Unlock()
		return nil, errors.NotFound("Item", nil)
	}
	if err := fn(item); err != nil {
		r.store.mu.Unlock()
		return nil, err
	}
	item.UpdatedAt = time.Now()
	updated := copyItem(item)
	r.store.mu.Unlock()

	r.store.publish(repository.Change{Table: repository.TableItems, Kind: repository.ChangeUpdate, Key: id, Row: updated})
	return updated, nil
}

func (r *memoryItemRepository) ClaimFree(ctx context.Context, id, claimer string) (*entity.Item, error) {
	return r.mutate(id, func(item *entity.Item) error {
		if item.Owner != nil {
			return errors.Precondition(errors.ReasonAlreadyClaimed, "Item has already been claimed")
		}
		if !item.IsFreeToClaim {
			return errors.Precondition(errors.ReasonNotFree, "Item is not eligible for a free claim")
		}
		owner := claimer
		item.Owner = &owner
		item.Unlocked = true
		item.IsFreeToClaim = false
		return nil
	})
}

func (r *memoryItemRepository) Unlock(ctx context.Context, id string) (*entity.Item, error) {
	return r.mutate(id, func(item *entity.Item) error {
		// already unlocked is a reported success
		item.Unlocked = true
		return nil
	})
}

func (r *memoryItemRepository) Purchase(ctx context.Context, id, buyer string) (*entity.Item, error) {
	return r.mutate(id, func(item *entity.Item) error {
		if item.IsEasterEgg && !item.Unlocked {
			return errors.Precondition(errors.ReasonLocked, "Item is locked and cannot be purchased")
		}
		if item.Owner != nil {
			if entity.EqualAddress(*item.Owner, buyer) {
				return errors.Precondition(errors.ReasonAlreadyOwned, "Buyer already owns this item")
			}
			if !item.ForSale {
				return errors.Precondition(errors.ReasonAlreadyOwned, "Item already owned, not for sale")
			}
		}
		owner := buyer
		item.Owner = &owner
		item.ForSale = false
		item.SalePrice = ""
		return nil
	})
}

func (r *memoryItemRepository) TransferTo(ctx context.Context, id, from, to string) (*entity.Item, error) {
	return r.mutate(id, func(item *entity.Item) error {
		if item.Owner == nil || !entity.EqualAddress(*item.Owner, from) {
			return errors.Precondition(errors.ReasonNotSeller, "Sender is not the current owner")
		}
		owner := to
		item.Owner = &owner
		item.ForSale = false
		item.SalePrice = ""
		item.InterestedCount = 0
		return nil
	})
}

func (r *memoryItemRepository) SetListing(ctx context.Context, id, seller, salePrice string) (*entity.Item, error) {
	return r.mutate(id, func(item *entity.Item) error {
		if item.Owner == nil || !entity.EqualAddress(*item.Owner, seller) {
			return errors.Precondition(errors.ReasonNotSeller, "Seller is not the current owner")
		}
		item.ForSale = true
		item.SalePrice = salePrice
		return nil
	})
}

func (r *memoryItemRepository) ClearListing(ctx context.Context, id, seller string) (*entity.Item, error) {
	return r.mutate(id, func(item *entity.Item) error {
		if item.Owner == nil || !entity.EqualAddress(*item.Owner, seller) {
			return errors.Precondition(errors.ReasonNotSeller, "Seller is not the current owner")
		}
		if !item.ForSale {
			return errors.Precondition(errors.ReasonNotForSale, "Item is not currently for sale")
		}
		item.ForSale = false
		item.SalePrice = ""
		return nil
	})
}

func (r *memoryItemRepository) SetInterestedCount(ctx context.Context, id string, count int) error {
	_, err := r.mutate(id, func(item *entity.Item) error {
		item.InterestedCount = count
		return nil
	})
	return err
}

func (r *memoryItemRepository) DeleteAll(ctx context.Context) error {
	r.store.mu.Lock()
	r.store.items = make(map[string]*entity.Item)
	r.store.mu.Unlock()

	r.store.publish(repository.Change{Table: repository.TableItems, Kind: repository.ChangeDelete, Key: "*"})
	return nil
}
