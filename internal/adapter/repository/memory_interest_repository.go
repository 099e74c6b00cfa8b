package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"numberzz/internal/domain/entity"
	"numberzz/internal/domain/repository"
)

type memoryInterestRepository struct {
	store *MemoryStore
}

func NewMemoryInterestRepository(store *MemoryStore) repository.InterestRepository {
	return &memoryInterestRepository{store: store}
}

func (r *memoryInterestRepository) Upsert(ctx context.Context, buyer *entity.InterestedBuyer) error {
	r.store.mu.Lock()
	if buyer.Timestamp.IsZero() {
		buyer.Timestamp = time.Now()
	}
	key := buyer.Key()
	_, existed := r.store.interests[key]
	b := *buyer
	r.store.interests[key] = &b
	r.store.mu.Unlock()

	kind := repository.ChangeInsert
	if existed {
		kind = repository.ChangeUpdate
	}
	r.store.publish(repository.Change{Table: repository.TableInterested, Kind: kind, Key: key, Row: buyer})
	return nil
}

func (r *memoryInterestRepository) Remove(ctx context.Context, itemID, address string) error {
	key := itemID + ":" + entity.NormalizeAddress(address)

	r.store.mu.Lock()
	_, existed := r.store.interests[key]
	delete(r.store.interests, key)
	r.store.mu.Unlock()

	// removing a non-member is an idempotent no-op
	if existed {
		r.store.publish(repository.Change{Table: repository.TableInterested, Kind: repository.ChangeDelete, Key: key})
	}
	return nil
}

func (r *memoryInterestRepository) ListByItem(ctx context.Context, itemID string) ([]*entity.InterestedBuyer, error) {
	r.store.mu.Lock()
	out := make([]*entity.InterestedBuyer, 0)
	for key, b := range r.store.interests {
		if strings.HasPrefix(key, itemID+":") {
			c := *b
			out = append(out, &c)
		}
	}
	r.store.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *memoryInterestRepository) ListAll(ctx context.Context) ([]*entity.InterestedBuyer, error) {
	r.store.mu.Lock()
	out := make([]*entity.InterestedBuyer, 0, len(r.store.interests))
	for _, b := range r.store.interests {
		c := *b
		out = append(out, &c)
	}
	r.store.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *memoryInterestRepository) CountByItem(ctx context.Context, itemID string) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	count := 0
	for key := range r.store.interests {
		if strings.HasPrefix(key, itemID+":") {
			count++
		}
	}
	return count, nil
}

func (r *memoryInterestRepository) DeleteByItem(ctx context.Context, itemID string) error {
	r.store.mu.Lock()
	removed := make([]string, 0)
	for key := range r.store.interests {
		if strings.HasPrefix(key, itemID+":") {
			delete(r.store.interests, key)
			removed = append(removed, key)
		}
	}
	r.store.mu.Unlock()

	for _, key := range removed {
		r.store.publish(repository.Change{Table: repository.TableInterested, Kind: repository.ChangeDelete, Key: key})
	}
	return nil
}

func (r *memoryInterestRepository) DeleteAll(ctx context.Context) error {
	r.store.mu.Lock()
	r.store.interests = make(map[string]*entity.InterestedBuyer)
	r.store.mu.Unlock()

	r.store.publish(repository.Change{Table: repository.TableInterested, Kind: repository.ChangeDelete, Key: "*"})
	return nil
}
