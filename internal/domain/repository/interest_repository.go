package repository

import (
	"context"

	"numberzz/internal/domain/entity"
)

// InterestRepository holds the interested-buyer set keyed by
// (itemID, address). Upsert replaces an existing entry for the same pair;
// membership operations are idempotent.
type InterestRepository interface {
	Upsert(ctx context.Context, buyer *entity.InterestedBuyer) error
	Remove(ctx context.Context, itemID, address string) error
	ListByItem(ctx context.Context, itemID string) ([]*entity.InterestedBuyer, error)
	ListAll(ctx context.Context) ([]*entity.InterestedBuyer, error)

	// CountByItem is the source of truth for Item.InterestedCount.
	CountByItem(ctx context.Context, itemID string) (int, error)

	DeleteByItem(ctx context.Context, itemID string) error
	DeleteAll(ctx context.Context) error
}
