package repository

import (
	"context"

	"numberzz/internal/domain/entity"
)

// ItemRepository is the authoritative store for catalogue items. Every
// ownership-changing method is a conditional write: the precondition is
// evaluated against stored state inside the store's transaction, never
// against the caller's possibly-stale copy. On predicate failure the
// precise reason comes back as a precondition error.
type ItemRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
	Upsert(ctx context.Context, item *entity.Item) error
	UpsertBatch(ctx context.Context, items []*entity.Item) error

	// SeedIfEmpty installs the generated catalogue only when the items
	// table holds no rows. Returns whether seeding happened.
	SeedIfEmpty(ctx context.Context, items []*entity.Item) (bool, error)

	// ClaimFree grants the item to claimer iff it is unowned and free to
	// claim at write time. Exactly one concurrent claimer can succeed; the
	// loser observes ALREADY_CLAIMED (or NOT_FREE / NOT_FOUND).
	ClaimFree(ctx context.Context, id, claimer string) (*entity.Item, error)

	// Unlock flips unlocked false→true. Already-unlocked is a reported
	// success, and owner is never touched.
	Unlock(ctx context.Context, id string) (*entity.Item, error)

	// Purchase makes buyer the owner iff the item is purchasable: unlocked,
	// and either unowned or listed for sale by someone else. Clears
	// forSale/salePrice atomically with the ownership change.
	Purchase(ctx context.Context, id, buyer string) (*entity.Item, error)

	// TransferTo moves ownership from→to iff `from` is the live owner.
	// Clears any listing and resets the interested counter with the same
	// write.
	TransferTo(ctx context.Context, id, from, to string) (*entity.Item, error)

	// SetListing marks the item for sale at salePrice iff seller is the
	// live owner.
	SetListing(ctx context.Context, id, seller, salePrice string) (*entity.Item, error)

	// ClearListing removes an active listing iff seller is the live owner.
	// "Not currently for sale" is reported as NOT_FOR_SALE, distinct from
	// the NOT_SELLER permission failure.
	ClearListing(ctx context.Context, id, seller string) (*entity.Item, error)

	// SetInterestedCount overwrites the derived counter with a value
	// recomputed from the interested-buyer set.
	SetInterestedCount(ctx context.Context, id string, count int) error

	DeleteAll(ctx context.Context) error
}
