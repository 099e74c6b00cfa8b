package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"numberzz/internal/domain/entity"
	"numberzz/internal/domain/repository"
	"numberzz/pkg/errors"
)

type firestoreItemRepository struct {
	client *firestore.Client
}

func NewFirestoreItemRepository(client *firestore.Client) repository.ItemRepository {
	return &firestoreItemRepository{
		client: client,
	}
}

func (r *firestoreItemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	doc, err := r.client.Collection("items").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Item", err)
		}
		return nil, errors.Internal("Failed to get item", err)
	}

	var item entity.Item
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse item data", err)
	}

	return &item, nil
}

func (r *firestoreItemRepository) List(ctx context.Context) ([]*entity.Item, error) {
	iter := r.client.Collection("items").OrderBy("id", firestore.Asc).Documents(ctx)
	var items []*entity.Item

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate items", err)
		}
		var item entity.Item
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse item data", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *firestoreItemRepository) Upsert(ctx context.Context, item *entity.Item) error {
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	_, err := r.client.Collection("items").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to upsert item", err)
	}

	return nil
}

func (r *firestoreItemRepository) UpsertBatch(ctx context.Context, items []*entity.Item) error {
	writer := r.client.BulkWriter(ctx)
	now := time.Now()

	for _, item := range items {
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
		item.UpdatedAt = now
		if _, err := writer.Set(r.client.Collection("items").Doc(item.ID), item); err != nil {
			return errors.Internal("Failed to queue item write", err)
		}
	}
	writer.End()

	return nil
}

func (r *firestoreItemRepository) SeedIfEmpty(ctx context.Context, items []*entity.Item) (bool, error) {
	iter := r.client.Collection("items").Limit(1).Documents(ctx)
	_, err := iter.Next()
	if err == nil {
		return false, nil
	}
	if err != iterator.Done {
		return false, errors.Internal("Failed to check items collection", err)
	}

	if err := r.UpsertBatch(ctx, items); err != nil {
		return false, err
	}
	return true, nil
}

// mutate runs fn against the stored row inside a Firestore transaction.
// The read and the write commit atomically, which gives every caller
// conditional-update semantics: concurrent conflicting writers race on the
// commit and exactly one wins; the loser's fn re-runs against the winner's
// state and reports the precondition failure.
func (r *firestoreItemRepository) mutate(ctx context.Context, id string, fn func(*entity.Item) error) (*entity.Item, error) {
	var updated entity.Item

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.client.Collection("items").Doc(id)
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Item", err)
			}
			return err
		}

		var item entity.Item
		if err := doc.DataTo(&item); err != nil {
			return err
		}

		if err := fn(&item); err != nil {
			return err
		}

		item.UpdatedAt = time.Now()
		updated = item
		return tx.Set(docRef, item)
	})

	if err != nil {
		var appErr *errors.AppError
		if stderrorsAs(err, &appErr) {
			return nil, appErr
		}
		return nil, errors.Internal("Item update failed", err)
	}

	return &updated, nil
}

func (r *firestoreItemRepository) ClaimFree(ctx context.Context, id, claimer string) (*entity.Item, error) {
	return r.mutate(ctx, id, func(item *entity.Item) error {
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

func (r *firestoreItemRepository) Unlock(ctx context.Context, id string) (*entity.Item, error) {
	return r.mutate(ctx, id, func(item *entity.Item) error {
		item.Unlocked = true
		return nil
	})
}

func (r *firestoreItemRepository) Purchase(ctx context.Context, id, buyer string) (*entity.Item, error) {
	return r.mutate(ctx, id, func(item *entity.Item) error {
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

func (r *firestoreItemRepository) TransferTo(ctx context.Context, id, from, to string) (*entity.Item, error) {
	return r.mutate(ctx, id, func(item *entity.Item) error {
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

func (r *firestoreItemRepository) SetListing(ctx context.Context, id, seller, salePrice string) (*entity.Item, error) {
	return r.mutate(ctx, id, func(item *entity.Item) error {
		if item.Owner == nil || !entity.EqualAddress(*item.Owner, seller) {
			return errors.Precondition(errors.ReasonNotSeller, "Seller is not the current owner")
		}
		item.ForSale = true
		item.SalePrice = salePrice
		return nil
	})
}

func (r *firestoreItemRepository) ClearListing(ctx context.Context, id, seller string) (*entity.Item, error) {
	return r.mutate(ctx, id, func(item *entity.Item) error {
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

func (r *firestoreItemRepository) SetInterestedCount(ctx context.Context, id string, count int) error {
	_, err := r.client.Collection("items").Doc(id).Update(ctx, []firestore.Update{
		{Path: "interestedCount", Value: count},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Item", err)
		}
		return errors.Internal("Failed to update interested count", err)
	}

	return nil
}

func (r *firestoreItemRepository) DeleteAll(ctx context.Context) error {
	return deleteCollection(ctx, r.client, "items")
}
