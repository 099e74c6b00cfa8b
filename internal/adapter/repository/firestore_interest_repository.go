package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"numberzz/internal/domain/entity"
	"numberzz/internal/domain/repository"
	"numberzz/pkg/errors"
)

type firestoreInterestRepository struct {
	client *firestore.Client
}

func NewFirestoreInterestRepository(client *firestore.Client) repository.InterestRepository {
	return &firestoreInterestRepository{
		client: client,
	}
}

func (r *firestoreInterestRepository) Upsert(ctx context.Context, buyer *entity.InterestedBuyer) error {
	if buyer.Timestamp.IsZero() {
		buyer.Timestamp = time.Now()
	}

	// The document id is the (itemId, address) compound key, so a repeat
	// submission by the same address replaces the prior row.
	_, err := r.client.Collection("interested_buyers").Doc(buyer.Key()).Set(ctx, buyer)
	if err != nil {
		return errors.Internal("Failed to upsert interested buyer", err)
	}

	return nil
}

func (r *firestoreInterestRepository) Remove(ctx context.Context, itemID, address string) error {
	key := itemID + ":" + entity.NormalizeAddress(address)
	_, err := r.client.Collection("interested_buyers").Doc(key).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove interested buyer", err)
	}

	return nil
}

func (r *firestoreInterestRepository) ListByItem(ctx context.Context, itemID string) ([]*entity.InterestedBuyer, error) {
	iter := r.client.Collection("interested_buyers").
		Where("itemId", "==", itemID).
		OrderBy("timestamp", firestore.Asc).
		Documents(ctx)
	return r.query(ctx, iter)
}

func (r *firestoreInterestRepository) ListAll(ctx context.Context) ([]*entity.InterestedBuyer, error) {
	iter := r.client.Collection("interested_buyers").
		OrderBy("timestamp", firestore.Asc).
		Documents(ctx)
	return r.query(ctx, iter)
}

func (r *firestoreInterestRepository) query(ctx context.Context, iter *firestore.DocumentIterator) ([]*entity.InterestedBuyer, error) {
	var buyers []*entity.InterestedBuyer

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate interested buyers", err)
		}
		var buyer entity.InterestedBuyer
		if err := doc.DataTo(&buyer); err != nil {
			return nil, errors.Internal("Failed to parse interested buyer data", err)
		}
		buyers = append(buyers, &buyer)
	}

	return buyers, nil
}

func (r *firestoreInterestRepository) CountByItem(ctx context.Context, itemID string) (int, error) {
	docs, err := r.client.Collection("interested_buyers").
		Where("itemId", "==", itemID).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count interested buyers", err)
	}

	return len(docs), nil
}

func (r *firestoreInterestRepository) DeleteByItem(ctx context.Context, itemID string) error {
	docs, err := r.client.Collection("interested_buyers").
		Where("itemId", "==", itemID).
		Documents(ctx).GetAll()
	if err != nil {
		return errors.Internal("Failed to query interested buyers", err)
	}

	batch := r.client.BulkWriter(ctx)
	for _, doc := range docs {
		if _, err := batch.Delete(doc.Ref); err != nil {
			return errors.Internal("Failed to queue interested buyer delete", err)
		}
	}
	batch.End()

	return nil
}

func (r *firestoreInterestRepository) DeleteAll(ctx context.Context) error {
	return deleteCollection(ctx, r.client, "interested_buyers")
}
