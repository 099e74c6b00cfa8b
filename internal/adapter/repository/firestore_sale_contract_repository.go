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

type firestoreSaleContractRepository struct {
	client *firestore.Client
}

func NewFirestoreSaleContractRepository(client *firestore.Client) repository.SaleContractRepository {
	return &firestoreSaleContractRepository{
		client: client,
	}
}

func (r *firestoreSaleContractRepository) Create(ctx context.Context, contract *entity.SaleContract) error {
	if contract.ID == "" {
		doc := r.client.Collection("sale_contracts").NewDoc()
		contract.ID = doc.ID
	}

	now := time.Now()
	if contract.CreatedAt.IsZero() {
		contract.CreatedAt = now
	}
	contract.UpdatedAt = now

	// The active-contract check and the write share one transaction so two
	// instances racing to list the same item cannot both succeed.
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		iter := tx.Documents(r.client.Collection("sale_contracts").
			Where("itemId", "==", contract.ItemID).
			Where("status", "==", string(entity.ContractStatusActive)).
			Limit(1))
		_, err := iter.Next()
		if err == nil {
			return errors.Precondition(errors.ReasonContractExists, "Item already has an active sale contract")
		}
		if err != iterator.Done {
			return err
		}
		return tx.Create(r.client.Collection("sale_contracts").Doc(contract.ID), contract)
	})
	if err != nil {
		var appErr *errors.AppError
		if stderrorsAs(err, &appErr) {
			return appErr
		}
		return errors.Internal("Failed to create sale contract", err)
	}

	return nil
}

func (r *firestoreSaleContractRepository) GetByID(ctx context.Context, id string) (*entity.SaleContract, error) {
	doc, err := r.client.Collection("sale_contracts").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Sale contract", err)
		}
		return nil, errors.Internal("Failed to get sale contract", err)
	}

	var contract entity.SaleContract
	if err := doc.DataTo(&contract); err != nil {
		return nil, errors.Internal("Failed to parse sale contract data", err)
	}

	return &contract, nil
}

func (r *firestoreSaleContractRepository) List(ctx context.Context) ([]*entity.SaleContract, error) {
	return r.query(ctx, r.client.Collection("sale_contracts").OrderBy("createdAt", firestore.Desc).Documents(ctx))
}

func (r *firestoreSaleContractRepository) ListByItem(ctx context.Context, itemID string) ([]*entity.SaleContract, error) {
	iter := r.client.Collection("sale_contracts").
		Where("itemId", "==", itemID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	return r.query(ctx, iter)
}

func (r *firestoreSaleContractRepository) GetActiveByItem(ctx context.Context, itemID string) (*entity.SaleContract, error) {
	iter := r.client.Collection("sale_contracts").
		Where("itemId", "==", itemID).
		Where("status", "==", string(entity.ContractStatusActive)).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to query active contract", err)
	}

	var contract entity.SaleContract
	if err := doc.DataTo(&contract); err != nil {
		return nil, errors.Internal("Failed to parse sale contract data", err)
	}

	return &contract, nil
}

func (r *firestoreSaleContractRepository) query(ctx context.Context, iter *firestore.DocumentIterator) ([]*entity.SaleContract, error) {
	var contracts []*entity.SaleContract

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate sale contracts", err)
		}
		var contract entity.SaleContract
		if err := doc.DataTo(&contract); err != nil {
			return nil, errors.Internal("Failed to parse sale contract data", err)
		}
		contracts = append(contracts, &contract)
	}

	return contracts, nil
}

func (r *firestoreSaleContractRepository) mutate(ctx context.Context, id string, fn func(*entity.SaleContract) error) (*entity.SaleContract, error) {
	var updated entity.SaleContract

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.client.Collection("sale_contracts").Doc(id)
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Sale contract", err)
			}
			return err
		}

		var contract entity.SaleContract
		if err := doc.DataTo(&contract); err != nil {
			return err
		}

		if err := fn(&contract); err != nil {
			return err
		}

		contract.UpdatedAt = time.Now()
		updated = contract
		return tx.Set(docRef, contract)
	})

	if err != nil {
		var appErr *errors.AppError
		if stderrorsAs(err, &appErr) {
			return nil, appErr
		}
		return nil, errors.Internal("Sale contract update failed", err)
	}

	return &updated, nil
}

func (r *firestoreSaleContractRepository) AddOffer(ctx context.Context, id string, offer entity.BuyOffer) (*entity.SaleContract, error) {
	return r.mutate(ctx, id, func(contract *entity.SaleContract) error {
		if contract.Status != entity.ContractStatusActive {
			return errors.Precondition(errors.ReasonTerminalContract, "Contract is no longer active")
		}
		contract.Offers = append(contract.Offers, offer)
		return nil
	})
}

func (r *firestoreSaleContractRepository) Finalize(ctx context.Context, id string, status entity.ContractStatus, accepted *entity.BuyOffer) (*entity.SaleContract, error) {
	return r.mutate(ctx, id, func(contract *entity.SaleContract) error {
		if !contract.CanTransition(status) {
			return errors.Precondition(errors.ReasonTerminalContract, "Contract already reached a terminal state")
		}
		contract.Status = status
		contract.AcceptedOffer = accepted
		return nil
	})
}

func (r *firestoreSaleContractRepository) DeleteAll(ctx context.Context) error {
	return deleteCollection(ctx, r.client, "sale_contracts")
}
