package repository

import (
	"context"

	"numberzz/internal/domain/entity"
)

// CertificateRepository is append-only: certificates are never mutated or
// deleted except by a full administrative reset.
type CertificateRepository interface {
	Create(ctx context.Context, cert *entity.Certificate) error
	List(ctx context.Context) ([]*entity.Certificate, error)

	// ListByItem returns the item's transfer history ordered by issue time
	// (certificate ids are ULIDs, so id order is issue order).
	ListByItem(ctx context.Context, itemID string) ([]*entity.Certificate, error)

	DeleteAll(ctx context.Context) error
}
