package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"numberzz/internal/domain/entity"
	"numberzz/internal/domain/repository"
	"numberzz/pkg/errors"
)

type firestoreCertificateRepository struct {
	client *firestore.Client
}

func NewFirestoreCertificateRepository(client *firestore.Client) repository.CertificateRepository {
	return &firestoreCertificateRepository{
		client: client,
	}
}

func (r *firestoreCertificateRepository) Create(ctx context.Context, cert *entity.Certificate) error {
	// Create, never Set: a duplicate id must fail rather than overwrite an
	// existing receipt.
	_, err := r.client.Collection("certificates").Doc(cert.ID).Create(ctx, cert)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("Certificate already exists")
		}
		return errors.Internal("Failed to create certificate", err)
	}

	return nil
}

func (r *firestoreCertificateRepository) List(ctx context.Context) ([]*entity.Certificate, error) {
	return r.query(ctx, r.client.Collection("certificates").OrderBy("id", firestore.Asc).Documents(ctx))
}

func (r *firestoreCertificateRepository) ListByItem(ctx context.Context, itemID string) ([]*entity.Certificate, error) {
	iter := r.client.Collection("certificates").
		Where("itemId", "==", itemID).
		OrderBy("id", firestore.Asc).
		Documents(ctx)
	return r.query(ctx, iter)
}

func (r *firestoreCertificateRepository) query(ctx context.Context, iter *firestore.DocumentIterator) ([]*entity.Certificate, error) {
	var certs []*entity.Certificate

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate certificates", err)
		}
		var cert entity.Certificate
		if err := doc.DataTo(&cert); err != nil {
			return nil, errors.Internal("Failed to parse certificate data", err)
		}
		certs = append(certs, &cert)
	}

	return certs, nil
}

func (r *firestoreCertificateRepository) DeleteAll(ctx context.Context) error {
	return deleteCollection(ctx, r.client, "certificates")
}
