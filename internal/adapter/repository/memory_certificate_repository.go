package repository

import (
	"context"

	"numberzz/internal/domain/entity"
	"numberzz/internal/domain/repository"
	"numberzz/pkg/errors"
)

type memoryCertificateRepository struct {
	store *MemoryStore
}

func NewMemoryCertificateRepository(store *MemoryStore) repository.CertificateRepository {
	return &memoryCertificateRepository{store: store}
}

func (r *memoryCertificateRepository) Create(ctx context.Context, cert *entity.Certificate) error {
	r.store.mu.Lock()
	if _, exists := r.store.certs[cert.ID]; exists {
		r.store.mu.Unlock()
		return errors.Conflict("Certificate already exists")
	}
	c := *cert
	r.store.certs[cert.ID] = &c
	r.store.certOrder = append(r.store.certOrder, cert.ID)
	r.store.mu.Unlock()

	r.store.publish(repository.Change{Table: repository.TableCertificates, Kind: repository.ChangeInsert, Key: cert.ID, Row: cert})
	return nil
}

func (r *memoryCertificateRepository) List(ctx context.Context) ([]*entity.Certificate, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*entity.Certificate, 0, len(r.store.certOrder))
	for _, id := range r.store.certOrder {
		if cert, ok := r.store.certs[id]; ok {
			c := *cert
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memoryCertificateRepository) ListByItem(ctx context.Context, itemID string) ([]*entity.Certificate, error) {
	all, _ := r.List(ctx)
	out := make([]*entity.Certificate, 0)
	for _, c := range all {
		if c.ItemID == itemID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryCertificateRepository) DeleteAll(ctx context.Context) error {
	r.store.mu.Lock()
	r.store.certs = make(map[string]*entity.Certificate)
	r.store.certOrder = nil
	r.store.mu.Unlock()

	r.store.publish(repository.Change{Table: repository.TableCertificates, Kind: repository.ChangeDelete, Key: "*"})
	return nil
}
