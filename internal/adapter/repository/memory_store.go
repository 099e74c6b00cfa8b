package repository

import (
	"sync"

	"numberzz/internal/domain/entity"
	"numberzz/internal/domain/repository"
)

// MemoryStore is the local-only mirror variant of the store: plain maps
// behind one mutex, with the same conditional-write semantics as the shared
// remote store. It backs STORE_BACKEND=memory and the test suite. Committed
// writes are published to the change feed after the lock is released, so
// observers only ever see already-decided facts.
type MemoryStore struct {
	mu sync.Mutex

	items     map[string]*entity.Item
	contracts map[string]*entity.SaleContract
	certs     map[string]*entity.Certificate
	interests map[string]*entity.InterestedBuyer // keyed itemID:address

	certOrder []string // insertion order, certificates are append-only

	feed repository.ChangeFeed
}

// NewMemoryStore creates an empty in-memory store. feed may be nil when no
// local viewers need notifications (tests mostly pass nil).
func NewMemoryStore(feed repository.ChangeFeed) *MemoryStore {
	return &MemoryStore{
		items:     make(map[string]*entity.Item),
		contracts: make(map[string]*entity.SaleContract),
		certs:     make(map[string]*entity.Certificate),
		interests: make(map[string]*entity.InterestedBuyer),
		feed:      feed,
	}
}

func (s *MemoryStore) publish(change repository.Change) {
	if s.feed != nil {
		s.feed.Publish(change)
	}
}

func copyItem(i *entity.Item) *entity.Item {
	c := *i
	if i.Owner != nil {
		owner := *i.Owner
		c.Owner = &owner
	}
	return &c
}

func copyContract(c *entity.SaleContract) *entity.SaleContract {
	cp := *c
	if len(c.Offers) > 0 {
		cp.Offers = append([]entity.BuyOffer(nil), c.Offers...)
	}
	if c.AcceptedOffer != nil {
		accepted := *c.AcceptedOffer
		cp.AcceptedOffer = &accepted
	}
	return &cp
}
