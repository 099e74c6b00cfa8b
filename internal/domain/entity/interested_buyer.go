package entity

import (
	"time"
)

// InterestedBuyer marks an address as interested in an item at a proposed
// price. The (ItemID, Address) pair is unique; re-submission by the same
// address replaces the prior entry rather than duplicating it.
type InterestedBuyer struct {
	ItemID    string    `json:"item_id" firestore:"itemId"`
	Address   string    `json:"address" firestore:"address"`
	PriceEth  string    `json:"price_eth" firestore:"priceEth"`
	Comment   string    `json:"comment,omitempty" firestore:"comment,omitempty"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// Key is the compound store key for the (item, address) pair.
func (b *InterestedBuyer) Key() string {
	return b.ItemID + ":" + NormalizeAddress(b.Address)
}
