package entity

import (
	"time"
)

type SaleMode string

const (
	SaleModeFixedPrice SaleMode = "fixedPrice"
	SaleModeBuyOffer   SaleMode = "buyOffer"
)

type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "active"
	ContractStatusPending   ContractStatus = "pending"
	ContractStatusCompleted ContractStatus = "completed"
	ContractStatusCancelled ContractStatus = "cancelled"
)

// BuyOffer is one entry of a buyOffer contract's ordered offer list.
type BuyOffer struct {
	Buyer     string    `json:"buyer" firestore:"buyer"`
	PriceEth  string    `json:"price_eth" firestore:"priceEth"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// SaleContract is a negotiation record created by an item's owner. Its
// seller must match the item's live owner for any seller-only action;
// a mismatch is a stale-reference error, not a silent no-op.
type SaleContract struct {
	ID       string   `json:"id" firestore:"id"`
	ItemID   string   `json:"item_id" firestore:"itemId"`
	Seller   string   `json:"seller" firestore:"seller"`
	Mode     SaleMode `json:"mode" firestore:"mode"`
	PriceEth string   `json:"price_eth,omitempty" firestore:"priceEth,omitempty"`

	Offers        []BuyOffer     `json:"offers,omitempty" firestore:"offers,omitempty"`
	Status        ContractStatus `json:"status" firestore:"status"`
	AcceptedOffer *BuyOffer      `json:"accepted_offer,omitempty" firestore:"acceptedOffer,omitempty"`
	Comment       string         `json:"comment,omitempty" firestore:"comment,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Terminal reports whether the contract reached a final state. Terminal
// contracts are immutable; any further transition is an illegal-transition
// error, never silently ignored.
func (s ContractStatus) Terminal() bool {
	return s == ContractStatusCompleted || s == ContractStatusCancelled
}

// CanTransition validates a status change against the contract lifecycle:
// active is initial, completed and cancelled are terminal, pending is
// reserved and reachable only from active.
func (c *SaleContract) CanTransition(next ContractStatus) bool {
	if c.Status.Terminal() {
		return false
	}
	switch next {
	case ContractStatusPending, ContractStatusCompleted, ContractStatusCancelled:
		return c.Status == ContractStatusActive
	default:
		return false
	}
}
