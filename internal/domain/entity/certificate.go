package entity

import (
	"time"
)

// Certificate is an immutable receipt of a completed ownership transfer.
// Certificates are append-only; ownership history for an item is the set of
// its certificates ordered by IssuedAt. Certificate IDs are ULIDs, so the
// id order matches the issue order.
type Certificate struct {
	ID       string    `json:"id" firestore:"id"`
	ItemID   string    `json:"item_id" firestore:"itemId"`
	Owner    string    `json:"owner" firestore:"owner"`
	TxHash   string    `json:"tx_hash" firestore:"txHash"`
	IssuedAt time.Time `json:"issued_at" firestore:"issuedAt"`
}
