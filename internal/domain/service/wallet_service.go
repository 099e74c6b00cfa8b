package service

import (
	"context"
)

// TxRequest mirrors the eth_sendTransaction parameter shape.
type TxRequest struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value string `json:"value"` // hex-encoded wei
}

// WalletService is the external wallet capability. Every call may fail with
// a user-rejection error or a provider-unavailable error; callers must keep
// the two distinct, and a rejection must leave zero partial state behind.
type WalletService interface {
	Accounts(ctx context.Context) ([]string, error)
	Balance(ctx context.Context, address string) (string, error)
	ChainID(ctx context.Context) (string, error)
	SwitchChain(ctx context.Context, chainID string) error

	// SendTransaction submits a transfer and returns the transaction hash.
	SendTransaction(ctx context.Context, tx TxRequest) (string, error)
}
