// Package wallet provides the simulated wallet collaborator. Numberzz
// deliberately treats "transaction submitted" as "ownership transferred";
// real settlement belongs to an external smart-contract integration.
package wallet

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"numberzz/internal/domain/service"
	"numberzz/pkg/errors"
)

// SimClient implements service.WalletService against no real provider. Tx
// hashes are uuid-derived. RejectNext makes the next SendTransaction fail
// with a user-cancellation, which is how tests exercise the abandoned-
// prompt path.
type SimClient struct {
	mu         sync.Mutex
	chainID    string
	accounts   []string
	balances   map[string]string
	rejectNext bool
	available  bool
}

func NewSimClient(chainID string) *SimClient {
	return &SimClient{
		chainID:   chainID,
		balances:  make(map[string]string),
		available: true,
	}
}

// SetAvailable toggles provider reachability; unavailable calls degrade to
// COLLABORATOR_UNAVAILABLE errors.
func (c *SimClient) SetAvailable(available bool) {
	c.mu.Lock()
	c.available = available
	c.mu.Unlock()
}

// RejectNext makes the next SendTransaction behave like a user dismissing
// the wallet prompt.
func (c *SimClient) RejectNext() {
	c.mu.Lock()
	c.rejectNext = true
	c.mu.Unlock()
}

func (c *SimClient) AddAccount(address, balance string) {
	c.mu.Lock()
	c.accounts = append(c.accounts, address)
	c.balances[strings.ToLower(address)] = balance
	c.mu.Unlock()
}

func (c *SimClient) Accounts(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.available {
		return nil, errors.Unavailable("Wallet provider", nil)
	}
	return append([]string(nil), c.accounts...), nil
}

func (c *SimClient) Balance(ctx context.Context, address string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.available {
		return "", errors.Unavailable("Wallet provider", nil)
	}
	if balance, ok := c.balances[strings.ToLower(address)]; ok {
		return balance, nil
	}
	return "0", nil
}

func (c *SimClient) ChainID(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.available {
		return "", errors.Unavailable("Wallet provider", nil)
	}
	return c.chainID, nil
}

func (c *SimClient) SwitchChain(ctx context.Context, chainID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.available {
		return errors.Unavailable("Wallet provider", nil)
	}
	c.chainID = chainID
	return nil
}

func (c *SimClient) SendTransaction(ctx context.Context, tx service.TxRequest) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.available {
		return "", errors.Unavailable("Wallet provider", nil)
	}
	if c.rejectNext {
		c.rejectNext = false
		return "", errors.Cancelled("Transaction rejected in wallet", nil)
	}

	return "0x" + strings.ReplaceAll(uuid.New().String(), "-", ""), nil
}
