package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"numberzz/internal/domain/catalog"
	"numberzz/internal/domain/entity"
	"numberzz/internal/domain/repository"
	"numberzz/internal/domain/service"
	"numberzz/pkg/errors"
	"numberzz/pkg/logger"
	"numberzz/pkg/utils"
)

// LedgerUseCase coordinates every ownership-changing operation: free claims,
// purchases, sale contracts, offers, transfers and the interested-buyer set.
// All state predicates are enforced by the repositories' conditional writes;
// this layer sequences the steps around them (wallet interaction first,
// conditional write second, receipts last) and serializes operations per
// item so one process never races itself.
type LedgerUseCase struct {
	itemRepo     repository.ItemRepository
	contractRepo repository.SaleContractRepository
	certRepo     repository.CertificateRepository
	interestRepo repository.InterestRepository
	wallet       service.WalletService

	bankWallet string
	catalogMax int

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	entropy   *ulid.MonotonicEntropy
	entropyMu sync.Mutex
}

func NewLedgerUseCase(
	itemRepo repository.ItemRepository,
	contractRepo repository.SaleContractRepository,
	certRepo repository.CertificateRepository,
	interestRepo repository.InterestRepository,
	wallet service.WalletService,
	bankWallet string,
	catalogMax int,
) *LedgerUseCase {
	return &LedgerUseCase{
		itemRepo:     itemRepo,
		contractRepo: contractRepo,
		certRepo:     certRepo,
		interestRepo: interestRepo,
		wallet:       wallet,
		bankWallet:   bankWallet,
		catalogMax:   catalogMax,
		locks:        make(map[string]*sync.Mutex),
		entropy:      ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// itemLock serializes ledger operations touching the same item within this
// process. Cross-process races are still caught by the store's conditional
// writes; this only keeps local operations in submission order.
func (uc *LedgerUseCase) itemLock(itemID string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	l, ok := uc.locks[itemID]
	if !ok {
		l = &sync.Mutex{}
		uc.locks[itemID] = l
	}
	return l
}

func (uc *LedgerUseCase) newCertID() string {
	uc.entropyMu.Lock()
	defer uc.entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), uc.entropy).String()
}

// ClaimFreeItem grants a free-to-claim item to claimer. Exactly one of any
// set of concurrent claimers succeeds; every loser gets the precise reason
// (ALREADY_CLAIMED, NOT_FREE or NOT_FOUND) and the fresh record travels to
// all viewers over the change feed.
func (uc *LedgerUseCase) ClaimFreeItem(ctx context.Context, itemID, claimer string) (*entity.Item, error) {
	if !entity.ValidAddress(claimer) {
		return nil, errors.BadRequest("Invalid wallet address", nil)
	}

	l := uc.itemLock(itemID)
	l.Lock()
	defer l.Unlock()

	item, err := uc.itemRepo.ClaimFree(ctx, itemID, claimer)
	if err != nil {
		logger.LogLedgerError(itemID, "claim", err)
		return nil, err
	}
	logger.Info("Item %s claimed by %s", itemID, claimer)
	return item, nil
}

// UnlockItem reveals an easter egg. Already-unlocked is a success, never an
// error, and ownership is untouched either way.
func (uc *LedgerUseCase) UnlockItem(ctx context.Context, itemID string) (*entity.Item, error) {
	return uc.itemRepo.Unlock(ctx, itemID)
}

// TriggerResult describes the outcome of an easter egg trigger: the item
// revealed, and whether it was also claimed for the acting account.
type TriggerResult struct {
	Item    *entity.Item `json:"item"`
	Claimed bool         `json:"claimed"`
}

// Trigger resolves a client-side easter egg trigger (a search phrase or a
// click counter reaching its threshold) to an egg, unlocks it, and claims it
// for account when the egg is free to claim. A trigger that matches nothing
// returns NOT_FOUND.
func (uc *LedgerUseCase) Trigger(ctx context.Context, account, kind, value string, count int) (*TriggerResult, error) {
	var eggID string
	switch kind {
	case "search":
		eggID = catalog.EggForSearch(value)
	case "counter":
		eggID = catalog.EggForCounter(value, count)
	default:
		return nil, errors.BadRequest("Unknown trigger kind", nil)
	}
	if eggID == "" {
		return nil, errors.NotFound("Easter egg", nil)
	}

	item, err := uc.UnlockItem(ctx, eggID)
	if err != nil {
		return nil, err
	}

	result := &TriggerResult{Item: item}
	if item.IsFreeToClaim && item.Owner == nil && account != "" {
		claimed, err := uc.ClaimFreeItem(ctx, eggID, account)
		if err == nil {
			result.Item = claimed
			result.Claimed = true
		} else if !errors.IsPrecondition(err) {
			return nil, err
		}
		// A lost claim race still counts as a successful unlock.
	}
	return result, nil
}

// BuyResult pairs the post-purchase item with its freshly issued certificate.
type BuyResult struct {
	Item        *entity.Item        `json:"item"`
	Certificate *entity.Certificate `json:"certificate"`
}

// Buy purchases an item for buyer at its effective price. The wallet
// transaction is submitted first; a user rejection or provider failure
// aborts before any state changes. The ownership change itself is a single
// conditional write, after which any open sale contract for the item is
// completed and a certificate appended.
func (uc *LedgerUseCase) Buy(ctx context.Context, itemID, buyer string) (*BuyResult, error) {
	if !entity.ValidAddress(buyer) {
		return nil, errors.BadRequest("Invalid wallet address", nil)
	}

	l := uc.itemLock(itemID)
	l.Lock()
	defer l.Unlock()

	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.IsEasterEgg && !item.Unlocked {
		return nil, errors.Precondition(errors.ReasonLocked, "Easter egg has not been unlocked yet")
	}
	if item.OwnedBy(buyer) {
		return nil, errors.Precondition(errors.ReasonAlreadyOwned, "You already own this item")
	}
	if item.Owner != nil && !item.ForSale {
		return nil, errors.Precondition(errors.ReasonAlreadyOwned, "Item already owned and not for sale")
	}

	price := item.EffectivePrice()
	valueWei, err := utils.EthToHexWei(price)
	if err != nil {
		return nil, errors.Internal("Invalid item price", err)
	}

	// Payment goes to the current owner for a resale, to the bank wallet
	// for a first sale.
	recipient := uc.bankWallet
	if item.Owner != nil {
		recipient = *item.Owner
	}

	txHash, err := uc.wallet.SendTransaction(ctx, service.TxRequest{
		From:  buyer,
		To:    recipient,
		Value: valueWei,
	})
	if err != nil {
		// Rejection or provider failure: nothing has been applied.
		logger.LogLedgerError(itemID, "buy", err)
		return nil, err
	}

	updated, err := uc.itemRepo.Purchase(ctx, itemID, buyer)
	if err != nil {
		logger.LogLedgerError(itemID, "buy", err)
		return nil, err
	}

	if active, err := uc.contractRepo.GetActiveByItem(ctx, itemID); err == nil && active != nil {
		accepted := &entity.BuyOffer{Buyer: buyer, PriceEth: price, Timestamp: time.Now()}
		if _, err := uc.contractRepo.Finalize(ctx, active.ID, entity.ContractStatusCompleted, accepted); err != nil {
			logger.Error("Failed to complete contract %s after purchase: %v", active.ID, err)
		}
	}

	cert := &entity.Certificate{
		ID:       uc.newCertID(),
		ItemID:   itemID,
		Owner:    buyer,
		TxHash:   txHash,
		IssuedAt: time.Now(),
	}
	if err := uc.certRepo.Create(ctx, cert); err != nil {
		logger.Error("Failed to issue certificate for %s: %v", itemID, err)
		return nil, errors.Internal("Failed to issue certificate", err)
	}

	logger.Info("Item %s bought by %s for %s ETH (tx %s)", itemID, buyer, price, txHash)
	return &BuyResult{Item: updated, Certificate: cert}, nil
}

type ListForSaleInput struct {
	ItemID   string `json:"item_id" validate:"required"`
	Mode     string `json:"mode" validate:"required,oneof=fixedPrice buyOffer"`
	PriceEth string `json:"price_eth"`
	Comment  string `json:"comment"`
}

// ListResult pairs the created contract with the item's post-listing state.
type ListResult struct {
	Contract *entity.SaleContract `json:"contract"`
	Item     *entity.Item         `json:"item"`
}

// ListForSale creates a sale contract for an item the seller owns. A
// fixedPrice contract also flips the item's listing flags in one conditional
// write; a buyOffer contract leaves the item unlisted and collects offers.
// At most one active contract may exist per item.
func (uc *LedgerUseCase) ListForSale(ctx context.Context, seller string, input ListForSaleInput) (*ListResult, error) {
	if !entity.ValidAddress(seller) {
		return nil, errors.BadRequest("Invalid wallet address", nil)
	}
	mode := entity.SaleMode(input.Mode)
	if mode == entity.SaleModeFixedPrice && !utils.IsPositiveEth(input.PriceEth) {
		return nil, errors.BadRequest("Sale price must be a positive ETH amount", nil)
	}

	l := uc.itemLock(input.ItemID)
	l.Lock()
	defer l.Unlock()

	active, err := uc.contractRepo.GetActiveByItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, errors.Precondition(errors.ReasonContractExists, "Item already has an active sale contract")
	}

	now := time.Now()
	contract := &entity.SaleContract{
		ID:        fmt.Sprintf("sale-%s-%d", input.ItemID, now.UnixMilli()),
		ItemID:    input.ItemID,
		Seller:    entity.NormalizeAddress(seller),
		Mode:      mode,
		PriceEth:  input.PriceEth,
		Status:    entity.ContractStatusActive,
		Comment:   input.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var item *entity.Item
	if mode == entity.SaleModeFixedPrice {
		// The ownership check rides the conditional write.
		item, err = uc.itemRepo.SetListing(ctx, input.ItemID, seller, input.PriceEth)
		if err != nil {
			logger.LogLedgerError(input.ItemID, "list", err)
			return nil, err
		}
	} else {
		item, err = uc.itemRepo.GetByID(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		if !item.OwnedBy(seller) {
			return nil, errors.Precondition(errors.ReasonNotSeller, "Only the current owner can open a sale contract")
		}
	}

	// Create enforces one-active-contract-per-item at the store, so a
	// writer on another instance that slipped past the check above still
	// loses here. Roll the listing flags back if it does.
	if err := uc.contractRepo.Create(ctx, contract); err != nil {
		if mode == entity.SaleModeFixedPrice {
			if _, clearErr := uc.itemRepo.ClearListing(ctx, input.ItemID, seller); clearErr != nil {
				logger.Error("Failed to roll back listing for %s: %v", input.ItemID, clearErr)
			}
		}
		return nil, err
	}
	logger.Info("Item %s listed by %s (mode=%s)", input.ItemID, seller, mode)
	return &ListResult{Contract: contract, Item: item}, nil
}

// CancelListing withdraws a fixed-price listing and cancels the item's
// active contract. Cancelling an item that is not for sale reports
// NOT_FOR_SALE; a non-owner attempt reports NOT_SELLER. The two are never
// conflated.
func (uc *LedgerUseCase) CancelListing(ctx context.Context, itemID, seller string) (*entity.Item, error) {
	if !entity.ValidAddress(seller) {
		return nil, errors.BadRequest("Invalid wallet address", nil)
	}

	l := uc.itemLock(itemID)
	l.Lock()
	defer l.Unlock()

	item, err := uc.itemRepo.ClearListing(ctx, itemID, seller)
	if err != nil {
		logger.LogLedgerError(itemID, "cancel_listing", err)
		return nil, err
	}

	if active, err := uc.contractRepo.GetActiveByItem(ctx, itemID); err == nil && active != nil {
		if _, err := uc.contractRepo.Finalize(ctx, active.ID, entity.ContractStatusCancelled, nil); err != nil {
			logger.Error("Failed to cancel contract %s: %v", active.ID, err)
		}
	}
	return item, nil
}

type MakeOfferInput struct {
	ContractID string `json:"contract_id" validate:"required"`
	PriceEth   string `json:"price_eth" validate:"required"`
	Comment    string `json:"comment"`
}

// MakeOffer appends a buyer's offer to an active contract. Offers against a
// terminal contract are rejected with TERMINAL_CONTRACT, and a seller cannot
// bid on their own contract.
func (uc *LedgerUseCase) MakeOffer(ctx context.Context, buyer string, input MakeOfferInput) (*entity.SaleContract, error) {
	if !entity.ValidAddress(buyer) {
		return nil, errors.BadRequest("Invalid wallet address", nil)
	}
	if !utils.IsPositiveEth(input.PriceEth) {
		return nil, errors.BadRequest("Offer price must be a positive ETH amount", nil)
	}

	contract, err := uc.contractRepo.GetByID(ctx, input.ContractID)
	if err != nil {
		return nil, err
	}
	if entity.EqualAddress(contract.Seller, buyer) {
		return nil, errors.BadRequest("Seller cannot make an offer on their own contract", nil)
	}

	offer := entity.BuyOffer{
		Buyer:     entity.NormalizeAddress(buyer),
		PriceEth:  input.PriceEth,
		Timestamp: time.Now(),
	}
	updated, err := uc.contractRepo.AddOffer(ctx, input.ContractID, offer)
	if err != nil {
		logger.LogLedgerError(contract.ItemID, "make_offer", err)
		return nil, err
	}
	logger.Info("Offer of %s ETH on contract %s by %s", input.PriceEth, input.ContractID, buyer)
	return updated, nil
}

// AcceptResult is the full outcome of an accepted offer: the transferred
// item, the completed contract and the new owner's certificate.
type AcceptResult struct {
	Item        *entity.Item         `json:"item"`
	Contract    *entity.SaleContract `json:"contract"`
	Certificate *entity.Certificate  `json:"certificate"`
}

// AcceptOffer completes a buyOffer contract: ownership moves to the chosen
// offer's buyer, the contract finalizes as completed with that offer
// recorded, and a certificate is issued. The acting account must be both the
// contract's seller and the item's live owner; a stale contract whose seller
// no longer owns the item is rejected with NOT_SELLER.
func (uc *LedgerUseCase) AcceptOffer(ctx context.Context, seller, contractID string, offerIndex int) (*AcceptResult, error) {
	if !entity.ValidAddress(seller) {
		return nil, errors.BadRequest("Invalid wallet address", nil)
	}

	contract, err := uc.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	l := uc.itemLock(contract.ItemID)
	l.Lock()
	defer l.Unlock()

	if contract.Status.Terminal() {
		return nil, errors.Precondition(errors.ReasonTerminalContract, "Contract is already finalized")
	}
	if !entity.EqualAddress(contract.Seller, seller) {
		return nil, errors.Precondition(errors.ReasonNotSeller, "Only the contract's seller can accept an offer")
	}
	if offerIndex < 0 || offerIndex >= len(contract.Offers) {
		return nil, errors.BadRequest("No such offer on this contract", nil)
	}
	chosen := contract.Offers[offerIndex]

	// A contract whose seller no longer owns the item is stale; reject it
	// before any payout leaves the bank wallet.
	item, err := uc.itemRepo.GetByID(ctx, contract.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.OwnedBy(seller) {
		return nil, errors.Precondition(errors.ReasonNotSeller, "Contract seller no longer owns the item")
	}

	// The seller receives their share of the sale out of the bank wallet.
	payout, err := utils.SellerPayout(chosen.PriceEth)
	if err != nil {
		return nil, errors.Internal("Invalid offer price", err)
	}
	valueWei, err := utils.EthToHexWei(payout)
	if err != nil {
		return nil, errors.Internal("Invalid offer price", err)
	}
	if _, err := uc.wallet.SendTransaction(ctx, service.TxRequest{
		From:  uc.bankWallet,
		To:    seller,
		Value: valueWei,
	}); err != nil {
		logger.LogLedgerError(contract.ItemID, "accept_offer", err)
		return nil, err
	}

	// The conditional transfer is the authoritative ownership check; it
	// resets the interest counter, and the entries it counted are dropped
	// right after so the set stays in step with it.
	item, err = uc.itemRepo.TransferTo(ctx, contract.ItemID, seller, chosen.Buyer)
	if err != nil {
		logger.LogLedgerError(contract.ItemID, "accept_offer", err)
		return nil, err
	}
	if err := uc.interestRepo.DeleteByItem(ctx, contract.ItemID); err != nil {
		return nil, err
	}

	finalized, err := uc.contractRepo.Finalize(ctx, contractID, entity.ContractStatusCompleted, &chosen)
	if err != nil {
		logger.LogLedgerError(contract.ItemID, "accept_offer", err)
		return nil, err
	}

	cert := &entity.Certificate{
		ID:       uc.newCertID(),
		ItemID:   contract.ItemID,
		Owner:    chosen.Buyer,
		TxHash:   uc.syntheticTxRef(),
		IssuedAt: time.Now(),
	}
	if err := uc.certRepo.Create(ctx, cert); err != nil {
		return nil, errors.Internal("Failed to issue certificate", err)
	}

	logger.Info("Contract %s completed: %s -> %s at %s ETH", contractID, seller, chosen.Buyer, chosen.PriceEth)
	return &AcceptResult{Item: item, Contract: finalized, Certificate: cert}, nil
}

// CancelContract finalizes an active contract as cancelled and, for a
// fixedPrice contract, clears the item's listing flags.
func (uc *LedgerUseCase) CancelContract(ctx context.Context, seller, contractID string) (*entity.SaleContract, error) {
	if !entity.ValidAddress(seller) {
		return nil, errors.BadRequest("Invalid wallet address", nil)
	}

	contract, err := uc.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	l := uc.itemLock(contract.ItemID)
	l.Lock()
	defer l.Unlock()

	if !entity.EqualAddress(contract.Seller, seller) {
		return nil, errors.Precondition(errors.ReasonNotSeller, "Only the contract's seller can cancel it")
	}

	finalized, err := uc.contractRepo.Finalize(ctx, contractID, entity.ContractStatusCancelled, nil)
	if err != nil {
		logger.LogLedgerError(contract.ItemID, "cancel_contract", err)
		return nil, err
	}

	if contract.Mode == entity.SaleModeFixedPrice {
		if _, err := uc.itemRepo.ClearListing(ctx, contract.ItemID, seller); err != nil && !errors.Is(err, errors.ReasonNotForSale) {
			logger.Error("Failed to clear listing for %s: %v", contract.ItemID, err)
		}
	}
	return finalized, nil
}

// Transfer gifts an item from its current owner to another address. No
// payment is involved; the wallet still supplies a transaction reference for
// the certificate.
func (uc *LedgerUseCase) Transfer(ctx context.Context, itemID, from, to string) (*BuyResult, error) {
	if !entity.ValidAddress(from) || !entity.ValidAddress(to) {
		return nil, errors.BadRequest("Invalid wallet address", nil)
	}
	if entity.EqualAddress(from, to) {
		return nil, errors.BadRequest("Cannot transfer an item to yourself", nil)
	}

	l := uc.itemLock(itemID)
	l.Lock()
	defer l.Unlock()

	item, err := uc.itemRepo.TransferTo(ctx, itemID, from, to)
	if err != nil {
		logger.LogLedgerError(itemID, "transfer", err)
		return nil, err
	}
	// TransferTo zeroed the interest counter; dropping the entries keeps
	// the set in step with it. A failed transfer touches neither.
	if err := uc.interestRepo.DeleteByItem(ctx, itemID); err != nil {
		return nil, err
	}

	if active, err := uc.contractRepo.GetActiveByItem(ctx, itemID); err == nil && active != nil {
		if _, err := uc.contractRepo.Finalize(ctx, active.ID, entity.ContractStatusCancelled, nil); err != nil {
			logger.Error("Failed to cancel contract %s after transfer: %v", active.ID, err)
		}
	}

	cert := &entity.Certificate{
		ID:       uc.newCertID(),
		ItemID:   itemID,
		Owner:    entity.NormalizeAddress(to),
		TxHash:   uc.syntheticTxRef(),
		IssuedAt: time.Now(),
	}
	if err := uc.certRepo.Create(ctx, cert); err != nil {
		return nil, errors.Internal("Failed to issue certificate", err)
	}

	logger.Info("Item %s transferred %s -> %s", itemID, from, to)
	return &BuyResult{Item: item, Certificate: cert}, nil
}

type InterestInput struct {
	ItemID   string `json:"item_id" validate:"required"`
	PriceEth string `json:"price_eth" validate:"required"`
	Comment  string `json:"comment"`
}

// InterestResult carries the stored entry plus the item's recomputed
// interested counter.
type InterestResult struct {
	Buyer           *entity.InterestedBuyer `json:"buyer"`
	InterestedCount int                     `json:"interested_count"`
}

// MarkInterested records (or replaces) an address's interest in an item and
// recomputes the item's derived counter from the set. Re-submitting is
// idempotent on cardinality: the entry is replaced, the count is unchanged.
func (uc *LedgerUseCase) MarkInterested(ctx context.Context, address string, input InterestInput) (*InterestResult, error) {
	if !entity.ValidAddress(address) {
		return nil, errors.BadRequest("Invalid wallet address", nil)
	}
	if !utils.IsPositiveEth(input.PriceEth) {
		return nil, errors.BadRequest("Proposed price must be a positive ETH amount", nil)
	}
	if _, err := uc.itemRepo.GetByID(ctx, input.ItemID); err != nil {
		return nil, err
	}

	l := uc.itemLock(input.ItemID)
	l.Lock()
	defer l.Unlock()

	buyer := &entity.InterestedBuyer{
		ItemID:    input.ItemID,
		Address:   entity.NormalizeAddress(address),
		PriceEth:  input.PriceEth,
		Comment:   input.Comment,
		Timestamp: time.Now(),
	}
	if err := uc.interestRepo.Upsert(ctx, buyer); err != nil {
		return nil, err
	}

	count, err := uc.refreshInterestedCount(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	return &InterestResult{Buyer: buyer, InterestedCount: count}, nil
}

// RemoveInterest withdraws an address's interest. Removing an absent entry
// is a no-op success; the counter is recomputed either way.
func (uc *LedgerUseCase) RemoveInterest(ctx context.Context, itemID, address string) (int, error) {
	if !entity.ValidAddress(address) {
		return 0, errors.BadRequest("Invalid wallet address", nil)
	}

	l := uc.itemLock(itemID)
	l.Lock()
	defer l.Unlock()

	if err := uc.interestRepo.Remove(ctx, itemID, address); err != nil {
		return 0, err
	}
	return uc.refreshInterestedCount(ctx, itemID)
}

// InterestedBuyers lists the interest entries for one item.
func (uc *LedgerUseCase) InterestedBuyers(ctx context.Context, itemID string) ([]*entity.InterestedBuyer, error) {
	return uc.interestRepo.ListByItem(ctx, itemID)
}

func (uc *LedgerUseCase) refreshInterestedCount(ctx context.Context, itemID string) (int, error) {
	count, err := uc.interestRepo.CountByItem(ctx, itemID)
	if err != nil {
		return 0, err
	}
	if err := uc.itemRepo.SetInterestedCount(ctx, itemID, count); err != nil {
		return 0, err
	}
	return count, nil
}

// Certificates lists every issued certificate.
func (uc *LedgerUseCase) Certificates(ctx context.Context) ([]*entity.Certificate, error) {
	return uc.certRepo.List(ctx)
}

// ItemHistory is an item's ownership trail: its certificates in issue order.
func (uc *LedgerUseCase) ItemHistory(ctx context.Context, itemID string) ([]*entity.Certificate, error) {
	return uc.certRepo.ListByItem(ctx, itemID)
}

// Contracts lists all sale contracts, or only the given item's when itemID
// is non-empty.
func (uc *LedgerUseCase) Contracts(ctx context.Context, itemID string) ([]*entity.SaleContract, error) {
	if itemID != "" {
		return uc.contractRepo.ListByItem(ctx, itemID)
	}
	return uc.contractRepo.List(ctx)
}

func (uc *LedgerUseCase) GetContract(ctx context.Context, id string) (*entity.SaleContract, error) {
	return uc.contractRepo.GetByID(ctx, id)
}

// ResetAll wipes every table and reinstalls the generated catalogue. Only
// the bank wallet may invoke it. A reset supersedes any concurrent
// operations; they either complete before the wipe or fail against the
// reseeded state.
func (uc *LedgerUseCase) ResetAll(ctx context.Context, account string) error {
	if !entity.EqualAddress(account, uc.bankWallet) {
		return errors.Forbidden("Only the bank wallet can reset the marketplace", nil)
	}

	// Dependents go first so a mid-wipe failure never leaves interest
	// entries or contracts pointing at already-deleted items.
	wipes := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"interested_buyers", uc.interestRepo.DeleteAll},
		{"certificates", uc.certRepo.DeleteAll},
		{"sale_contracts", uc.contractRepo.DeleteAll},
		{"items", uc.itemRepo.DeleteAll},
	}
	for _, w := range wipes {
		if err := w.fn(ctx); err != nil {
			return errors.Internal(fmt.Sprintf("Failed to wipe %s", w.name), err)
		}
	}

	if err := uc.itemRepo.UpsertBatch(ctx, catalog.Generate(uc.catalogMax)); err != nil {
		return errors.Internal("Failed to reseed catalogue", err)
	}
	logger.Info("Marketplace reset by %s", account)
	return nil
}

// syntheticTxRef fabricates a transaction reference for ownership changes
// that settle off-chain (accepted offers, gifts).
func (uc *LedgerUseCase) syntheticTxRef() string {
	return fmt.Sprintf("0x%032x%032x", rand.Int63(), time.Now().UnixNano())
}
