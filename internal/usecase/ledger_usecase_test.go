package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numberzz/internal/adapter/repository"
	"numberzz/internal/domain/catalog"
	"numberzz/internal/domain/entity"
	domainrepo "numberzz/internal/domain/repository"
	syncfeed "numberzz/internal/infrastructure/sync"
	"numberzz/internal/infrastructure/wallet"
	"numberzz/pkg/errors"
)

const (
	bankWallet = "0x53304048455325fBFFecC34a62976CB3f4D7b519"
	alice      = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	bob        = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	carol      = "0xcccccccccccccccccccccccccccccccccccccccc"
)

type ledgerFixture struct {
	ledger   *LedgerUseCase
	items    *CatalogUseCase
	wallet   *wallet.SimClient
	itemRepo domainrepo.ItemRepository
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	store := repository.NewMemoryStore(nil)
	itemRepo := repository.NewMemoryItemRepository(store)
	contractRepo := repository.NewMemorySaleContractRepository(store)
	certRepo := repository.NewMemoryCertificateRepository(store)
	interestRepo := repository.NewMemoryInterestRepository(store)

	walletClient := wallet.NewSimClient("0x2105")
	walletClient.AddAccount(bankWallet, "1000")

	items := NewCatalogUseCase(itemRepo, catalog.NaturalEnd)
	require.NoError(t, items.Bootstrap(context.Background()))

	ledger := NewLedgerUseCase(itemRepo, contractRepo, certRepo, interestRepo, walletClient, bankWallet, catalog.NaturalEnd)
	return &ledgerFixture{ledger: ledger, items: items, wallet: walletClient, itemRepo: itemRepo}
}

func TestBuyThenStaleBuyLosesCleanly(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	result, err := f.ledger.Buy(ctx, "42", alice)
	require.NoError(t, err)
	assert.True(t, result.Item.OwnedBy(alice))
	require.NotNil(t, result.Certificate)
	assert.Equal(t, "42", result.Certificate.ItemID)
	assert.Equal(t, alice, result.Certificate.Owner)
	assert.NotEmpty(t, result.Certificate.TxHash)

	// a second buyer holding the stale "available" view is rejected with
	// the precise reason, and nothing is double-charged
	_, err = f.ledger.Buy(ctx, "42", bob)
	assert.True(t, errors.Is(err, errors.ReasonAlreadyOwned))

	item, err := f.items.GetItem(ctx, "42")
	require.NoError(t, err)
	assert.True(t, item.OwnedBy(alice))

	history, err := f.ledger.ItemHistory(ctx, "42")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestBuyRejectedInWalletChangesNothing(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	f.wallet.RejectNext()
	_, err := f.ledger.Buy(ctx, "42", alice)
	assert.True(t, errors.Is(err, "USER_CANCELLED"))

	item, err := f.items.GetItem(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, item.Owner)

	history, err := f.ledger.ItemHistory(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, history)

	// the next attempt goes through normally
	result, err := f.ledger.Buy(ctx, "42", alice)
	require.NoError(t, err)
	assert.True(t, result.Item.OwnedBy(alice))
}

func TestTriggerUnlocksAndClaimsChroma(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	result, err := f.ledger.Trigger(ctx, alice, "counter", "logo", catalog.LogoClicksForChroma)
	require.NoError(t, err)
	assert.True(t, result.Claimed)
	assert.True(t, result.Item.Unlocked)
	assert.True(t, result.Item.OwnedBy(alice))
	assert.False(t, result.Item.IsFreeToClaim)

	// a second viewer firing the same trigger gets the unlock but not the
	// item
	again, err := f.ledger.Trigger(ctx, bob, "counter", "logo", catalog.LogoClicksForChroma)
	require.NoError(t, err)
	assert.False(t, again.Claimed)
	assert.True(t, again.Item.OwnedBy(alice))

	// and a direct claim reports the loss explicitly
	_, err = f.ledger.ClaimFreeItem(ctx, "c_chroma", bob)
	assert.True(t, errors.Is(err, errors.ReasonAlreadyClaimed))
}

func TestTriggerUnlocksPaidEggForPurchase(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	// locked eggs cannot be bought
	_, err := f.ledger.Buy(ctx, "w_wukong", alice)
	assert.True(t, errors.Is(err, errors.ReasonLocked))

	result, err := f.ledger.Trigger(ctx, alice, "search", "wukong", 0)
	require.NoError(t, err)
	assert.False(t, result.Claimed)
	assert.True(t, result.Item.Unlocked)
	assert.Nil(t, result.Item.Owner)

	bought, err := f.ledger.Buy(ctx, "w_wukong", alice)
	require.NoError(t, err)
	assert.True(t, bought.Item.OwnedBy(alice))
}

func TestConcurrentClaimExactlyOnce(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.ledger.UnlockItem(ctx, "d_darius")
	require.NoError(t, err)

	claimers := []string{alice, bob, carol}
	results := make([]error, len(claimers))
	var wg sync.WaitGroup
	for i, addr := range claimers {
		wg.Add(1)
		go func(i int, addr string) {
			defer wg.Done()
			_, results[i] = f.ledger.ClaimFreeItem(ctx, "d_darius", addr)
		}(i, addr)
	}
	wg.Wait()

	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
		} else {
			assert.True(t, errors.Is(err, errors.ReasonAlreadyClaimed))
		}
	}
	assert.Equal(t, 1, wins)
}

func TestListForSaleAndCancel(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Buy(ctx, "7", alice)
	require.NoError(t, err)

	listed, err := f.ledger.ListForSale(ctx, alice, ListForSaleInput{
		ItemID:   "7",
		Mode:     string(entity.SaleModeFixedPrice),
		PriceEth: "0.5",
	})
	require.NoError(t, err)
	assert.True(t, listed.Item.ForSale)
	assert.Equal(t, "0.5", listed.Item.SalePrice)
	assert.Equal(t, entity.ContractStatusActive, listed.Contract.Status)

	// one active contract per item
	_, err = f.ledger.ListForSale(ctx, alice, ListForSaleInput{
		ItemID:   "7",
		Mode:     string(entity.SaleModeFixedPrice),
		PriceEth: "0.6",
	})
	assert.True(t, errors.Is(err, errors.ReasonContractExists))

	item, err := f.ledger.CancelListing(ctx, "7", alice)
	require.NoError(t, err)
	assert.False(t, item.ForSale)
	assert.True(t, item.OwnedBy(alice))

	contracts, err := f.ledger.Contracts(ctx, "7")
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, entity.ContractStatusCancelled, contracts[0].Status)

	// cancelling again is NOT_FOR_SALE, not a silent success
	_, err = f.ledger.CancelListing(ctx, "7", alice)
	assert.True(t, errors.Is(err, errors.ReasonNotForSale))
}

func TestListForSaleRejectsNonOwnerAndBadPrice(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Buy(ctx, "8", alice)
	require.NoError(t, err)

	_, err = f.ledger.ListForSale(ctx, bob, ListForSaleInput{
		ItemID:   "8",
		Mode:     string(entity.SaleModeFixedPrice),
		PriceEth: "0.5",
	})
	assert.True(t, errors.Is(err, errors.ReasonNotSeller))

	for _, price := range []string{"0", "-1", "abc", ""} {
		_, err = f.ledger.ListForSale(ctx, alice, ListForSaleInput{
			ItemID:   "8",
			Mode:     string(entity.SaleModeFixedPrice),
			PriceEth: price,
		})
		assert.True(t, errors.Is(err, "BAD_REQUEST"), "price=%q", price)
	}
}

func TestResaleAtListedPrice(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Buy(ctx, "42", alice)
	require.NoError(t, err)

	_, err = f.ledger.ListForSale(ctx, alice, ListForSaleInput{
		ItemID:   "42",
		Mode:     string(entity.SaleModeFixedPrice),
		PriceEth: "0.9",
	})
	require.NoError(t, err)

	result, err := f.ledger.Buy(ctx, "42", bob)
	require.NoError(t, err)
	assert.True(t, result.Item.OwnedBy(bob))
	assert.False(t, result.Item.ForSale)

	// the listing's contract closed with the purchase
	contracts, err := f.ledger.Contracts(ctx, "42")
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, entity.ContractStatusCompleted, contracts[0].Status)
	require.NotNil(t, contracts[0].AcceptedOffer)
	assert.Equal(t, bob, contracts[0].AcceptedOffer.Buyer)
	assert.Equal(t, "0.9", contracts[0].AcceptedOffer.PriceEth)

	// the history now carries both transfers in order
	history, err := f.ledger.ItemHistory(ctx, "42")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, alice, history[0].Owner)
	assert.Equal(t, bob, history[1].Owner)
}

func TestOfferNegotiation(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Buy(ctx, "pi", alice)
	require.NoError(t, err)

	listed, err := f.ledger.ListForSale(ctx, alice, ListForSaleInput{
		ItemID: "pi",
		Mode:   string(entity.SaleModeBuyOffer),
	})
	require.NoError(t, err)
	assert.False(t, listed.Item.ForSale, "buyOffer mode keeps the item unlisted")

	contractID := listed.Contract.ID

	_, err = f.ledger.MakeOffer(ctx, alice, MakeOfferInput{ContractID: contractID, PriceEth: "0.2"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"), "seller cannot bid on own contract")

	_, err = f.ledger.MakeOffer(ctx, bob, MakeOfferInput{ContractID: contractID, PriceEth: "0.2"})
	require.NoError(t, err)
	contract, err := f.ledger.MakeOffer(ctx, carol, MakeOfferInput{ContractID: contractID, PriceEth: "0.3"})
	require.NoError(t, err)
	require.Len(t, contract.Offers, 2)

	// only the seller can accept
	_, err = f.ledger.AcceptOffer(ctx, bob, contractID, 1)
	assert.True(t, errors.Is(err, errors.ReasonNotSeller))

	result, err := f.ledger.AcceptOffer(ctx, alice, contractID, 1)
	require.NoError(t, err)
	assert.True(t, result.Item.OwnedBy(carol))
	assert.Equal(t, entity.ContractStatusCompleted, result.Contract.Status)
	require.NotNil(t, result.Contract.AcceptedOffer)
	assert.Equal(t, carol, result.Contract.AcceptedOffer.Buyer)
	assert.Equal(t, carol, result.Certificate.Owner)

	// the contract is terminal now: no more offers, no second accept
	_, err = f.ledger.MakeOffer(ctx, bob, MakeOfferInput{ContractID: contractID, PriceEth: "0.4"})
	assert.True(t, errors.Is(err, errors.ReasonTerminalContract))
	_, err = f.ledger.AcceptOffer(ctx, alice, contractID, 0)
	assert.True(t, errors.Is(err, errors.ReasonTerminalContract))
}

func TestAcceptOfferWithStaleContract(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Buy(ctx, "phi", alice)
	require.NoError(t, err)

	listed, err := f.ledger.ListForSale(ctx, alice, ListForSaleInput{
		ItemID: "phi",
		Mode:   string(entity.SaleModeBuyOffer),
	})
	require.NoError(t, err)
	_, err = f.ledger.MakeOffer(ctx, bob, MakeOfferInput{ContractID: listed.Contract.ID, PriceEth: "0.2"})
	require.NoError(t, err)

	// ownership moves away while the contract still looks active
	_, err = f.ledger.Transfer(ctx, "phi", alice, carol)
	require.NoError(t, err)

	// the transfer cancelled the contract, so acceptance fails cleanly
	_, err = f.ledger.AcceptOffer(ctx, alice, listed.Contract.ID, 0)
	assert.True(t, errors.IsPrecondition(err))

	item, err := f.items.GetItem(ctx, "phi")
	require.NoError(t, err)
	assert.True(t, item.OwnedBy(carol))
}

func TestInterestedCountTracksSet(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	first, err := f.ledger.MarkInterested(ctx, bob, InterestInput{ItemID: "pi", PriceEth: "0.2"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.InterestedCount)

	// resubmission replaces the entry, the count stays put
	again, err := f.ledger.MarkInterested(ctx, bob, InterestInput{ItemID: "pi", PriceEth: "0.25"})
	require.NoError(t, err)
	assert.Equal(t, 1, again.InterestedCount)

	second, err := f.ledger.MarkInterested(ctx, carol, InterestInput{ItemID: "pi", PriceEth: "0.3"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.InterestedCount)

	item, err := f.items.GetItem(ctx, "pi")
	require.NoError(t, err)
	assert.Equal(t, 2, item.InterestedCount)

	count, err := f.ledger.RemoveInterest(ctx, "pi", bob)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// removing a non-member is a no-op success
	count, err = f.ledger.RemoveInterest(ctx, "pi", bob)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestTransferClearsInterestAndListing(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Buy(ctx, "11", alice)
	require.NoError(t, err)
	_, err = f.ledger.MarkInterested(ctx, bob, InterestInput{ItemID: "11", PriceEth: "0.1"})
	require.NoError(t, err)

	result, err := f.ledger.Transfer(ctx, "11", alice, bob)
	require.NoError(t, err)
	assert.True(t, result.Item.OwnedBy(bob))
	assert.Zero(t, result.Item.InterestedCount)

	buyers, err := f.ledger.InterestedBuyers(ctx, "11")
	require.NoError(t, err)
	assert.Empty(t, buyers)

	_, err = f.ledger.Transfer(ctx, "11", alice, carol)
	assert.True(t, errors.Is(err, errors.ReasonNotSeller))
}

func TestFailedTransferPreservesInterest(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Buy(ctx, "7", alice)
	require.NoError(t, err)
	marked, err := f.ledger.MarkInterested(ctx, bob, InterestInput{ItemID: "7", PriceEth: "0.1"})
	require.NoError(t, err)
	require.Equal(t, 1, marked.InterestedCount)

	// a non-owner cannot move the item, and the rejected attempt touches
	// neither the interest set nor the derived count
	_, err = f.ledger.Transfer(ctx, "7", carol, bob)
	assert.True(t, errors.Is(err, errors.ReasonNotSeller))

	item, err := f.items.GetItem(ctx, "7")
	require.NoError(t, err)
	assert.True(t, item.OwnedBy(alice))
	assert.Equal(t, 1, item.InterestedCount)

	buyers, err := f.ledger.InterestedBuyers(ctx, "7")
	require.NoError(t, err)
	require.Len(t, buyers, 1)
	assert.Equal(t, item.InterestedCount, len(buyers))
}

func TestAcceptOfferBySupplantedSellerPaysNothing(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Buy(ctx, "tau", alice)
	require.NoError(t, err)
	listed, err := f.ledger.ListForSale(ctx, alice, ListForSaleInput{
		ItemID: "tau",
		Mode:   string(entity.SaleModeBuyOffer),
	})
	require.NoError(t, err)
	_, err = f.ledger.MakeOffer(ctx, bob, MakeOfferInput{ContractID: listed.Contract.ID, PriceEth: "0.4"})
	require.NoError(t, err)
	_, err = f.ledger.MarkInterested(ctx, carol, InterestInput{ItemID: "tau", PriceEth: "0.3"})
	require.NoError(t, err)

	// ownership slips away underneath the still-active contract, as a
	// writer on another instance would cause
	_, err = f.itemRepo.TransferTo(ctx, "tau", alice, carol)
	require.NoError(t, err)

	// were the payout still attempted, the armed rejection would surface as
	// USER_CANCELLED; the supplanted seller must be turned away before it
	f.wallet.RejectNext()
	_, err = f.ledger.AcceptOffer(ctx, alice, listed.Contract.ID, 0)
	assert.True(t, errors.Is(err, errors.ReasonNotSeller))

	item, err := f.items.GetItem(ctx, "tau")
	require.NoError(t, err)
	assert.True(t, item.OwnedBy(carol))
}

func TestResetRequiresBankWallet(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Buy(ctx, "42", alice)
	require.NoError(t, err)

	err = f.ledger.ResetAll(ctx, alice)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, f.ledger.ResetAll(ctx, bankWallet))

	item, err := f.items.GetItem(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, item.Owner)

	certs, err := f.ledger.Certificates(ctx)
	require.NoError(t, err)
	assert.Empty(t, certs)
}

func TestResetWipesDependentsBeforeItems(t *testing.T) {
	feed := syncfeed.NewFeed()
	var wiped []string
	feed.Subscribe(func(c domainrepo.Change) {
		if c.Kind == domainrepo.ChangeDelete && c.Key == "*" {
			wiped = append(wiped, c.Table)
		}
	})

	store := repository.NewMemoryStore(feed)
	itemRepo := repository.NewMemoryItemRepository(store)
	contractRepo := repository.NewMemorySaleContractRepository(store)
	certRepo := repository.NewMemoryCertificateRepository(store)
	interestRepo := repository.NewMemoryInterestRepository(store)

	walletClient := wallet.NewSimClient("0x2105")
	walletClient.AddAccount(bankWallet, "1000")

	ctx := context.Background()
	items := NewCatalogUseCase(itemRepo, catalog.NaturalEnd)
	require.NoError(t, items.Bootstrap(ctx))

	ledger := NewLedgerUseCase(itemRepo, contractRepo, certRepo, interestRepo, walletClient, bankWallet, catalog.NaturalEnd)
	require.NoError(t, ledger.ResetAll(ctx, bankWallet))

	// rows referencing items go before the items themselves, every time
	assert.Equal(t, []string{
		domainrepo.TableInterested,
		domainrepo.TableCertificates,
		domainrepo.TableSaleContracts,
		domainrepo.TableItems,
	}, wiped)
}
