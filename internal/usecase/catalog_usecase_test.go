package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numberzz/internal/domain/catalog"
	"numberzz/internal/domain/entity"
)

func newCatalogFixture(t *testing.T) (*CatalogUseCase, *LedgerUseCase) {
	t.Helper()
	f := newLedgerFixture(t)
	return f.items, f.ledger
}

func TestBootstrapIsIdempotent(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Buy(ctx, "42", alice)
	require.NoError(t, err)

	// a restart against a populated store must not reset ownership
	require.NoError(t, f.items.Bootstrap(ctx))

	item, err := f.items.GetItem(ctx, "42")
	require.NoError(t, err)
	assert.True(t, item.OwnedBy(alice))
}

func TestListItemsHidesLockedEggs(t *testing.T) {
	items, ledger := newCatalogFixture(t)
	ctx := context.Background()

	page, total, err := items.ListItems(ctx, ItemFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, len(page), total)
	for _, item := range page {
		assert.False(t, item.IsEasterEgg && !item.Unlocked, item.ID)
	}

	_, err = ledger.UnlockItem(ctx, "w_wukong")
	require.NoError(t, err)

	_, unlockedTotal, err := items.ListItems(ctx, ItemFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, total+1, unlockedTotal)
}

func TestListItemsOwnershipFilters(t *testing.T) {
	items, ledger := newCatalogFixture(t)
	ctx := context.Background()

	_, err := ledger.Buy(ctx, "42", alice)
	require.NoError(t, err)
	_, err = ledger.Buy(ctx, "pi", bob)
	require.NoError(t, err)

	mine, _, err := items.ListItems(ctx, ItemFilter{Type: "ownedByMe", Account: alice}, 0, 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "42", mine[0].ID)

	others, _, err := items.ListItems(ctx, ItemFilter{Type: "ownedByOthers", Account: alice}, 0, 0)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, "pi", others[0].ID)

	_, availableTotal, err := items.ListItems(ctx, ItemFilter{Type: "available"}, 0, 0)
	require.NoError(t, err)
	_, allTotal, err := items.ListItems(ctx, ItemFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, allTotal-2, availableTotal)
}

func TestListItemsSorting(t *testing.T) {
	items, _ := newCatalogFixture(t)
	ctx := context.Background()

	desc, _, err := items.ListItems(ctx, ItemFilter{SortBy: "priceDesc"}, 3, 0)
	require.NoError(t, err)
	require.Len(t, desc, 3)
	// pi carries the highest base price in the catalogue
	assert.Equal(t, "pi", desc[0].ID)

	byRarity, _, err := items.ListItems(ctx, ItemFilter{SortBy: "rarity"}, 1, 0)
	require.NoError(t, err)
	require.Len(t, byRarity, 1)
	assert.Equal(t, entity.RarityLegendary, byRarity[0].Rarity)
}

func TestListItemsSearch(t *testing.T) {
	items, _ := newCatalogFixture(t)
	ctx := context.Background()

	hits, _, err := items.ListItems(ctx, ItemFilter{Query: "golden ratio"}, 0, 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "phi", hits[0].ID)

	_, total, err := items.ListItems(ctx, ItemFilter{Query: "zzz-no-match"}, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestListItemsPagination(t *testing.T) {
	items, _ := newCatalogFixture(t)
	ctx := context.Background()

	first, total, err := items.ListItems(ctx, ItemFilter{}, 20, 0)
	require.NoError(t, err)
	assert.Len(t, first, 20)
	assert.Greater(t, total, 300)

	past, _, err := items.ListItems(ctx, ItemFilter{}, 20, total+10)
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestCatalogMaxBelowRangeFallsBack(t *testing.T) {
	assert.Len(t, catalog.Generate(0), len(catalog.Generate(catalog.NaturalEnd)))
}
