package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"numberzz/internal/domain/catalog"
	"numberzz/internal/domain/entity"
	"numberzz/internal/domain/repository"
	"numberzz/pkg/logger"
)

// CatalogUseCase serves read access to the item catalogue: bootstrap
// seeding, single-item lookup, and filtered/sorted browsing.
type CatalogUseCase struct {
	itemRepo   repository.ItemRepository
	catalogMax int
}

func NewCatalogUseCase(itemRepo repository.ItemRepository, catalogMax int) *CatalogUseCase {
	return &CatalogUseCase{
		itemRepo:   itemRepo,
		catalogMax: catalogMax,
	}
}

// Bootstrap seeds the generated catalogue on first run. Restarting against
// a populated store changes nothing.
func (uc *CatalogUseCase) Bootstrap(ctx context.Context) error {
	seeded, err := uc.itemRepo.SeedIfEmpty(ctx, catalog.Generate(uc.catalogMax))
	if err != nil {
		return err
	}
	if seeded {
		logger.Info("Catalogue seeded")
	}
	return nil
}

func (uc *CatalogUseCase) GetItem(ctx context.Context, id string) (*entity.Item, error) {
	return uc.itemRepo.GetByID(ctx, id)
}

// ItemFilter narrows and orders a catalogue listing. Account scopes the
// ownership filters; an empty account makes ownedByMe match nothing.
type ItemFilter struct {
	Query   string
	Type    string // all | available | ownedByMe | ownedByOthers | forSale
	SortBy  string // priceAsc | priceDesc | rarity | mostInterested
	Account string
}

var rarityOrder = map[entity.Rarity]int{
	entity.RarityExotic:    0,
	entity.RarityLegendary: 1,
	entity.RarityRare:      2,
	entity.RarityUncommon:  3,
	entity.RarityCommon:    4,
}

// ListItems returns the filtered catalogue page plus the total match count.
// Locked easter eggs are hidden from every listing; they surface only once
// their trigger reveals them.
func (uc *CatalogUseCase) ListItems(ctx context.Context, filter ItemFilter, limit, offset int) ([]*entity.Item, int, error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]*entity.Item, 0, len(items))
	for _, item := range items {
		if item.IsEasterEgg && !item.Unlocked {
			continue
		}
		if !matchesType(item, filter.Type, filter.Account) {
			continue
		}
		if filter.Query != "" && !matchesQuery(item, filter.Query) {
			continue
		}
		filtered = append(filtered, item)
	}

	sortItems(filtered, filter.SortBy)

	total := len(filtered)
	if offset >= total {
		return []*entity.Item{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return filtered[offset:end], total, nil
}

func matchesType(item *entity.Item, typ, account string) bool {
	switch typ {
	case "available":
		return item.Available()
	case "ownedByMe":
		return account != "" && item.OwnedBy(account)
	case "ownedByOthers":
		return item.Owner != nil && (account == "" || !item.OwnedBy(account))
	case "forSale":
		return item.ForSale
	default:
		return true
	}
}

func matchesQuery(item *entity.Item, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return strings.Contains(strings.ToLower(item.ID), q) ||
		strings.Contains(strings.ToLower(item.Label), q) ||
		strings.Contains(strings.ToLower(item.Description), q)
}

func sortItems(items []*entity.Item, sortBy string) {
	switch sortBy {
	case "priceAsc":
		sort.SliceStable(items, func(i, j int) bool {
			return comparePrice(items[i], items[j]) < 0
		})
	case "priceDesc":
		sort.SliceStable(items, func(i, j int) bool {
			return comparePrice(items[i], items[j]) > 0
		})
	case "rarity":
		sort.SliceStable(items, func(i, j int) bool {
			return rarityOrder[items[i].Rarity] < rarityOrder[items[j].Rarity]
		})
	case "mostInterested":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].InterestedCount > items[j].InterestedCount
		})
	}
}

func comparePrice(a, b *entity.Item) int {
	da, errA := decimal.NewFromString(a.EffectivePrice())
	db, errB := decimal.NewFromString(b.EffectivePrice())
	if errA != nil || errB != nil {
		return strings.Compare(a.EffectivePrice(), b.EffectivePrice())
	}
	return da.Cmp(db)
}
