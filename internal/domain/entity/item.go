package entity

import (
	"time"
)

type Rarity string

const (
	RarityLegendary Rarity = "Legendary"
	RarityRare      Rarity = "Rare"
	RarityUncommon  Rarity = "Uncommon"
	RarityCommon    Rarity = "Common"
	RarityExotic    Rarity = "Exotic"
)

// Item is a single collectible unit in the catalogue: a number, a
// mathematical constant, or an easter egg.
type Item struct {
	ID          string `json:"id" firestore:"id"`
	Label       string `json:"label" firestore:"label"`
	Rarity      Rarity `json:"rarity" firestore:"rarity"`
	BasePrice   string `json:"base_price" firestore:"basePrice"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`

	// Owner is nil while the item is unowned. At most one owner at any time.
	Owner *string `json:"owner" firestore:"owner"`

	// ForSale/SalePrice are only live while a fixed-price listing is active
	// and are always cleared together with any ownership change.
	ForSale   bool   `json:"for_sale" firestore:"forSale"`
	SalePrice string `json:"sale_price,omitempty" firestore:"salePrice,omitempty"`

	IsEasterEgg   bool   `json:"is_easter_egg" firestore:"isEasterEgg"`
	EasterEggName string `json:"easter_egg_name,omitempty" firestore:"easterEggName,omitempty"`
	Unlocked      bool   `json:"unlocked" firestore:"unlocked"`
	IsFreeToClaim bool   `json:"is_free_to_claim" firestore:"isFreeToClaim"`

	// InterestedCount mirrors the cardinality of the item's interested-buyer
	// set. Always recomputed from the set, never incremented in place.
	InterestedCount int `json:"interested_count" firestore:"interestedCount"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// OwnedBy reports whether addr currently owns the item. Addresses compare
// case-insensitively.
func (i *Item) OwnedBy(addr string) bool {
	return i.Owner != nil && EqualAddress(*i.Owner, addr)
}

// Available reports whether the item can be bought right now: unowned (and
// not a locked easter egg), or listed for sale.
func (i *Item) Available() bool {
	if i.IsEasterEgg && !i.Unlocked {
		return false
	}
	return i.Owner == nil || i.ForSale
}

// EffectivePrice is the sale price while a listing is live, the base price
// otherwise.
func (i *Item) EffectivePrice() string {
	if i.ForSale && i.SalePrice != "" {
		return i.SalePrice
	}
	return i.BasePrice
}
