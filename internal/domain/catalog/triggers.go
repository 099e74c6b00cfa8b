package catalog

import (
	"strings"
)

// Easter-egg unlock triggers. The ledger core only ever sees unlockItem;
// mapping an out-of-band event (search keyword, interaction counter) to an
// item id happens here.

const (
	LogoClicksForChroma   = 7
	SearchClicksForSecret = 10
)

var searchTriggers = map[string]string{
	"darius":    "d_darius",
	"wukong":    "w_wukong",
	"half-life": "h_halflife",
	"nyan":      "n_nyan",
	"meme":      "m_meme",
}

// EggForSearch returns the easter-egg item id hidden behind a search
// keyword, or "" when the query matches nothing. Matching is
// case-insensitive and ignores surrounding whitespace.
func EggForSearch(query string) string {
	return searchTriggers[strings.ToLower(strings.TrimSpace(query))]
}

// EggForCounter maps an interaction counter to the item it unlocks once the
// threshold is reached.
func EggForCounter(counter string, count int) string {
	switch counter {
	case "logo":
		if count >= LogoClicksForChroma {
			return "c_chroma"
		}
	case "search_icon":
		if count >= SearchClicksForSecret {
			return "s_secret"
		}
	}
	return ""
}
