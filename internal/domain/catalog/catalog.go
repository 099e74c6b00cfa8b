// Package catalog produces the static Numberzz item set: curated legendary
// constants and culturally significant integers, procedurally classified
// natural numbers, and the fixed set of locked easter eggs. Generation is
// deterministic and stateless.
package catalog

import (
	"strconv"

	"numberzz/internal/domain/entity"
)

// Naturals outside this range are never generated.
const (
	NaturalStart = 2
	NaturalEnd   = 300
)

// curated ids that must not be duplicated by the natural-number generator
var excludedNaturals = map[int]bool{
	0: true, 1: true, 42: true, 69: true, 420: true,
	666: true, 1337: true, 1729: true, 256: true, 512: true,
}

// Generate returns the full catalogue: 10 legendary constants, 10 rare
// curated integers, 7 exotic easter eggs (all locked), and the naturals
// from NaturalStart to max inclusive. Items come back unowned.
func Generate(max int) []*entity.Item {
	if max < NaturalStart {
		max = NaturalEnd
	}

	items := make([]*entity.Item, 0, 30+max)
	items = append(items, legendaries()...)
	items = append(items, rares()...)
	items = append(items, easterEggs()...)
	items = append(items, naturals(NaturalStart, max)...)
	return items
}

func legendaries() []*entity.Item {
	defs := []struct {
		id, label, price, desc string
	}{
		{"pi", "π", "0.10", "Pi - famous irrational number (3.14159...)"},
		{"e", "e", "0.095", "e - Euler's constant (2.71828...)"},
		{"phi", "φ", "0.089", "Phi - the golden ratio (1.618...)"},
		{"gamma", "γ", "0.085", "Gamma - Euler-Mascheroni constant (0.5772...)"},
		{"tau", "τ", "0.098", "Tau - the circle constant (6.28318...)"},
		{"sqrt2", "√2", "0.088", "Square root of 2 - first irrational constant (1.414...)"},
		{"omega", "Ω", "0.092", "Omega - Chaitin's constant (0.00787...)"},
		{"sqrt3", "√3", "0.087", "Square root of 3 - irrational constant (1.732...)"},
		{"ln2", "ln(2)", "0.083", "Natural logarithm of 2 (0.693...)"},
		{"apery", "ζ(3)", "0.091", "Apéry's constant - zeta of 3 (1.202...)"},
	}

	out := make([]*entity.Item, 0, len(defs))
	for _, d := range defs {
		out = append(out, &entity.Item{
			ID:          d.id,
			Label:       d.label,
			Rarity:      entity.RarityLegendary,
			BasePrice:   d.price,
			Description: d.desc,
			Unlocked:    true,
		})
	}
	return out
}

func rares() []*entity.Item {
	defs := []struct {
		id, label, price, desc string
	}{
		{"zero", "0", "0.025", "The number zero - foundation of mathematics"},
		{"one", "1", "0.024", "Unity - base of all integers"},
		{"42", "42", "0.022", "The answer to life, the universe and everything"},
		{"1337", "1337", "0.020", "Leet speak - symbol of internet culture"},
		{"69", "69", "0.019", "The meme number - balance and symmetry"},
		{"420", "420", "0.021", "Iconic pop-culture number"},
		{"666", "666", "0.023", "The number of mystery"},
		{"1729", "1729", "0.026", "Ramanujan's number - smallest sum of two cubes in two ways"},
		{"256", "256", "0.018", "2^8 - fundamental power of computing"},
		{"512", "512", "0.019", "2^9 - classic system limit"},
	}

	out := make([]*entity.Item, 0, len(defs))
	for _, d := range defs {
		out = append(out, &entity.Item{
			ID:          d.id,
			Label:       d.label,
			Rarity:      entity.RarityRare,
			BasePrice:   d.price,
			Description: d.desc,
			Unlocked:    true,
		})
	}
	return out
}

func easterEggs() []*entity.Item {
	defs := []struct {
		id, label, egg, price, desc string
		free                        bool
	}{
		{"d_darius", "Ð", "darius", "0", "Darius Coin - found by searching 'darius'", true},
		{"n_nyan", "🌈", "nyan", "0", "Nyan Cat Coin - the legendary rainbow cat, found by searching 'nyan'", true},
		{"c_chroma", "◆", "chroma", "0", "Chroma Coin - click the logo 7 times to unlock", true},
		{"w_wukong", "☯", "wukong", "0.05", "Monkey King Coin - unlocked by searching 'wukong', then purchasable", false},
		{"h_halflife", "½", "half-life", "0.048", "Half-Life Coin - Half-Life 3 confirmed? Unlocked by searching 'half-life'", false},
		{"m_meme", "🎲", "meme", "0.042", "Meme Coin - unlocked by searching 'meme'", false},
		{"s_secret", "🔐", "secret", "0.035", "Secret Coin - unlocked by pressing the search button 10 times", false},
	}

	out := make([]*entity.Item, 0, len(defs))
	for _, d := range defs {
		out = append(out, &entity.Item{
			ID:            d.id,
			Label:         d.label,
			Rarity:        entity.RarityExotic,
			BasePrice:     d.price,
			Description:   d.desc,
			IsEasterEgg:   true,
			EasterEggName: d.egg,
			IsFreeToClaim: d.free,
		})
	}
	return out
}

func naturals(start, end int) []*entity.Item {
	out := make([]*entity.Item, 0, end-start+1)
	for i := start; i <= end; i++ {
		if excludedNaturals[i] {
			continue
		}

		rarity, price := classify(i)

		desc := "Unique number " + strconv.Itoa(i) + " - "
		switch {
		case i == 2:
			desc += "the first prime number"
		case rarity == entity.RarityRare:
			desc += "prime number, a rare mathematical property"
		case rarity == entity.RarityUncommon:
			desc += "special number with mathematical properties"
		default:
			desc += "natural integer"
		}

		out = append(out, &entity.Item{
			ID:          strconv.Itoa(i),
			Label:       strconv.Itoa(i),
			Rarity:      rarity,
			BasePrice:   price,
			Description: desc,
			Unlocked:    true,
		})
	}
	return out
}

// classify assigns rarity and base price to a natural number: primes are
// Rare, perfect numbers, proper powers and Fibonacci numbers are Uncommon,
// everything else is Common.
func classify(n int) (entity.Rarity, string) {
	switch {
	case isPrime(n):
		return entity.RarityRare, "0.015"
	case isPerfect(n) || isPower(n) || isFibonacci(n):
		return entity.RarityUncommon, "0.008"
	default:
		return entity.RarityCommon, "0.003"
	}
}

func isPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

func isPerfect(n int) bool {
	return n == 6 || n == 28 || n == 496
}

func isPower(n int) bool {
	for base := 2; base < n; base++ {
		power := base
		for power < n {
			power *= base
		}
		if power == n {
			return true
		}
	}
	return false
}

func isFibonacci(n int) bool {
	a, b := 0, 1
	for a < n {
		a, b = b, a+b
	}
	return a == n
}
