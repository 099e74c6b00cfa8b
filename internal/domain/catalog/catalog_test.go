package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numberzz/internal/domain/entity"
)

func byID(items []*entity.Item) map[string]*entity.Item {
	m := make(map[string]*entity.Item, len(items))
	for _, item := range items {
		m[item.ID] = item
	}
	return m
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(NaturalEnd)
	b := Generate(NaturalEnd)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.Equal(t, a[i].BasePrice, b[i].BasePrice)
		assert.Equal(t, a[i].Rarity, b[i].Rarity)
	}
}

func TestGenerateCuratedItems(t *testing.T) {
	items := byID(Generate(NaturalEnd))

	pi, ok := items["pi"]
	require.True(t, ok)
	assert.Equal(t, entity.RarityLegendary, pi.Rarity)
	assert.Equal(t, "0.10", pi.BasePrice)
	assert.True(t, pi.Unlocked)
	assert.Nil(t, pi.Owner)

	answer, ok := items["42"]
	require.True(t, ok)
	assert.Equal(t, entity.RarityRare, answer.Rarity)
	assert.Equal(t, "0.022", answer.BasePrice)
}

func TestGenerateCounts(t *testing.T) {
	items := Generate(NaturalEnd)

	counts := map[entity.Rarity]int{}
	var legendary, eggs int
	for _, item := range items {
		counts[item.Rarity]++
		if item.Rarity == entity.RarityLegendary {
			legendary++
		}
		if item.IsEasterEgg {
			eggs++
		}
	}

	assert.Equal(t, 10, legendary)
	assert.Equal(t, 7, eggs)
	// 10 curated rares plus every prime in [2, 300]
	assert.Equal(t, 10+62, counts[entity.RarityRare])
}

func TestNaturalsSkipCuratedIDs(t *testing.T) {
	items := byID(Generate(NaturalEnd))

	// 42, 69, 256 exist once, as curated rares, never duplicated by the
	// natural generator.
	assert.Equal(t, entity.RarityRare, items["42"].Rarity)
	assert.Equal(t, "0.022", items["42"].BasePrice)
	assert.Equal(t, entity.RarityRare, items["256"].Rarity)

	total := 0
	for range items {
		total++
	}
	// 10 legendary + 10 rare + 7 eggs + naturals 2..300 minus the 3
	// excluded ids inside the range (42, 69, 256).
	assert.Equal(t, 10+10+7+299-3, total)
}

func TestEasterEggsStartLocked(t *testing.T) {
	items := byID(Generate(NaturalEnd))

	for _, id := range []string{"d_darius", "n_nyan", "c_chroma", "w_wukong", "h_halflife", "m_meme", "s_secret"} {
		egg, ok := items[id]
		require.True(t, ok, id)
		assert.True(t, egg.IsEasterEgg, id)
		assert.False(t, egg.Unlocked, id)
		assert.Equal(t, entity.RarityExotic, egg.Rarity, id)
	}

	assert.True(t, items["c_chroma"].IsFreeToClaim)
	assert.False(t, items["w_wukong"].IsFreeToClaim)
	assert.Equal(t, "0.05", items["w_wukong"].BasePrice)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		n      int
		rarity entity.Rarity
	}{
		{7, entity.RarityRare},       // prime
		{293, entity.RarityRare},     // prime
		{28, entity.RarityUncommon},  // perfect
		{27, entity.RarityUncommon},  // 3^3
		{144, entity.RarityUncommon}, // 12^2 and Fibonacci
		{22, entity.RarityCommon},
		{300, entity.RarityCommon},
	}

	for _, tt := range tests {
		rarity, _ := classify(tt.n)
		assert.Equal(t, tt.rarity, rarity, "n=%d", tt.n)
	}
}

func TestEggForSearch(t *testing.T) {
	assert.Equal(t, "d_darius", EggForSearch("darius"))
	assert.Equal(t, "d_darius", EggForSearch("  DARIUS "))
	assert.Equal(t, "w_wukong", EggForSearch("wukong"))
	assert.Equal(t, "", EggForSearch("no such egg"))
}

func TestEggForCounter(t *testing.T) {
	assert.Equal(t, "", EggForCounter("logo", LogoClicksForChroma-1))
	assert.Equal(t, "c_chroma", EggForCounter("logo", LogoClicksForChroma))
	assert.Equal(t, "s_secret", EggForCounter("search_icon", SearchClicksForSecret))
	assert.Equal(t, "", EggForCounter("unknown", 100))
}
