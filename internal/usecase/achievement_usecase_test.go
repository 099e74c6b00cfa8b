package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numberzz/internal/adapter/repository"
	"numberzz/internal/domain/entity"
)

func ownedItem(id string, rarity entity.Rarity, owner string, egg bool) *entity.Item {
	item := &entity.Item{ID: id, Rarity: rarity, Unlocked: true, IsEasterEgg: egg}
	if owner != "" {
		item.Owner = &owner
	}
	return item
}

func TestEarnedAchievementsRules(t *testing.T) {
	items := []*entity.Item{
		ownedItem("pi", entity.RarityLegendary, alice, false),
		ownedItem("e", entity.RarityLegendary, "", false),
		ownedItem("7", entity.RarityRare, alice, false),
		ownedItem("11", entity.RarityRare, alice, false),
		ownedItem("13", entity.RarityRare, alice, false),
		ownedItem("17", entity.RarityRare, alice, false),
		ownedItem("19", entity.RarityRare, alice, false),
		ownedItem("27", entity.RarityUncommon, alice, false),
		ownedItem("22", entity.RarityCommon, alice, false),
		ownedItem("d_darius", entity.RarityExotic, alice, true),
		ownedItem("n_nyan", entity.RarityExotic, bob, true),
	}

	earned := EarnedAchievements(items, alice)

	assert.True(t, earned[entity.AchievementFirstEgg])
	assert.True(t, earned[entity.AchievementCollector])
	assert.True(t, earned[entity.AchievementRareMaster])
	assert.False(t, earned[entity.AchievementAllEggs], "bob holds an egg")
	assert.False(t, earned[entity.AchievementExoticCollector], "bob holds an egg")
	assert.False(t, earned[entity.AchievementLegendaryCollector])

	// bob owns one egg and nothing else of note
	earnedBob := EarnedAchievements(items, bob)
	assert.True(t, earnedBob[entity.AchievementFirstEgg])
	assert.False(t, earnedBob[entity.AchievementCollector])
	assert.False(t, earnedBob[entity.AchievementRareMaster])
}

func TestAllEggsRequiresOwningEveryEgg(t *testing.T) {
	// an unlocked-but-unowned egg is not enough; the full set must be held
	items := []*entity.Item{
		ownedItem("d_darius", entity.RarityExotic, alice, true),
		ownedItem("n_nyan", entity.RarityExotic, "", true),
	}
	assert.False(t, EarnedAchievements(items, alice)[entity.AchievementAllEggs])

	items[1] = ownedItem("n_nyan", entity.RarityExotic, alice, true)
	earned := EarnedAchievements(items, alice)
	assert.True(t, earned[entity.AchievementAllEggs])
	assert.True(t, earned[entity.AchievementExoticCollector])
}

func TestLegendaryCollectorNeedsMoreThanFive(t *testing.T) {
	// owning the complete legendary set counts only when the set is big
	// enough to mean something
	small := []*entity.Item{
		ownedItem("pi", entity.RarityLegendary, alice, false),
		ownedItem("e", entity.RarityLegendary, alice, false),
	}
	assert.False(t, EarnedAchievements(small, alice)[entity.AchievementLegendaryCollector])

	full := make([]*entity.Item, 0, 6)
	for _, id := range []string{"pi", "e", "phi", "tau", "gamma", "omega"} {
		full = append(full, ownedItem(id, entity.RarityLegendary, alice, false))
	}
	assert.True(t, EarnedAchievements(full, alice)[entity.AchievementLegendaryCollector])

	full[0].Owner = nil
	assert.False(t, EarnedAchievements(full, alice)[entity.AchievementLegendaryCollector])
}

func TestEvaluateSurfacesNewUnlockOnce(t *testing.T) {
	store := repository.NewMemoryStore(nil)
	itemRepo := repository.NewMemoryItemRepository(store)
	ctx := context.Background()

	require.NoError(t, itemRepo.Upsert(ctx, ownedItem("d_darius", entity.RarityExotic, alice, true)))
	// a second, still-locked egg keeps all_eggs and exotic_collector out of
	// reach so only first_egg fires
	require.NoError(t, itemRepo.Upsert(ctx, &entity.Item{ID: "s_secret", Rarity: entity.RarityExotic, IsEasterEgg: true}))

	uc := NewAchievementUseCase(itemRepo)

	first, err := uc.Evaluate(ctx, alice)
	require.NoError(t, err)
	require.NotNil(t, first.NewlyUnlocked)
	assert.Equal(t, entity.AchievementFirstEgg, first.NewlyUnlocked.ID)

	// the same state evaluated again is no longer news
	second, err := uc.Evaluate(ctx, alice)
	require.NoError(t, err)
	assert.Nil(t, second.NewlyUnlocked)

	var firstEgg *entity.Achievement
	for i := range second.Achievements {
		if second.Achievements[i].ID == entity.AchievementFirstEgg {
			firstEgg = &second.Achievements[i]
		}
	}
	require.NotNil(t, firstEgg)
	assert.True(t, firstEgg.Unlocked)
	require.NotNil(t, firstEgg.UnlockedAt)
}

func TestEvaluateRegressesWithOwnership(t *testing.T) {
	store := repository.NewMemoryStore(nil)
	itemRepo := repository.NewMemoryItemRepository(store)
	ctx := context.Background()

	egg := ownedItem("d_darius", entity.RarityExotic, alice, true)
	require.NoError(t, itemRepo.Upsert(ctx, egg))
	require.NoError(t, itemRepo.Upsert(ctx, &entity.Item{ID: "s_secret", Rarity: entity.RarityExotic, IsEasterEgg: true}))

	uc := NewAchievementUseCase(itemRepo)
	_, err := uc.Evaluate(ctx, alice)
	require.NoError(t, err)

	// the egg moves to bob; alice's achievement goes with it
	_, err = itemRepo.TransferTo(ctx, "d_darius", alice, bob)
	require.NoError(t, err)

	result, err := uc.Evaluate(ctx, alice)
	require.NoError(t, err)
	for _, a := range result.Achievements {
		if a.ID == entity.AchievementFirstEgg {
			assert.False(t, a.Unlocked)
		}
	}

	// and re-acquiring surfaces it as new again
	_, err = itemRepo.TransferTo(ctx, "d_darius", bob, alice)
	require.NoError(t, err)
	again, err := uc.Evaluate(ctx, alice)
	require.NoError(t, err)
	require.NotNil(t, again.NewlyUnlocked)
	assert.Equal(t, entity.AchievementFirstEgg, again.NewlyUnlocked.ID)
}
