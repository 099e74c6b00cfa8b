package usecase

import (
	"context"
	"sync"
	"time"

	"numberzz/internal/domain/entity"
	"numberzz/internal/domain/repository"
)

// AchievementUseCase derives achievement state from the catalogue snapshot
// and the acting account. Achievements are never stored authoritatively;
// they are recomputed on every evaluation, and the in-memory unlock times
// exist only to tell "newly unlocked this pass" from "already had it".
type AchievementUseCase struct {
	itemRepo repository.ItemRepository

	mu       sync.Mutex
	unlocked map[string]map[string]time.Time // account -> achievement id -> first seen
}

func NewAchievementUseCase(itemRepo repository.ItemRepository) *AchievementUseCase {
	return &AchievementUseCase{
		itemRepo: itemRepo,
		unlocked: make(map[string]map[string]time.Time),
	}
}

// EvaluationResult is the full achievement state plus at most one
// newly-unlocked achievement to surface as a notification. When several
// unlock in the same pass only the last one (in definition order) is
// surfaced; the full state still shows them all.
type EvaluationResult struct {
	Achievements  []entity.Achievement `json:"achievements"`
	NewlyUnlocked *entity.Achievement  `json:"newly_unlocked,omitempty"`
}

// Evaluate recomputes the account's achievements from current ownership.
func (uc *AchievementUseCase) Evaluate(ctx context.Context, account string) (*EvaluationResult, error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.evaluate(items, account), nil
}

func (uc *AchievementUseCase) evaluate(items []*entity.Item, account string) *EvaluationResult {
	earned := EarnedAchievements(items, account)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	seen := uc.unlocked[entity.NormalizeAddress(account)]
	if seen == nil {
		seen = make(map[string]time.Time)
		uc.unlocked[entity.NormalizeAddress(account)] = seen
	}

	now := time.Now()
	result := &EvaluationResult{Achievements: entity.DefaultAchievements()}
	for i := range result.Achievements {
		a := &result.Achievements[i]
		if !earned[a.ID] {
			// Ownership can regress (items sold away); the achievement
			// regresses with it.
			delete(seen, a.ID)
			continue
		}
		a.Unlocked = true
		at, ok := seen[a.ID]
		if !ok {
			at = now
			seen[a.ID] = at
			fresh := *a
			fresh.UnlockedAt = &at
			result.NewlyUnlocked = &fresh
		}
		t := at
		a.UnlockedAt = &t
	}
	return result
}

// EarnedAchievements is the pure rule set: which achievements the account's
// current holdings satisfy.
func EarnedAchievements(items []*entity.Item, account string) map[string]bool {
	var (
		eggsOwned, eggsTotal           int
		legendaryOwned, legendaryTotal int
		rareOwned                      int
		ownedByRarity                  = map[entity.Rarity]int{}
	)

	for _, item := range items {
		owned := item.OwnedBy(account)
		if owned {
			ownedByRarity[item.Rarity]++
		}
		switch {
		case item.IsEasterEgg:
			eggsTotal++
			if owned {
				eggsOwned++
			}
		case item.Rarity == entity.RarityLegendary:
			legendaryTotal++
			if owned {
				legendaryOwned++
			}
		case item.Rarity == entity.RarityRare:
			if owned {
				rareOwned++
			}
		}
	}

	return map[string]bool{
		entity.AchievementFirstEgg: eggsOwned >= 1,
		entity.AchievementAllEggs:  eggsTotal > 0 && eggsOwned == eggsTotal,
		entity.AchievementCollector: ownedByRarity[entity.RarityLegendary] > 0 &&
			ownedByRarity[entity.RarityRare] > 0 &&
			ownedByRarity[entity.RarityUncommon] > 0 &&
			ownedByRarity[entity.RarityCommon] > 0,
		entity.AchievementLegendaryCollector: legendaryTotal > 5 && legendaryOwned == legendaryTotal,
		entity.AchievementExoticCollector:    eggsTotal > 0 && eggsOwned == eggsTotal,
		entity.AchievementRareMaster:         rareOwned >= 5,
	}
}
