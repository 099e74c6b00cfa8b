package entity

import (
	"time"
)

// Achievement is derived, never authoritative: it is recomputed from the
// catalogue snapshot and the acting account on every relevant change.
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

const (
	AchievementFirstEgg           = "first_egg"
	AchievementAllEggs            = "all_eggs"
	AchievementCollector          = "collector"
	AchievementLegendaryCollector = "legendary_collector"
	AchievementExoticCollector    = "exotic_collector"
	AchievementRareMaster         = "rare_master"
)

// DefaultAchievements is the fixed achievement set, all locked.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: AchievementFirstEgg, Name: "Egg Hunter", Description: "Unlock your first easter egg", Icon: "🥚"},
		{ID: AchievementAllEggs, Name: "Bunny Master", Description: "Own all easter eggs", Icon: "🐰"},
		{ID: AchievementCollector, Name: "Collector", Description: "Own one number of each rarity", Icon: "👑"},
		{ID: AchievementLegendaryCollector, Name: "Legendary Collector", Description: "Own all legendary numbers", Icon: "⭐"},
		{ID: AchievementExoticCollector, Name: "Exotic Collector", Description: "Own all exotic numbers", Icon: "🌟"},
		{ID: AchievementRareMaster, Name: "Rare Master", Description: "Own 5 rare numbers", Icon: "💎"},
	}
}
