package v1alpha1

import (
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
)

// PlayerRequest addresses a single player
type PlayerRequest struct {
	PlayerID int64 `json:"player_id"`
}

// TravelRequest moves a player
type TravelRequest struct {
	PlayerID    int64  `json:"player_id"`
	LocationKey string `json:"location_key"`
}

// GetShopRequest lists items for sale, optionally by kind name
type GetShopRequest struct {
	Kinds []string `json:"kinds,omitempty"`
}

// PurchaseRequest buys an item by key
type PurchaseRequest struct {
	PlayerID int64  `json:"player_id"`
	ItemKey  string `json:"item_key"`
}

// EquipRequest wears an item by name
type EquipRequest struct {
	PlayerID int64  `json:"player_id"`
	ItemName string `json:"item_name"`
}

// StartChapterBossFightRequest challenges a chapter boss
type StartChapterBossFightRequest struct {
	PlayerID  int64 `json:"player_id"`
	ChapterID int   `json:"chapter_id"`
}

// GetLeaderboardRequest asks for the top players
type GetLeaderboardRequest struct {
	Limit int `json:"limit,omitempty"`
}

// CastSpellRequest casts a learned spell
type CastSpellRequest struct {
	PlayerID int64  `json:"player_id"`
	SpellKey string `json:"spell_key"`
}

// UsePotionRequest drinks a potion
type UsePotionRequest struct {
	PlayerID  int64  `json:"player_id"`
	PotionKey string `json:"potion_key"`
}

// SimulateBattleRequest resolves a fight at once. Empty MonsterKey picks an
// opponent from the player's location.
type SimulateBattleRequest struct {
	PlayerID   int64  `json:"player_id"`
	MonsterKey string `json:"monster_key,omitempty"`
}

// ProfileResponse is the player sheet
type ProfileResponse struct {
	Player       *entities.Player  `json:"player"`
	Location     *content.Location `json:"location,omitempty"`
	NextLevelExp int               `json:"next_level_exp"`
	Created      bool              `json:"created"`
}

// MapResponse lists the world
type MapResponse struct {
	Locations []*content.Location `json:"locations"`
	Current   string              `json:"current"`
}

// TravelResponse is the player after moving
type TravelResponse struct {
	Player   *entities.Player  `json:"player"`
	Location *content.Location `json:"location"`
	Degraded bool              `json:"degraded,omitempty"`
}

// RestResponse is the player after resting
type RestResponse struct {
	Player   *entities.Player   `json:"player"`
	Result   *engine.RestResult `json:"result"`
	Degraded bool               `json:"degraded,omitempty"`
}

// ShopResponse lists items for sale
type ShopResponse struct {
	Items []*content.Item `json:"items"`
}

// PurchaseResponse is the player after buying
type PurchaseResponse struct {
	Player   *entities.Player       `json:"player"`
	Result   *engine.PurchaseResult `json:"result"`
	Degraded bool                   `json:"degraded,omitempty"`
}

// EquipResponse is the player after equipping
type EquipResponse struct {
	Player   *entities.Player    `json:"player"`
	Result   *engine.EquipResult `json:"result"`
	Degraded bool                `json:"degraded,omitempty"`
}

// AchievementStatus is one achievement and whether it is unlocked
type AchievementStatus struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// QuestsResponse is the quest log
type QuestsResponse struct {
	Player       *entities.Player     `json:"player"`
	Quest        *entities.DailyQuest `json:"quest"`
	CanClaim     bool                 `json:"can_claim"`
	Achievements []AchievementStatus  `json:"achievements"`
	Degraded     bool                 `json:"degraded,omitempty"`
}

// ClaimRewardResponse is the paid daily reward
type ClaimRewardResponse struct {
	Player   *entities.Player    `json:"player"`
	Reward   *engine.QuestReward `json:"reward"`
	Degraded bool                `json:"degraded,omitempty"`
}

// ChapterStatus is one chapter and its state for the player
type ChapterStatus struct {
	Chapter *content.Chapter `json:"chapter"`
	State   string           `json:"state"`
}

// StoryResponse is the campaign overview
type StoryResponse struct {
	Player         *entities.Player `json:"player"`
	Chapters       []ChapterStatus  `json:"chapters"`
	CurrentChapter int              `json:"current_chapter,omitempty"`
	GameCompleted  bool             `json:"game_completed"`
}

// BossFightResponse is the opened boss battle
type BossFightResponse struct {
	Player   *entities.Player      `json:"player"`
	Fight    *engine.BossFight     `json:"fight"`
	Battle   *entities.BattleState `json:"battle,omitempty"`
	Degraded bool                  `json:"degraded,omitempty"`
}

// LeaderboardEntry is one ranked player
type LeaderboardEntry struct {
	Rank       int   `json:"rank"`
	PlayerID   int64 `json:"player_id"`
	Level      int   `json:"level"`
	Gold       int   `json:"gold"`
	TotalKills int   `json:"total_kills"`
}

// LeaderboardResponse is the ranking
type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// StartBattleResponse is the opened battle
type StartBattleResponse struct {
	Player   *entities.Player      `json:"player"`
	Battle   *entities.BattleState `json:"battle,omitempty"`
	Chapter  *content.Chapter      `json:"chapter,omitempty"`
	Message  string                `json:"message"`
	Degraded bool                  `json:"degraded,omitempty"`
}

// TurnResponse is one resolved combat round
type TurnResponse struct {
	Player   *entities.Player   `json:"player"`
	Turn     *engine.TurnOutput `json:"turn"`
	Degraded bool               `json:"degraded,omitempty"`
}

// SimulateBattleResponse is an applied instant fight
type SimulateBattleResponse struct {
	Player   *entities.Player             `json:"player"`
	Result   *engine.SimulateBattleOutput `json:"result"`
	Degraded bool                         `json:"degraded,omitempty"`
}
