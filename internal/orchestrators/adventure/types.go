package adventure

import (
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
)

// Leaderboard bounds
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// GetProfileInput defines the request for a player's profile
type GetProfileInput struct {
	PlayerID int64
}

// GetProfileOutput defines the response for a player's profile
type GetProfileOutput struct {
	Player       *entities.Player
	Location     *content.Location
	NextLevelExp int
	Created      bool
}

// GetMapInput defines the request for the world map
type GetMapInput struct {
	PlayerID int64
}

// GetMapOutput lists every location and marks the player's
type GetMapOutput struct {
	Locations []*content.Location
	Current   string
}

// TravelInput defines the request for moving to a location
type TravelInput struct {
	PlayerID    int64
	LocationKey string
}

// TravelOutput defines the response for moving to a location
type TravelOutput struct {
	Player   *entities.Player
	Location *content.Location
	Degraded bool
}

// RestInput defines the request for resting at the inn
type RestInput struct {
	PlayerID int64
}

// RestOutput defines the response for resting at the inn
type RestOutput struct {
	Player   *entities.Player
	Result   *engine.RestResult
	Degraded bool
}

// GetShopInput defines the request for the shop listing. Empty Kinds lists
// everything for sale.
type GetShopInput struct {
	Kinds []content.ItemKind
}

// GetShopOutput defines the response for the shop listing
type GetShopOutput struct {
	Items []*content.Item
}

// PurchaseInput defines the request for buying an item
type PurchaseInput struct {
	PlayerID int64
	ItemKey  string
}

// PurchaseOutput defines the response for buying an item
type PurchaseOutput struct {
	Player   *entities.Player
	Result   *engine.PurchaseResult
	Degraded bool
}

// EquipInput defines the request for equipping an owned item by name
type EquipInput struct {
	PlayerID int64
	ItemName string
}

// EquipOutput defines the response for equipping an item
type EquipOutput struct {
	Player   *entities.Player
	Result   *engine.EquipResult
	Degraded bool
}

// GetQuestsInput defines the request for the quest log
type GetQuestsInput struct {
	PlayerID int64
}

// AchievementStatus pairs a registry entry with the player's progress
type AchievementStatus struct {
	Achievement engine.Achievement
	Unlocked    bool
}

// GetQuestsOutput defines the response for the quest log
type GetQuestsOutput struct {
	Player       *entities.Player
	Quest        *entities.DailyQuest
	CanClaim     bool
	Achievements []AchievementStatus
	Degraded     bool
}

// ClaimDailyRewardInput defines the request for claiming the daily reward
type ClaimDailyRewardInput struct {
	PlayerID int64
}

// ClaimDailyRewardOutput defines the response for claiming the daily reward
type ClaimDailyRewardOutput struct {
	Player   *entities.Player
	Reward   *engine.QuestReward
	Degraded bool
}

// GetStoryInput defines the request for the story overview
type GetStoryInput struct {
	PlayerID int64
}

// ChapterView is one chapter as the player sees it
type ChapterView struct {
	Chapter *content.Chapter
	State   engine.ChapterState
}

// GetStoryOutput defines the response for the story overview
type GetStoryOutput struct {
	Player        *entities.Player
	Chapters      []ChapterView
	Current       *content.Chapter
	GameCompleted bool
}

// StartChapterBossFightInput defines the request for challenging a chapter boss
type StartChapterBossFightInput struct {
	PlayerID  int64
	ChapterID int
}

// StartChapterBossFightOutput defines the response for challenging a chapter boss
type StartChapterBossFightOutput struct {
	Player *entities.Player
	Fight  *engine.BossFight
	// Battle is nil when the chapter had no boss and Fight.Completion is set
	Battle   *entities.BattleState
	Degraded bool
}

// GetLeaderboardInput defines the request for the leaderboard. Zero Limit
// means DefaultLeaderboardLimit.
type GetLeaderboardInput struct {
	Limit int
}

// LeaderboardEntry is one ranked player
type LeaderboardEntry struct {
	Rank       int
	PlayerID   int64
	Level      int
	Gold       int
	TotalKills int
}

// GetLeaderboardOutput defines the response for the leaderboard
type GetLeaderboardOutput struct {
	Entries []LeaderboardEntry
}
