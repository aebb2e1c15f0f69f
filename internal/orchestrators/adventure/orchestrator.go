// Package adventure implements everything a player does outside of combat:
// profile, travel, the inn and shop, quests, the story and the leaderboard.
package adventure

//go:generate mockgen -destination=mock/mock_service.go -package=adventuremock github.com/Richard10-cpu/termux-telegram-rpg/internal/orchestrators/adventure Service

import (
	"context"
	"log/slog"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	playersvc "github.com/Richard10-cpu/termux-telegram-rpg/internal/services/player"
)

// Service defines the interface for adventure operations
type Service interface {
	// Character
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// World
	GetMap(ctx context.Context, input *GetMapInput) (*GetMapOutput, error)
	Travel(ctx context.Context, input *TravelInput) (*TravelOutput, error)
	Rest(ctx context.Context, input *RestInput) (*RestOutput, error)

	// Shop
	GetShop(ctx context.Context, input *GetShopInput) (*GetShopOutput, error)
	Purchase(ctx context.Context, input *PurchaseInput) (*PurchaseOutput, error)
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)

	// Quests
	GetQuests(ctx context.Context, input *GetQuestsInput) (*GetQuestsOutput, error)
	ClaimDailyReward(ctx context.Context, input *ClaimDailyRewardInput) (*ClaimDailyRewardOutput, error)

	// Story
	GetStory(ctx context.Context, input *GetStoryInput) (*GetStoryOutput, error)
	StartChapterBossFight(ctx context.Context, input *StartChapterBossFightInput) (*StartChapterBossFightOutput, error)

	// Leaderboard
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}

// Config holds the dependencies for the adventure orchestrator
type Config struct {
	PlayerService playersvc.Service
	Rules         *engine.Rules
	Engine        engine.Engine
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerService == nil {
		vb.RequiredField("PlayerService")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

type orchestrator struct {
	players playersvc.Service
	rules   *engine.Rules
	engine  engine.Engine
	catalog *content.Catalog
}

// NewOrchestrator creates a new adventure orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		players: cfg.PlayerService,
		rules:   cfg.Rules,
		engine:  cfg.Engine,
		catalog: cfg.Rules.Catalog(),
	}, nil
}

func (o *orchestrator) get(ctx context.Context, playerID int64) (*playersvc.GetOutput, error) {
	if playerID == 0 {
		return nil, errors.InvalidArgument("player ID is required")
	}
	return o.players.Get(ctx, &playersvc.GetInput{PlayerID: playerID})
}

func (o *orchestrator) update(ctx context.Context, playerID int64, mutate playersvc.MutateFunc) (*playersvc.UpdateOutput, error) {
	if playerID == 0 {
		return nil, errors.InvalidArgument("player ID is required")
	}
	return o.players.Update(ctx, &playersvc.UpdateInput{PlayerID: playerID, Mutate: mutate})
}

// announce publishes progression earned outside a fight. A failed publish
// never fails the action.
func (o *orchestrator) announce(ctx context.Context, in *engine.ProgressInput) {
	if in.Empty() {
		return
	}
	if err := o.engine.PublishProgress(ctx, in); err != nil {
		slog.WarnContext(ctx, "failed to publish progress",
			"player_id", in.Player.UserID,
			"error", err)
	}
}

// GetProfile returns the player with their location and next level target
func (o *orchestrator) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	got, err := o.get(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	loc, _ := o.catalog.Location(got.Player.Location)
	return &GetProfileOutput{
		Player:       got.Player,
		Location:     loc,
		NextLevelExp: engine.ExpForLevel(got.Player.Level),
		Created:      got.Created,
	}, nil
}

// GetMap lists the world's locations
func (o *orchestrator) GetMap(ctx context.Context, input *GetMapInput) (*GetMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	got, err := o.get(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return &GetMapOutput{Locations: o.catalog.Locations(), Current: got.Player.Location}, nil
}

// Travel moves the player
func (o *orchestrator) Travel(ctx context.Context, input *TravelInput) (*TravelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LocationKey == "" {
		return nil, errors.InvalidArgument("location key is required")
	}

	var loc *content.Location
	upd, err := o.update(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		loc, err = o.rules.Travel(p, input.LocationKey)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "player traveled",
		"player_id", input.PlayerID,
		"location", loc.Key)
	return &TravelOutput{Player: upd.Player, Location: loc, Degraded: upd.Degraded}, nil
}

// Rest restores hp and mana for a fee
func (o *orchestrator) Rest(ctx context.Context, input *RestInput) (*RestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var res *engine.RestResult
	upd, err := o.update(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		res, err = o.rules.Rest(p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &RestOutput{Player: upd.Player, Result: res, Degraded: upd.Degraded}, nil
}

// GetShop lists items for sale
func (o *orchestrator) GetShop(_ context.Context, input *GetShopInput) (*GetShopOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &GetShopOutput{Items: o.catalog.Shop(input.Kinds...)}, nil
}

// Purchase buys an item
func (o *orchestrator) Purchase(ctx context.Context, input *PurchaseInput) (*PurchaseOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemKey == "" {
		return nil, errors.InvalidArgument("item key is required")
	}

	var res *engine.PurchaseResult
	upd, err := o.update(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		res, err = o.rules.Purchase(p, input.ItemKey)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "item purchased",
		"player_id", input.PlayerID,
		"item", res.Item.Key,
		"cost", res.Cost)
	return &PurchaseOutput{Player: upd.Player, Result: res, Degraded: upd.Degraded}, nil
}

// Equip wears an owned weapon or armor
func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemName == "" {
		return nil, errors.InvalidArgument("item name is required")
	}

	var res *engine.EquipResult
	upd, err := o.update(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		res, err = o.rules.Equip(p, input.ItemName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &EquipOutput{Player: upd.Player, Result: res, Degraded: upd.Degraded}, nil
}

// GetQuests rolls the daily quest over if the day changed and reports it
func (o *orchestrator) GetQuests(ctx context.Context, input *GetQuestsInput) (*GetQuestsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	upd, err := o.update(ctx, input.PlayerID, func(p *entities.Player) error {
		o.rules.UpdateDailyQuest(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	p := upd.Player
	statuses := make([]AchievementStatus, 0, len(engine.Achievements))
	for _, a := range engine.Achievements {
		statuses = append(statuses, AchievementStatus{Achievement: a, Unlocked: p.HasAchievement(a.Key)})
	}

	return &GetQuestsOutput{
		Player:       p,
		Quest:        p.DailyQuest(),
		CanClaim:     o.rules.CanClaimReward(p) == nil,
		Achievements: statuses,
		Degraded:     upd.Degraded,
	}, nil
}

// ClaimDailyReward pays the completed daily quest once per day
func (o *orchestrator) ClaimDailyReward(ctx context.Context, input *ClaimDailyRewardInput) (*ClaimDailyRewardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var reward *engine.QuestReward
	upd, err := o.update(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		reward, err = o.rules.ClaimDailyReward(p)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "daily reward claimed",
		"player_id", input.PlayerID,
		"gold", reward.Gold,
		"exp", reward.Exp)
	o.announce(ctx, &engine.ProgressInput{
		Player:       upd.Player,
		LevelUp:      reward.LevelUp,
		Achievements: reward.Achievements,
	})
	return &ClaimDailyRewardOutput{Player: upd.Player, Reward: reward, Degraded: upd.Degraded}, nil
}

// GetStory classifies every chapter for the player
func (o *orchestrator) GetStory(ctx context.Context, input *GetStoryInput) (*GetStoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	got, err := o.get(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	p := got.Player

	chapters := o.catalog.Chapters()
	views := make([]ChapterView, 0, len(chapters))
	for _, ch := range chapters {
		views = append(views, ChapterView{Chapter: ch, State: o.rules.ChapterState(p, ch)})
	}
	current, _ := o.rules.CurrentChapter(p)

	return &GetStoryOutput{
		Player:        p,
		Chapters:      views,
		Current:       current,
		GameCompleted: o.rules.GameCompleted(p),
	}, nil
}

// StartChapterBossFight checks the chapter gates and opens the boss battle.
// A chapter without a boss is completed right away and no battle starts.
func (o *orchestrator) StartChapterBossFight(ctx context.Context, input *StartChapterBossFightInput) (*StartChapterBossFightOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var (
		fight   *engine.BossFight
		started *engine.StartBattleOutput
	)
	upd, err := o.update(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		if fight, err = o.rules.StartChapterBossFight(p, input.ChapterID); err != nil {
			return err
		}
		if fight.Boss == nil {
			return nil
		}
		started, err = o.engine.StartBattle(ctx, &engine.StartBattleInput{Player: p})
		if err != nil {
			return err
		}
		if !started.Battle.IsBoss {
			return errors.Internalf("expected boss %s, got %s", fight.Boss.Name, started.Battle.MonsterName)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := &StartChapterBossFightOutput{
		Player:   upd.Player,
		Fight:    fight,
		Degraded: upd.Degraded,
	}
	if fight.Boss == nil {
		slog.InfoContext(ctx, "chapter completed without a boss",
			"player_id", input.PlayerID,
			"chapter", input.ChapterID)
		o.announce(ctx, &engine.ProgressInput{
			Player:       upd.Player,
			Chapter:      fight.Completion,
			Achievements: fight.Achievements,
		})
		return out, nil
	}

	slog.InfoContext(ctx, "boss fight started",
		"player_id", input.PlayerID,
		"chapter", input.ChapterID,
		"boss", fight.Boss.Name)
	out.Battle = started.Battle
	return out, nil
}

// GetLeaderboard ranks players by level, then gold
func (o *orchestrator) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	limit = min(limit, MaxLeaderboardLimit)

	top, err := o.players.Top(ctx, &playersvc.TopInput{Limit: limit})
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(top.Players))
	for i, p := range top.Players {
		entries = append(entries, LeaderboardEntry{
			Rank:       i + 1,
			PlayerID:   p.UserID,
			Level:      p.Level,
			Gold:       p.Gold,
			TotalKills: p.TotalKills,
		})
	}
	return &GetLeaderboardOutput{Entries: entries}, nil
}
