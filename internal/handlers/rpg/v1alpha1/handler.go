// Package v1alpha1 serves the game over gRPC
package v1alpha1

import (
	"context"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/orchestrators/adventure"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/orchestrators/battle"
)

// HandlerConfig holds dependencies for the game handler
type HandlerConfig struct {
	BattleService    battle.Service
	AdventureService adventure.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BattleService == nil {
		vb.RequiredField("BattleService")
	}
	if c.AdventureService == nil {
		vb.RequiredField("AdventureService")
	}

	return vb.Build()
}

// Handler implements GameServiceServer
type Handler struct {
	battle    battle.Service
	adventure adventure.Service
}

var _ GameServiceServer = (*Handler)(nil)

// NewHandler creates a new game handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		battle:    cfg.BattleService,
		adventure: cfg.AdventureService,
	}, nil
}

func requirePlayer(id int64) error {
	if id == 0 {
		return errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	return nil
}

// GetProfile returns the player sheet
func (h *Handler) GetProfile(ctx context.Context, req *PlayerRequest) (*ProfileResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	out, err := h.adventure.GetProfile(ctx, &adventure.GetProfileInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ProfileResponse{
		Player:       out.Player,
		Location:     out.Location,
		NextLevelExp: out.NextLevelExp,
		Created:      out.Created,
	}, nil
}

// GetMap lists the world's locations
func (h *Handler) GetMap(ctx context.Context, req *PlayerRequest) (*MapResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	out, err := h.adventure.GetMap(ctx, &adventure.GetMapInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &MapResponse{Locations: out.Locations, Current: out.Current}, nil
}

// Travel moves the player
func (h *Handler) Travel(ctx context.Context, req *TravelRequest) (*TravelResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.LocationKey == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("location_key is required"))
	}

	out, err := h.adventure.Travel(ctx, &adventure.TravelInput{
		PlayerID:    req.PlayerID,
		LocationKey: req.LocationKey,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &TravelResponse{Player: out.Player, Location: out.Location, Degraded: out.Degraded}, nil
}

// Rest buys a full recovery
func (h *Handler) Rest(ctx context.Context, req *PlayerRequest) (*RestResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	out, err := h.adventure.Rest(ctx, &adventure.RestInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &RestResponse{Player: out.Player, Result: out.Result, Degraded: out.Degraded}, nil
}

// GetShop lists items for sale
func (h *Handler) GetShop(ctx context.Context, req *GetShopRequest) (*ShopResponse, error) {
	kinds := make([]content.ItemKind, 0, len(req.Kinds))
	for _, name := range req.Kinds {
		kind, err := content.ParseItemKind(name)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		kinds = append(kinds, kind)
	}

	out, err := h.adventure.GetShop(ctx, &adventure.GetShopInput{Kinds: kinds})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ShopResponse{Items: out.Items}, nil
}

// Purchase buys an item
func (h *Handler) Purchase(ctx context.Context, req *PurchaseRequest) (*PurchaseResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.ItemKey == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_key is required"))
	}

	out, err := h.adventure.Purchase(ctx, &adventure.PurchaseInput{
		PlayerID: req.PlayerID,
		ItemKey:  req.ItemKey,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &PurchaseResponse{Player: out.Player, Result: out.Result, Degraded: out.Degraded}, nil
}

// Equip wears an item
func (h *Handler) Equip(ctx context.Context, req *EquipRequest) (*EquipResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.ItemName == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_name is required"))
	}

	out, err := h.adventure.Equip(ctx, &adventure.EquipInput{
		PlayerID: req.PlayerID,
		ItemName: req.ItemName,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &EquipResponse{Player: out.Player, Result: out.Result, Degraded: out.Degraded}, nil
}

// GetQuests returns the quest log
func (h *Handler) GetQuests(ctx context.Context, req *PlayerRequest) (*QuestsResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	out, err := h.adventure.GetQuests(ctx, &adventure.GetQuestsInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	achievements := make([]AchievementStatus, 0, len(out.Achievements))
	for _, st := range out.Achievements {
		achievements = append(achievements, AchievementStatus{
			Key:         st.Achievement.Key,
			Name:        st.Achievement.Name,
			Description: st.Achievement.Description,
			Unlocked:    st.Unlocked,
		})
	}

	return &QuestsResponse{
		Player:       out.Player,
		Quest:        out.Quest,
		CanClaim:     out.CanClaim,
		Achievements: achievements,
		Degraded:     out.Degraded,
	}, nil
}

// ClaimDailyReward pays the daily quest
func (h *Handler) ClaimDailyReward(ctx context.Context, req *PlayerRequest) (*ClaimRewardResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	out, err := h.adventure.ClaimDailyReward(ctx, &adventure.ClaimDailyRewardInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ClaimRewardResponse{Player: out.Player, Reward: out.Reward, Degraded: out.Degraded}, nil
}

// GetStory returns the campaign overview
func (h *Handler) GetStory(ctx context.Context, req *PlayerRequest) (*StoryResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	out, err := h.adventure.GetStory(ctx, &adventure.GetStoryInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	chapters := make([]ChapterStatus, 0, len(out.Chapters))
	for _, v := range out.Chapters {
		chapters = append(chapters, ChapterStatus{Chapter: v.Chapter, State: v.State.String()})
	}

	resp := &StoryResponse{
		Player:        out.Player,
		Chapters:      chapters,
		GameCompleted: out.GameCompleted,
	}
	if out.Current != nil {
		resp.CurrentChapter = out.Current.ID
	}
	return resp, nil
}

// StartChapterBossFight challenges a chapter boss
func (h *Handler) StartChapterBossFight(ctx context.Context, req *StartChapterBossFightRequest) (*BossFightResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.ChapterID <= 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("chapter_id is required"))
	}

	out, err := h.adventure.StartChapterBossFight(ctx, &adventure.StartChapterBossFightInput{
		PlayerID:  req.PlayerID,
		ChapterID: req.ChapterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &BossFightResponse{
		Player:   out.Player,
		Fight:    out.Fight,
		Battle:   out.Battle,
		Degraded: out.Degraded,
	}, nil
}

// GetLeaderboard ranks the top players
func (h *Handler) GetLeaderboard(ctx context.Context, req *GetLeaderboardRequest) (*LeaderboardResponse, error) {
	if req.Limit < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("limit must not be negative"))
	}

	out, err := h.adventure.GetLeaderboard(ctx, &adventure.GetLeaderboardInput{Limit: req.Limit})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	entries := make([]LeaderboardEntry, 0, len(out.Entries))
	for _, e := range out.Entries {
		entries = append(entries, LeaderboardEntry{
			Rank:       e.Rank,
			PlayerID:   e.PlayerID,
			Level:      e.Level,
			Gold:       e.Gold,
			TotalKills: e.TotalKills,
		})
	}
	return &LeaderboardResponse{Entries: entries}, nil
}

// StartBattle opens a battle
func (h *Handler) StartBattle(ctx context.Context, req *PlayerRequest) (*StartBattleResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	out, err := h.battle.StartBattle(ctx, &battle.StartBattleInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &StartBattleResponse{
		Player:   out.Player,
		Battle:   out.Battle,
		Chapter:  out.Chapter,
		Message:  out.Message,
		Degraded: out.Degraded,
	}, nil
}

// Attack resolves an attack round
func (h *Handler) Attack(ctx context.Context, req *PlayerRequest) (*TurnResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	return turnResponse(h.battle.Attack(ctx, &battle.ActionInput{PlayerID: req.PlayerID}))
}

// Defend resolves a guarded round
func (h *Handler) Defend(ctx context.Context, req *PlayerRequest) (*TurnResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	return turnResponse(h.battle.Defend(ctx, &battle.ActionInput{PlayerID: req.PlayerID}))
}

// CastSpell resolves a spell round
func (h *Handler) CastSpell(ctx context.Context, req *CastSpellRequest) (*TurnResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.SpellKey == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("spell_key is required"))
	}
	return turnResponse(h.battle.CastSpell(ctx, &battle.CastSpellInput{
		PlayerID: req.PlayerID,
		SpellKey: req.SpellKey,
	}))
}

// UsePotion resolves a potion round
func (h *Handler) UsePotion(ctx context.Context, req *UsePotionRequest) (*TurnResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.PotionKey == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("potion_key is required"))
	}
	return turnResponse(h.battle.UsePotion(ctx, &battle.UsePotionInput{
		PlayerID:  req.PlayerID,
		PotionKey: req.PotionKey,
	}))
}

// Flee tries to escape
func (h *Handler) Flee(ctx context.Context, req *PlayerRequest) (*TurnResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	return turnResponse(h.battle.Flee(ctx, &battle.ActionInput{PlayerID: req.PlayerID}))
}

func turnResponse(out *battle.TurnOutput, err error) (*TurnResponse, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &TurnResponse{Player: out.Player, Turn: out.Turn, Degraded: out.Degraded}, nil
}

// SimulateBattle resolves a fight at once
func (h *Handler) SimulateBattle(ctx context.Context, req *SimulateBattleRequest) (*SimulateBattleResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	out, err := h.battle.SimulateBattle(ctx, &battle.SimulateBattleInput{
		PlayerID:   req.PlayerID,
		MonsterKey: req.MonsterKey,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SimulateBattleResponse{Player: out.Player, Result: out.Result, Degraded: out.Degraded}, nil
}
