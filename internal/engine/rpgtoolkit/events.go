package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
)

// Event types published on the bus
const (
	EventBattleStarted       = "battle.started"
	EventBattleVictory       = "battle.victory"
	EventBattleDefeat        = "battle.defeat"
	EventBattleFled          = "battle.fled"
	EventLevelUp             = "player.level_up"
	EventChapterCompleted    = "story.chapter_completed"
	EventAchievementUnlocked = "achievement.unlocked"
)

// AllEvents lists every event type the adapter publishes
var AllEvents = []string{
	EventBattleStarted,
	EventBattleVictory,
	EventBattleDefeat,
	EventBattleFled,
	EventLevelUp,
	EventChapterCompleted,
	EventAchievementUnlocked,
}

// Event context keys
const (
	DataGold          = "gold"
	DataExp           = "exp"
	DataBoss          = "boss"
	DataElite         = "elite"
	DataInstant       = "instant"
	DataLevel         = "level"
	DataChapter       = "chapter"
	DataGameCompleted = "game_completed"
	DataAchievement   = "achievement"
)

// publish sends a game event. A failing bus never fails the action.
func (a *Adapter) publish(ctx context.Context, eventType string, p *entities.Player, target core.Entity, data map[string]any) {
	event := events.NewGameEvent(eventType, wrapPlayer(p), target)
	for k, v := range data {
		event.Context().Set(k, v)
	}
	if err := a.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"type", eventType,
			"user_id", p.UserID,
			"error", err)
	}
}

// PublishProgress announces progression earned outside combat
func (a *Adapter) PublishProgress(ctx context.Context, input *engine.ProgressInput) error {
	if input == nil || input.Player == nil {
		return errors.InvalidArgument("player is required")
	}
	a.publishProgress(ctx, input)
	return nil
}

func (a *Adapter) publishProgress(ctx context.Context, in *engine.ProgressInput) {
	p := in.Player
	levelUps := []*engine.LevelUpResult{in.LevelUp}
	if in.Chapter != nil {
		a.publish(ctx, EventChapterCompleted, p, nil, map[string]any{
			DataChapter:       in.Chapter.Chapter.ID,
			DataGameCompleted: in.Chapter.GameCompleted,
		})
		levelUps = append(levelUps, in.Chapter.LevelUp)
	}
	for _, lu := range levelUps {
		if lu != nil {
			a.publish(ctx, EventLevelUp, p, nil, map[string]any{DataLevel: lu.NewLevel})
		}
	}
	for _, ach := range in.Achievements {
		a.publish(ctx, EventAchievementUnlocked, p, nil, map[string]any{DataAchievement: ach.Key})
	}
}

var dataKeys = []string{
	DataGold,
	DataExp,
	DataBoss,
	DataElite,
	DataInstant,
	DataLevel,
	DataChapter,
	DataGameCompleted,
	DataAchievement,
}

// SubscribeLogger logs every game event on bus and returns the subscription
// ids
func SubscribeLogger(bus events.EventBus, logger *slog.Logger) []string {
	ids := make([]string, 0, len(AllEvents))
	for _, eventType := range AllEvents {
		ids = append(ids, bus.SubscribeFunc(eventType, 0, func(ctx context.Context, e events.Event) error {
			attrs := []any{"type", e.Type()}
			if src := e.Source(); src != nil {
				attrs = append(attrs, "source", src.GetID())
			}
			if tgt := e.Target(); tgt != nil {
				attrs = append(attrs, "target", tgt.GetID())
			}
			for _, k := range dataKeys {
				if v, ok := e.Context().Get(k); ok {
					attrs = append(attrs, k, v)
				}
			}
			logger.InfoContext(ctx, "game event", attrs...)
			return nil
		}))
	}
	return ids
}
