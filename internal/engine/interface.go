// Package engine holds the game rules: combat, progression, quests,
// achievements and the story campaign.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/Richard10-cpu/termux-telegram-rpg/internal/engine Engine

import (
	"context"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
)

// Engine resolves combat. Every draw of chance goes through the engine so a
// seeded roller replays a fight exactly.
type Engine interface {
	// Encounters
	SelectMonster(locationKey string, level int) (*content.Monster, Encounter)
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// Turn-based actions
	Attack(ctx context.Context, input *ActionInput) (*TurnOutput, error)
	Defend(ctx context.Context, input *ActionInput) (*TurnOutput, error)
	CastSpell(ctx context.Context, input *CastSpellInput) (*TurnOutput, error)
	UsePotion(ctx context.Context, input *UsePotionInput) (*TurnOutput, error)
	Flee(ctx context.Context, input *ActionInput) (*TurnOutput, error)

	// Instant resolution
	Simulate(player *entities.Player, monster *content.Monster) *BattleResult
	SimulateBattle(ctx context.Context, input *SimulateBattleInput) (*SimulateBattleOutput, error)

	// Progress earned outside a fight
	PublishProgress(ctx context.Context, input *ProgressInput) error

	// Utility methods
	RollDamage(power int) int
}
