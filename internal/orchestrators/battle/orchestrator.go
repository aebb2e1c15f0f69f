// Package battle implements the battle orchestrator: every combat command
// runs as one serialized update of the player.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/Richard10-cpu/termux-telegram-rpg/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	playersvc "github.com/Richard10-cpu/termux-telegram-rpg/internal/services/player"
)

// Service defines the interface for battle operations
type Service interface {
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// Turn-based actions
	Attack(ctx context.Context, input *ActionInput) (*TurnOutput, error)
	Defend(ctx context.Context, input *ActionInput) (*TurnOutput, error)
	CastSpell(ctx context.Context, input *CastSpellInput) (*TurnOutput, error)
	UsePotion(ctx context.Context, input *UsePotionInput) (*TurnOutput, error)
	Flee(ctx context.Context, input *ActionInput) (*TurnOutput, error)

	// Instant resolution
	SimulateBattle(ctx context.Context, input *SimulateBattleInput) (*SimulateBattleOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	PlayerService playersvc.Service
	Engine        engine.Engine
	Catalog       *content.Catalog
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerService == nil {
		vb.RequiredField("PlayerService")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

type orchestrator struct {
	players playersvc.Service
	engine  engine.Engine
	catalog *content.Catalog
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		players: cfg.PlayerService,
		engine:  cfg.Engine,
		catalog: cfg.Catalog,
	}, nil
}

func (o *orchestrator) update(ctx context.Context, playerID int64, mutate playersvc.MutateFunc) (*playersvc.UpdateOutput, error) {
	if playerID == 0 {
		return nil, errors.InvalidArgument("player ID is required")
	}
	return o.players.Update(ctx, &playersvc.UpdateInput{PlayerID: playerID, Mutate: mutate})
}

// StartBattle starts a fight against the pending story boss or a random monster
func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var started *engine.StartBattleOutput
	upd, err := o.update(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		started, err = o.engine.StartBattle(ctx, &engine.StartBattleInput{Player: p})
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "battle started",
		"player_id", input.PlayerID,
		"battle_id", started.Battle.ID,
		"monster", started.Battle.MonsterName)

	return &StartBattleOutput{
		Player:   upd.Player,
		Battle:   started.Battle,
		Chapter:  started.Chapter,
		Message:  started.Message,
		Degraded: upd.Degraded,
	}, nil
}

// turn runs one battle action as a single player update
func (o *orchestrator) turn(ctx context.Context, playerID int64, action string,
	act func(p *entities.Player) (*engine.TurnOutput, error),
) (*TurnOutput, error) {
	var result *engine.TurnOutput
	upd, err := o.update(ctx, playerID, func(p *entities.Player) error {
		var err error
		result, err = act(p)
		return err
	})
	if err != nil {
		return nil, err
	}

	if result.Outcome.Terminal() {
		slog.InfoContext(ctx, "battle finished",
			"player_id", playerID,
			"action", action,
			"outcome", result.Outcome.String())
	}
	return &TurnOutput{Player: upd.Player, Turn: result, Degraded: upd.Degraded}, nil
}

// Attack strikes the monster
func (o *orchestrator) Attack(ctx context.Context, input *ActionInput) (*TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.turn(ctx, input.PlayerID, "attack", func(p *entities.Player) (*engine.TurnOutput, error) {
		return o.engine.Attack(ctx, &engine.ActionInput{Player: p})
	})
}

// Defend halves the monster's next hit
func (o *orchestrator) Defend(ctx context.Context, input *ActionInput) (*TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.turn(ctx, input.PlayerID, "defend", func(p *entities.Player) (*engine.TurnOutput, error) {
		return o.engine.Defend(ctx, &engine.ActionInput{Player: p})
	})
}

// CastSpell casts a learned spell
func (o *orchestrator) CastSpell(ctx context.Context, input *CastSpellInput) (*TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SpellKey == "" {
		return nil, errors.InvalidArgument("spell key is required")
	}
	return o.turn(ctx, input.PlayerID, "cast_spell", func(p *entities.Player) (*engine.TurnOutput, error) {
		return o.engine.CastSpell(ctx, &engine.CastSpellInput{Player: p, SpellKey: input.SpellKey})
	})
}

// UsePotion drinks a potion
func (o *orchestrator) UsePotion(ctx context.Context, input *UsePotionInput) (*TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PotionKey == "" {
		return nil, errors.InvalidArgument("potion key is required")
	}
	return o.turn(ctx, input.PlayerID, "use_potion", func(p *entities.Player) (*engine.TurnOutput, error) {
		return o.engine.UsePotion(ctx, &engine.UsePotionInput{Player: p, PotionKey: input.PotionKey})
	})
}

// Flee tries to escape
func (o *orchestrator) Flee(ctx context.Context, input *ActionInput) (*TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.turn(ctx, input.PlayerID, "flee", func(p *entities.Player) (*engine.TurnOutput, error) {
		return o.engine.Flee(ctx, &engine.ActionInput{Player: p})
	})
}

// SimulateBattle resolves a fight in one call
func (o *orchestrator) SimulateBattle(ctx context.Context, input *SimulateBattleInput) (*SimulateBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var monster *content.Monster
	if input.MonsterKey != "" {
		m, ok := o.catalog.Monster(input.MonsterKey)
		if !ok {
			return nil, errors.NotFoundf("monster %q not found", input.MonsterKey)
		}
		monster = m
	}

	var result *engine.SimulateBattleOutput
	upd, err := o.update(ctx, input.PlayerID, func(p *entities.Player) error {
		if monster != nil && !o.roams(monster, p) {
			return errors.Declinef(engine.ReasonNoEligibleMonster,
				"%s does not roam %s at level %d", monster.Name, p.Location, p.Level)
		}
		var err error
		result, err = o.engine.SimulateBattle(ctx, &engine.SimulateBattleInput{Player: p, Monster: monster})
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "instant battle resolved",
		"player_id", input.PlayerID,
		"monster", result.Result.MonsterName,
		"victory", result.Result.Victory,
		"rounds", result.Result.Rounds)

	return &SimulateBattleOutput{Player: upd.Player, Result: result, Degraded: upd.Degraded}, nil
}

// roams reports whether m can be met at the player's location and level
func (o *orchestrator) roams(m *content.Monster, p *entities.Player) bool {
	for _, candidate := range o.catalog.EligibleMonsters(p.Location, p.Level) {
		if candidate.Key == m.Key {
			return true
		}
	}
	return false
}
