// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/clock"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/idgen"
)

// Combat tuning, in percent where it is a chance
const (
	CritChance         = 15
	DodgeChance        = 10
	FleeChance         = 60
	DefaultEliteChance = 10
	MinBattleHP        = 15
	DefeatGoldCap      = 20
	MaxSimulatedRounds = 500
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	eventBus    events.EventBus
	diceRoller  dice.Roller
	rules       *engine.Rules
	idGenerator idgen.Generator
	clock       clock.Clock
	eliteChance int
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus    events.EventBus
	DiceRoller  dice.Roller
	Rules       *engine.Rules
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// EliteChance is the percent chance a random encounter is elite.
	EliteChance int
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	errors.ValidateRange("EliteChance", c.EliteChance, 0, 100, vb)
	return vb.Build()
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Adapter{
		eventBus:    cfg.EventBus,
		diceRoller:  cfg.DiceRoller,
		rules:       cfg.Rules,
		idGenerator: cfg.IDGenerator,
		clock:       cfg.Clock,
		eliteChance: cfg.EliteChance,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// roll returns a value in [1, size]. A failing roller is treated as the
// lowest face.
func (a *Adapter) roll(size int) int {
	v, err := a.diceRoller.Roll(size)
	if err != nil {
		slog.Error("dice roll failed", "size", size, "error", err)
		return 1
	}
	return v
}

// between returns a uniform value in [lo, hi]
func (a *Adapter) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + a.roll(hi-lo+1) - 1
}

// chance succeeds with pct percent probability
func (a *Adapter) chance(pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return a.roll(100) <= pct
}

// RollDamage returns a uniform value in [power/2, power]
func (a *Adapter) RollDamage(power int) int {
	if power <= 0 {
		return 0
	}
	return a.between(power/2, power)
}

// SelectMonster picks a random eligible enemy of the location
func (a *Adapter) SelectMonster(locationKey string, level int) (*content.Monster, engine.Encounter) {
	loc, ok := a.rules.Catalog().Location(locationKey)
	if !ok {
		return nil, engine.EncounterUnknownLocation
	}
	if loc.Peaceful() {
		return nil, engine.EncounterPeaceful
	}
	eligible := a.rules.Catalog().EligibleMonsters(locationKey, level)
	if len(eligible) == 0 {
		return nil, engine.EncounterNoEligible
	}
	return eligible[a.roll(len(eligible))-1], engine.EncounterFound
}

// checkCanFight applies the gates shared by both battle modes
func checkCanFight(p *entities.Player) error {
	if p.InBattle() {
		return errors.Declinef(engine.ReasonAlreadyInBattle, "you are already fighting %s", p.Battle.MonsterName)
	}
	if p.HP <= MinBattleHP {
		return errors.Declinef(engine.ReasonLowHealth,
			"you are too weak to fight (hp %d). Rest or drink a potion first", p.HP)
	}
	return nil
}

// pickOpponent returns the pending story boss or a random encounter
func (a *Adapter) pickOpponent(p *entities.Player) (*content.Monster, *content.Chapter, error) {
	if ch, boss, ok := a.rules.PendingBoss(p); ok {
		return boss, ch, nil
	}

	m, enc := a.SelectMonster(p.Location, p.Level)
	switch enc {
	case engine.EncounterPeaceful:
		loc, _ := a.rules.Catalog().Location(p.Location)
		return nil, nil, errors.Declinef(engine.ReasonPeacefulLocation, "%s is peaceful, there is no one to fight", loc.Name)
	case engine.EncounterNoEligible:
		return nil, nil, errors.Declinef(engine.ReasonNoEligibleMonster,
			"no monster here will fight a level %d hero", p.Level)
	case engine.EncounterUnknownLocation:
		return nil, nil, errors.NotFoundf("location %s not found", p.Location)
	case engine.EncounterFound:
	}
	return m, nil, nil
}

// StartBattle creates a BattleState against the story boss or a random monster
func (a *Adapter) StartBattle(ctx context.Context, input *engine.StartBattleInput) (*engine.StartBattleOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player
	if err := checkCanFight(p); err != nil {
		return nil, err
	}

	m, ch, err := a.pickOpponent(p)
	if err != nil {
		return nil, err
	}

	elite := !m.Boss && a.chance(a.eliteChance)
	p.Battle = a.newBattle(m, elite)

	out := &engine.StartBattleOutput{Battle: snapshot(p.Battle), Chapter: ch}
	switch {
	case m.Boss:
		out.Message = "Boss battle! " + m.Name + " blocks your way."
	case elite:
		out.Message = "An elite " + m.Name + " appears!"
	default:
		out.Message = "A wild " + m.Name + " appears!"
	}

	slog.DebugContext(ctx, "battle started",
		"user_id", p.UserID,
		"monster", m.Key,
		"boss", m.Boss,
		"elite", elite)
	a.publish(ctx, EventBattleStarted, p, wrapBattle(p.Battle), map[string]any{
		DataBoss:  m.Boss,
		DataElite: elite,
	})
	return out, nil
}

func (a *Adapter) newBattle(m *content.Monster, elite bool) *entities.BattleState {
	hp, power := m.HP, m.Power
	if elite {
		hp = hp * 3 / 2
		power = power * 3 / 2
	}
	return &entities.BattleState{
		ID:           a.idGenerator.Generate(),
		MonsterKey:   m.Key,
		MonsterName:  m.Name,
		MonsterHP:    hp,
		MonsterMaxHP: hp,
		MonsterPower: power,
		MonsterExp:   m.Exp,
		GoldMin:      m.GoldMin,
		GoldMax:      m.GoldMax,
		IsBoss:       m.Boss,
		IsElite:      elite,
		Turn:         1,
		StartedAt:    a.clock.Now().Unix(),
	}
}

// snapshot copies the battle for output, never showing negative monster hp
func snapshot(b *entities.BattleState) *entities.BattleState {
	if b == nil {
		return nil
	}
	c := *b
	c.MonsterHP = max(c.MonsterHP, 0)
	return &c
}
