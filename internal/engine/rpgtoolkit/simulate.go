package rpgtoolkit

import (
	"context"
	"fmt"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
)

// Simulate fights the monster to the end without touching the player.
// Reaching MaxSimulatedRounds counts as a defeat.
func (a *Adapter) Simulate(p *entities.Player, m *content.Monster) *engine.BattleResult {
	res := &engine.BattleResult{MonsterName: m.Name}
	playerHP, monsterHP := p.HP, m.HP

	for res.Rounds < MaxSimulatedRounds {
		res.Rounds++

		dmg := a.RollDamage(p.Power)
		monsterHP -= dmg
		res.Log = append(res.Log, fmt.Sprintf("Round %d: you hit %s for %d.", res.Rounds, m.Name, dmg))
		if monsterHP <= 0 {
			res.Victory = true
			break
		}

		dmg = a.RollDamage(m.Power)
		playerHP -= dmg
		res.Log = append(res.Log, fmt.Sprintf("Round %d: %s hits you for %d.", res.Rounds, m.Name, dmg))
		if playerHP <= 0 {
			break
		}
	}

	if res.Victory {
		res.PlayerHP = playerHP
		res.GoldEarned = a.between(m.GoldMin, m.GoldMax)
		res.ExpEarned = m.Exp
		return res
	}
	res.PlayerHP = 1
	res.GoldLost = defeatPenalty(p.Gold)
	return res
}

// SimulateBattle resolves a whole fight and applies the outcome to the player
func (a *Adapter) SimulateBattle(ctx context.Context, input *engine.SimulateBattleInput) (*engine.SimulateBattleOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player
	if err := checkCanFight(p); err != nil {
		return nil, err
	}

	m := input.Monster
	if m == nil {
		var err error
		m, _, err = a.pickOpponent(p)
		if err != nil {
			return nil, err
		}
	}

	target := wrapMonster(m)
	a.publish(ctx, EventBattleStarted, p, target, map[string]any{DataBoss: m.Boss, DataInstant: true})

	result := a.Simulate(p, m)
	out := &engine.SimulateBattleOutput{Result: result}
	if result.Victory {
		p.HP = result.PlayerHP
		out.Victory = a.settleVictory(ctx, p, opponent{
			entity: target,
			name:   m.Name,
			boss:   m.Boss,
		}, result.GoldEarned, result.ExpEarned)
		result.Log = append(result.Log, victoryLog(out.Victory)...)
		return out, nil
	}

	out.Defeat = a.settleDefeat(ctx, p, m.Name, target)
	result.Log = append(result.Log, fmt.Sprintf("You were defeated by %s and lost %d gold.", m.Name, out.Defeat.GoldLost))
	return out, nil
}
