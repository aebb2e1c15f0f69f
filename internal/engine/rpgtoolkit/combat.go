package rpgtoolkit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
)

// activeBattle returns the player's battle or a not-in-battle decline
func activeBattle(p *entities.Player) (*entities.BattleState, error) {
	if p == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if !p.InBattle() {
		return nil, errors.Declinef(engine.ReasonNotInBattle, "you are not in a battle")
	}
	return p.Battle, nil
}

// Attack deals physical damage and lets the monster strike back
func (a *Adapter) Attack(ctx context.Context, input *engine.ActionInput) (*engine.TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	b, err := activeBattle(input.Player)
	if err != nil {
		return nil, err
	}
	p := input.Player
	out := &engine.TurnOutput{}

	dmg := a.RollDamage(p.Power)
	if b.Buffed() {
		dmg = dmg * (100 + b.DamageBonusPct) / 100
		b.BuffTurns--
		if b.BuffTurns == 0 {
			b.DamageBonusPct = 0
		}
	}
	if a.chance(CritChance) {
		dmg = dmg * 3 / 2
		out.Critical = true
	}

	b.MonsterHP -= dmg
	out.PlayerDamage = dmg
	if out.Critical {
		out.Log = append(out.Log, fmt.Sprintf("Critical hit! You deal %d damage to %s.", dmg, b.MonsterName))
	} else {
		out.Log = append(out.Log, fmt.Sprintf("You hit %s for %d damage.", b.MonsterName, dmg))
	}

	if b.MonsterHP <= 0 {
		a.win(ctx, p, out)
		return out, nil
	}
	a.monsterTurn(ctx, p, out)
	return out, nil
}

// Defend halves the next monster hit
func (a *Adapter) Defend(ctx context.Context, input *engine.ActionInput) (*engine.TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	b, err := activeBattle(input.Player)
	if err != nil {
		return nil, err
	}
	b.Defending = true
	out := &engine.TurnOutput{Log: []string{"You raise your guard."}}
	a.monsterTurn(ctx, input.Player, out)
	return out, nil
}

// CastSpell spends mana on a learned spell
func (a *Adapter) CastSpell(ctx context.Context, input *engine.CastSpellInput) (*engine.TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	b, err := activeBattle(input.Player)
	if err != nil {
		return nil, err
	}
	p := input.Player

	spell, ok := a.rules.Catalog().Spell(input.SpellKey)
	if !ok {
		return nil, errors.NotFoundf("spell %q not found", input.SpellKey)
	}
	if !p.HasSpell(spell.Name) {
		return nil, errors.Declinef(engine.ReasonSpellNotLearned, "you have not learned %s", spell.Name)
	}
	if p.Mana < spell.Spell.ManaCost {
		return nil, errors.Declinef(engine.ReasonInsufficientMana,
			"%s needs %d mana, you have %d", spell.Name, spell.Spell.ManaCost, p.Mana)
	}

	p.Mana -= spell.Spell.ManaCost
	out := &engine.TurnOutput{}
	switch {
	case spell.Spell.Damage > 0:
		b.MonsterHP -= spell.Spell.Damage
		out.PlayerDamage = spell.Spell.Damage
		out.Log = append(out.Log, fmt.Sprintf("You cast %s! %s takes %d damage.", spell.Name, b.MonsterName, spell.Spell.Damage))
		if b.MonsterHP <= 0 {
			a.win(ctx, p, out)
			return out, nil
		}
	case spell.Spell.Heal > 0:
		healed := p.Heal(spell.Spell.Heal)
		out.Log = append(out.Log, fmt.Sprintf("You cast %s and recover %d hp.", spell.Name, healed))
	default:
		out.Log = append(out.Log, fmt.Sprintf("You cast %s.", spell.Name))
	}

	a.monsterTurn(ctx, p, out)
	return out, nil
}

// UsePotion drinks one potion from the player's stock
func (a *Adapter) UsePotion(ctx context.Context, input *engine.UsePotionInput) (*engine.TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	b, err := activeBattle(input.Player)
	if err != nil {
		return nil, err
	}
	p := input.Player

	item, ok := a.rules.Catalog().Item(input.PotionKey)
	if !ok || item.Kind != content.ItemKindConsumable || item.Potion == nil {
		return nil, errors.NotFoundf("potion %q not found", input.PotionKey)
	}
	if p.Potions[item.Key] <= 0 {
		return nil, errors.Declinef(engine.ReasonNoPotion, "you have no %s left", item.Name)
	}

	p.Potions[item.Key]--
	out := &engine.TurnOutput{}
	switch item.Potion.Effect {
	case content.PotionEffectHeal:
		healed := p.Heal(item.Potion.Amount)
		out.Log = append(out.Log, fmt.Sprintf("You drink %s and recover %d hp.", item.Name, healed))
	case content.PotionEffectMana:
		restored := p.RestoreMana(item.Potion.Amount)
		out.Log = append(out.Log, fmt.Sprintf("You drink %s and recover %d mana.", item.Name, restored))
	case content.PotionEffectPower:
		b.DamageBonusPct = item.Potion.Amount
		b.BuffTurns = item.Potion.Turns
		out.Log = append(out.Log, fmt.Sprintf("You drink %s. Your next %d attacks deal +%d%% damage.",
			item.Name, item.Potion.Turns, item.Potion.Amount))
	}

	a.monsterTurn(ctx, p, out)
	return out, nil
}

// Flee tries to leave the fight. Bosses cannot be fled from.
func (a *Adapter) Flee(ctx context.Context, input *engine.ActionInput) (*engine.TurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	b, err := activeBattle(input.Player)
	if err != nil {
		return nil, err
	}
	p := input.Player
	if b.IsBoss {
		return nil, errors.Declinef(engine.ReasonFleeFromBoss, "there is no escape from %s", b.MonsterName)
	}

	out := &engine.TurnOutput{}
	if a.chance(FleeChance) {
		out.Outcome = engine.OutcomeFled
		out.Battle = snapshot(b)
		out.Log = append(out.Log, fmt.Sprintf("You escaped from %s.", b.MonsterName))
		p.Battle = nil
		a.publish(ctx, EventBattleFled, p, wrapBattle(b), nil)
		return out, nil
	}

	out.Log = append(out.Log, "You failed to escape!")
	a.monsterTurn(ctx, p, out)
	return out, nil
}

// monsterTurn resolves the monster's strike and closes the round
func (a *Adapter) monsterTurn(ctx context.Context, p *entities.Player, out *engine.TurnOutput) {
	b := p.Battle
	if a.chance(DodgeChance) {
		out.Dodged = true
		out.Log = append(out.Log, fmt.Sprintf("You dodge the attack of %s!", b.MonsterName))
	} else {
		dmg := a.RollDamage(b.MonsterPower)
		if b.Defending {
			dmg /= 2
		}
		p.HP -= dmg
		out.MonsterDamage = dmg
		if b.Defending {
			out.Log = append(out.Log, fmt.Sprintf("%s hits your guard for %d damage.", b.MonsterName, dmg))
		} else {
			out.Log = append(out.Log, fmt.Sprintf("%s hits you for %d damage.", b.MonsterName, dmg))
		}
	}
	b.Defending = false
	b.Turn++

	if p.HP <= 0 {
		out.Outcome = engine.OutcomeDefeat
		out.Battle = snapshot(b)
		out.Defeat = a.settleDefeat(ctx, p, b.MonsterName, wrapBattle(b))
		out.Log = append(out.Log, fmt.Sprintf("You were defeated by %s and lost %d gold.", b.MonsterName, out.Defeat.GoldLost))
		return
	}
	out.Outcome = engine.OutcomeContinue
	out.Battle = snapshot(b)
}

// win pays out a turn-based victory
func (a *Adapter) win(ctx context.Context, p *entities.Player, out *engine.TurnOutput) {
	b := p.Battle
	gold := a.between(b.GoldMin, b.GoldMax)
	exp := b.MonsterExp
	if b.IsElite {
		gold *= 2
		exp *= 2
	}

	out.Outcome = engine.OutcomeVictory
	out.Battle = snapshot(b)
	out.Victory = a.settleVictory(ctx, p, opponent{
		entity: wrapBattle(b),
		name:   b.MonsterName,
		boss:   b.IsBoss,
		elite:  b.IsElite,
	}, gold, exp)
	out.Log = append(out.Log, victoryLog(out.Victory)...)
}

// opponent is the defeated side of a fight, independent of battle mode
type opponent struct {
	entity core.Entity
	name   string
	boss   bool
	elite  bool
}

// settleVictory applies rewards then runs the quest, level, story and
// achievement hooks in that order
func (a *Adapter) settleVictory(ctx context.Context, p *entities.Player, opp opponent, gold, exp int) *engine.VictoryResult {
	p.Gold += gold
	p.Exp += exp
	p.TotalKills++
	p.Battle = nil

	res := &engine.VictoryResult{
		MonsterName: opp.name,
		Elite:       opp.elite,
		Boss:        opp.boss,
		GoldEarned:  gold,
		ExpEarned:   exp,
	}
	res.QuestCompleted = a.rules.IncrementKills(p, 1)
	res.LevelUp = a.rules.CheckLevelUp(p)

	if opp.boss {
		a.settleBoss(ctx, p, opp.name, res)
	}
	res.Achievements = engine.CheckAndAward(p)

	slog.InfoContext(ctx, "battle won",
		"user_id", p.UserID,
		"monster", opp.name,
		"gold", gold,
		"exp", exp)
	a.publish(ctx, EventBattleVictory, p, opp.entity, map[string]any{
		DataGold: gold,
		DataExp:  exp,
		DataBoss: opp.boss,
	})
	a.publishProgress(ctx, &engine.ProgressInput{
		Player:       p,
		LevelUp:      res.LevelUp,
		Chapter:      res.Chapter,
		Achievements: res.Achievements,
	})
	return res
}

// settleBoss completes the current chapter when its boss fell
func (a *Adapter) settleBoss(ctx context.Context, p *entities.Player, name string, res *engine.VictoryResult) {
	ch, ok := a.rules.CurrentChapter(p)
	if !ok || ch.Boss != name {
		p.Story.MarkBossDefeated(name)
		return
	}
	completion, err := a.rules.CompleteChapter(p, ch.ID)
	if err != nil {
		slog.WarnContext(ctx, "chapter completion failed",
			"user_id", p.UserID,
			"chapter", ch.ID,
			"error", err)
		return
	}
	res.Chapter = completion
}

// settleDefeat takes the gold penalty and leaves the player at 1 hp
func (a *Adapter) settleDefeat(ctx context.Context, p *entities.Player, name string, target core.Entity) *engine.DefeatResult {
	lost := p.SpendGold(defeatPenalty(p.Gold))
	p.HP = 1
	p.Battle = nil

	slog.InfoContext(ctx, "battle lost",
		"user_id", p.UserID,
		"monster", name,
		"gold_lost", lost)
	a.publish(ctx, EventBattleDefeat, p, target, map[string]any{DataGold: lost})
	return &engine.DefeatResult{MonsterName: name, GoldLost: lost}
}

func defeatPenalty(gold int) int {
	return max(min(gold/2, DefeatGoldCap), 0)
}

func victoryLog(v *engine.VictoryResult) []string {
	lines := []string{fmt.Sprintf("You defeated %s! +%d gold, +%d exp.", v.MonsterName, v.GoldEarned, v.ExpEarned)}
	if v.QuestCompleted {
		lines = append(lines, "Daily quest complete! Claim your reward.")
	}
	if v.LevelUp != nil {
		lines = append(lines, v.LevelUp.Message)
	}
	if v.Chapter != nil {
		lines = append(lines, v.Chapter.Message)
		if v.Chapter.LevelUp != nil {
			lines = append(lines, v.Chapter.LevelUp.Message)
		}
	}
	for _, ach := range v.Achievements {
		lines = append(lines, fmt.Sprintf("Achievement unlocked: %s (%s)", ach.Name, ach.Description))
	}
	return lines
}
