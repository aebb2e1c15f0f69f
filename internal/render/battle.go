package render

import (
	"fmt"
	"strings"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
)

// BattleStatus shows both combatants' health
func BattleStatus(p *entities.Player, b *entities.BattleState) string {
	if p == nil || b == nil {
		return ""
	}

	name := b.MonsterName
	switch {
	case b.IsBoss:
		name = badStyle.Render("BOSS ") + name
	case b.IsElite:
		name = warnStyle.Render("ELITE ") + name
	}

	lines := []string{
		fmt.Sprintf("%s  %s %d/%d", name, bar(b.MonsterHP, b.MonsterMaxHP, hpStyle), max(b.MonsterHP, 0), b.MonsterMaxHP),
		fmt.Sprintf("You  HP %s %d/%d", bar(p.HP, p.MaxHP, hpStyle), p.HP, p.MaxHP),
		fmt.Sprintf("     MP %s %d/%d", bar(p.Mana, p.MaxMana, manaStyle), p.Mana, p.MaxMana),
	}
	if b.BuffTurns > 0 {
		lines = append(lines, goodStyle.Render(fmt.Sprintf("Power +%d%% for %d more attacks", b.DamageBonusPct, b.BuffTurns)))
	}
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("Turn %d", b.Turn)))

	return panel("Battle", lines...)
}

// BattleStart announces a new battle
func BattleStart(message string, p *entities.Player, b *entities.BattleState) string {
	return stack(headStyle.Render(message), BattleStatus(p, b))
}

// Turn renders one resolved round: the log, then either the status or the
// final summary
func Turn(p *entities.Player, t *engine.TurnOutput) string {
	if t == nil {
		return ""
	}

	parts := []string{strings.Join(t.Log, "\n")}
	switch t.Outcome {
	case engine.OutcomeContinue:
		parts = append(parts, BattleStatus(p, t.Battle))
	case engine.OutcomeVictory:
		parts = append(parts, Victory(t.Victory))
	case engine.OutcomeDefeat:
		parts = append(parts, Defeat(t.Defeat))
	case engine.OutcomeFled:
		parts = append(parts, mutedStyle.Render("You are safe for now."))
	}
	return stack(parts...)
}

// Victory summarises a won fight
func Victory(v *engine.VictoryResult) string {
	if v == nil {
		return ""
	}

	lines := []string{
		fmt.Sprintf("%s defeated", v.MonsterName),
		goldStyle.Render(fmt.Sprintf("+%d gold", v.GoldEarned)) + "  " + goodStyle.Render(fmt.Sprintf("+%d exp", v.ExpEarned)),
	}
	if v.QuestCompleted {
		lines = append(lines, goodStyle.Render("Daily quest complete!"))
	}
	if v.LevelUp != nil {
		lines = append(lines, goldStyle.Render(v.LevelUp.Message))
	}
	if v.Chapter != nil {
		lines = append(lines, titleStyle.Render(v.Chapter.Message))
	}
	for _, a := range v.Achievements {
		lines = append(lines, achievementLine(a.Name, a.Description, true))
	}
	return panel("Victory", lines...)
}

// Defeat summarises a lost fight
func Defeat(d *engine.DefeatResult) string {
	if d == nil {
		return ""
	}
	return panel("Defeat",
		fmt.Sprintf("%s was too strong.", d.MonsterName),
		badStyle.Render(fmt.Sprintf("-%d gold", d.GoldLost)),
		mutedStyle.Render("You wake up with 1 hp."),
	)
}

// Simulation renders an instant fight
func Simulation(out *engine.SimulateBattleOutput) string {
	if out == nil || out.Result == nil {
		return ""
	}

	r := out.Result
	header := mutedStyle.Render(fmt.Sprintf("%d rounds against %s", r.Rounds, r.MonsterName))
	if out.Victory != nil {
		return stack(header, Victory(out.Victory))
	}
	if out.Defeat != nil {
		return stack(header, Defeat(out.Defeat))
	}
	return header
}

func stack(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}
