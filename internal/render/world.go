package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
)

// Profile renders the player sheet
func Profile(p *entities.Player, loc *content.Location, nextLevelExp int) string {
	if p == nil {
		return ""
	}

	where := p.Location
	if loc != nil {
		where = loc.Name
	}

	lines := []string{
		fmt.Sprintf("Level %d  %s", p.Level, mutedStyle.Render(fmt.Sprintf("exp %d/%d", p.Exp, nextLevelExp))),
		fmt.Sprintf("HP %s %d/%d", bar(p.HP, p.MaxHP, hpStyle), p.HP, p.MaxHP),
		fmt.Sprintf("MP %s %d/%d", bar(p.Mana, p.MaxMana, manaStyle), p.Mana, p.MaxMana),
		fmt.Sprintf("Power %d  %s", p.Power, goldStyle.Render(fmt.Sprintf("Gold %d", p.Gold))),
		fmt.Sprintf("Location: %s", where),
		fmt.Sprintf("Kills: %d", p.TotalKills),
	}
	if p.Equipment.Weapon != "" || p.Equipment.Armor != "" {
		lines = append(lines, fmt.Sprintf("Equipped: %s", strings.Join(nonEmpty(p.Equipment.Weapon, p.Equipment.Armor), ", ")))
	}
	if len(p.Inventory) > 0 {
		lines = append(lines, "Inventory: "+strings.Join(p.Inventory, ", "))
	}
	if len(p.Spells) > 0 {
		lines = append(lines, "Spells: "+strings.Join(p.Spells, ", "))
	}
	if potions := potionLine(p.Potions); potions != "" {
		lines = append(lines, "Potions: "+potions)
	}
	if p.InBattle() {
		lines = append(lines, warnStyle.Render("In battle with "+p.Battle.MonsterName))
	}

	return panel(fmt.Sprintf("Adventurer #%d", p.UserID), lines...)
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func potionLine(potions map[string]int) string {
	keys := make([]string, 0, len(potions))
	for k, n := range potions {
		if n > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s x%d", k, potions[k]))
	}
	return strings.Join(parts, ", ")
}

// Location renders a single place
func Location(loc *content.Location) string {
	if loc == nil {
		return ""
	}

	lines := []string{loc.Description}
	if loc.Peaceful() {
		lines = append(lines, goodStyle.Render("Safe. Nothing hunts here."))
	} else {
		lines = append(lines, warnStyle.Render("Enemies: "+strings.Join(loc.Enemies, ", ")))
	}
	return panel(loc.Name, lines...)
}

// Map lists every location and marks the current one
func Map(locs []*content.Location, current string) string {
	lines := make([]string, 0, len(locs))
	for _, loc := range locs {
		marker := "  "
		name := loc.Name
		if loc.Key == current {
			marker = "> "
			name = goldStyle.Render(name)
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", marker, name, mutedStyle.Render("("+loc.Key+")")))
	}
	return panel("World Map", lines...)
}

// Shop lists items for sale grouped by kind
func Shop(items []*content.Item) string {
	if len(items) == 0 {
		return panel("Shop", mutedStyle.Render("Nothing for sale."))
	}

	var lines []string
	var kind content.ItemKind
	for i, it := range items {
		if i == 0 || it.Kind != kind {
			kind = it.Kind
			lines = append(lines, headStyle.Render(strings.ToUpper(kind.String())))
		}
		line := fmt.Sprintf("  %s %s  %s", it.Name, mutedStyle.Render("("+it.Key+")"), goldStyle.Render(fmt.Sprintf("%dg", it.Cost)))
		if effect := itemEffect(it); effect != "" {
			line += "  " + effect
		}
		if it.RequiredLevel > 1 {
			line += mutedStyle.Render(fmt.Sprintf("  lvl %d", it.RequiredLevel))
		}
		lines = append(lines, line)
	}
	return panel("Shop", lines...)
}

func itemEffect(it *content.Item) string {
	switch {
	case it.Weapon != nil:
		return fmt.Sprintf("+%d power", it.Weapon.PowerBonus)
	case it.Armor != nil:
		return fmt.Sprintf("+%d max hp", it.Armor.MaxHPBonus)
	case it.Spell != nil && it.Spell.Damage > 0:
		return fmt.Sprintf("%d damage, %d mp", it.Spell.Damage, it.Spell.ManaCost)
	case it.Spell != nil:
		return fmt.Sprintf("heals %d, %d mp", it.Spell.Heal, it.Spell.ManaCost)
	case it.Potion != nil && it.Potion.Turns > 0:
		return fmt.Sprintf("%s +%d%% for %d attacks", it.Potion.Effect, it.Potion.Amount, it.Potion.Turns)
	case it.Potion != nil:
		return fmt.Sprintf("%s +%d", it.Potion.Effect, it.Potion.Amount)
	default:
		return ""
	}
}

// Rest renders an inn visit
func Rest(r *engine.RestResult) string {
	if r == nil {
		return ""
	}
	return stack(
		goldStyle.Render(fmt.Sprintf("-%d gold", r.Cost)),
		goodStyle.Render(fmt.Sprintf("+%d hp  +%d mp", r.HPRestored, r.ManaRestored)),
	)
}

// Purchase renders a shop transaction
func Purchase(r *engine.PurchaseResult) string {
	if r == nil {
		return ""
	}
	return stack(goodStyle.Render(r.Message), goldStyle.Render(fmt.Sprintf("-%d gold", r.Cost)))
}

// Equip renders an equipment swap
func Equip(r *engine.EquipResult) string {
	if r == nil {
		return ""
	}
	if r.Previous == "" {
		return goodStyle.Render(r.Message)
	}
	return stack(goodStyle.Render(r.Message), mutedStyle.Render(r.Previous+" went back to your pack."))
}
