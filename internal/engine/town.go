package engine

import (
	"fmt"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
)

// RestCost is the inn's price for a full recovery
const RestCost = 15

// RestResult is what a night at the inn restored
type RestResult struct {
	Cost         int `json:"cost"`
	HPRestored   int `json:"hp_restored"`
	ManaRestored int `json:"mana_restored"`
}

// PurchaseResult describes a completed purchase
type PurchaseResult struct {
	Item        *content.Item `json:"item"`
	Cost        int           `json:"cost"`
	PotionCount int           `json:"potion_count,omitempty"`
	Message     string        `json:"message"`
}

// EquipResult describes an equipment swap
type EquipResult struct {
	Item     *content.Item `json:"item"`
	Previous string        `json:"previous,omitempty"`
	Message  string        `json:"message"`
}

// Travel moves the player to another location
func (r *Rules) Travel(p *entities.Player, locationKey string) (*content.Location, error) {
	loc, ok := r.catalog.Location(locationKey)
	if !ok {
		return nil, errors.NotFoundf("location %q not found", locationKey)
	}
	if p.InBattle() {
		return nil, errors.Declinef(ReasonAlreadyInBattle, "you cannot travel during a battle")
	}
	p.Location = loc.Key
	return loc, nil
}

// Rest buys a full recovery of hp and mana
func (r *Rules) Rest(p *entities.Player) (*RestResult, error) {
	if p.InBattle() {
		return nil, errors.Declinef(ReasonAlreadyInBattle, "you cannot rest during a battle")
	}
	if p.Gold < RestCost {
		return nil, errors.Declinef(ReasonInsufficientGold, "resting costs %d gold, you have %d", RestCost, p.Gold)
	}
	p.SpendGold(RestCost)
	return &RestResult{
		Cost:         RestCost,
		HPRestored:   p.Heal(p.MaxHP),
		ManaRestored: p.RestoreMana(p.MaxMana),
	}, nil
}

// Purchase buys an item from the shop. Weapon and armor bonuses apply
// immediately; spells are learned; potions are stacked.
func (r *Rules) Purchase(p *entities.Player, itemKey string) (*PurchaseResult, error) {
	it, ok := r.catalog.Item(itemKey)
	if !ok {
		return nil, errors.NotFoundf("item %q not found", itemKey)
	}
	if !it.ForSale {
		return nil, errors.Declinef(ReasonNotForSale, "%s is not sold here", it.Name)
	}
	if p.Level < it.RequiredLevel {
		return nil, errors.Declinef(ReasonLevelTooLow, "%s requires level %d", it.Name, it.RequiredLevel)
	}

	switch it.Kind {
	case content.ItemKindSpell:
		if p.HasSpell(it.Name) {
			return nil, errors.Duplicatef(ReasonAlreadyLearned, "you already know %s", it.Name)
		}
	case content.ItemKindWeapon, content.ItemKindArmor:
		if it.Unique && p.Owns(it.Name) {
			return nil, errors.Duplicatef(ReasonAlreadyOwned, "you already own %s", it.Name)
		}
	case content.ItemKindConsumable:
	case content.ItemKindUnknown:
		return nil, errors.Internalf("item %q has no kind", it.Key)
	}

	if p.Gold < it.Cost {
		return nil, errors.Declinef(ReasonInsufficientGold, "%s costs %d gold, you have %d", it.Name, it.Cost, p.Gold)
	}
	p.SpendGold(it.Cost)

	res := &PurchaseResult{Item: it, Cost: it.Cost}
	switch it.Kind {
	case content.ItemKindWeapon:
		p.Power += it.Weapon.PowerBonus
		p.Inventory = append(p.Inventory, it.Name)
		res.Message = fmt.Sprintf("You bought %s. Power +%d.", it.Name, it.Weapon.PowerBonus)
	case content.ItemKindArmor:
		p.MaxHP += it.Armor.MaxHPBonus
		p.Inventory = append(p.Inventory, it.Name)
		res.Message = fmt.Sprintf("You bought %s. Max HP +%d.", it.Name, it.Armor.MaxHPBonus)
	case content.ItemKindSpell:
		p.LearnSpell(it.Name)
		res.Message = fmt.Sprintf("You learned %s.", it.Name)
	case content.ItemKindConsumable:
		p.Potions[it.Key]++
		res.PotionCount = p.Potions[it.Key]
		res.Message = fmt.Sprintf("You bought %s. You now have %d.", it.Name, res.PotionCount)
	case content.ItemKindUnknown:
	}
	return res, nil
}

// Equip wears a weapon or armor from the inventory. The previously worn
// item goes back to the inventory.
func (r *Rules) Equip(p *entities.Player, itemName string) (*EquipResult, error) {
	if !p.HasItem(itemName) {
		return nil, errors.Declinef(ReasonItemNotOwned, "you do not have %s", itemName)
	}
	it, ok := r.catalog.ItemByName(itemName)
	if !ok {
		return nil, errors.Declinef(ReasonNotEquippable, "%s cannot be equipped", itemName)
	}

	var slot *string
	switch it.Kind {
	case content.ItemKindWeapon:
		slot = &p.Equipment.Weapon
	case content.ItemKindArmor:
		slot = &p.Equipment.Armor
	case content.ItemKindSpell, content.ItemKindConsumable, content.ItemKindUnknown:
		return nil, errors.Declinef(ReasonNotEquippable, "%s cannot be equipped", itemName)
	}

	res := &EquipResult{Item: it}
	if *slot != "" && *slot != it.Name {
		res.Previous = *slot
		p.Inventory = append(p.Inventory, *slot)
	}
	*slot = it.Name
	p.RemoveItem(it.Name)
	res.Message = fmt.Sprintf("You equipped %s.", it.Name)
	return res, nil
}
