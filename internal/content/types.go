package content

import (
	"gopkg.in/yaml.v3"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
)

// ItemKind is the closed set of item categories
type ItemKind int

// Item kinds
const (
	ItemKindUnknown ItemKind = iota
	ItemKindWeapon
	ItemKindArmor
	ItemKindConsumable
	ItemKindSpell
)

var itemKindNames = map[ItemKind]string{
	ItemKindWeapon:     "weapon",
	ItemKindArmor:      "armor",
	ItemKindConsumable: "consumable",
	ItemKindSpell:      "spell",
}

func (k ItemKind) String() string {
	if name, ok := itemKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseItemKind maps a category name to its kind
func ParseItemKind(s string) (ItemKind, error) {
	for k, name := range itemKindNames {
		if name == s {
			return k, nil
		}
	}
	return ItemKindUnknown, errors.InvalidArgumentf("unknown item kind %q", s)
}

// UnmarshalYAML decodes a kind from its name
func (k *ItemKind) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseItemKind(value.Value)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText encodes a kind as its name
func (k ItemKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind from its name
func (k *ItemKind) UnmarshalText(b []byte) error {
	parsed, err := ParseItemKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// PotionEffect is what a consumable does when drunk
type PotionEffect string

// Potion effects
const (
	PotionEffectHeal  PotionEffect = "heal"
	PotionEffectMana  PotionEffect = "mana"
	PotionEffectPower PotionEffect = "power"
)

// Monster is an opponent template. Boss templates are only spawned by the
// story campaign.
type Monster struct {
	Key      string `yaml:"key" json:"key"`
	Name     string `yaml:"name" json:"name"`
	HP       int    `yaml:"hp" json:"hp"`
	Power    int    `yaml:"power" json:"power"`
	Exp      int    `yaml:"exp" json:"exp"`
	GoldMin  int    `yaml:"gold_min" json:"gold_min"`
	GoldMax  int    `yaml:"gold_max" json:"gold_max"`
	MinLevel int    `yaml:"min_level" json:"min_level"`
	Boss     bool   `yaml:"-" json:"boss"`
}

// WeaponStats applies to ItemKindWeapon
type WeaponStats struct {
	PowerBonus int `yaml:"power_bonus" json:"power_bonus"`
}

// ArmorStats applies to ItemKindArmor
type ArmorStats struct {
	MaxHPBonus int `yaml:"max_hp_bonus" json:"max_hp_bonus"`
}

// SpellStats applies to ItemKindSpell
type SpellStats struct {
	ManaCost int `yaml:"mana_cost" json:"mana_cost"`
	Damage   int `yaml:"damage" json:"damage"`
	Heal     int `yaml:"heal" json:"heal"`
}

// PotionStats applies to ItemKindConsumable. For the power effect Amount is
// the damage bonus percentage and Turns the number of boosted attacks.
type PotionStats struct {
	Effect PotionEffect `yaml:"effect" json:"effect"`
	Amount int          `yaml:"amount" json:"amount"`
	Turns  int          `yaml:"turns" json:"turns,omitempty"`
}

// Item is anything that can be bought, found or learned. Exactly one of the
// stat blocks matching Kind is set.
type Item struct {
	Key           string   `yaml:"key" json:"key"`
	Name          string   `yaml:"name" json:"name"`
	Kind          ItemKind `yaml:"kind" json:"kind"`
	Description   string   `yaml:"description" json:"description,omitempty"`
	Cost          int      `yaml:"cost" json:"cost"`
	Unique        bool     `yaml:"unique" json:"unique"`
	ForSale       bool     `yaml:"for_sale" json:"for_sale"`
	RequiredLevel int      `yaml:"required_level" json:"required_level,omitempty"`

	Weapon *WeaponStats `yaml:"weapon,omitempty" json:"weapon,omitempty"`
	Armor  *ArmorStats  `yaml:"armor,omitempty" json:"armor,omitempty"`
	Spell  *SpellStats  `yaml:"spell,omitempty" json:"spell,omitempty"`
	Potion *PotionStats `yaml:"potion,omitempty" json:"potion,omitempty"`
}

// Location is a place the player can travel to
type Location struct {
	Key         string   `yaml:"key" json:"key"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Enemies     []string `yaml:"enemies" json:"enemies"`
}

// Peaceful reports whether nothing spawns here
func (l *Location) Peaceful() bool {
	return len(l.Enemies) == 0
}

// Chapter is one step of the story campaign
type Chapter struct {
	ID          int    `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	UnlockLevel int    `yaml:"unlock_level" json:"unlock_level"`
	Location    string `yaml:"location" json:"location,omitempty"`
	Boss        string `yaml:"boss" json:"boss,omitempty"`
	RewardGold  int    `yaml:"reward_gold" json:"reward_gold"`
	RewardExp   int    `yaml:"reward_exp" json:"reward_exp"`
	RewardItem  string `yaml:"reward_item" json:"reward_item,omitempty"`
}
