// Package content holds the read-only game tables: monsters, bosses, items,
// locations and story chapters.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
)

//go:embed default.yaml
var defaultYAML []byte

type document struct {
	StartLocation string      `yaml:"start_location"`
	Monsters      []*Monster  `yaml:"monsters"`
	Bosses        []*Monster  `yaml:"bosses"`
	Items         []*Item     `yaml:"items"`
	Locations     []*Location `yaml:"locations"`
	Chapters      []*Chapter  `yaml:"chapters"`
}

// Catalog indexes the game tables. It is immutable after load and safe for
// concurrent use; callers must not modify returned values.
type Catalog struct {
	startLocation string
	monsters      map[string]*Monster
	bosses        map[string]*Monster
	items         map[string]*Item
	itemsByName   map[string]*Item
	locations     map[string]*Location
	chapters      map[int]*Chapter

	monsterOrder  []*Monster
	itemOrder     []*Item
	locationOrder []*Location
	chapterOrder  []*Chapter
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog shipped with the binary
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded content is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// LoadFile reads a catalog from a YAML file
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open content file %s", path)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// Load reads a catalog from YAML
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read content")
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse content")
	}

	c := &Catalog{
		startLocation: doc.StartLocation,
		monsters:      make(map[string]*Monster, len(doc.Monsters)),
		bosses:        make(map[string]*Monster, len(doc.Bosses)),
		items:         make(map[string]*Item, len(doc.Items)),
		itemsByName:   make(map[string]*Item, len(doc.Items)),
		locations:     make(map[string]*Location, len(doc.Locations)),
		chapters:      make(map[int]*Chapter, len(doc.Chapters)),
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("start_location", doc.StartLocation, vb)

	for _, m := range doc.Monsters {
		if _, dup := c.monsters[m.Key]; dup {
			vb.InvalidField("monsters", "duplicate key "+m.Key)
			continue
		}
		validateMonster("monsters."+m.Key, m, vb)
		c.monsters[m.Key] = m
		c.monsterOrder = append(c.monsterOrder, m)
	}
	for _, b := range doc.Bosses {
		b.Boss = true
		if _, dup := c.bosses[b.Name]; dup {
			vb.InvalidField("bosses", "duplicate name "+b.Name)
			continue
		}
		validateMonster("bosses."+b.Key, b, vb)
		c.bosses[b.Name] = b
	}
	for _, it := range doc.Items {
		if _, dup := c.items[it.Key]; dup {
			vb.InvalidField("items", "duplicate key "+it.Key)
			continue
		}
		if _, dup := c.itemsByName[it.Name]; dup {
			vb.InvalidField("items", "duplicate name "+it.Name)
			continue
		}
		validateItem(it, vb)
		c.items[it.Key] = it
		c.itemsByName[it.Name] = it
		c.itemOrder = append(c.itemOrder, it)
	}
	for _, l := range doc.Locations {
		if _, dup := c.locations[l.Key]; dup {
			vb.InvalidField("locations", "duplicate key "+l.Key)
			continue
		}
		for _, enemy := range l.Enemies {
			if _, ok := c.monsters[enemy]; !ok {
				vb.InvalidField("locations."+l.Key, "unknown enemy "+enemy)
			}
		}
		c.locations[l.Key] = l
		c.locationOrder = append(c.locationOrder, l)
	}
	if _, ok := c.locations[doc.StartLocation]; doc.StartLocation != "" && !ok {
		vb.InvalidField("start_location", "unknown location "+doc.StartLocation)
	}

	c.chapterOrder = slices.Clone(doc.Chapters)
	sort.Slice(c.chapterOrder, func(i, j int) bool { return c.chapterOrder[i].ID < c.chapterOrder[j].ID })
	for i, ch := range c.chapterOrder {
		field := fmt.Sprintf("chapters.%d", ch.ID)
		if ch.ID != i+1 {
			vb.InvalidField("chapters", "ids must run 1..N without gaps")
		}
		if ch.Location != "" {
			if _, ok := c.locations[ch.Location]; !ok {
				vb.InvalidField(field, "unknown location "+ch.Location)
			}
		}
		if ch.Boss != "" {
			if _, ok := c.bosses[ch.Boss]; !ok {
				vb.InvalidField(field, "unknown boss "+ch.Boss)
			}
		}
		if ch.RewardItem != "" {
			if _, ok := c.itemsByName[ch.RewardItem]; !ok {
				vb.InvalidField(field, "unknown reward item "+ch.RewardItem)
			}
		}
		errors.ValidateMin(field+".unlock_level", ch.UnlockLevel, 1, vb)
		c.chapters[ch.ID] = ch
	}
	if len(c.chapterOrder) == 0 {
		vb.Field("chapters", "must not be empty")
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return c, nil
}

func validateMonster(field string, m *Monster, vb *errors.ValidationBuilder) {
	errors.ValidateRequired(field+".key", m.Key, vb)
	errors.ValidateRequired(field+".name", m.Name, vb)
	errors.ValidateMin(field+".hp", m.HP, 1, vb)
	errors.ValidateMin(field+".power", m.Power, 1, vb)
	errors.ValidateMin(field+".exp", m.Exp, 0, vb)
	errors.ValidateMin(field+".gold_min", m.GoldMin, 0, vb)
	if m.GoldMax < m.GoldMin {
		vb.InvalidField(field+".gold_max", "below gold_min")
	}
}

func validateItem(it *Item, vb *errors.ValidationBuilder) {
	field := "items." + it.Key
	errors.ValidateRequired(field+".key", it.Key, vb)
	errors.ValidateRequired(field+".name", it.Name, vb)
	errors.ValidateMin(field+".cost", it.Cost, 0, vb)

	payloads := 0
	for _, set := range []bool{it.Weapon != nil, it.Armor != nil, it.Spell != nil, it.Potion != nil} {
		if set {
			payloads++
		}
	}
	if payloads != 1 {
		vb.InvalidField(field, "exactly one stat block is required")
		return
	}

	switch it.Kind {
	case ItemKindWeapon:
		if it.Weapon == nil {
			vb.InvalidField(field, "weapon stats are required")
		}
	case ItemKindArmor:
		if it.Armor == nil {
			vb.InvalidField(field, "armor stats are required")
		}
	case ItemKindSpell:
		if it.Spell == nil {
			vb.InvalidField(field, "spell stats are required")
			return
		}
		if it.Spell.Damage <= 0 && it.Spell.Heal <= 0 {
			vb.InvalidField(field, "spell needs damage or heal")
		}
		errors.ValidateMin(field+".mana_cost", it.Spell.ManaCost, 0, vb)
	case ItemKindConsumable:
		if it.Potion == nil {
			vb.InvalidField(field, "potion stats are required")
			return
		}
		switch it.Potion.Effect {
		case PotionEffectHeal, PotionEffectMana:
			errors.ValidateMin(field+".amount", it.Potion.Amount, 1, vb)
		case PotionEffectPower:
			errors.ValidateMin(field+".amount", it.Potion.Amount, 1, vb)
			errors.ValidateMin(field+".turns", it.Potion.Turns, 1, vb)
		default:
			vb.InvalidField(field, "unknown potion effect "+string(it.Potion.Effect))
		}
	case ItemKindUnknown:
		vb.InvalidField(field+".kind", "is required")
	}
}

// StartLocation is where new players begin
func (c *Catalog) StartLocation() string {
	return c.startLocation
}

// Monster looks up a regular monster template by key
func (c *Catalog) Monster(key string) (*Monster, bool) {
	m, ok := c.monsters[key]
	return m, ok
}

// Monsters returns regular monster templates in file order
func (c *Catalog) Monsters() []*Monster {
	return c.monsterOrder
}

// Boss looks up a boss template by display name
func (c *Catalog) Boss(name string) (*Monster, bool) {
	b, ok := c.bosses[name]
	return b, ok
}

// EligibleMonsters lists the enemies of a location a player of the given
// level can meet. Unknown and peaceful locations yield nothing.
func (c *Catalog) EligibleMonsters(locationKey string, level int) []*Monster {
	loc, ok := c.locations[locationKey]
	if !ok {
		return nil
	}
	var out []*Monster
	for _, key := range loc.Enemies {
		if m := c.monsters[key]; m != nil && m.MinLevel <= level {
			out = append(out, m)
		}
	}
	return out
}

// Item looks up an item by key
func (c *Catalog) Item(key string) (*Item, bool) {
	it, ok := c.items[key]
	return it, ok
}

// ItemByName looks up an item by display name
func (c *Catalog) ItemByName(name string) (*Item, bool) {
	it, ok := c.itemsByName[name]
	return it, ok
}

// Spell looks up a spell by key
func (c *Catalog) Spell(key string) (*Item, bool) {
	it, ok := c.items[key]
	if !ok || it.Kind != ItemKindSpell {
		return nil, false
	}
	return it, true
}

// Shop returns items for sale, optionally filtered by kind, cheapest first
// within each kind.
func (c *Catalog) Shop(kinds ...ItemKind) []*Item {
	var out []*Item
	for _, it := range c.itemOrder {
		if !it.ForSale {
			continue
		}
		if len(kinds) > 0 && !slices.Contains(kinds, it.Kind) {
			continue
		}
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Cost < out[j].Cost
	})
	return out
}

// Location looks up a location by key
func (c *Catalog) Location(key string) (*Location, bool) {
	l, ok := c.locations[key]
	return l, ok
}

// Locations returns all locations in file order
func (c *Catalog) Locations() []*Location {
	return c.locationOrder
}

// Chapter looks up a story chapter by id
func (c *Catalog) Chapter(id int) (*Chapter, bool) {
	ch, ok := c.chapters[id]
	return ch, ok
}

// Chapters returns the campaign in order
func (c *Catalog) Chapters() []*Chapter {
	return c.chapterOrder
}

// FinalChapter is the id of the last chapter
func (c *Catalog) FinalChapter() int {
	return c.chapterOrder[len(c.chapterOrder)-1].ID
}
