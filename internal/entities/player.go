package entities

import "slices"

// Default values for a freshly created player
const (
	DefaultHP          = 100
	DefaultMana        = 50
	DefaultGold        = 20
	DefaultPower       = 10
	DefaultStarterItem = "Wooden Stick"
)

// Player is the mutable per-user game record
type Player struct {
	UserID       int64                  `json:"user_id"`
	HP           int                    `json:"hp"`
	MaxHP        int                    `json:"max_hp"`
	Mana         int                    `json:"mana"`
	MaxMana      int                    `json:"max_mana"`
	Level        int                    `json:"level"`
	Exp          int                    `json:"exp"`
	Gold         int                    `json:"gold"`
	Power        int                    `json:"power"`
	Inventory    []string               `json:"inventory"`
	Spells       []string               `json:"spells"`
	Potions      map[string]int         `json:"potions"`
	Equipment    Equipment              `json:"equipment"`
	Location     string                 `json:"location"`
	Quests       map[string]*DailyQuest `json:"quests"`
	Achievements []string               `json:"achievements"`
	TotalKills   int                    `json:"total_kills"`
	Story        StoryProgress          `json:"story_progress"`
	Battle       *BattleState           `json:"battle_state,omitempty"`
	CreatedAt    int64                  `json:"created_at"`
	UpdatedAt    int64                  `json:"updated_at"`
}

// Equipment holds the names of worn items; empty means nothing equipped
type Equipment struct {
	Weapon string `json:"weapon,omitempty"`
	Armor  string `json:"armor,omitempty"`
}

// NewPlayer creates a level 1 player with starting stats at location
func NewPlayer(userID int64, now int64, location string) *Player {
	return &Player{
		UserID:    userID,
		HP:        DefaultHP,
		MaxHP:     DefaultHP,
		Mana:      DefaultMana,
		MaxMana:   DefaultMana,
		Level:     1,
		Gold:      DefaultGold,
		Power:     DefaultPower,
		Inventory: []string{DefaultStarterItem},
		Spells:    []string{},
		Potions:   map[string]int{},
		Location:  location,
		Quests: map[string]*DailyQuest{
			DailyQuestID: NewDailyQuest(""),
		},
		Achievements: []string{},
		Story:        NewStoryProgress(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Normalize repairs records written by older versions: nil collections, a
// missing daily quest, an unset location or story chapter.
func (p *Player) Normalize(startLocation string) {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.Inventory == nil {
		p.Inventory = []string{}
	}
	if p.Spells == nil {
		p.Spells = []string{}
	}
	if p.Potions == nil {
		p.Potions = map[string]int{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	if p.Quests == nil {
		p.Quests = map[string]*DailyQuest{}
	}
	if p.Quests[DailyQuestID] == nil {
		p.Quests[DailyQuestID] = NewDailyQuest("")
	}
	if p.Location == "" {
		p.Location = startLocation
	}
	p.Story.normalize()
}

// Clone returns a deep copy of p
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	c.Inventory = slices.Clone(p.Inventory)
	c.Spells = slices.Clone(p.Spells)
	c.Achievements = slices.Clone(p.Achievements)
	if p.Potions != nil {
		c.Potions = make(map[string]int, len(p.Potions))
		for k, v := range p.Potions {
			c.Potions[k] = v
		}
	}
	if p.Quests != nil {
		c.Quests = make(map[string]*DailyQuest, len(p.Quests))
		for k, q := range p.Quests {
			if q == nil {
				continue
			}
			cq := *q
			c.Quests[k] = &cq
		}
	}
	c.Story = p.Story.clone()
	if p.Battle != nil {
		b := *p.Battle
		c.Battle = &b
	}
	return &c
}

// InBattle reports whether the player is mid-combat
func (p *Player) InBattle() bool {
	return p.Battle != nil
}

// HasItem reports whether name is in the inventory
func (p *Player) HasItem(name string) bool {
	return slices.Contains(p.Inventory, name)
}

// Owns reports whether name is carried or equipped
func (p *Player) Owns(name string) bool {
	return p.HasItem(name) || p.Equipment.Weapon == name || p.Equipment.Armor == name
}

// RemoveItem drops the first occurrence of name from the inventory
func (p *Player) RemoveItem(name string) bool {
	i := slices.Index(p.Inventory, name)
	if i < 0 {
		return false
	}
	p.Inventory = slices.Delete(p.Inventory, i, i+1)
	return true
}

// HasSpell reports whether the spell name has been learned
func (p *Player) HasSpell(name string) bool {
	return slices.Contains(p.Spells, name)
}

// LearnSpell adds a spell name once
func (p *Player) LearnSpell(name string) {
	if !p.HasSpell(name) {
		p.Spells = append(p.Spells, name)
	}
}

// HasAchievement reports whether the achievement key is unlocked
func (p *Player) HasAchievement(key string) bool {
	return slices.Contains(p.Achievements, key)
}

// Heal restores hp up to MaxHP and returns the amount actually restored
func (p *Player) Heal(amount int) int {
	before := p.HP
	p.HP = min(p.HP+amount, p.MaxHP)
	return max(p.HP-before, 0)
}

// RestoreMana restores mana up to MaxMana and returns the amount restored
func (p *Player) RestoreMana(amount int) int {
	before := p.Mana
	p.Mana = min(p.Mana+amount, p.MaxMana)
	return max(p.Mana-before, 0)
}

// SpendGold debits gold, saturating at zero, and returns the amount taken
func (p *Player) SpendGold(amount int) int {
	taken := min(max(amount, 0), p.Gold)
	p.Gold -= taken
	return taken
}

// DailyQuest returns the daily quest, creating it if absent
func (p *Player) DailyQuest() *DailyQuest {
	if p.Quests == nil {
		p.Quests = map[string]*DailyQuest{}
	}
	q := p.Quests[DailyQuestID]
	if q == nil {
		q = NewDailyQuest("")
		p.Quests[DailyQuestID] = q
	}
	return q
}
