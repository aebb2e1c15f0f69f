package engine

import (
	"fmt"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
)

// Level-up growth
const (
	ExpPerLevel  = 60
	LevelUpHP    = 25
	LevelUpMana  = 10
	LevelUpPower = 5
)

// ExpForLevel is the experience needed to advance from level to level+1
func ExpForLevel(level int) int {
	return level * ExpPerLevel
}

// LevelUpResult describes one or more levels gained at once
type LevelUpResult struct {
	LevelsGained    int              `json:"levels_gained"`
	NewLevel        int              `json:"new_level"`
	Message         string           `json:"message"`
	UnlockedChapter *content.Chapter `json:"unlocked_chapter,omitempty"`
}

// CheckLevelUp applies every level threshold the player has crossed and
// returns nil if none was. Experience is not consumed: thresholds compare
// against the running total.
func (r *Rules) CheckLevelUp(p *entities.Player) *LevelUpResult {
	startLevel := p.Level
	for p.Exp >= ExpForLevel(p.Level) {
		p.Level++
		p.MaxHP += LevelUpHP
		p.HP = p.MaxHP
		p.MaxMana += LevelUpMana
		p.Mana = p.MaxMana
		p.Power += LevelUpPower
	}
	gained := p.Level - startLevel
	if gained == 0 {
		return nil
	}

	res := &LevelUpResult{
		LevelsGained: gained,
		NewLevel:     p.Level,
		Message: fmt.Sprintf("Level up! You are now level %d. Max HP +%d, max mana +%d, power +%d.",
			p.Level, LevelUpHP*gained, LevelUpMana*gained, LevelUpPower*gained),
	}
	if ch, ok := r.catalog.Chapter(p.Story.CurrentChapter); ok &&
		!p.Story.IsCompleted(ch.ID) && ch.UnlockLevel > startLevel && ch.UnlockLevel <= p.Level {
		res.UnlockedChapter = ch
		res.Message += fmt.Sprintf(" Chapter %d \"%s\" is now open.", ch.ID, ch.Title)
	}
	return res
}

// AddExperience grants exp and applies any resulting level-ups
func (r *Rules) AddExperience(p *entities.Player, amount int) *LevelUpResult {
	if amount > 0 {
		p.Exp += amount
	}
	return r.CheckLevelUp(p)
}
