package engine

import (
	"strings"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
)

// Achievement is a one-time unlock
type Achievement struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`

	condition func(*entities.Player) bool
}

// Achievements is the fixed registry, checked in order
var Achievements = []Achievement{
	{
		Key:         "first_blood",
		Name:        "First Blood",
		Description: "Defeat your first monster",
		condition:   func(p *entities.Player) bool { return p.TotalKills >= 1 },
	},
	{
		Key:         "monster_hunter",
		Name:        "Monster Hunter",
		Description: "Defeat 10 monsters",
		condition:   func(p *entities.Player) bool { return p.TotalKills >= 10 },
	},
	{
		Key:         "rich",
		Name:        "Rich",
		Description: "Hold 100 gold",
		condition:   func(p *entities.Player) bool { return p.Gold >= 100 },
	},
	{
		Key:         "explorer",
		Name:        "Explorer",
		Description: "Reach level 5",
		condition:   func(p *entities.Player) bool { return p.Level >= 5 },
	},
}

// AchievementByKey looks up a registry entry
func AchievementByKey(key string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.Key == key {
			return a, true
		}
	}
	return Achievement{}, false
}

// CheckAndAward unlocks every achievement whose condition now holds and
// returns only the new ones. Already unlocked keys are never re-awarded.
func CheckAndAward(p *entities.Player) []Achievement {
	var unlocked []Achievement
	for _, a := range Achievements {
		if p.HasAchievement(a.Key) || !a.condition(p) {
			continue
		}
		p.Achievements = append(p.Achievements, a.Key)
		unlocked = append(unlocked, a)
	}
	return unlocked
}

// AnnounceAchievements appends one line per unlocked achievement to base
func AnnounceAchievements(base string, unlocked []Achievement) string {
	if len(unlocked) == 0 {
		return base
	}
	var sb strings.Builder
	sb.WriteString(base)
	for _, a := range unlocked {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Achievement unlocked: ")
		sb.WriteString(a.Name)
		sb.WriteString(" (")
		sb.WriteString(a.Description)
		sb.WriteString(")")
	}
	return sb.String()
}
