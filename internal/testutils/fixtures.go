package testutils

import (
	"time"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
)

// StartLocation is the start location of the built-in content
const StartLocation = "village"

// Fixture user ids
const (
	TestUserID  int64 = 1001
	OtherUserID int64 = 2002
)

// TestNow is the fixed instant fixtures are created at
var TestNow = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.Local)

// CreateTestPlayer creates a fresh player with default stats
func CreateTestPlayer(userID int64) *entities.Player {
	return entities.NewPlayer(userID, TestNow.Unix(), StartLocation)
}

// CreateTestPlayerAt creates a player standing in a location
func CreateTestPlayerAt(userID int64, location string) *entities.Player {
	p := CreateTestPlayer(userID)
	p.Location = location
	return p
}

// CreateTestPlayerInBattle creates a player mid-fight against the monster
func CreateTestPlayerInBattle(userID int64, monsterHP, monsterPower int) *entities.Player {
	p := CreateTestPlayerAt(userID, "forest")
	p.Battle = &entities.BattleState{
		ID:           "battle_test",
		MonsterKey:   "goblin",
		MonsterName:  "Goblin",
		MonsterHP:    monsterHP,
		MonsterMaxHP: monsterHP,
		MonsterPower: monsterPower,
		MonsterExp:   15,
		GoldMin:      5,
		GoldMax:      5,
		Turn:         1,
		StartedAt:    TestNow.Unix(),
	}
	return p
}
