package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	v1alpha1 "github.com/Richard10-cpu/termux-telegram-rpg/internal/handlers/rpg/v1alpha1"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/render"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/testutils"
)

func TestBattleStatus(t *testing.T) {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 12, 8)
	p.Battle.IsElite = true
	p.Battle.DamageBonusPct = 50
	p.Battle.BuffTurns = 2

	out := render.BattleStatus(p, p.Battle)
	assert.Contains(t, out, "ELITE")
	assert.Contains(t, out, "Goblin")
	assert.Contains(t, out, "100/100")
	assert.Contains(t, out, "Power +50% for 2 more attacks")
	assert.Contains(t, out, "Turn 1")

	assert.Empty(t, render.BattleStatus(p, nil))
}

func TestTurnOutcomes(t *testing.T) {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 12, 8)

	cont := render.Turn(p, &engine.TurnOutput{
		Outcome: engine.OutcomeContinue,
		Log:     []string{"You hit Goblin for 7 damage."},
		Battle:  p.Battle,
	})
	assert.Contains(t, cont, "You hit Goblin for 7 damage.")
	assert.Contains(t, cont, "Battle")

	won := render.Turn(p, &engine.TurnOutput{
		Outcome: engine.OutcomeVictory,
		Victory: &engine.VictoryResult{
			MonsterName:    "Goblin",
			GoldEarned:     6,
			ExpEarned:      15,
			QuestCompleted: true,
			LevelUp:        &engine.LevelUpResult{Message: "Level up! You are now level 2."},
			Achievements:   []engine.Achievement{engine.Achievements[0]},
		},
	})
	assert.Contains(t, won, "+6 gold")
	assert.Contains(t, won, "+15 exp")
	assert.Contains(t, won, "Daily quest complete!")
	assert.Contains(t, won, "level 2")
	assert.Contains(t, won, "First Blood")

	lost := render.Turn(p, &engine.TurnOutput{
		Outcome: engine.OutcomeDefeat,
		Defeat:  &engine.DefeatResult{MonsterName: "Wolf", GoldLost: 10},
	})
	assert.Contains(t, lost, "-10 gold")
	assert.Contains(t, lost, "1 hp")

	fled := render.Turn(p, &engine.TurnOutput{Outcome: engine.OutcomeFled, Log: []string{"You escaped!"}})
	assert.Contains(t, fled, "You escaped!")
}

func TestSimulation(t *testing.T) {
	out := render.Simulation(&engine.SimulateBattleOutput{
		Result:  &engine.BattleResult{MonsterName: "Wolf", Victory: true, Rounds: 4},
		Victory: &engine.VictoryResult{MonsterName: "Wolf", GoldEarned: 9, ExpEarned: 20},
	})
	assert.Contains(t, out, "4 rounds against Wolf")
	assert.Contains(t, out, "+9 gold")

	assert.Empty(t, render.Simulation(nil))
}

func TestProfile(t *testing.T) {
	p := testutils.CreateTestPlayer(testutils.TestUserID)
	p.Potions["health_potion"] = 2
	p.Spells = []string{"Fireball"}
	loc, _ := content.Default().Location("village")

	out := render.Profile(p, loc, 60)
	assert.Contains(t, out, "Adventurer #1001")
	assert.Contains(t, out, "Level 1")
	assert.Contains(t, out, "exp 0/60")
	assert.Contains(t, out, "Location: Village")
	assert.Contains(t, out, "Wooden Stick")
	assert.Contains(t, out, "health_potion x2")
	assert.Contains(t, out, "Fireball")
}

func TestWorldViews(t *testing.T) {
	catalog := content.Default()

	m := render.Map(catalog.Locations(), "forest")
	assert.Contains(t, m, "> ")
	assert.Contains(t, m, "Dark Forest")
	assert.Contains(t, m, "(mountain)")

	forest, _ := catalog.Location("forest")
	assert.Contains(t, render.Location(forest), "Enemies: goblin, wolf")
	village, _ := catalog.Location("village")
	assert.Contains(t, render.Location(village), "Safe")

	shop := render.Shop(catalog.Shop())
	assert.Contains(t, shop, "Steel Sword")
	assert.Contains(t, shop, "+15 power")
	assert.Contains(t, shop, "50g")
	assert.Contains(t, render.Shop(nil), "Nothing for sale.")
}

func TestTownResults(t *testing.T) {
	assert.Contains(t, render.Rest(&engine.RestResult{Cost: 15, HPRestored: 60, ManaRestored: 40}), "+60 hp  +40 mp")
	assert.Contains(t, render.Purchase(&engine.PurchaseResult{Cost: 50, Message: "You bought Steel Sword. Power +15."}), "-50 gold")
	assert.Contains(t, render.Equip(&engine.EquipResult{Message: "You equipped Steel Sword.", Previous: "Wooden Stick"}), "Wooden Stick went back")
}

func TestQuestsAndReward(t *testing.T) {
	p := testutils.CreateTestPlayer(testutils.TestUserID)
	q := p.DailyQuest()
	q.Kills = 5

	out := render.Quests(q, true, []v1alpha1.AchievementStatus{
		{Name: "First Blood", Description: "Defeat your first monster", Unlocked: true},
		{Name: "Rich", Description: "Hold 100 gold"},
	})
	assert.Contains(t, out, "5/5")
	assert.Contains(t, out, "Reward ready: 50 gold, 25 exp")
	assert.Contains(t, out, "First Blood")
	assert.Contains(t, out, "Hold 100 gold")

	q.RewardClaimed = true
	assert.Contains(t, render.Quests(q, false, nil), "Reward claimed")

	assert.Contains(t, render.Reward(&engine.QuestReward{Gold: 50, Exp: 25}), "+50 gold")
}

func TestStory(t *testing.T) {
	catalog := content.Default()
	ch1, _ := catalog.Chapter(1)
	ch2, _ := catalog.Chapter(2)
	ch3, _ := catalog.Chapter(3)

	out := render.Story([]v1alpha1.ChapterStatus{
		{Chapter: ch1, State: "completed"},
		{Chapter: ch2, State: "current"},
		{Chapter: ch3, State: "locked"},
	}, false)
	assert.Contains(t, out, "1. Awakening")
	assert.Contains(t, out, "Boss: Skeleton King in cave")
	assert.Contains(t, out, "(level 10)")
	assert.NotContains(t, out, "finished the story")

	assert.Contains(t, render.Story(nil, true), "finished the story")
}

func TestLeaderboard(t *testing.T) {
	out := render.Leaderboard([]v1alpha1.LeaderboardEntry{
		{Rank: 1, PlayerID: 7, Level: 9, Gold: 300, TotalKills: 80},
		{Rank: 2, PlayerID: 3, Level: 4, Gold: 12, TotalKills: 9},
	})
	assert.Contains(t, out, "#7  level 9")
	assert.Contains(t, out, "80 kills")
	assert.Contains(t, render.Leaderboard(nil), "No adventurers yet.")
}

func TestMessages(t *testing.T) {
	assert.Contains(t, render.Error(errors.NotFound("player not found")), "! player not found")
	assert.Contains(t, render.Error(errors.Internal("boom")), "x boom")
	assert.Empty(t, render.Error(nil))
	assert.Contains(t, render.Warning("not enough gold"), "not enough gold")
}

func TestBossFightWithoutBoss(t *testing.T) {
	p := testutils.CreateTestPlayer(testutils.TestUserID)
	out := render.BossFight(p, &engine.BossFight{
		Completion: &engine.ChapterCompletion{
			Message: "Chapter \"Prologue\" complete! Rewards: 10 gold, 120 exp.",
			LevelUp: &engine.LevelUpResult{NewLevel: 2, Message: "Level up! You are now level 2."},
		},
		Achievements: []engine.Achievement{{Name: "Rich", Description: "Hold 100 gold"}},
	}, nil)

	assert.Contains(t, out, "Chapter complete")
	assert.Contains(t, out, "Prologue")
	assert.Contains(t, out, "level 2")
	assert.Contains(t, out, "Rich")
	assert.NotContains(t, out, "Battle")
}
