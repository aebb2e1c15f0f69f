package rpgtoolkit_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine/rpgtoolkit"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/clock"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/idgen"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/testutils"
)

// recordingBus keeps the type of every published event
type recordingBus struct {
	mu     sync.Mutex
	types  []string
	events []events.Event
	err    error
}

func (b *recordingBus) Publish(_ context.Context, e events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.types = append(b.types, e.Type())
	b.events = append(b.events, e)
	return b.err
}
func (b *recordingBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (b *recordingBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (b *recordingBus) Unsubscribe(_ string) error { return nil }
func (b *recordingBus) Clear(_ string)             {}
func (b *recordingBus) ClearAll()                  {}

func (b *recordingBus) published() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.types...)
}

type AdapterTestSuite struct {
	suite.Suite
	ctx     context.Context
	catalog *content.Catalog
	rules   *engine.Rules
	roller  *testutils.ScriptedRoller
	bus     *recordingBus
	adapter *rpgtoolkit.Adapter
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.catalog = content.Default()
	rules, err := engine.NewRules(&engine.RulesConfig{
		Catalog: s.catalog,
		Clock:   clock.NewFixed(testutils.TestNow),
	})
	s.Require().NoError(err)
	s.rules = rules
	s.roller = testutils.NewScriptedRoller()
	s.bus = &recordingBus{}
	s.adapter = s.newAdapter(0)
}

func (s *AdapterTestSuite) newAdapter(eliteChance int) *rpgtoolkit.Adapter {
	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:    s.bus,
		DiceRoller:  s.roller,
		Rules:       s.rules,
		IDGenerator: idgen.NewSequential("battle"),
		Clock:       clock.NewFixed(testutils.TestNow),
		EliteChance: eliteChance,
	})
	s.Require().NoError(err)
	return adapter
}

// forestPlayer has finished chapter 1 so forest fights are random encounters
func (s *AdapterTestSuite) forestPlayer() *entities.Player {
	p := testutils.CreateTestPlayerAt(testutils.TestUserID, "forest")
	p.Story.MarkBossDefeated("Goblin Chieftain")
	p.Story.MarkCompleted(1)
	return p
}

func (s *AdapterTestSuite) requireReason(err error, reason string) {
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err) || errors.IsAlreadyExists(err), "unexpected code for %v", err)
	s.Equal(reason, errors.GetReason(err))
}

func (s *AdapterTestSuite) TestNewAdapterValidation() {
	_, err := rpgtoolkit.NewAdapter(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "EventBus")
	s.Contains(err.Error(), "DiceRoller")
	s.Contains(err.Error(), "Rules")

	_, err = rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:    s.bus,
		DiceRoller:  s.roller,
		Rules:       s.rules,
		IDGenerator: idgen.NewSequential("battle"),
		Clock:       clock.New(),
		EliteChance: 101,
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "EliteChance")
}

func (s *AdapterTestSuite) TestRollDamageBounds() {
	s.Equal(0, s.adapter.RollDamage(0))
	s.Equal(0, s.adapter.RollDamage(-3))

	s.roller.Push(1, 6)
	s.Equal(5, s.adapter.RollDamage(10))
	s.Equal(10, s.adapter.RollDamage(10))
	s.Equal([]int{6, 6}, s.roller.Calls())
}

func (s *AdapterTestSuite) TestRollFailureUsesLowestFace() {
	s.roller.Err = errors.Internal("dice jammed")
	s.Equal(5, s.adapter.RollDamage(10))
}

func (s *AdapterTestSuite) TestSelectMonster() {
	_, enc := s.adapter.SelectMonster("village", 1)
	s.Equal(engine.EncounterPeaceful, enc)

	_, enc = s.adapter.SelectMonster("atlantis", 1)
	s.Equal(engine.EncounterUnknownLocation, enc)

	_, enc = s.adapter.SelectMonster("cave", 1)
	s.Equal(engine.EncounterNoEligible, enc)

	s.roller.Push(2)
	m, enc := s.adapter.SelectMonster("forest", 1)
	s.Equal(engine.EncounterFound, enc)
	s.Equal("wolf", m.Key)
}

func (s *AdapterTestSuite) TestStartBattleRandomMonster() {
	p := s.forestPlayer()
	s.roller.Push(1)

	out, err := s.adapter.StartBattle(s.ctx, &engine.StartBattleInput{Player: p})
	s.Require().NoError(err)
	s.Equal("battle_1", out.Battle.ID)
	s.Equal("Goblin", out.Battle.MonsterName)
	s.Equal(25, out.Battle.MonsterHP)
	s.Equal(1, out.Battle.Turn)
	s.False(out.Battle.IsBoss)
	s.Nil(out.Chapter)
	s.Equal("A wild Goblin appears!", out.Message)

	s.Require().True(p.InBattle())
	s.Equal("battle_1", p.Battle.ID)
	s.Equal([]string{rpgtoolkit.EventBattleStarted}, s.bus.published())
}

func (s *AdapterTestSuite) TestStartBattleGates() {
	p := s.forestPlayer()
	p.HP = rpgtoolkit.MinBattleHP
	_, err := s.adapter.StartBattle(s.ctx, &engine.StartBattleInput{Player: p})
	s.requireReason(err, engine.ReasonLowHealth)

	p = testutils.CreateTestPlayerInBattle(testutils.TestUserID, 10, 5)
	_, err = s.adapter.StartBattle(s.ctx, &engine.StartBattleInput{Player: p})
	s.requireReason(err, engine.ReasonAlreadyInBattle)

	p = testutils.CreateTestPlayer(testutils.TestUserID)
	_, err = s.adapter.StartBattle(s.ctx, &engine.StartBattleInput{Player: p})
	s.requireReason(err, engine.ReasonPeacefulLocation)

	p = s.forestPlayer()
	p.Location = "cave"
	_, err = s.adapter.StartBattle(s.ctx, &engine.StartBattleInput{Player: p})
	s.requireReason(err, engine.ReasonNoEligibleMonster)
	s.False(p.InBattle())

	_, err = s.adapter.StartBattle(s.ctx, &engine.StartBattleInput{})
	s.True(errors.IsInvalidArgument(err))
	s.Empty(s.bus.published())
}

func (s *AdapterTestSuite) TestStartBattleFightsPendingBoss() {
	p := testutils.CreateTestPlayerAt(testutils.TestUserID, "forest")

	out, err := s.adapter.StartBattle(s.ctx, &engine.StartBattleInput{Player: p})
	s.Require().NoError(err)
	s.True(out.Battle.IsBoss)
	s.Equal("Goblin Chieftain", out.Battle.MonsterName)
	s.Equal(60, out.Battle.MonsterHP)
	s.Require().NotNil(out.Chapter)
	s.Equal(1, out.Chapter.ID)
	s.Empty(s.roller.Calls())
}

func (s *AdapterTestSuite) TestStartBattleElite() {
	adapter := s.newAdapter(100)
	p := s.forestPlayer()
	s.roller.Push(1)

	out, err := adapter.StartBattle(s.ctx, &engine.StartBattleInput{Player: p})
	s.Require().NoError(err)
	s.True(out.Battle.IsElite)
	s.Equal(37, out.Battle.MonsterHP)
	s.Equal(12, out.Battle.MonsterPower)
	s.Equal("An elite Goblin appears!", out.Message)
}

func (s *AdapterTestSuite) TestAttackExchange() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 25, 8)
	// damage 10, no crit, no dodge, monster damage 8
	s.roller.Push(6, 100, 100, 5)

	out, err := s.adapter.Attack(s.ctx, &engine.ActionInput{Player: p})
	s.Require().NoError(err)
	s.Equal(engine.OutcomeContinue, out.Outcome)
	s.Equal(10, out.PlayerDamage)
	s.False(out.Critical)
	s.Equal(8, out.MonsterDamage)
	s.Equal(15, p.Battle.MonsterHP)
	s.Equal(92, p.HP)
	s.Equal(2, p.Battle.Turn)
	s.Len(out.Log, 2)
	s.Equal(0, s.roller.Remaining())
}

func (s *AdapterTestSuite) TestAttackCritical() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 25, 8)
	s.roller.Push(6, 1, 100, 1)

	out, err := s.adapter.Attack(s.ctx, &engine.ActionInput{Player: p})
	s.Require().NoError(err)
	s.True(out.Critical)
	s.Equal(15, out.PlayerDamage)
	s.Equal(10, p.Battle.MonsterHP)
	s.Equal(4, out.MonsterDamage)
}

func (s *AdapterTestSuite) TestAttackPowerBuffExpires() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 100, 8)
	p.Battle.DamageBonusPct = 50
	p.Battle.BuffTurns = 1
	s.roller.Push(6, 100, 1)

	out, err := s.adapter.Attack(s.ctx, &engine.ActionInput{Player: p})
	s.Require().NoError(err)
	s.Equal(15, out.PlayerDamage)
	s.True(out.Dodged)
	s.Equal(0, p.Battle.BuffTurns)
	s.Equal(0, p.Battle.DamageBonusPct)

	s.roller.Push(6, 100, 1)
	out, err = s.adapter.Attack(s.ctx, &engine.ActionInput{Player: p})
	s.Require().NoError(err)
	s.Equal(10, out.PlayerDamage)
}

func (s *AdapterTestSuite) TestAttackVictory() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 5, 8)
	s.roller.Push(6, 100)

	out, err := s.adapter.Attack(s.ctx, &engine.ActionInput{Player: p})
	s.Require().NoError(err)
	s.Equal(engine.OutcomeVictory, out.Outcome)
	s.Equal(0, out.Battle.MonsterHP)
	s.Require().NotNil(out.Victory)
	s.Equal(5, out.Victory.GoldEarned)
	s.Equal(15, out.Victory.ExpEarned)
	s.Nil(out.Victory.LevelUp)
	s.Require().Len(out.Victory.Achievements, 1)
	s.Equal("first_blood", out.Victory.Achievements[0].Key)

	s.False(p.InBattle())
	s.Equal(25, p.Gold)
	s.Equal(15, p.Exp)
	s.Equal(1, p.TotalKills)
	s.Equal(1, p.DailyQuest().Kills)
	s.Equal(100, p.HP)
	s.Equal([]string{rpgtoolkit.EventBattleVictory, rpgtoolkit.EventAchievementUnlocked}, s.bus.published())
}

func (s *AdapterTestSuite) TestEliteVictoryDoublesRewards() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 5, 8)
	p.Battle.IsElite = true
	s.roller.Push(6, 100)

	out, err := s.adapter.Attack(s.ctx, &engine.ActionInput{Player: p})
	s.Require().NoError(err)
	s.Equal(10, out.Victory.GoldEarned)
	s.Equal(30, out.Victory.ExpEarned)
	s.True(out.Victory.Elite)
}

func (s *AdapterTestSuite) TestVictoryCompletesDailyQuest() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 5, 8)
	s.rules.UpdateDailyQuest(p).Kills = entities.DefaultDailyTarget - 1
	s.roller.Push(6, 100)

	out, err := s.adapter.Attack(s.ctx, &engine.ActionInput{Player: p})
	s.Require().NoError(err)
	s.True(out.Victory.QuestCompleted)
	s.True(p.DailyQuest().Completed())
}

func (s *AdapterTestSuite) TestBossVictoryCompletesChapter() {
	p := testutils.CreateTestPlayerAt(testutils.TestUserID, "forest")
	_, err := s.adapter.StartBattle(s.ctx, &engine.StartBattleInput{Player: p})
	s.Require().NoError(err)

	p.Power = 1000
	s.roller.Fallback = 1

	out, err := s.adapter.Attack(s.ctx, &engine.ActionInput{Player: p})
	s.Require().NoError(err)
	s.Require().Equal(engine.OutcomeVictory, out.Outcome)
	s.True(out.Victory.Boss)
	s.Equal(20, out.Victory.GoldEarned)
	s.Require().NotNil(out.Victory.Chapter)
	s.Equal(1, out.Victory.Chapter.Chapter.ID)
	s.Require().NotNil(out.Victory.Chapter.LevelUp)
	s.Equal(3, out.Victory.Chapter.LevelUp.NewLevel)

	s.True(p.Story.IsCompleted(1))
	s.True(p.Story.IsBossDefeated("Goblin Chieftain"))
	s.Equal(2, p.Story.CurrentChapter)
	s.Contains(p.Inventory, "Chieftain's Axe")
	s.Equal(90, p.Gold)
	s.Equal(140, p.Exp)
	s.Contains(s.bus.published(), rpgtoolkit.EventChapterCompleted)
	s.Contains(s.bus.published(), rpgtoolkit.EventLevelUp)
}

func (s *AdapterTestSuite) TestDefendHalvesDamage() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 25, 8)
	s.roller.Push(100, 5)

	out, err := s.adapter.Defend(s.ctx, &engine.ActionInput{Player: p})
	s.Require().NoError(err)
	s.Equal(4, out.MonsterDamage)
	s.Equal(96, p.HP)
	s.False(p.Battle.Defending)
	s.Equal(25, p.Battle.MonsterHP)
}

func (s *AdapterTestSuite) TestDodge() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 25, 8)
	s.roller.Push(rpgtoolkit.DodgeChance)

	out, err := s.adapter.Defend(s.ctx, &engine.ActionInput{Player: p})
	s.Require().NoError(err)
	s.True(out.Dodged)
	s.Equal(0, out.MonsterDamage)
	s.Equal(100, p.HP)
	s.Equal(0, s.roller.Remaining())
}

func (s *AdapterTestSuite) TestDefeat() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 100, 8)
	p.HP = 5
	p.Gold = 100
	s.roller.Push(1, 100, 100, 5)

	out, err := s.adapter.Attack(s.ctx, &engine.ActionInput{Player: p})
	s.Require().NoError(err)
	s.Equal(engine.OutcomeDefeat, out.Outcome)
	s.Require().NotNil(out.Defeat)
	s.Equal(rpgtoolkit.DefeatGoldCap, out.Defeat.GoldLost)
	s.Equal(80, p.Gold)
	s.Equal(1, p.HP)
	s.False(p.InBattle())
	s.Equal([]string{rpgtoolkit.EventBattleDefeat}, s.bus.published())
}

func (s *AdapterTestSuite) TestDefeatTakesHalfOfSmallPurse() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 100, 8)
	p.HP = 1
	p.Gold = 7
	s.roller.Push(100, 5)

	out, err := s.adapter.Defend(s.ctx, &engine.ActionInput{Player: p})
	s.Require().NoError(err)
	s.Equal(3, out.Defeat.GoldLost)
	s.Equal(4, p.Gold)
}

func (s *AdapterTestSuite) TestCastSpell() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 100, 8)

	_, err := s.adapter.CastSpell(s.ctx, &engine.CastSpellInput{Player: p, SpellKey: "meteor"})
	s.True(errors.IsNotFound(err))

	_, err = s.adapter.CastSpell(s.ctx, &engine.CastSpellInput{Player: p, SpellKey: "fireball"})
	s.requireReason(err, engine.ReasonSpellNotLearned)

	p.LearnSpell("Fireball")
	p.Mana = 10
	_, err = s.adapter.CastSpell(s.ctx, &engine.CastSpellInput{Player: p, SpellKey: "fireball"})
	s.requireReason(err, engine.ReasonInsufficientMana)
	s.Equal(10, p.Mana)

	p.Mana = 50
	s.roller.Push(100, 5)
	out, err := s.adapter.CastSpell(s.ctx, &engine.CastSpellInput{Player: p, SpellKey: "fireball"})
	s.Require().NoError(err)
	s.Equal(40, out.PlayerDamage)
	s.Equal(60, p.Battle.MonsterHP)
	s.Equal(35, p.Mana)
	s.Equal(92, p.HP)
}

func (s *AdapterTestSuite) TestCastHeal() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 100, 8)
	p.LearnSpell("Heal")
	p.HP = 50
	s.roller.Push(1)

	out, err := s.adapter.CastSpell(s.ctx, &engine.CastSpellInput{Player: p, SpellKey: "heal"})
	s.Require().NoError(err)
	s.Equal(90, p.HP)
	s.Equal(40, p.Mana)
	s.Equal(0, out.PlayerDamage)
	s.Equal(100, p.Battle.MonsterHP)
}

func (s *AdapterTestSuite) TestUsePotion() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 100, 8)

	_, err := s.adapter.UsePotion(s.ctx, &engine.UsePotionInput{Player: p, PotionKey: "elixir"})
	s.True(errors.IsNotFound(err))

	_, err = s.adapter.UsePotion(s.ctx, &engine.UsePotionInput{Player: p, PotionKey: "steel_sword"})
	s.True(errors.IsNotFound(err))

	_, err = s.adapter.UsePotion(s.ctx, &engine.UsePotionInput{Player: p, PotionKey: "health_potion"})
	s.requireReason(err, engine.ReasonNoPotion)

	p.Potions["health_potion"] = 1
	p.HP = 40
	s.roller.Push(1)
	_, err = s.adapter.UsePotion(s.ctx, &engine.UsePotionInput{Player: p, PotionKey: "health_potion"})
	s.Require().NoError(err)
	s.Equal(90, p.HP)
	s.Equal(0, p.Potions["health_potion"])

	p.Potions["power_potion"] = 1
	s.roller.Push(1)
	_, err = s.adapter.UsePotion(s.ctx, &engine.UsePotionInput{Player: p, PotionKey: "power_potion"})
	s.Require().NoError(err)
	s.Equal(50, p.Battle.DamageBonusPct)
	s.Equal(3, p.Battle.BuffTurns)

	p.Potions["mana_potion"] = 2
	p.Mana = 5
	s.roller.Push(1)
	_, err = s.adapter.UsePotion(s.ctx, &engine.UsePotionInput{Player: p, PotionKey: "mana_potion"})
	s.Require().NoError(err)
	s.Equal(45, p.Mana)
	s.Equal(1, p.Potions["mana_potion"])
}

func (s *AdapterTestSuite) TestFlee() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 100, 8)
	s.roller.Push(rpgtoolkit.FleeChance + 1, 1)

	out, err := s.adapter.Flee(s.ctx, &engine.ActionInput{Player: p})
	s.Require().NoError(err)
	s.Equal(engine.OutcomeContinue, out.Outcome)
	s.True(p.InBattle())

	s.roller.Push(rpgtoolkit.FleeChance)
	out, err = s.adapter.Flee(s.ctx, &engine.ActionInput{Player: p})
	s.Require().NoError(err)
	s.Equal(engine.OutcomeFled, out.Outcome)
	s.False(p.InBattle())
	s.Equal([]string{rpgtoolkit.EventBattleFled}, s.bus.published())
}

func (s *AdapterTestSuite) TestFleeFromBoss() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 100, 8)
	p.Battle.IsBoss = true

	_, err := s.adapter.Flee(s.ctx, &engine.ActionInput{Player: p})
	s.requireReason(err, engine.ReasonFleeFromBoss)
	s.True(p.InBattle())
	s.Empty(s.roller.Calls())
}

func (s *AdapterTestSuite) TestActionsNeedABattle() {
	p := testutils.CreateTestPlayerAt(testutils.TestUserID, "forest")
	action := &engine.ActionInput{Player: p}

	_, err := s.adapter.Attack(s.ctx, action)
	s.requireReason(err, engine.ReasonNotInBattle)
	_, err = s.adapter.Defend(s.ctx, action)
	s.requireReason(err, engine.ReasonNotInBattle)
	_, err = s.adapter.Flee(s.ctx, action)
	s.requireReason(err, engine.ReasonNotInBattle)
	_, err = s.adapter.CastSpell(s.ctx, &engine.CastSpellInput{Player: p, SpellKey: "fireball"})
	s.requireReason(err, engine.ReasonNotInBattle)
	_, err = s.adapter.UsePotion(s.ctx, &engine.UsePotionInput{Player: p, PotionKey: "health_potion"})
	s.requireReason(err, engine.ReasonNotInBattle)

	_, err = s.adapter.Attack(s.ctx, &engine.ActionInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestPublishFailureDoesNotFailAction() {
	s.bus.err = errors.Unavailable("bus down")
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 5, 8)
	s.roller.Push(6, 100)

	out, err := s.adapter.Attack(s.ctx, &engine.ActionInput{Player: p})
	s.Require().NoError(err)
	s.Equal(engine.OutcomeVictory, out.Outcome)
}

func (s *AdapterTestSuite) TestPublishProgress() {
	ch, _ := s.catalog.Chapter(1)
	err := s.adapter.PublishProgress(s.ctx, &engine.ProgressInput{
		Player:       testutils.CreateTestPlayer(testutils.TestUserID),
		LevelUp:      &engine.LevelUpResult{NewLevel: 2},
		Chapter:      &engine.ChapterCompletion{Chapter: ch, LevelUp: &engine.LevelUpResult{NewLevel: 3}},
		Achievements: []engine.Achievement{{Key: "rich"}},
	})
	s.Require().NoError(err)
	s.Equal([]string{
		rpgtoolkit.EventChapterCompleted,
		rpgtoolkit.EventLevelUp,
		rpgtoolkit.EventLevelUp,
		rpgtoolkit.EventAchievementUnlocked,
	}, s.bus.published())

	s.True(errors.IsInvalidArgument(s.adapter.PublishProgress(s.ctx, nil)))
}
