package battle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	enginemock "github.com/Richard10-cpu/termux-telegram-rpg/internal/engine/mock"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/orchestrators/battle"
	playersvc "github.com/Richard10-cpu/termux-telegram-rpg/internal/services/player"
	playermock "github.com/Richard10-cpu/termux-telegram-rpg/internal/services/player/mock"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	mockEngine  *enginemock.MockEngine
	mockPlayers *playermock.MockService
	player      *entities.Player
	orch        battle.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockPlayers = playermock.NewMockService(s.ctrl)
	s.player = testutils.CreateTestPlayerAt(testutils.TestUserID, "forest")

	orch, err := battle.NewOrchestrator(&battle.Config{
		PlayerService: s.mockPlayers,
		Engine:        s.mockEngine,
		Catalog:       content.Default(),
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectUpdate runs the mutation against the suite player like the real
// service would
func (s *OrchestratorTestSuite) expectUpdate(degraded bool) {
	s.mockPlayers.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *playersvc.UpdateInput) (*playersvc.UpdateOutput, error) {
			s.Equal(testutils.TestUserID, in.PlayerID)
			working := s.player.Clone()
			if err := in.Mutate(working); err != nil {
				return nil, err
			}
			s.player = working
			return &playersvc.UpdateOutput{Player: working.Clone(), Degraded: degraded}, nil
		})
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := battle.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = battle.NewOrchestrator(&battle.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "PlayerService")
	s.Contains(err.Error(), "Engine")
}

func (s *OrchestratorTestSuite) TestStartBattle() {
	s.expectUpdate(false)
	s.mockEngine.EXPECT().
		StartBattle(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.StartBattleInput) (*engine.StartBattleOutput, error) {
			in.Player.Battle = &entities.BattleState{ID: "battle_1", MonsterName: "Wolf", MonsterHP: 35}
			return &engine.StartBattleOutput{Battle: in.Player.Battle, Message: "A wild Wolf appears!"}, nil
		})

	out, err := s.orch.StartBattle(s.ctx, &battle.StartBattleInput{PlayerID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal("battle_1", out.Battle.ID)
	s.Equal("A wild Wolf appears!", out.Message)
	s.True(out.Player.InBattle())
	s.False(out.Degraded)
}

func (s *OrchestratorTestSuite) TestStartBattleDeclined() {
	s.expectUpdate(false)
	s.mockEngine.EXPECT().
		StartBattle(s.ctx, gomock.Any()).
		Return(nil, errors.Declinef(engine.ReasonLowHealth, "too weak"))

	_, err := s.orch.StartBattle(s.ctx, &battle.StartBattleInput{PlayerID: testutils.TestUserID})
	s.Require().Error(err)
	s.Equal(engine.ReasonLowHealth, errors.GetReason(err))
}

func (s *OrchestratorTestSuite) TestRequiresPlayerID() {
	_, err := s.orch.Attack(s.ctx, &battle.ActionInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.StartBattle(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAttackReportsDegradedSave() {
	s.expectUpdate(true)
	s.mockEngine.EXPECT().
		Attack(s.ctx, gomock.Any()).
		Return(&engine.TurnOutput{Outcome: engine.OutcomeContinue, PlayerDamage: 7}, nil)

	out, err := s.orch.Attack(s.ctx, &battle.ActionInput{PlayerID: testutils.TestUserID})
	s.Require().NoError(err)
	s.True(out.Degraded)
	s.Equal(7, out.Turn.PlayerDamage)
}

func (s *OrchestratorTestSuite) TestActionsPassArguments() {
	s.expectUpdate(false)
	s.mockEngine.EXPECT().
		CastSpell(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.CastSpellInput) (*engine.TurnOutput, error) {
			s.Equal("fireball", in.SpellKey)
			return &engine.TurnOutput{}, nil
		})
	_, err := s.orch.CastSpell(s.ctx, &battle.CastSpellInput{PlayerID: testutils.TestUserID, SpellKey: "fireball"})
	s.Require().NoError(err)

	s.expectUpdate(false)
	s.mockEngine.EXPECT().
		UsePotion(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.UsePotionInput) (*engine.TurnOutput, error) {
			s.Equal("health_potion", in.PotionKey)
			return &engine.TurnOutput{}, nil
		})
	_, err = s.orch.UsePotion(s.ctx, &battle.UsePotionInput{PlayerID: testutils.TestUserID, PotionKey: "health_potion"})
	s.Require().NoError(err)

	s.expectUpdate(false)
	s.mockEngine.EXPECT().Defend(s.ctx, gomock.Any()).Return(&engine.TurnOutput{}, nil)
	_, err = s.orch.Defend(s.ctx, &battle.ActionInput{PlayerID: testutils.TestUserID})
	s.Require().NoError(err)

	s.expectUpdate(false)
	s.mockEngine.EXPECT().Flee(s.ctx, gomock.Any()).Return(&engine.TurnOutput{Outcome: engine.OutcomeFled}, nil)
	out, err := s.orch.Flee(s.ctx, &battle.ActionInput{PlayerID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal(engine.OutcomeFled, out.Turn.Outcome)

	_, err = s.orch.CastSpell(s.ctx, &battle.CastSpellInput{PlayerID: testutils.TestUserID})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSimulateBattleWithMonsterKey() {
	s.expectUpdate(false)
	s.mockEngine.EXPECT().
		SimulateBattle(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.SimulateBattleInput) (*engine.SimulateBattleOutput, error) {
			s.Require().NotNil(in.Monster)
			s.Equal("wolf", in.Monster.Key)
			return &engine.SimulateBattleOutput{Result: &engine.BattleResult{MonsterName: "Wolf", Victory: true}}, nil
		})

	out, err := s.orch.SimulateBattle(s.ctx, &battle.SimulateBattleInput{PlayerID: testutils.TestUserID, MonsterKey: "wolf"})
	s.Require().NoError(err)
	s.True(out.Result.Result.Victory)

	_, err = s.orch.SimulateBattle(s.ctx, &battle.SimulateBattleInput{PlayerID: testutils.TestUserID, MonsterKey: "unicorn"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSimulateBattleRejectsMonsterOutsideLocation() {
	cases := []struct {
		name     string
		location string
		monster  string
	}{
		{name: "level too low", location: "forest", monster: "dragon"},
		{name: "other location", location: "forest", monster: "skeleton"},
		{name: "peaceful location", location: "village", monster: "wolf"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.player = testutils.CreateTestPlayerAt(testutils.TestUserID, tc.location)
			s.expectUpdate(false)

			_, err := s.orch.SimulateBattle(s.ctx, &battle.SimulateBattleInput{
				PlayerID:   testutils.TestUserID,
				MonsterKey: tc.monster,
			})
			s.Require().Error(err)
			s.True(errors.IsDeclined(err))
			s.Equal(engine.ReasonNoEligibleMonster, errors.GetReason(err))
			s.Equal(0, s.player.TotalKills)
		})
	}
}
