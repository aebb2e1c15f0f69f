package player_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/clock"
	playerrepo "github.com/Richard10-cpu/termux-telegram-rpg/internal/repositories/player"
	playerrepomock "github.com/Richard10-cpu/termux-telegram-rpg/internal/repositories/player/mock"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/services/player"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/testutils"
)

type ManagerTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	mockRepo *playerrepomock.MockRepository
	manager  *player.Manager
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func (s *ManagerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = playerrepomock.NewMockRepository(s.ctrl)

	manager, err := player.NewManager(&player.Config{
		Repository:    s.mockRepo,
		Clock:         clock.NewFixed(testutils.TestNow),
		StartLocation: testutils.StartLocation,
	})
	s.Require().NoError(err)
	s.manager = manager
}

func (s *ManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ManagerTestSuite) TestNewManagerValidation() {
	_, err := player.NewManager(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = player.NewManager(&player.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Repository")
	s.Contains(err.Error(), "StartLocation")
}

func (s *ManagerTestSuite) TestGetCreatesAndSavesNewPlayer() {
	s.mockRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{ID: testutils.TestUserID}).
		Return(nil, errors.NotFound("player not found"))
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in playerrepo.SaveInput) (*playerrepo.SaveOutput, error) {
			s.Equal(testutils.TestUserID, in.Player.UserID)
			s.Equal(entities.DefaultHP, in.Player.HP)
			return &playerrepo.SaveOutput{Player: in.Player}, nil
		})

	out, err := s.manager.Get(s.ctx, &player.GetInput{PlayerID: testutils.TestUserID})
	s.Require().NoError(err)
	s.True(out.Created)
	s.False(out.Degraded)
	s.Equal(entities.DefaultGold, out.Player.Gold)

	// Second read is served from the cache.
	out, err = s.manager.Get(s.ctx, &player.GetInput{PlayerID: testutils.TestUserID})
	s.Require().NoError(err)
	s.False(out.Created)
}

func (s *ManagerTestSuite) TestGetNormalizesStoredRecord() {
	stored := &entities.Player{UserID: testutils.TestUserID, HP: 10, MaxHP: 100, Level: 2}
	s.mockRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{ID: testutils.TestUserID}).
		Return(&playerrepo.GetOutput{Player: stored}, nil)

	out, err := s.manager.Get(s.ctx, &player.GetInput{PlayerID: testutils.TestUserID})
	s.Require().NoError(err)
	s.NotNil(out.Player.Potions)
	s.NotNil(out.Player.DailyQuest())
	s.Equal(1, out.Player.Story.CurrentChapter)
}

func TestManagerUsesStartLocation(t *testing.T) {
	ctx := context.Background()
	repo := playerrepo.NewInMemory()
	_, err := repo.Save(ctx, playerrepo.SaveInput{Player: &entities.Player{UserID: testutils.OtherUserID, Level: 3}})
	require.NoError(t, err)

	manager, err := player.NewManager(&player.Config{
		Repository:    repo,
		Clock:         clock.NewFixed(testutils.TestNow),
		StartLocation: "forest",
	})
	require.NoError(t, err)

	created, err := manager.Get(ctx, &player.GetInput{PlayerID: testutils.TestUserID})
	require.NoError(t, err)
	assert.True(t, created.Created)
	assert.Equal(t, "forest", created.Player.Location)

	legacy, err := manager.Get(ctx, &player.GetInput{PlayerID: testutils.OtherUserID})
	require.NoError(t, err)
	assert.Equal(t, "forest", legacy.Player.Location)
	assert.Equal(t, 3, legacy.Player.Level)
}

func (s *ManagerTestSuite) TestGetLoadFailure() {
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.manager.Get(s.ctx, &player.GetInput{PlayerID: testutils.TestUserID})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *ManagerTestSuite) TestGetRequiresID() {
	_, err := s.manager.Get(s.ctx, &player.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ManagerTestSuite) TestUpdateSavesMutation() {
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&playerrepo.GetOutput{Player: testutils.CreateTestPlayer(testutils.TestUserID)}, nil)
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in playerrepo.SaveInput) (*playerrepo.SaveOutput, error) {
			s.Equal(70, in.Player.Gold)
			return &playerrepo.SaveOutput{Player: in.Player}, nil
		})

	out, err := s.manager.Update(s.ctx, &player.UpdateInput{
		PlayerID: testutils.TestUserID,
		Mutate: func(p *entities.Player) error {
			p.Gold += 50
			return nil
		},
	})
	s.Require().NoError(err)
	s.False(out.Degraded)
	s.Equal(70, out.Player.Gold)
}

func (s *ManagerTestSuite) TestUpdateMutateErrorDiscardsCopy() {
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&playerrepo.GetOutput{Player: testutils.CreateTestPlayer(testutils.TestUserID)}, nil)

	_, err := s.manager.Update(s.ctx, &player.UpdateInput{
		PlayerID: testutils.TestUserID,
		Mutate: func(p *entities.Player) error {
			p.Gold = 0
			return errors.Declinef("insufficient_gold", "not enough gold")
		},
	})
	s.Require().Error(err)
	s.Equal("insufficient_gold", errors.GetReason(err))

	out, err := s.manager.Get(s.ctx, &player.GetInput{PlayerID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal(entities.DefaultGold, out.Player.Gold)
}

func (s *ManagerTestSuite) TestUpdateSaveFailureIsDegraded() {
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&playerrepo.GetOutput{Player: testutils.CreateTestPlayer(testutils.TestUserID)}, nil)
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("disk full"))

	out, err := s.manager.Update(s.ctx, &player.UpdateInput{
		PlayerID: testutils.TestUserID,
		Mutate: func(p *entities.Player) error {
			p.Gold = 99
			return nil
		},
	})
	s.Require().NoError(err)
	s.True(out.Degraded)
	s.Require().Error(out.SaveError)

	got, err := s.manager.Get(s.ctx, &player.GetInput{PlayerID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal(99, got.Player.Gold)
}

func (s *ManagerTestSuite) TestOutputIsACopy() {
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&playerrepo.GetOutput{Player: testutils.CreateTestPlayer(testutils.TestUserID)}, nil)

	out, err := s.manager.Get(s.ctx, &player.GetInput{PlayerID: testutils.TestUserID})
	s.Require().NoError(err)
	out.Player.Gold = 12345

	again, err := s.manager.Get(s.ctx, &player.GetInput{PlayerID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal(entities.DefaultGold, again.Player.Gold)
}

func (s *ManagerTestSuite) TestDelete() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, playerrepo.DeleteInput{ID: testutils.TestUserID}).
		Return(nil, errors.NotFound("player not found"))

	_, err := s.manager.Delete(s.ctx, &player.DeleteInput{PlayerID: testutils.TestUserID})
	s.True(errors.IsNotFound(err))
}

func (s *ManagerTestSuite) TestTop() {
	players := []*entities.Player{testutils.CreateTestPlayer(1)}
	s.mockRepo.EXPECT().
		Top(s.ctx, playerrepo.TopInput{Limit: 10}).
		Return(&playerrepo.TopOutput{Players: players}, nil)

	out, err := s.manager.Top(s.ctx, &player.TopInput{Limit: 10})
	s.Require().NoError(err)
	s.Equal(players, out.Players)

	_, err = s.manager.Top(s.ctx, &player.TopInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestManagerSerializesUpdates(t *testing.T) {
	repo := playerrepo.NewInMemory()
	manager, err := player.NewManager(&player.Config{Repository: repo, Clock: clock.New(), StartLocation: testutils.StartLocation})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := manager.Update(ctx, &player.UpdateInput{
				PlayerID: testutils.TestUserID,
				Mutate: func(p *entities.Player) error {
					p.Gold++
					return nil
				},
			})
			if err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	out, err := repo.Get(ctx, playerrepo.GetInput{ID: testutils.TestUserID})
	if err != nil {
		t.Fatal(err)
	}
	if want := entities.DefaultGold + workers; out.Player.Gold != want {
		t.Fatalf("gold = %d, want %d", out.Player.Gold, want)
	}
}
