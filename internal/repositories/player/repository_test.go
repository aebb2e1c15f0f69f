package player_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/clock"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/repositories/player"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/testutils"
)

// RepositoryTestSuite runs the same behavior against every store
type RepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	newRepo func() (player.Repository, func())
	repo    player.Repository
	cleanup func()
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (player.Repository, func()) {
			return player.NewInMemory(), func() {}
		},
	})
}

func TestRedisRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() (player.Repository, func()) {
		client, _, cleanup := testutils.CreateTestRedisClient(s.T())
		repo, err := player.NewRedis(&player.RedisConfig{
			Client: client,
			Clock:  clock.NewFixed(testutils.TestNow),
		})
		s.Require().NoError(err)
		return repo, cleanup
	}
	suite.Run(t, s)
}

func TestFileRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() (player.Repository, func()) {
		repo, err := player.NewFile(&player.FileConfig{
			Path:  filepath.Join(s.T().TempDir(), "players.json"),
			Clock: clock.NewFixed(testutils.TestNow),
		})
		s.Require().NoError(err)
		return repo, func() {}
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.newRepo()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) save(id int64, level, gold int) *entities.Player {
	p := testutils.CreateTestPlayer(id)
	p.Level = level
	p.Gold = gold
	_, err := s.repo.Save(s.ctx, player.SaveInput{Player: p})
	s.Require().NoError(err)
	return p
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, player.GetInput{ID: 404})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, player.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	p := testutils.CreateTestPlayerInBattle(testutils.TestUserID, 20, 5)
	p.Potions["health_potion"] = 2
	p.LearnSpell("Fireball")
	p.Story.MarkBossDefeated("Goblin Chieftain")

	_, err := s.repo.Save(s.ctx, player.SaveInput{Player: p})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, player.GetInput{ID: testutils.TestUserID})
	s.Require().NoError(err)
	got := out.Player
	s.Equal(p.UserID, got.UserID)
	s.Equal(2, got.Potions["health_potion"])
	s.Equal([]string{"Fireball"}, got.Spells)
	s.True(got.Story.IsBossDefeated("Goblin Chieftain"))
	s.Require().NotNil(got.Battle)
	s.Equal(20, got.Battle.MonsterHP)
}

func (s *RepositoryTestSuite) TestSaveIsolatesCallerCopy() {
	p := s.save(testutils.TestUserID, 1, 20)
	p.Gold = 999

	out, err := s.repo.Get(s.ctx, player.GetInput{ID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal(20, out.Player.Gold)
}

func (s *RepositoryTestSuite) TestSaveRejectsInvalid() {
	_, err := s.repo.Save(s.ctx, player.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, player.SaveInput{Player: &entities.Player{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	s.save(testutils.TestUserID, 1, 20)

	_, err := s.repo.Delete(s.ctx, player.DeleteInput{ID: testutils.TestUserID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, player.GetInput{ID: testutils.TestUserID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, player.DeleteInput{ID: testutils.TestUserID})
	s.True(errors.IsNotFound(err))

	top, err := s.repo.Top(s.ctx, player.TopInput{Limit: 10})
	s.Require().NoError(err)
	s.Empty(top.Players)
}

func (s *RepositoryTestSuite) TestList() {
	s.save(30, 1, 0)
	s.save(10, 2, 0)
	s.save(20, 3, 0)

	out, err := s.repo.List(s.ctx, player.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Players, 3)
	s.Equal(int64(10), out.Players[0].UserID)
	s.Equal(int64(20), out.Players[1].UserID)
	s.Equal(int64(30), out.Players[2].UserID)
}

func (s *RepositoryTestSuite) TestTopOrdersByLevelThenGold() {
	s.save(1, 2, 500)
	s.save(2, 5, 10)
	s.save(3, 5, 80)
	s.save(4, 1, 9999)

	out, err := s.repo.Top(s.ctx, player.TopInput{Limit: 3})
	s.Require().NoError(err)
	s.Require().Len(out.Players, 3)
	s.Equal(int64(3), out.Players[0].UserID)
	s.Equal(int64(2), out.Players[1].UserID)
	s.Equal(int64(1), out.Players[2].UserID)

	_, err = s.repo.Top(s.ctx, player.TopInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestTopReflectsUpdates() {
	s.save(1, 2, 0)
	s.save(2, 1, 0)
	s.save(2, 9, 0)

	out, err := s.repo.Top(s.ctx, player.TopInput{Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(out.Players, 1)
	s.Equal(int64(2), out.Players[0].UserID)
}

func TestFileRepositoryPersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	ctx := context.Background()

	repo, err := player.NewFile(&player.FileConfig{Path: path})
	require.NoError(t, err)
	p := testutils.CreateTestPlayer(testutils.TestUserID)
	p.Gold = 77
	_, err = repo.Save(ctx, player.SaveInput{Player: p})
	require.NoError(t, err)

	reopened, err := player.NewFile(&player.FileConfig{Path: path})
	require.NoError(t, err)
	out, err := reopened.Get(ctx, player.GetInput{ID: testutils.TestUserID})
	require.NoError(t, err)
	assert.Equal(t, 77, out.Player.Gold)
}

func TestFileRepositoryMalformedFileStartsEmpty(t *testing.T) {
	for name, body := range map[string]string{
		"not json": "not valid json {",
		"not dict": `["not", "a", "dict"]`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "players.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
			repo, err := player.NewFile(&player.FileConfig{Path: path})
			require.NoError(t, err)
			out, err := repo.List(context.Background(), player.ListInput{})
			require.NoError(t, err)
			assert.Empty(t, out.Players)
		})
	}
}

func TestFileRepositoryRecoversIDFromKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"555": {"hp": 40, "level": 2}}`), 0o600))
	repo, err := player.NewFile(&player.FileConfig{Path: path})
	require.NoError(t, err)
	out, err := repo.Get(context.Background(), player.GetInput{ID: 555})
	require.NoError(t, err)
	assert.Equal(t, 40, out.Player.HP)
	assert.Equal(t, int64(555), out.Player.UserID)
}

func TestRedisRepositoryCleansStaleIndex(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()
	ctx := context.Background()

	repo, err := player.NewRedis(&player.RedisConfig{Client: client})
	require.NoError(t, err)
	for _, id := range []int64{1, 2} {
		_, err = repo.Save(ctx, player.SaveInput{Player: testutils.CreateTestPlayer(id)})
		require.NoError(t, err)
	}

	mr.Del("player:1")

	out, err := repo.Top(ctx, player.TopInput{Limit: 10})
	require.NoError(t, err)
	require.Len(t, out.Players, 1)
	assert.Equal(t, int64(2), out.Players[0].UserID)

	members, err := mr.SMembers("player:index")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, members)
}

func TestRedisRepositoryCorruptRecord(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	repo, err := player.NewRedis(&player.RedisConfig{Client: client})
	require.NoError(t, err)
	require.NoError(t, mr.Set("player:9", "{broken"))

	_, err = repo.Get(context.Background(), player.GetInput{ID: 9})
	require.Error(t, err)
	assert.Equal(t, errors.CodeDataLoss, errors.GetCode(err))
}

func TestRedisRepositoryListingsSkipCorruptRecord(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()
	ctx := context.Background()

	repo, err := player.NewRedis(&player.RedisConfig{Client: client})
	require.NoError(t, err)
	for _, id := range []int64{1, 2} {
		_, err = repo.Save(ctx, player.SaveInput{Player: testutils.CreateTestPlayer(id)})
		require.NoError(t, err)
	}
	require.NoError(t, mr.Set("player:1", "{broken"))

	top, err := repo.Top(ctx, player.TopInput{Limit: 10})
	require.NoError(t, err)
	require.Len(t, top.Players, 1)
	assert.Equal(t, int64(2), top.Players[0].UserID)

	list, err := repo.List(ctx, player.ListInput{})
	require.NoError(t, err)
	require.Len(t, list.Players, 1)
	assert.Equal(t, int64(2), list.Players[0].UserID)

	members, err := mr.SMembers("player:index")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2"}, members)
}
