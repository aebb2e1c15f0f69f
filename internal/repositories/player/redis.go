package player

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/clock"
	redisclient "github.com/Richard10-cpu/termux-telegram-rpg/internal/redis"
)

const (
	playerKeyPrefix = "player:"
	indexKey        = "player:index"
	leaderboardKey  = "player:leaderboard"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis player repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func playerKey(id int64) string {
	return playerKeyPrefix + strconv.FormatInt(id, 10)
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument(errPlayerIDZero)
	}

	result, err := r.client.Get(ctx, playerKey(input.ID)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("player %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get player")
	}

	var p entities.Player
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal player data")
	}

	return &GetOutput{Player: &p}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	p := input.Player
	if p.UserID == 0 {
		return nil, errors.InvalidArgument(errPlayerIDZero)
	}

	p.UpdatedAt = r.clock.Now().Unix()
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player data")
	}

	member := strconv.FormatInt(p.UserID, 10)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, playerKey(p.UserID), data, 0)
	pipe.SAdd(ctx, indexKey, member)
	pipe.ZAdd(ctx, leaderboardKey, redisclient.Z{Score: rankScore(p), Member: member})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save player")
	}

	return &SaveOutput{Player: p}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument(errPlayerIDZero)
	}

	exists, err := r.client.Exists(ctx, playerKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("player %d not found", input.ID)
	}

	member := strconv.FormatInt(input.ID, 10)
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, playerKey(input.ID))
	pipe.SRem(ctx, indexKey, member)
	pipe.ZRem(ctx, leaderboardKey, member)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete player")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read player index")
	}

	players, err := r.loadMembers(ctx, ids)
	if err != nil {
		return nil, err
	}
	sortByID(players)

	return &ListOutput{Players: players}, nil
}

func (r *redisRepository) Top(ctx context.Context, input TopInput) (*TopOutput, error) {
	if input.Limit <= 0 {
		return nil, errors.InvalidArgument(errLimitInvalid)
	}

	ids, err := r.client.ZRevRange(ctx, leaderboardKey, 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read leaderboard")
	}

	players, err := r.loadMembers(ctx, ids)
	if err != nil {
		return nil, err
	}
	// Scores are written with the record, sorting again settles equal scores.
	sortByRank(players)

	return &TopOutput{Players: players}, nil
}

// loadMembers fetches players named by index members. Members whose record
// is gone are removed from the indexes. Undecodable records are skipped but
// stay indexed for the repair script.
func (r *redisRepository) loadMembers(ctx context.Context, members []string) ([]*entities.Player, error) {
	players := make([]*entities.Player, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil || id == 0 {
			slog.WarnContext(ctx, "dropping malformed player index member", "member", member)
			r.dropMember(ctx, member)
			continue
		}

		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "player not found, cleaning up index", "player_id", id)
				r.dropMember(ctx, member)
				continue
			}
			if errors.GetCode(err) == errors.CodeDataLoss {
				slog.ErrorContext(ctx, "skipping undecodable player record",
					"player_id", id,
					"error", err.Error())
				continue
			}
			slog.ErrorContext(ctx, "failed to get player from Redis",
				"player_id", id,
				"error", err.Error())
			return nil, err
		}
		players = append(players, out.Player)
	}
	return players, nil
}

func (r *redisRepository) dropMember(ctx context.Context, member string) {
	pipe := r.client.TxPipeline()
	pipe.SRem(ctx, indexKey, member)
	pipe.ZRem(ctx, leaderboardKey, member)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.WarnContext(ctx, "failed to clean up player index", "member", member, "error", err)
	}
}
