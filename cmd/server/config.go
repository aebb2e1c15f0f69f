package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/clock"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/roller"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/redis"
	playerrepo "github.com/Richard10-cpu/termux-telegram-rpg/internal/repositories/player"
)

// Player stores
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreFile   = "file"
)

// Config holds the server settings collected from flags
type Config struct {
	Port        int
	Store       string
	RedisAddr   string
	DataFile    string
	ContentPath string
	Seed        int64
	EliteChance int
	LogLevel    string
}

// Validate checks the settings before anything is built
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("Port", c.Port, 1, 65535, vb)
	errors.ValidateEnum("Store", c.Store, []string{StoreMemory, StoreRedis, StoreFile}, vb)
	if c.Store == StoreRedis {
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	}
	if c.Store == StoreFile {
		errors.ValidateRequired("DataFile", c.DataFile, vb)
	}
	errors.ValidateRange("EliteChance", c.EliteChance, 0, 100, vb)
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.InvalidField("LogLevel", err.Error())
	}

	return vb.Build()
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return lvl, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return lvl, nil
}

func loadCatalog(path string) (*content.Catalog, error) {
	if path == "" {
		return content.Default(), nil
	}
	return content.LoadFile(path)
}

// newRoller returns a reproducible roller for a non-zero seed
func newRoller(seed int64) dice.Roller {
	if seed == 0 {
		return dice.DefaultRoller
	}
	return roller.NewSeeded(seed)
}

// openRepository builds the configured player store. The cleanup func
// releases its connections.
func openRepository(ctx context.Context, cfg *Config, clk clock.Clock) (playerrepo.Repository, func(), error) {
	noop := func() {}

	switch cfg.Store {
	case StoreRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
			PoolSize:        10,
			ConnMaxIdleTime: 5 * time.Minute,
			MaxRetries:      3,
		})
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() { _ = client.Close() } // nolint:errcheck // safe to ignore in cleanup

		if err := redis.Ping(ctx, client); err != nil {
			cleanup()
			return nil, noop, err
		}
		repo, err := playerrepo.NewRedis(&playerrepo.RedisConfig{Client: client, Clock: clk})
		if err != nil {
			cleanup()
			return nil, noop, err
		}
		return repo, cleanup, nil

	case StoreFile:
		repo, err := playerrepo.NewFile(&playerrepo.FileConfig{Path: cfg.DataFile, Clock: clk})
		if err != nil {
			return nil, noop, err
		}
		return repo, noop, nil

	default:
		return playerrepo.NewInMemory(), noop, nil
	}
}
