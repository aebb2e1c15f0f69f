package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/clock"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/redis"
	playerrepo "github.com/Richard10-cpu/termux-telegram-rpg/internal/repositories/player"
)

// Rewrites every stored player through Player.Normalize so records written by
// older versions get their missing collections, quest and story back.
//
// Records without a location move to the content's start location; set
// CONTENT to the server's --content file when it is not the built-in one.
//
//	REDIS_URL=redis://localhost:6379 DRY_RUN=1 go run ./scripts/normalize-players.go
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	dryRun := os.Getenv("DRY_RUN") != ""

	catalog := content.Default()
	if path := os.Getenv("CONTENT"); path != "" {
		var err error
		if catalog, err = content.LoadFile(path); err != nil {
			log.Fatal("Failed to load content:", err)
		}
	}
	start := catalog.StartLocation()

	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client, err := redis.NewClient(opt.Addr, &redis.Options{Password: opt.Password, DB: opt.DB})
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	defer client.Close()

	ctx := context.Background()

	if err := redis.Ping(ctx, client); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	repo, err := playerrepo.NewRedis(&playerrepo.RedisConfig{Client: client, Clock: clock.New()})
	if err != nil {
		log.Fatal("Failed to create player repository:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning player records...")

	iter := client.Scan(ctx, 0, "player:*", 0).Iterator()

	var fixed, corrupted []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		id, err := strconv.ParseInt(strings.TrimPrefix(key, "player:"), 10, 64)
		if err != nil {
			// index and leaderboard
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var p entities.Player
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corrupted = append(corrupted, key)
			continue
		}
		if p.UserID == 0 {
			p.UserID = id
		}

		before, _ := json.Marshal(&p) // nolint:errcheck // decoded above
		p.Normalize(start)
		after, _ := json.Marshal(&p) // nolint:errcheck // decoded above
		if string(before) == string(after) {
			continue
		}

		fmt.Printf("✎ %s needs normalizing\n", key)
		fixed = append(fixed, key)
		if dryRun {
			continue
		}
		if _, err := repo.Save(ctx, playerrepo.SaveInput{Player: &p}); err != nil {
			fmt.Printf("Error saving %s: %v\n", key, err)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d players\n", checkedCount)
	fmt.Printf("Normalized %d players\n", len(fixed))
	if dryRun {
		fmt.Println("Dry run: nothing was written")
	}

	if len(corrupted) > 0 {
		fmt.Printf("\n%d records could not be decoded and were left alone:\n", len(corrupted))
		for _, key := range corrupted {
			fmt.Println("  ", key)
		}
	}
}
