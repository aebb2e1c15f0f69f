package player

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/clock"
)

// DefaultDataFile is the flat file the bot has always used
const DefaultDataFile = "players_rpg.json"

// FileConfig contains configuration for the JSON file repository.
type FileConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

// FileRepository keeps every player in one JSON object keyed by user id.
// The whole file is rewritten on each change.
type FileRepository struct {
	mu    sync.Mutex
	path  string
	clock clock.Clock
	data  map[string]*entities.Player
}

// NewFile opens or creates the data file. An unreadable or malformed file
// is logged and replaced by an empty store on the next write.
func NewFile(cfg *FileConfig) (*FileRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	r := &FileRepository{
		path:  cfg.Path,
		clock: c,
		data:  make(map[string]*entities.Player),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepository) load() error {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read %s", r.path)
	}
	if len(raw) == 0 {
		return nil
	}

	var data map[string]*entities.Player
	if err := json.Unmarshal(raw, &data); err != nil {
		slog.Warn("player data file is malformed, starting empty",
			"path", r.path,
			"error", err)
		return nil
	}
	for key, p := range data {
		if p == nil {
			delete(data, key)
			continue
		}
		if p.UserID == 0 {
			if id, err := strconv.ParseInt(key, 10, 64); err == nil {
				p.UserID = id
			}
		}
	}
	r.data = data
	return nil
}

// flush writes the file through a temp file and rename
func (r *FileRepository) flush() error {
	raw, err := json.MarshalIndent(r.data, "", "    ")
	if err != nil {
		return errors.Wrapf(err, "failed to marshal player data")
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "failed to write player data")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close temp file")
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", r.path)
	}
	return nil
}

func fileKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Get retrieves a player by ID
func (r *FileRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument(errPlayerIDZero)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.data[fileKey(input.ID)]
	if !ok {
		return nil, errors.NotFoundf("player %d not found", input.ID)
	}
	return &GetOutput{Player: p.Clone()}, nil
}

// Save stores a player and rewrites the file
func (r *FileRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.UserID == 0 {
		return nil, errors.InvalidArgument(errPlayerIDZero)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	input.Player.UpdatedAt = r.clock.Now().Unix()
	key := fileKey(input.Player.UserID)
	prev, had := r.data[key]
	r.data[key] = input.Player.Clone()
	if err := r.flush(); err != nil {
		if had {
			r.data[key] = prev
		} else {
			delete(r.data, key)
		}
		return nil, err
	}
	return &SaveOutput{Player: input.Player}, nil
}

// Delete removes a player and rewrites the file
func (r *FileRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fileKey(input.ID)
	prev, ok := r.data[key]
	if !ok {
		return nil, errors.NotFoundf("player %d not found", input.ID)
	}
	delete(r.data, key)
	if err := r.flush(); err != nil {
		r.data[key] = prev
		return nil, err
	}
	return &DeleteOutput{}, nil
}

// List returns all players
func (r *FileRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	players := r.snapshot()
	sortByID(players)
	return &ListOutput{Players: players}, nil
}

// Top returns the leaderboard
func (r *FileRepository) Top(_ context.Context, input TopInput) (*TopOutput, error) {
	if input.Limit <= 0 {
		return nil, errors.InvalidArgument(errLimitInvalid)
	}
	players := r.snapshot()
	sortByRank(players)
	if len(players) > input.Limit {
		players = players[:input.Limit]
	}
	return &TopOutput{Players: players}, nil
}

func (r *FileRepository) snapshot() []*entities.Player {
	r.mu.Lock()
	defer r.mu.Unlock()

	players := make([]*entities.Player, 0, len(r.data))
	for _, p := range r.data {
		players = append(players, p.Clone())
	}
	return players
}

var (
	_ Repository = (*FileRepository)(nil)
	_ Repository = (*InMemoryRepository)(nil)
)
