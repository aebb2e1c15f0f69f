package player

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/clock"
	playerrepo "github.com/Richard10-cpu/termux-telegram-rpg/internal/repositories/player"
)

// Config holds the dependencies for the player manager
type Config struct {
	Repository playerrepo.Repository
	Clock      clock.Clock

	// StartLocation is where new players appear and where records without a
	// location are moved.
	StartLocation string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	errors.ValidateRequired("StartLocation", c.StartLocation, vb)
	return vb.Build()
}

// Manager implements Service with a per-player mutex and a process-wide
// cache of the latest state
type Manager struct {
	repo  playerrepo.Repository
	clock clock.Clock
	start string

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
	cache map[int64]*entities.Player
}

// NewManager creates a player manager
func NewManager(cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Manager{
		repo:  cfg.Repository,
		clock: cfg.Clock,
		start: cfg.StartLocation,
		locks: make(map[int64]*sync.Mutex),
		cache: make(map[int64]*entities.Player),
	}, nil
}

var _ Service = (*Manager)(nil)

// lock returns the held mutex for the player
func (m *Manager) lock(id int64) *sync.Mutex {
	m.mu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l
}

func (m *Manager) cached(id int64) (*entities.Player, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.cache[id]
	return p, ok
}

func (m *Manager) store(p *entities.Player) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[p.UserID] = p
}

// load returns the live record; the caller holds the player's lock
func (m *Manager) load(ctx context.Context, id int64) (*entities.Player, bool, error) {
	if p, ok := m.cached(id); ok {
		return p, false, nil
	}

	out, err := m.repo.Get(ctx, playerrepo.GetInput{ID: id})
	switch {
	case err == nil:
		p := out.Player
		p.UserID = id
		p.Normalize(m.start)
		m.store(p)
		return p, false, nil
	case errors.IsNotFound(err):
		p := entities.NewPlayer(id, m.clock.Now().Unix(), m.start)
		m.store(p)
		slog.InfoContext(ctx, "created player", "player_id", id)
		return p, true, nil
	default:
		return nil, false, errors.Wrapf(err, "failed to load player %d", id)
	}
}

// save persists a copy; failure is logged and returned, never fatal
func (m *Manager) save(ctx context.Context, p *entities.Player) error {
	if _, err := m.repo.Save(ctx, playerrepo.SaveInput{Player: p.Clone()}); err != nil {
		slog.WarnContext(ctx, "failed to save player, keeping in-memory state",
			"player_id", p.UserID,
			"error", err)
		return err
	}
	return nil
}

// Get loads a player, creating and saving a new one on first contact
func (m *Manager) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.PlayerID == 0 {
		return nil, errors.InvalidArgument("player ID is required")
	}

	l := m.lock(input.PlayerID)
	defer l.Unlock()

	p, created, err := m.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	out := &GetOutput{Player: p.Clone(), Created: created}
	if created {
		out.Degraded = m.save(ctx, p) != nil
	}
	return out, nil
}

// Update applies the mutation to a copy and saves it
func (m *Manager) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil || input.PlayerID == 0 {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.Mutate == nil {
		return nil, errors.InvalidArgument("mutate is required")
	}

	l := m.lock(input.PlayerID)
	defer l.Unlock()

	p, _, err := m.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	working := p.Clone()
	if err := input.Mutate(working); err != nil {
		return nil, err
	}
	working.UserID = input.PlayerID
	m.store(working)

	out := &UpdateOutput{Player: working.Clone()}
	if err := m.save(ctx, working); err != nil {
		out.Degraded = true
		out.SaveError = err
	}
	return out, nil
}

// Delete forgets a player in the cache and the store
func (m *Manager) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.PlayerID == 0 {
		return nil, errors.InvalidArgument("player ID is required")
	}

	l := m.lock(input.PlayerID)
	defer l.Unlock()

	m.mu.Lock()
	_, wasCached := m.cache[input.PlayerID]
	delete(m.cache, input.PlayerID)
	m.mu.Unlock()

	if _, err := m.repo.Delete(ctx, playerrepo.DeleteInput{ID: input.PlayerID}); err != nil {
		if errors.IsNotFound(err) && wasCached {
			return &DeleteOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to delete player %d", input.PlayerID)
	}
	return &DeleteOutput{}, nil
}

// Top returns the leaderboard from the store
func (m *Manager) Top(ctx context.Context, input *TopInput) (*TopOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.InvalidArgument("limit must be positive")
	}

	out, err := m.repo.Top(ctx, playerrepo.TopInput{Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read leaderboard")
	}
	return &TopOutput{Players: out.Players}, nil
}
