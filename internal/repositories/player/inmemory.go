package player

import (
	"context"
	"sync"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage.
// Records are cloned on the way in and out.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[int64]*entities.Player
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[int64]*entities.Player),
	}
}

// Get retrieves a player by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument(errPlayerIDZero)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("player %d not found", input.ID)
	}
	return &GetOutput{Player: p.Clone()}, nil
}

// Save stores a player
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.UserID == 0 {
		return nil, errors.InvalidArgument(errPlayerIDZero)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Player.UserID] = input.Player.Clone()
	return &SaveOutput{Player: input.Player}, nil
}

// Delete removes a player
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("player %d not found", input.ID)
	}
	delete(r.store, input.ID)
	return &DeleteOutput{}, nil
}

// List returns all players
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	players := r.snapshot()
	sortByID(players)
	return &ListOutput{Players: players}, nil
}

// Top returns the leaderboard
func (r *InMemoryRepository) Top(_ context.Context, input TopInput) (*TopOutput, error) {
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

func (r *InMemoryRepository) snapshot() []*entities.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make([]*entities.Player, 0, len(r.store))
	for _, p := range r.store {
		players = append(players, p.Clone())
	}
	return players
}
