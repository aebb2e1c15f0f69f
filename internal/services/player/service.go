// Package player defines the player session service: serialized, cached
// access to player records.
package player

//go:generate mockgen -destination=mock/mock_service.go -package=playermock github.com/Richard10-cpu/termux-telegram-rpg/internal/services/player Service

import (
	"context"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
)

// Service serializes every change to a player. Callers never hold the live
// record: Get returns a copy and Update hands a copy to the mutation.
type Service interface {
	// Get loads a player, creating and saving a new one on first contact
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Update runs Mutate on a copy of the player under the player's lock.
	// A Mutate error discards the copy. A failed save is reported through
	// UpdateOutput.Degraded, the new state is kept in memory.
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// Delete forgets a player in the cache and the store
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// Top returns the leaderboard
	Top(ctx context.Context, input *TopInput) (*TopOutput, error)
}

// MutateFunc changes a player in place
type MutateFunc func(p *entities.Player) error

// GetInput defines the request for loading a player
type GetInput struct {
	PlayerID int64
}

// GetOutput defines the response for loading a player
type GetOutput struct {
	Player   *entities.Player
	Created  bool
	Degraded bool
}

// UpdateInput defines the request for changing a player
type UpdateInput struct {
	PlayerID int64
	Mutate   MutateFunc
}

// UpdateOutput is the player after the mutation
type UpdateOutput struct {
	Player   *entities.Player
	Degraded bool
	// SaveError is the persistence failure behind Degraded
	SaveError error
}

// DeleteInput defines the request for deleting a player
type DeleteInput struct {
	PlayerID int64
}

// DeleteOutput defines the response for deleting a player
type DeleteOutput struct{}

// TopInput defines the request for the leaderboard
type TopInput struct {
	Limit int
}

// TopOutput defines the response for the leaderboard
type TopOutput struct {
	Players []*entities.Player
}
