// Package player provides the interface for player persistence
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/Richard10-cpu/termux-telegram-rpg/internal/repositories/player Repository

import (
	"context"
	"sort"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
)

// Repository defines the interface for player persistence. Stores hold
// whole player records keyed by user id.
type Repository interface {
	// Get retrieves a player by user ID
	// Returns errors.InvalidArgument for a zero ID
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces a player
	// Returns errors.InvalidArgument for a nil player or zero ID
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a player
	// Returns errors.NotFound if the player doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every stored player ordered by user ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Top returns the best players by level, then gold
	Top(ctx context.Context, input TopInput) (*TopOutput, error)
}

// GetInput defines the input for getting a player
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting a player
type GetOutput struct {
	Player *entities.Player
}

// SaveInput defines the input for saving a player
type SaveInput struct {
	Player *entities.Player
}

// SaveOutput defines the output for saving a player
type SaveOutput struct {
	Player *entities.Player
}

// DeleteInput defines the input for deleting a player
type DeleteInput struct {
	ID int64
}

// DeleteOutput defines the output for deleting a player
type DeleteOutput struct{}

// ListInput defines the input for listing players
type ListInput struct{}

// ListOutput defines the output for listing players
type ListOutput struct {
	Players []*entities.Player
}

// TopInput defines the input for the leaderboard
type TopInput struct {
	Limit int
}

// TopOutput defines the output for the leaderboard
type TopOutput struct {
	Players []*entities.Player
}

// Error messages
const (
	errPlayerNil    = "player cannot be nil"
	errPlayerIDZero = "player ID cannot be zero"
	errLimitInvalid = "limit must be positive"
)

// rankScore orders players by level first and gold second
func rankScore(p *entities.Player) float64 {
	return float64(p.Level)*1e9 + float64(p.Gold)
}

// sortByRank sorts best first, breaking ties by user ID
func sortByRank(players []*entities.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		if a.Gold != b.Gold {
			return a.Gold > b.Gold
		}
		return a.UserID < b.UserID
	})
}

func sortByID(players []*entities.Player) {
	sort.Slice(players, func(i, j int) bool { return players[i].UserID < players[j].UserID })
}
