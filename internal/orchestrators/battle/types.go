package battle

import (
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
)

// StartBattleInput defines the request for starting a fight
type StartBattleInput struct {
	PlayerID int64
}

// StartBattleOutput defines the response for starting a fight
type StartBattleOutput struct {
	Player  *entities.Player
	Battle  *entities.BattleState
	Chapter *content.Chapter
	Message string
	// Degraded is set when the new state could not be persisted
	Degraded bool
}

// ActionInput defines the request for a battle action without arguments
type ActionInput struct {
	PlayerID int64
}

// CastSpellInput defines the request for casting a spell
type CastSpellInput struct {
	PlayerID int64
	SpellKey string
}

// UsePotionInput defines the request for drinking a potion
type UsePotionInput struct {
	PlayerID  int64
	PotionKey string
}

// TurnOutput defines the response for one battle round
type TurnOutput struct {
	Player   *entities.Player
	Turn     *engine.TurnOutput
	Degraded bool
}

// SimulateBattleInput defines the request for an instant fight. An empty
// MonsterKey fights what StartBattle would; a named monster must be one the
// player could meet at their location and level.
type SimulateBattleInput struct {
	PlayerID   int64
	MonsterKey string
}

// SimulateBattleOutput defines the response for an instant fight
type SimulateBattleOutput struct {
	Player   *entities.Player
	Result   *engine.SimulateBattleOutput
	Degraded bool
}
