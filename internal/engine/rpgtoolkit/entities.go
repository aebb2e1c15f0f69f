package rpgtoolkit

import (
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
)

// Entity types reported through core.Entity
const (
	EntityTypePlayer  = "player"
	EntityTypeMonster = "monster"
)

// PlayerEntity wraps a player to implement core.Entity
type PlayerEntity struct {
	player *entities.Player
}

// NewPlayerEntity wraps p
func NewPlayerEntity(p *entities.Player) *PlayerEntity {
	return &PlayerEntity{player: p}
}

// GetID returns the player's user id
func (e *PlayerEntity) GetID() string {
	return strconv.FormatInt(e.player.UserID, 10)
}

// GetType returns the entity type
func (e *PlayerEntity) GetType() string {
	return EntityTypePlayer
}

// Player returns the wrapped player
func (e *PlayerEntity) Player() *entities.Player {
	return e.player
}

// MonsterEntity wraps a fought monster to implement core.Entity
type MonsterEntity struct {
	id   string
	key  string
	name string
	boss bool
}

// GetID returns the battle id, or the monster key for an instant fight
func (e *MonsterEntity) GetID() string {
	return e.id
}

// GetType returns the entity type
func (e *MonsterEntity) GetType() string {
	return EntityTypeMonster
}

// Key returns the monster's catalog key
func (e *MonsterEntity) Key() string {
	return e.key
}

// Name returns the monster's display name
func (e *MonsterEntity) Name() string {
	return e.name
}

// IsBoss reports whether the monster is a story boss
func (e *MonsterEntity) IsBoss() bool {
	return e.boss
}

func wrapPlayer(p *entities.Player) core.Entity {
	return NewPlayerEntity(p)
}

func wrapBattle(b *entities.BattleState) core.Entity {
	return &MonsterEntity{id: b.ID, key: b.MonsterKey, name: b.MonsterName, boss: b.IsBoss}
}

func wrapMonster(m *content.Monster) core.Entity {
	return &MonsterEntity{id: m.Key, key: m.Key, name: m.Name, boss: m.Boss}
}
