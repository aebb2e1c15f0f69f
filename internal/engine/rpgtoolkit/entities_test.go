package rpgtoolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
)

func TestPlayerEntity(t *testing.T) {
	p := entities.NewPlayer(42, 0, "village")
	e := wrapPlayer(p)

	assert.Equal(t, "42", e.GetID())
	assert.Equal(t, EntityTypePlayer, e.GetType())
	assert.Same(t, p, e.(*PlayerEntity).Player())
}

func TestMonsterEntity(t *testing.T) {
	b := &entities.BattleState{ID: "battle_7", MonsterKey: "wolf", MonsterName: "Wolf"}
	e := wrapBattle(b).(*MonsterEntity)
	assert.Equal(t, "battle_7", e.GetID())
	assert.Equal(t, EntityTypeMonster, e.GetType())
	assert.Equal(t, "wolf", e.Key())
	assert.False(t, e.IsBoss())

	m := &content.Monster{Key: "boss", Name: "Orc Warlord", Boss: true}
	e = wrapMonster(m).(*MonsterEntity)
	assert.Equal(t, "boss", e.GetID())
	assert.Equal(t, "Orc Warlord", e.Name())
	assert.True(t, e.IsBoss())
}
