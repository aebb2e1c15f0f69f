package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	gen := idgen.NewSequential("battle")
	assert.Equal(t, "battle_1", gen.Generate())
	assert.Equal(t, "battle_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}

func TestUUID(t *testing.T) {
	gen := idgen.NewUUID("battle")
	a, b := gen.Generate(), gen.Generate()

	assert.True(t, strings.HasPrefix(a, "battle_"))
	assert.NotEqual(t, a, b)
	assert.Len(t, idgen.NewUUID("").Generate(), 36)
}
