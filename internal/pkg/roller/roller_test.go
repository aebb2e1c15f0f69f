package roller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/roller"
)

func TestSeededIsReproducible(t *testing.T) {
	a, b := roller.NewSeeded(42), roller.NewSeeded(42)

	ra, err := a.RollN(20, 6)
	require.NoError(t, err)
	rb, err := b.RollN(20, 6)
	require.NoError(t, err)

	assert.Equal(t, ra, rb)
	assert.Equal(t, int64(42), a.Seed())
}

func TestSeededBounds(t *testing.T) {
	r := roller.NewSeeded(7)
	for i := 0; i < 500; i++ {
		v, err := r.Roll(100)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 100)
	}
}

func TestSeededRejectsBadSize(t *testing.T) {
	_, err := roller.NewSeeded(1).Roll(0)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = roller.NewSeeded(1).RollN(-1, 6)
	assert.True(t, errors.IsInvalidArgument(err))
}
