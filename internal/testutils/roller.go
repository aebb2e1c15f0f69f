package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller returns queued values in order. Once the script runs out it
// returns Fallback, or 1 when Fallback is unset. Values above the die size
// are clamped so a script can say "max" with a large number.
type ScriptedRoller struct {
	mu       sync.Mutex
	script   []int
	calls    []int
	Fallback int
	Err      error
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller that replays values
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{script: values}
}

// Push appends values to the script
func (r *ScriptedRoller) Push(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.script = append(r.script, values...)
}

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return 0, r.Err
	}
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	r.calls = append(r.calls, size)

	v := r.Fallback
	if len(r.script) > 0 {
		v = r.script[0]
		r.script = r.script[1:]
	}
	return min(max(v, 1), size), nil
}

// RollN rolls count dice of the given size
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for range count {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Calls returns the die sizes rolled so far
func (r *ScriptedRoller) Calls() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.calls...)
}

// Remaining is the number of unused scripted values
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.script)
}
