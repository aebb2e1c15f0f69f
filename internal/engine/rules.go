package engine

import (
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/clock"
)

// RulesConfig configures the deterministic game rules
type RulesConfig struct {
	Catalog *content.Catalog
	Clock   clock.Clock
}

// Validate checks that all required dependencies are provided
func (c *RulesConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

// Rules covers everything that needs no dice: leveling, the daily quest,
// achievements, the story campaign and the town (travel, rest, shop).
// Methods mutate the player only after every check has passed.
type Rules struct {
	catalog *content.Catalog
	clock   clock.Clock
}

// NewRules creates the rule set
func NewRules(cfg *RulesConfig) (*Rules, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Rules{catalog: cfg.Catalog, clock: cfg.Clock}, nil
}

// Catalog returns the reference tables the rules read
func (r *Rules) Catalog() *content.Catalog {
	return r.catalog
}
