package tiles

import (
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"

	"settle/internal/core"
)

// DefaultDays is the number of generations a floor runs by default.
const DefaultDays = 100

// Config holds parameters for the tile automaton.
type Config struct {
	Days int `mapstructure:"days"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Days: DefaultDays}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if err := mapstructure.WeakDecode(cfg, &c); err != nil {
		return DefaultConfig(), fmt.Errorf("tiles config: %w", err)
	}
	if c.Days < 0 {
		return DefaultConfig(), fmt.Errorf("tiles config: days must not be negative, got %d", c.Days)
	}
	return c, nil
}

// Parameters reports the floor's configuration.
func (f *Floor) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Schedule",
			Params: []core.Parameter{
				core.IntParam("days", "Days", f.cfg.Days, "generations to run"),
			},
			Summary: "fixed generation count, no convergence test",
		},
	}}
}

func init() {
	core.Register("tiles", func(cfg map[string]string, input io.Reader) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		f, err := Parse(input, c)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}
