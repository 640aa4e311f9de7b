package seating

import (
	"fmt"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"settle/internal/core"
)

// Config holds parameters for the seating automaton.
type Config struct {
	Policy Policy `mapstructure:"policy"`
	// Workers is the number of goroutines evaluating the read phase.
	Workers int `mapstructure:"workers"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Policy: Adjacent, Workers: 1}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are errors.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &c,
	})
	if err != nil {
		return c, err
	}
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("seating config: %w", err)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c, nil
}

// Parameters reports the layout's configuration and dimensions.
func (l *Layout) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Neighbors",
			Params: []core.Parameter{
				core.StringParam("policy", "Policy", l.cfg.Policy.String(), "adjacent or line-of-sight neighbor detection"),
			},
			Summary: "occupants leave at " + strconv.Itoa(l.cfg.Policy.Threshold()) + " occupied neighbors",
		},
		{
			Name: "Execution",
			Params: []core.Parameter{
				core.IntParam("workers", "Workers", l.cfg.Workers, "goroutines sharing the read phase"),
			},
		},
		{
			Name:    "Grid",
			Summary: strconv.Itoa(l.Rows()) + "x" + strconv.Itoa(l.Columns()),
		},
	}}
}
