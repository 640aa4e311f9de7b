package seating

import (
	"io"

	"settle/internal/core"
)

func init() {
	core.Register("seating", func(cfg map[string]string, input io.Reader) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		l, err := Parse(input, c)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
