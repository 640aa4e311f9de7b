package tiles

import (
	"fmt"

	"settle/internal/core"
)

// Direction is one of the six hex neighbor directions.
type Direction uint8

const (
	East Direction = iota
	Southeast
	Southwest
	West
	Northwest
	Northeast
)

// Directions lists every direction in neighbor enumeration order.
var Directions = [6]Direction{East, Southeast, Southwest, West, Northwest, Northeast}

// deltas are doubled so that half steps stay integral.
var deltas = [6]Coord{
	East:      {X: 2, Y: 0},
	Southeast: {X: 1, Y: -2},
	Southwest: {X: -1, Y: -2},
	West:      {X: -2, Y: 0},
	Northwest: {X: -1, Y: 2},
	Northeast: {X: 1, Y: 2},
}

var tokens = [6]string{"e", "se", "sw", "w", "nw", "ne"}

// Delta returns the coordinate offset of one step in d.
func (d Direction) Delta() Coord { return deltas[d] }

func (d Direction) String() string {
	if int(d) < len(tokens) {
		return tokens[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirections splits an undelimited token stream over
// {e, se, sw, w, nw, ne}. Returned errors are *core.ParseError values
// carrying the 1-based column of the offending token.
func ParseDirections(line string) ([]Direction, error) {
	dirs := make([]Direction, 0, len(line))
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case 'e':
			dirs = append(dirs, East)
		case 'w':
			dirs = append(dirs, West)
		case 'n', 's':
			if i+1 >= len(line) {
				return nil, &core.ParseError{
					Kind:   core.MalformedDirectionToken,
					Column: i + 1,
					Err:    fmt.Errorf("%w %q at end of line", core.ErrMalformedDirectionToken, line[i:]),
				}
			}
			var d Direction
			switch line[i : i+2] {
			case "se":
				d = Southeast
			case "sw":
				d = Southwest
			case "nw":
				d = Northwest
			case "ne":
				d = Northeast
			default:
				return nil, &core.ParseError{
					Kind:   core.MalformedDirectionToken,
					Column: i + 1,
					Err:    fmt.Errorf("%w %q", core.ErrMalformedDirectionToken, line[i:i+2]),
				}
			}
			dirs = append(dirs, d)
			i++
		default:
			return nil, &core.ParseError{
				Kind:   core.UnexpectedCharacter,
				Column: i + 1,
				Err:    fmt.Errorf("%w %q", core.ErrUnexpectedCharacter, line[i]),
			}
		}
	}
	return dirs, nil
}
