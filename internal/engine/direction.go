package engine

import (
	"fmt"
	"strings"
)

// Direction is one of the four headings the snake can move in.
type Direction int

const (
	Right Direction = iota
	Down
	Left
	Up
)

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Right && d <= Up
}

// Delta returns the unit vector for d scaled by the grid unit.
func (d Direction) Delta(unit int) Cell {
	switch d {
	case Down:
		return Cell{X: 0, Y: unit}
	case Left:
		return Cell{X: -unit, Y: 0}
	case Up:
		return Cell{X: 0, Y: -unit}
	default:
		return Cell{X: unit, Y: 0}
	}
}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// ParseDirection accepts "right", "down", "left", "up" (case-insensitive)
// or their first letter.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "r":
		return Right, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "up", "u":
		return Up, nil
	}
	return Right, fmt.Errorf("engine: unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler so snapshots serialize by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
