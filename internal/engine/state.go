package engine

// Lifecycle is the coarse game state.
type Lifecycle int

const (
	Running Lifecycle = iota
	Over
)

func (l Lifecycle) String() string {
	if l == Over {
		return "over"
	}
	return "running"
}

// MarshalText implements encoding.TextMarshaler.
func (l Lifecycle) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Outcome records why a game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWall
	OutcomeSelf
	OutcomeBoardFull // snake filled the board, counted as a win
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeBoardFull:
		return "board_full"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Won reports whether the outcome counts as a win.
func (o Outcome) Won() bool {
	return o == OutcomeBoardFull
}

// State is the full game aggregate owned by a Controller.
type State struct {
	Snake     *Snake
	Food      Cell
	HasFood   bool // false only after the board filled up
	Score     int
	FoodEaten int
	Ticks     uint64
	Lifecycle Lifecycle
	Outcome   Outcome
}

// Snapshot is a serializable copy of State.
type Snapshot struct {
	Ticks     uint64    `yaml:"ticks"`
	Score     int       `yaml:"score"`
	FoodEaten int       `yaml:"food_eaten"`
	Length    int       `yaml:"length"`
	Head      Cell      `yaml:"head"`
	Direction Direction `yaml:"direction"`
	Food      Cell      `yaml:"food"`
	Lifecycle Lifecycle `yaml:"lifecycle"`
	Outcome   Outcome   `yaml:"outcome"`
}

// Snapshot returns a copy of s suitable for comparison or serialization.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Ticks:     s.Ticks,
		Score:     s.Score,
		FoodEaten: s.FoodEaten,
		Food:      s.Food,
		Lifecycle: s.Lifecycle,
		Outcome:   s.Outcome,
	}
	if s.Snake != nil {
		snap.Length = s.Snake.Len()
		snap.Head = s.Snake.Head()
		snap.Direction = s.Snake.Heading()
	}
	return snap
}
