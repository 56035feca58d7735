package core

import "github.com/vovakirdan/tui-snake/internal/engine"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionRestart        // R, only honored after game over
	ActionQuit           // Q, Ctrl+C
	ActionHelp           // ? toggles the help footer
	ActionBack           // Esc, B - leave the game for the session menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// Direction returns the engine direction for a steering action.
func (a Action) Direction() (engine.Direction, bool) {
	switch a {
	case ActionUp:
		return engine.Up, true
	case ActionDown:
		return engine.Down, true
	case ActionLeft:
		return engine.Left, true
	case ActionRight:
		return engine.Right, true
	}
	return 0, false
}

// Binding lists the key names for one action in Bubble Tea's notation
// ("up", "w", "ctrl+c"). Frontends translate their own events to these names.
type Binding struct {
	Action  Action
	Keys    []string
	HelpKey string
	Help    string
}

var bindings = []Binding{
	{ActionUp, []string{"up", "w", "k"}, "↑/w/k", "up"},
	{ActionDown, []string{"down", "s", "j"}, "↓/s/j", "down"},
	{ActionLeft, []string{"left", "a", "h"}, "←/a/h", "left"},
	{ActionRight, []string{"right", "d", "l"}, "→/d/l", "right"},
	{ActionRestart, []string{"r"}, "r", "restart"},
	{ActionHelp, []string{"?"}, "?", "toggle help"},
	{ActionBack, []string{"esc", "b"}, "esc/b", "menu"},
	{ActionQuit, []string{"q", "ctrl+c"}, "q", "quit"},
}

var keyActions = func() map[string]Action {
	m := make(map[string]Action)
	for _, b := range bindings {
		for _, k := range b.Keys {
			m[k] = b.Action
		}
	}
	return m
}()

// Bindings returns the default key bindings.
func Bindings() []Binding {
	out := make([]Binding, len(bindings))
	copy(out, bindings)
	return out
}

// ActionForKey returns the action bound to a key name, or ActionNone.
func ActionForKey(name string) Action {
	return keyActions[name]
}

// Apply forwards a game action to in. It reports whether the request was
// accepted; host-level actions such as quit and help are never accepted here.
func Apply(a Action, in engine.Input) bool {
	if d, ok := a.Direction(); ok {
		return in.OnDirectionRequest(d)
	}
	if a == ActionRestart {
		return in.OnRestartRequest()
	}
	return false
}
