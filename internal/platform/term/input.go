package term

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// KeySource turns tcell events into engine requests.
type KeySource struct {
	events   <-chan tcell.Event
	onResize func()
}

var _ engine.InputSource = (*KeySource)(nil)

// NewKeySource reads events until the channel is closed. onResize, if set,
// is called for every resize event.
func NewKeySource(events <-chan tcell.Event, onResize func()) *KeySource {
	return &KeySource{events: events, onResize: onResize}
}

// Run delivers key presses to in. It returns nil when the player quits or
// the event channel closes, and ctx.Err() when ctx is cancelled.
func (s *KeySource) Run(ctx context.Context, in engine.Input) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-s.events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action := core.ActionForKey(keyName(ev))
				if action == core.ActionQuit || action == core.ActionBack {
					return nil
				}
				core.Apply(action, in)

			case *tcell.EventResize:
				if s.onResize != nil {
					s.onResize()
				}
			}
		}
	}
}

// keyName returns the binding name of ev, as listed by core.Bindings.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}
