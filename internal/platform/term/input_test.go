package term

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

type fakeInput struct {
	dirs     []engine.Direction
	restarts int
}

func (f *fakeInput) OnDirectionRequest(d engine.Direction) bool {
	f.dirs = append(f.dirs, d)
	return true
}

func (f *fakeInput) OnRestartRequest() bool {
	f.restarts++
	return true
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{key(tcell.KeyUp), "up"},
		{key(tcell.KeyDown), "down"},
		{key(tcell.KeyLeft), "left"},
		{key(tcell.KeyRight), "right"},
		{key(tcell.KeyEscape), "esc"},
		{key(tcell.KeyCtrlC), "ctrl+c"},
		{char('w'), "w"},
		{char('?'), "?"},
		{key(tcell.KeyF1), ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, keyName(tc.ev))
	}
}

func TestKeySourceDelivers(t *testing.T) {
	events := make(chan tcell.Event, 8)
	events <- key(tcell.KeyUp)
	events <- char('a')
	events <- char('x')
	events <- char('r')
	events <- char('?')
	close(events)

	in := &fakeInput{}
	err := NewKeySource(events, nil).Run(context.Background(), in)

	assert.NoError(t, err)
	assert.Equal(t, []engine.Direction{engine.Up, engine.Left}, in.dirs)
	assert.Equal(t, 1, in.restarts)
}

func TestKeySourceStopsOnQuit(t *testing.T) {
	for _, ev := range []*tcell.EventKey{char('q'), key(tcell.KeyCtrlC), key(tcell.KeyEscape)} {
		events := make(chan tcell.Event, 2)
		events <- ev
		events <- char('r')

		in := &fakeInput{}
		assert.NoError(t, NewKeySource(events, nil).Run(context.Background(), in))
		assert.Equal(t, 0, in.restarts, "events after quit are not read")
	}
}

func TestKeySourceResize(t *testing.T) {
	events := make(chan tcell.Event, 2)
	events <- tcell.NewEventResize(100, 40)
	close(events)

	resized := 0
	src := NewKeySource(events, func() { resized++ })
	assert.NoError(t, src.Run(context.Background(), &fakeInput{}))
	assert.Equal(t, 1, resized)
}

func TestKeySourceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewKeySource(make(chan tcell.Event), nil).Run(ctx, &fakeInput{})
	assert.ErrorIs(t, err, context.Canceled)
}
