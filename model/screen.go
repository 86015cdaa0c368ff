package model

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ScreenRenderer draws frames on a full-screen tcell display. The terminal is
// taken over by Open and handed back by Close, which is safe to call more
// than once and must run on every exit path.
type ScreenRenderer struct {
	screen    tcell.Screen
	style     tcell.Style
	closeOnce sync.Once
}

func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// Open initialises the screen
func (r *ScreenRenderer) Open() error {
	if err := r.screen.Init(); err != nil {
		return errors.Wrap(err, "[ScreenRenderer.Open] failed to initialise screen")
	}
	r.screen.SetStyle(r.style)
	r.screen.Clear()
	return nil
}

// Close restores the terminal
func (r *ScreenRenderer) Close() {
	r.closeOnce.Do(r.screen.Fini)
}

// Render draws g labelled with generation
func (r *ScreenRenderer) Render(g *Grid, generation int) error {
	r.screen.Clear()
	r.drawLine(0, Header(generation))
	for row := range g.rows {
		r.drawLine(row+1, FormatRow(g, row))
	}
	r.screen.Show()
	return nil
}

func (r *ScreenRenderer) drawLine(y int, s string) {
	x := 0
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, r.style)
		x++
	}
}

// PollQuit consumes screen events until the screen is closed, calling stop
// when the user asks to quit. Raw mode turns Ctrl-C into a key event, so
// this is how an interrupt reaches a running game.
func (r *ScreenRenderer) PollQuit(stop func()) error {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if isQuitKey(ev) {
				stop()
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
