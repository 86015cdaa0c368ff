//go:build unix

package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-gol-console/utils"
)

// watchedScreen reports the first frame and counts how often the terminal
// was handed back
type watchedScreen struct {
	tcell.SimulationScreen
	shown    chan struct{}
	showOnce sync.Once
	finis    atomic.Int32
}

func (w *watchedScreen) Show() {
	w.SimulationScreen.Show()
	w.showOnce.Do(func() { close(w.shown) })
}

func (w *watchedScreen) Fini() {
	w.finis.Add(1)
	w.SimulationScreen.Fini()
}

func TestSessionScreenRestoresTerminalOnSIGTERM(t *testing.T) {
	config := testConfig()
	config.Rows, config.Cols = 10, 10
	config.Display = utils.DisplayScreen
	config.Pattern = utils.PatternGlider
	config.FrameDelay = 10 * time.Millisecond
	var out bytes.Buffer

	screen := &watchedScreen{
		SimulationScreen: tcell.NewSimulationScreen("UTF-8"),
		shown:            make(chan struct{}),
	}
	s := newSession(config, strings.NewReader("\n"), &out, &fakeControl{})
	s.newScreen = func() (tcell.Screen, error) { return screen, nil }

	done := make(chan error, 1)
	go func() {
		done <- s.loop(context.Background())
	}()

	select {
	case <-screen.shown:
	case <-time.After(10 * time.Second):
		t.Fatal("the game never drew a frame")
	}
	if err := syscall.Kill(os.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("kill: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("loop: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("SIGTERM did not stop the game")
	}
	if n := screen.finis.Load(); n != 1 {
		t.Fatalf("screen finalised %d times, expected once", n)
	}
	if !strings.Contains(out.String(), "Shutting down gracefully") {
		t.Fatalf("missing shutdown message in %q", out.String())
	}
}
