// Package terminal holds the platform specific console operations: clearing
// the screen and sizing the window to fit a grid. Both are cosmetic and
// never stop a simulation when they fail.
package terminal

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	// minViewportCols keeps the header line readable on narrow grids
	minViewportCols = 32

	unixClearCmd    = "clear"
	windowsShellCmd = "cmd"
)

// ErrUnsupportedPlatform marks an operating system without a known clear or
// resize command
var ErrUnsupportedPlatform = errors.New("operating system is not supported")

// Control is the console capability the simulation depends on
type Control interface {
	// Clear wipes the console before a new frame
	Clear() error
	// ResizeFor sizes the console to comfortably fit a rows x cols grid
	ResizeFor(rows, cols int) error
}

// commandRunner runs an external command with its stdout sent to out
type commandRunner func(out io.Writer, name string, args ...string) error

func execCommand(out io.Writer, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = out
	return cmd.Run()
}

// New selects the Control implementation for goos, usually runtime.GOOS
func New(goos string, out io.Writer) Control {
	switch goos {
	case "windows":
		return &windowsControl{out: out, run: execCommand}
	case "linux", "darwin":
		return &unixControl{out: out, run: execCommand}
	default:
		return &unsupportedControl{out: out, goos: goos}
	}
}

// IsSupported reports whether c clears and resizes the console
func IsSupported(c Control) bool {
	_, unsupported := c.(*unsupportedControl)
	return !unsupported
}

// viewport returns the cell grid size widened to the minimum header width.
// Each cell is two characters wide.
func viewport(cols int) int {
	return 2 * max(cols, minViewportCols)
}

type windowsControl struct {
	out io.Writer
	run commandRunner
}

func (w *windowsControl) Clear() error {
	if err := w.run(w.out, windowsShellCmd, "/c", "cls"); err != nil {
		return errors.Wrap(err, "[windowsControl.Clear] failed to run cls")
	}
	return nil
}

func (w *windowsControl) ResizeFor(rows, cols int) error {
	err := w.run(w.out, windowsShellCmd, "/c", "mode", "con:",
		fmt.Sprintf("cols=%d", viewport(cols)),
		fmt.Sprintf("lines=%d", rows+5),
	)
	if err != nil {
		return errors.Wrapf(err, "[windowsControl.ResizeFor] failed to resize to %dx%d", rows, cols)
	}
	return nil
}

type unixControl struct {
	out io.Writer
	run commandRunner
}

func (u *unixControl) Clear() error {
	if err := u.run(u.out, unixClearCmd); err != nil {
		return errors.Wrap(err, "[unixControl.Clear] failed to run clear")
	}
	return nil
}

// ResizeFor sends the xterm window manipulation sequence CSI 8 ; h ; w t
func (u *unixControl) ResizeFor(rows, cols int) error {
	if _, err := fmt.Fprintf(u.out, "\x1b[8;%d;%dt", rows+3, viewport(cols)); err != nil {
		return errors.Wrapf(err, "[unixControl.ResizeFor] failed to resize to %dx%d", rows, cols)
	}
	return nil
}

// unsupportedControl reports the platform problem and carries on
type unsupportedControl struct {
	out  io.Writer
	goos string
}

func (u *unsupportedControl) Clear() error {
	fmt.Fprintf(u.out, "Unable to clear the terminal: %v (%s)\r\n", ErrUnsupportedPlatform, u.goos)
	return nil
}

func (u *unsupportedControl) ResizeFor(_, _ int) error {
	fmt.Fprintf(u.out, "Unable to resize the terminal: %v (%s)\r\n", ErrUnsupportedPlatform, u.goos)
	return nil
}
