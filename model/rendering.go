package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-console/terminal"
)

const (
	gridPosAlive = "■ "
	gridPosDead  = ". "
	lineEnd      = "\r\n"

	headerFormat = " Generation %d - Press <Ctrl-C> to exit"
)

// Header returns the status line shown above a frame
func Header(generation int) string {
	return fmt.Sprintf(headerFormat, generation)
}

// FormatRow renders one grid row, two characters per cell
func FormatRow(g *Grid, row int) string {
	var b strings.Builder
	b.Grow(2 * g.cols)
	for c := range g.cols {
		if g.cells[row][c] == Alive {
			b.WriteString(gridPosAlive)
		} else {
			b.WriteString(gridPosDead)
		}
	}
	return b.String()
}

// FormatFrame renders the header and every row as a single string, so a
// frame reaches the terminal in one write
func FormatFrame(g *Grid, generation int) string {
	var b strings.Builder
	b.WriteString(Header(generation))
	b.WriteString(lineEnd)
	for r := range g.rows {
		b.WriteString(FormatRow(g, r))
		b.WriteString(lineEnd)
	}
	return b.String()
}

// ConsoleRenderer redraws the whole console for every frame
type ConsoleRenderer struct {
	out     io.Writer
	control terminal.Control
}

func NewConsoleRenderer(out io.Writer, control terminal.Control) *ConsoleRenderer {
	return &ConsoleRenderer{out: out, control: control}
}

// Render clears the console and draws g labelled with generation
func (r *ConsoleRenderer) Render(g *Grid, generation int) error {
	if err := r.control.Clear(); err != nil {
		fmt.Fprintln(r.out, "Error clearing terminal:", err)
	}
	if _, err := io.WriteString(r.out, FormatFrame(g, generation)); err != nil {
		return errors.Wrapf(err, "[ConsoleRenderer.Render] failed to draw generation %d", generation)
	}
	return nil
}
