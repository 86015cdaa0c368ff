package model

import "math/rand/v2"

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Grid represents the game board, a rows x cols rectangle of cells
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid creates a new all-dead grid with the specified dimensions
func NewGrid(rows, cols int) *Grid {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// NewRandomGrid creates a grid where every cell is alive with probability p
func NewRandomGrid(rows, cols int, p float64, rng *rand.Rand) *Grid {
	g := NewGrid(rows, cols)
	g.Randomize(p, rng)
	return g
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns of the grid
func (g *Grid) Cols() int {
	return g.cols
}

// SameSize reports whether both grids have the same dimensions
func (g *Grid) SameSize(other *Grid) bool {
	return g.rows == other.rows && g.cols == other.cols
}

// Reset resets the grid to new dimensions, leaving every cell dead
func (g *Grid) Reset(rows, cols int) {
	g.rows = rows
	g.cols = cols

	// Resize cells if needed
	if len(g.cells) != rows {
		g.cells = make([][]Cell, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]Cell, cols)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for r := range g.rows {
		clear(g.cells[r])
	}
}

// Set sets the cell at (row, col); out of range coordinates are ignored
func (g *Grid) Set(row, col int, c Cell) {
	if row >= 0 && row < g.rows && col >= 0 && col < g.cols {
		g.cells[row][col] = c
	}
}

// Get returns the state of a cell, Dead for out of range coordinates
func (g *Grid) Get(row, col int) Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Dead
	}
	return g.cells[row][col]
}

// IsAlive reports whether the cell at (row, col) is alive
func (g *Grid) IsAlive(row, col int) bool {
	return g.Get(row, col) == Alive
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			count += int(g.cells[r][c])
		}
	}
	return
}

// Randomize sets every cell independently, alive with probability p
func (g *Grid) Randomize(p float64, rng *rand.Rand) {
	for r := range g.rows {
		for c := range g.cols {
			if rng.Float64() < p {
				g.cells[r][c] = Alive
			} else {
				g.cells[r][c] = Dead
			}
		}
	}
}
