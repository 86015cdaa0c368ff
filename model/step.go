package model

import "github.com/sheikhrachel/go-gol-console/rules"

// Step writes the generation following g into next.
//
// Every cell of next is overwritten and its previous contents are never read,
// so next can be any scratch grid of the same size. g and next must be
// distinct grids.
func (g *Grid) Step(next *Grid) {
	for r := range g.rows {
		row := next.cells[r]
		for c := range g.cols {
			if rules.NextState(g.cells[r][c] == Alive, g.CountLiveNeighbors(r, c)) {
				row[c] = Alive
			} else {
				row[c] = Dead
			}
		}
	}
}
