package model

// AddGlider adds a glider heading towards increasing rows and columns, with
// its 3x3 bounding box anchored at (row, col)
func (g *Grid) AddGlider(row, col int) {
	pattern := [][]Cell{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	}

	for dr, line := range pattern {
		for dc, cell := range line {
			g.Set(row+dr, col+dc, cell)
		}
	}
}

// AddBlock adds a 2x2 still life anchored at (row, col)
func (g *Grid) AddBlock(row, col int) {
	g.Set(row, col, Alive)
	g.Set(row, col+1, Alive)
	g.Set(row+1, col, Alive)
	g.Set(row+1, col+1, Alive)
}

// AddBlinker adds a horizontal period-2 oscillator starting at (row, col)
func (g *Grid) AddBlinker(row, col int) {
	g.Set(row, col, Alive)
	g.Set(row, col+1, Alive)
	g.Set(row, col+2, Alive)
}
