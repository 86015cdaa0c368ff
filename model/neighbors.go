package model

// CountLiveNeighbors counts the living cells in the Moore neighbourhood of
// (row, col). The grid wraps around at its edges, so border and corner cells
// always have eight neighbours.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		nr := wrap(row+dr, g.rows)
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			count += int(g.cells[nr][wrap(col+dc, g.cols)])
		}
	}
	return count
}

// wrap maps i into [0, n) as a toroidal index
func wrap(i, n int) int {
	return (i%n + n) % n
}
