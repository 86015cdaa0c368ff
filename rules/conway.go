package rules

const (
	minSurvivors = 2
	maxSurvivors = 3
	births       = 3
)

/*
NextState applies Conway's Game of Life rules (B3/S23) to a single cell.

Fewer than two or more than three live neighbours kill the cell, exactly three
bring a dead cell to life, and any other count leaves the cell as it was.
*/
func NextState(alive bool, neighbors int) bool {
	switch {
	case neighbors < minSurvivors || neighbors > maxSurvivors:
		return false
	case neighbors == births && !alive:
		return true
	default:
		return alive
	}
}
