package model

// HasChanged reports whether any cell differs between a and b. It stops at
// the first difference; false means the simulation reached a fixed point.
func HasChanged(a, b *Grid) bool {
	if !a.SameSize(b) {
		return true
	}
	for r := range a.rows {
		for c := range a.cols {
			if a.cells[r][c] != b.cells[r][c] {
				return true
			}
		}
	}
	return false
}
