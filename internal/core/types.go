package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells reports the total number of grid sites.
func (s Size) Cells() int { return s.W * s.H }

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}
