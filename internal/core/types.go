package core

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) lies inside [0,W)x[0,H).
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}
