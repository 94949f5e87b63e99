package board

// Pattern is a named set of live-cell offsets relative to a stamp origin.
type Pattern struct {
	Name  string
	Cells [][2]int
}

// Classic seed patterns, offsets as (x, y) from the top-left of the shape.
var (
	Blinker = Pattern{Name: "blinker", Cells: [][2]int{{0, 0}, {1, 0}, {2, 0}}}
	Block   = Pattern{Name: "block", Cells: [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}}
	Glider  = Pattern{Name: "glider", Cells: [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}}
)

var patterns = map[string]Pattern{
	Blinker.Name: Blinker,
	Block.Name:   Block,
	Glider.Name:  Glider,
}

// ByName resolves a pattern by its name.
func ByName(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Stamp sets the pattern's cells live with the shape origin at (x, y).
// Cells falling off the board are skipped; already-live cells stay live.
func (b *Board) Stamp(p Pattern, x, y int) {
	for _, c := range p.Cells {
		cx, cy := x+c[0], y+c[1]
		if !b.inBounds(cx, cy) {
			continue
		}
		idx := cy*b.w + cx
		if b.cur[idx] == cellDead {
			b.cur[idx] = cellAlive
			b.population++
		}
	}
}
