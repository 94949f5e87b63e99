// Package board implements the Game of Life model: cell storage, the
// generation transition, and population bookkeeping.
package board

import (
	"github.com/pkg/errors"

	"lifegrid/internal/core"
)

const (
	cellDead  uint8 = 0
	cellAlive uint8 = 1
)

// Board holds a fixed-size Game of Life grid. Cells live row-major in two
// generation buffers; Tick writes the next generation into the spare buffer
// and swaps, so no transition ever observes an already-updated neighbor.
type Board struct {
	w, h       int
	cur        []uint8
	nxt        []uint8
	population int
}

// New constructs an all-dead board with the given dimensions.
func New(w, h int) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "%dx%d", w, h)
	}
	cells := make([]uint8, w*h)
	return &Board{w: w, h: h, cur: cells, nxt: make([]uint8, len(cells))}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Population returns the number of live cells.
func (b *Board) Population() int { return b.population }

// Cells exposes the current generation buffer for rendering.
func (b *Board) Cells() []uint8 { return b.cur }

// Alive reports whether the cell at (x, y) is live. Off-board coordinates
// read as dead.
func (b *Board) Alive(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.cur[y*b.w+x] == cellAlive
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

// Toggle flips the cell at (x, y) and adjusts the population. Out-of-range
// coordinates leave the board untouched.
func (b *Board) Toggle(x, y int) error {
	if !b.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "toggle (%d,%d)", x, y)
	}
	idx := y*b.w + x
	if b.cur[idx] == cellAlive {
		b.cur[idx] = cellDead
		b.population--
		return nil
	}
	b.cur[idx] = cellAlive
	b.population++
	return nil
}

// Clear kills every cell and resets the population.
func (b *Board) Clear() {
	for i := range b.cur {
		b.cur[i] = cellDead
	}
	b.population = 0
}

// NeighborCount returns the number of live cells among the up to eight
// Moore neighbors of (x, y). Positions outside the board contribute
// nothing; there is no wraparound.
func (b *Board) NeighborCount(x, y int) (int, error) {
	if !b.inBounds(x, y) {
		return 0, errors.Wrapf(ErrOutOfBounds, "neighbor count (%d,%d)", x, y)
	}
	return b.liveNeighbors(x, y), nil
}

func (b *Board) liveNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !b.inBounds(nx, ny) {
				continue
			}
			if b.cur[ny*b.w+nx] == cellAlive {
				count++
			}
		}
	}
	return count
}

// Tick advances the board by one generation. A live cell with two or three
// live neighbors survives, a dead cell with exactly three comes alive, and
// everything else dies. Neighbor counts are evaluated against the pre-tick
// generation; the population is recounted from the new one.
func (b *Board) Tick() {
	population := 0
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			n := b.liveNeighbors(x, y)
			idx := y*b.w + x
			wasAlive := b.cur[idx] == cellAlive
			if (wasAlive && (n == 2 || n == 3)) || (!wasAlive && n == 3) {
				b.nxt[idx] = cellAlive
				population++
			} else {
				b.nxt[idx] = cellDead
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
	b.population = population
}

// Randomize replaces the board content with live cells at the given density,
// deterministically for a given seed. Density is clamped to [0, 1].
func (b *Board) Randomize(seed int64, density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	rng := core.NewRNG(seed)
	population := 0
	for i := range b.cur {
		if rng.Float64() < density {
			b.cur[i] = cellAlive
			population++
		} else {
			b.cur[i] = cellDead
		}
	}
	b.population = population
}
