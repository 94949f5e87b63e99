package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// aliveSet collects the coordinates of every live cell.
func aliveSet(b *Board) map[[2]int]bool {
	set := map[[2]int]bool{}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Alive(x, y) {
				set[[2]int{x, y}] = true
			}
		}
	}
	return set
}

// countAlive recounts live cells independently of the population field.
func countAlive(b *Board) int {
	return len(aliveSet(b))
}

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 10}, {10, -1}, {0, 0}} {
		b, err := New(dims[0], dims[1])
		require.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
		require.Nil(t, b, "dims %v", dims)
	}
}

func TestNewBoardIsAllDead(t *testing.T) {
	b, err := New(7, 4)
	require.NoError(t, err)

	assert.Equal(t, 7, b.Width())
	assert.Equal(t, 4, b.Height())
	assert.Equal(t, 0, b.Population())
	assert.Empty(t, aliveSet(b))
}

func TestToggleIsAnInvolution(t *testing.T) {
	b, err := New(5, 5)
	require.NoError(t, err)

	require.NoError(t, b.Toggle(2, 3))
	assert.True(t, b.Alive(2, 3))
	assert.Equal(t, 1, b.Population())

	require.NoError(t, b.Toggle(2, 3))
	assert.False(t, b.Alive(2, 3))
	assert.Equal(t, 0, b.Population())
}

func TestToggleOutOfBoundsLeavesBoardUntouched(t *testing.T) {
	b, err := New(4, 4)
	require.NoError(t, err)
	require.NoError(t, b.Toggle(1, 1))

	for _, coord := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {99, 99}} {
		err := b.Toggle(coord[0], coord[1])
		assert.ErrorIs(t, err, ErrOutOfBounds, "coord %v", coord)
	}

	assert.Equal(t, 1, b.Population())
	assert.Equal(t, map[[2]int]bool{{1, 1}: true}, aliveSet(b))
}

func TestClearKillsEverything(t *testing.T) {
	b, err := New(6, 6)
	require.NoError(t, err)
	b.Randomize(11, 0.5)
	require.NotZero(t, b.Population())

	b.Clear()

	assert.Equal(t, 0, b.Population())
	assert.Empty(t, aliveSet(b))
}

func TestNeighborCountAtBoundary(t *testing.T) {
	b, err := New(5, 5)
	require.NoError(t, err)

	n, err := b.NeighborCount(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, b.Toggle(1, 1))

	n, err = b.NeighborCount(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNeighborCountFullNeighborhood(t *testing.T) {
	b, err := New(3, 3)
	require.NoError(t, err)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			require.NoError(t, b.Toggle(x, y))
		}
	}

	n, err := b.NeighborCount(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	require.NoError(t, b.Toggle(0, 0))
	n, err = b.NeighborCount(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestNeighborCountOutOfBounds(t *testing.T) {
	b, err := New(3, 3)
	require.NoError(t, err)

	_, err = b.NeighborCount(3, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = b.NeighborCount(0, -1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestTickBlinkerOscillates(t *testing.T) {
	b, err := New(10, 10)
	require.NoError(t, err)
	require.NoError(t, b.Toggle(4, 5))
	require.NoError(t, b.Toggle(5, 5))
	require.NoError(t, b.Toggle(6, 5))
	require.Equal(t, 3, b.Population())

	b.Tick()

	vertical := map[[2]int]bool{{5, 4}: true, {5, 5}: true, {5, 6}: true}
	assert.Equal(t, vertical, aliveSet(b))
	assert.Equal(t, 3, b.Population())

	b.Tick()

	horizontal := map[[2]int]bool{{4, 5}: true, {5, 5}: true, {6, 5}: true}
	assert.Equal(t, horizontal, aliveSet(b))
	assert.Equal(t, 3, b.Population())
}

func TestTickBlockIsStillLife(t *testing.T) {
	b, err := New(8, 8)
	require.NoError(t, err)
	block := map[[2]int]bool{{3, 3}: true, {4, 3}: true, {3, 4}: true, {4, 4}: true}
	for c := range block {
		require.NoError(t, b.Toggle(c[0], c[1]))
	}

	b.Tick()

	assert.Equal(t, block, aliveSet(b))
	assert.Equal(t, 4, b.Population())
}

func TestTickEmptyBoardIsFixedPoint(t *testing.T) {
	b, err := New(5, 5)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		b.Tick()
		assert.Equal(t, 0, b.Population())
		assert.Empty(t, aliveSet(b))
	}
}

func TestTickIsDeterministic(t *testing.T) {
	b1, err := New(16, 16)
	require.NoError(t, err)
	b2, err := New(16, 16)
	require.NoError(t, err)

	b1.Randomize(7, 0.4)
	b2.Randomize(7, 0.4)
	require.Equal(t, b1.Cells(), b2.Cells())

	for i := 0; i < 5; i++ {
		b1.Tick()
		b2.Tick()
		assert.Equal(t, b1.Cells(), b2.Cells(), "generation %d", i+1)
		assert.Equal(t, b1.Population(), b2.Population(), "generation %d", i+1)
	}
}

func TestPopulationInvariantUnderMixedOps(t *testing.T) {
	b, err := New(9, 7)
	require.NoError(t, err)

	check := func(after string) {
		assert.Equal(t, countAlive(b), b.Population(), "after %s", after)
	}

	require.NoError(t, b.Toggle(0, 0))
	check("toggle")
	require.NoError(t, b.Toggle(8, 6))
	check("toggle")
	b.Stamp(Glider, 2, 2)
	check("stamp")
	b.Tick()
	check("tick")
	require.NoError(t, b.Toggle(4, 4))
	check("toggle")
	b.Tick()
	b.Tick()
	check("tick")
	b.Clear()
	check("clear")
	b.Randomize(3, 0.3)
	check("randomize")
	b.Tick()
	check("tick")
}

func TestRandomizeIsDeterministicAndClamped(t *testing.T) {
	b1, err := New(12, 12)
	require.NoError(t, err)
	b2, err := New(12, 12)
	require.NoError(t, err)

	b1.Randomize(99, 0.5)
	b2.Randomize(99, 0.5)
	assert.Equal(t, b1.Cells(), b2.Cells())

	b1.Randomize(1, 2.0)
	assert.Equal(t, 144, b1.Population(), "density above 1 fills the board")
	b1.Randomize(1, -0.5)
	assert.Equal(t, 0, b1.Population(), "density below 0 empties the board")
}

func TestStampSkipsOffBoardCells(t *testing.T) {
	b, err := New(4, 4)
	require.NoError(t, err)

	// Stamp a blinker so only its first cell lands on the board.
	b.Stamp(Blinker, 3, 3)
	assert.Equal(t, 1, b.Population())
	assert.True(t, b.Alive(3, 3))

	// Restamping over live cells leaves the population consistent.
	b.Stamp(Blinker, 3, 3)
	assert.Equal(t, 1, b.Population())
}

func TestPatternByName(t *testing.T) {
	for _, name := range []string{"blinker", "block", "glider"} {
		p, ok := ByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, p.Name)
		assert.NotEmpty(t, p.Cells, name)
	}

	_, ok := ByName("toad")
	assert.False(t, ok)
}

func TestGliderMovesDiagonally(t *testing.T) {
	b, err := New(10, 10)
	require.NoError(t, err)
	b.Stamp(Glider, 1, 1)
	require.Equal(t, 5, b.Population())

	// A glider translates by (+1, +1) every four generations.
	for i := 0; i < 4; i++ {
		b.Tick()
	}

	shifted, err := New(10, 10)
	require.NoError(t, err)
	shifted.Stamp(Glider, 2, 2)
	assert.Equal(t, aliveSet(shifted), aliveSet(b))
	assert.Equal(t, 5, b.Population())
}
