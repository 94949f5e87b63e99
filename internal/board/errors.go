package board

import "github.com/pkg/errors"

// ErrInvalidDimension reports a construction request with a non-positive
// width or height.
var ErrInvalidDimension = errors.New("board: invalid dimension")

// ErrOutOfBounds reports a coordinate-addressed operation outside the grid.
var ErrOutOfBounds = errors.New("board: coordinates out of bounds")
