//go:build !ebiten

package cli

import (
	"github.com/pkg/errors"

	"lifegrid/internal/config"
)

// launch reports that the GUI requires the ebiten build tag.
func launch(config.Config) error {
	return errors.New("the GUI requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/life`")
}
