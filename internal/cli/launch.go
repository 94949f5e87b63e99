//go:build ebiten

package cli

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"lifegrid/internal/app"
	"lifegrid/internal/board"
	"lifegrid/internal/config"
)

// launch builds the board from the config and runs the GUI loop.
func launch(cfg config.Config) error {
	b, err := board.New(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	if cfg.Density > 0 {
		b.Randomize(cfg.Seed, cfg.Density)
	}
	if cfg.Pattern != "" {
		p, ok := board.ByName(cfg.Pattern)
		if !ok {
			return errors.Errorf("unknown pattern %q", cfg.Pattern)
		}
		b.Stamp(p, cfg.Width/2, cfg.Height/2)
	}

	logrus.Infof("starting %dx%d board, population %d", cfg.Width, cfg.Height, b.Population())

	game := app.New(b, cfg.Scale, time.Duration(cfg.AutoTickMillis)*time.Millisecond)
	ebiten.SetWindowTitle("lifegrid")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logrus.Infof("exiting at generation %d, population %d", game.Generation(), b.Population())
	return nil
}
