//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"lifegrid/internal/board"
	"lifegrid/internal/core"
	"lifegrid/internal/cursor"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
)

// Game adapts the board and cursor to the ebiten.Game interface. It owns
// the generation counter and all input and timing state; the model packages
// stay free of both.
type Game struct {
	board   *board.Board
	cursor  *cursor.Cursor
	painter *render.GridPainter
	hud     *ui.HUD
	auto    *core.AutoTick

	aliveColor  color.Color
	deadColor   color.Color
	cursorColor color.RGBA

	scale      int
	generation uint64
}

// New constructs a Game around the provided board.
func New(b *board.Board, scale int, autoInterval time.Duration) *Game {
	size := b.Size()
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		board:       b,
		cursor:      cursor.New(),
		painter:     render.NewGridPainter(size.W, size.H),
		hud:         ui.NewHUD(),
		auto:        core.NewAutoTick(autoInterval),
		aliveColor:  color.White,
		deadColor:   color.Black,
		cursorColor: color.RGBA{R: 255, G: 80, B: 80, A: 220},
		scale:       scale,
	}
}

// Generation returns the number of ticks applied so far.
func (g *Game) Generation() uint64 { return g.generation }

// Update dispatches one frame of keyboard and mouse input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	bounds := g.board.Size()
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.cursor.Move(cursor.Up, bounds)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.cursor.Move(cursor.Down, bounds)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.cursor.Move(cursor.Left, bounds)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.cursor.Move(cursor.Right, bounds)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := g.board.Toggle(g.cursor.X(), g.cursor.Y()); err != nil {
			logrus.WithError(err).Warn("toggle at cursor rejected")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.step()
	}
	if ebiten.IsKeyPressed(ebiten.KeyF) {
		if g.auto.Due() {
			g.step()
		}
	} else {
		g.auto.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.board.Clear()
		g.generation = 0
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		cx, cy := mx/g.scale, my/g.scale
		// Clicks outside the board are dropped rather than surfaced.
		if bounds.Contains(cx, cy) {
			if err := g.board.Toggle(cx, cy); err != nil {
				logrus.WithError(err).Warn("toggle at pointer rejected")
			}
		}
	}

	g.hud.Update()
	return nil
}

func (g *Game) step() {
	g.board.Tick()
	g.generation++
}

// Draw renders the board, the cursor outline, and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board.Cells(), g.aliveColor, g.deadColor, g.scale)
	g.painter.FrameCell(screen, g.cursor.X(), g.cursor.Y(), g.scale, g.cursorColor)
	g.hud.Draw(screen, ui.Stats{
		Generation: g.generation,
		Population: g.board.Population(),
		CursorX:    g.cursor.X(),
		CursorY:    g.cursor.Y(),
		Running:    ebiten.IsKeyPressed(ebiten.KeyF),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.board.Size()
	return s.W * g.scale, s.H * g.scale
}
