//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const helpText = "arrows: move  space: toggle  n: step  f (hold): run  c: clear  h: help  q: quit"

// HUD draws the status line and key help over the board view.
type HUD struct {
	face     font.Face
	showHelp bool
}

// NewHUD constructs a HUD with the help line visible.
func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13, showHelp: true}
}

// Update handles HUD key toggles.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.showHelp = !h.showHelp
	}
}

// Draw paints the status text in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, stats Stats) {
	status := fmt.Sprintf("gen %d  pop %d  cursor (%d,%d)",
		stats.Generation, stats.Population, stats.CursorX, stats.CursorY)
	if stats.Running {
		status += "  [running]"
	}
	textColor := color.RGBA{R: 90, G: 200, B: 120, A: 255}
	text.Draw(screen, status, h.face, 4, 14, textColor)
	if h.showHelp {
		text.Draw(screen, helpText, h.face, 4, 28, textColor)
	}
}
