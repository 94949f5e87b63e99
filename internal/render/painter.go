//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads board cells into a single RGBA image and draws it
// scaled, plus the cursor cell outline on top.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	pixel *ebiten.Image
}

// NewGridPainter allocates a painter for a board of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	gp.pixel = ebiten.NewImage(1, 1)
	gp.pixel.Fill(color.White)
	return gp
}

// Blit uploads the provided cells and draws them onto dst at the given
// pixel scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	fillCellsRGBA(gp.buf, cells, on, off)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// FrameCell outlines the cell at board coordinate (x, y) for the cursor
// overlay.
func (gp *GridPainter) FrameCell(dst *ebiten.Image, x, y, scale int, col color.RGBA) {
	if x < 0 || x >= gp.w || y < 0 || y >= gp.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	px := float64(x * scale)
	py := float64(y * scale)
	s := float64(scale)
	t := 1.0
	if scale >= 8 {
		t = 2.0
	}
	gp.fillRect(dst, px, py, s, t, col)
	gp.fillRect(dst, px, py+s-t, s, t, col)
	gp.fillRect(dst, px, py, t, s, col)
	gp.fillRect(dst, px+s-t, py, t, s, col)
}

func (gp *GridPainter) fillRect(dst *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(gp.pixel, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
