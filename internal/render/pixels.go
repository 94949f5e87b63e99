package render

import "image/color"

// fillCellsRGBA converts binary cell data (0=dead, 1=alive) into RGBA
// pixels in buf. buf must hold 4 bytes per cell.
func fillCellsRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPx := packRGBA(on)
	offPx := packRGBA(off)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:], px[:])
	}
}

func packRGBA(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8), byte(a >> 8)}
}
