package render

import "image/color"

// QuantityPalette maps cell quantities 0..9 to colors. Zero, the value a
// cell holds right after it discharged, is the brightest entry.
func QuantityPalette() []color.RGBA {
	palette := make([]color.RGBA, 10)
	palette[0] = color.RGBA{R: 255, G: 250, B: 220, A: 255}
	for q := 1; q < len(palette); q++ {
		shade := uint8(12 + q*18)
		palette[q] = color.RGBA{R: shade / 3, G: shade / 2, B: shade, A: 255}
	}
	return palette
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillMaskRGBA paints col where mask is set and transparent black elsewhere.
func fillMaskRGBA(buf []byte, mask []bool, col color.Color) {
	r, g, b, a := col.RGBA()
	for i, on := range mask {
		base := i * 4
		if !on {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		buf[base+0] = uint8(r >> 8)
		buf[base+1] = uint8(g >> 8)
		buf[base+2] = uint8(b >> 8)
		buf[base+3] = uint8(a >> 8)
	}
}
