package view

import (
	"image/color"

	"github.com/sheikhrachel/go-life/model"
)

var (
	deadColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	aliveColor = color.RGBA{A: 0xff}
	gridColor  = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

// paintCanvas writes a full canvas into buf as RGBA pixels: grid lines in
// gridColor and a scale x scale square per cell, filled alive or dead.
// buf must hold 4*cw*ch bytes where cw, ch come from canvasSize.
func paintCanvas(buf []byte, cells []model.Cell, width, height, scale int) {
	cw, ch := canvasSize(width, height, scale)
	fill := func(x0, y0, w, h int, c color.RGBA) {
		for y := y0; y < y0+h; y++ {
			base := (y*cw + x0) * 4
			for x := 0; x < w; x++ {
				buf[base+0] = c.R
				buf[base+1] = c.G
				buf[base+2] = c.B
				buf[base+3] = c.A
				base += 4
			}
		}
	}

	fill(0, 0, cw, ch, gridColor)
	pitch := scale + 1
	for row := range height {
		for column := range width {
			c := deadColor
			if cells[row*width+column] == model.Alive {
				c = aliveColor
			}
			fill(column*pitch+1, row*pitch+1, scale, scale, c)
		}
	}
}

// cellAt maps a pixel position on a canvas painted by paintCanvas to a
// (row, column) pair.
// ok is false when the position falls outside a width x height universe.
func cellAt(x, y, scale, width, height int) (row, column int, ok bool) {
	if x < 0 || y < 0 || scale <= 0 {
		return 0, 0, false
	}
	pitch := scale + 1
	row, column = y/pitch, x/pitch
	if row >= height || column >= width {
		return 0, 0, false
	}
	return row, column, true
}

// canvasSize returns the pixel size of a canvas for a width x height universe
func canvasSize(width, height, scale int) (int, int) {
	return (scale+1)*width + 1, (scale+1)*height + 1
}
