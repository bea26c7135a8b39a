package view

import (
	"image/color"
	"testing"

	"github.com/sheikhrachel/go-life/model"
)

func pixelAt(buf []byte, cw, x, y int) color.RGBA {
	base := (y*cw + x) * 4
	return color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}

func TestPaintCanvas(t *testing.T) {
	const width, height, scale = 3, 2, 4
	cells := []model.Cell{
		model.Alive, model.Dead, model.Dead,
		model.Dead, model.Dead, model.Alive,
	}
	cw, ch := canvasSize(width, height, scale)
	if cw != 16 || ch != 11 {
		t.Fatalf("canvasSize = %dx%d, expected 16x11", cw, ch)
	}
	buf := make([]byte, 4*cw*ch)
	paintCanvas(buf, cells, width, height, scale)

	for _, tc := range []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, gridColor},
		{1, 1, aliveColor},
		{4, 4, aliveColor},
		{5, 1, gridColor},
		{6, 1, deadColor},
		{11, 6, aliveColor},
		{14, 9, aliveColor},
		{15, 10, gridColor},
	} {
		if got := pixelAt(buf, cw, tc.x, tc.y); got != tc.want {
			t.Errorf("pixel (%d,%d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestCellAt(t *testing.T) {
	for _, tc := range []struct {
		x, y        int
		row, column int
		ok          bool
	}{
		{1, 1, 0, 0, true},
		{6, 1, 0, 1, true},
		{11, 6, 1, 2, true},
		{16, 1, 0, 0, false},
		{1, 11, 0, 0, false},
		{-1, 3, 0, 0, false},
	} {
		row, column, ok := cellAt(tc.x, tc.y, 4, 3, 2)
		if ok != tc.ok || (ok && (row != tc.row || column != tc.column)) {
			t.Errorf("cellAt(%d,%d) = (%d,%d,%v), expected (%d,%d,%v)", tc.x, tc.y, row, column, ok, tc.row, tc.column, tc.ok)
		}
	}
}
