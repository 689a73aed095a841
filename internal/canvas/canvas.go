// Package canvas provides a fixed-size 0xRRGGBB pixel buffer with the
// primitive drawing operations the clock renderer needs.
//
// All drawing is clipped per pixel, so shapes may extend beyond the buffer
// or start at negative coordinates.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidSize is returned for buffers with a non-positive dimension.
var ErrInvalidSize = errors.New("canvas: width and height must be positive")

// Color is a 24-bit 0xRRGGBB colour. The top byte is ignored.
type Color uint32

const (
	Black Color = 0x000000
	White Color = 0xffffff
	Red   Color = 0xff0000
	Green Color = 0x00ff00
	Blue  Color = 0x0000ff
)

// RGBA returns the opaque colour.RGBA equivalent of c.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 0xff,
	}
}

// Buffer is a row-major pixel buffer.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// New allocates a black buffer of the given size.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}, nil
}

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// Set writes one pixel. Writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, c Color) {
	if !b.inside(x, y) {
		return
	}
	b.Pix[y*b.Width+x] = uint32(c)
}

// At reads one pixel. Reads outside the buffer return Black.
func (b *Buffer) At(x, y int) Color {
	if !b.inside(x, y) {
		return Black
	}
	return Color(b.Pix[y*b.Width+x])
}

// DrawBox fills the w×h rectangle whose top-left corner is (x, y).
func (b *Buffer) DrawBox(x, y, w, h int, c Color) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, b.Width), min(y+h, b.Height)
	for py := y0; py < y1; py++ {
		row := b.Pix[py*b.Width : (py+1)*b.Width]
		for px := x0; px < x1; px++ {
			row[px] = uint32(c)
		}
	}
}

// DrawLine draws a line from (x0, y0) to (x1, y1), both endpoints included.
func (b *Buffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		b.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawCircle draws the outline of a circle of radius r centred on (cx, cy).
func (b *Buffer) DrawCircle(cx, cy, r int, c Color) {
	if r < 0 {
		return
	}
	x, y := r, 0
	e := 1 - r
	for x >= y {
		b.Set(cx+x, cy+y, c)
		b.Set(cx+y, cy+x, c)
		b.Set(cx-y, cy+x, c)
		b.Set(cx-x, cy+y, c)
		b.Set(cx-x, cy-y, c)
		b.Set(cx-y, cy-x, c)
		b.Set(cx+y, cy-x, c)
		b.Set(cx+x, cy-y, c)

		y++
		if e < 0 {
			e += 2*y + 1
		} else {
			x--
			e += 2*(y-x) + 1
		}
	}
}

// Image copies the buffer into a new opaque RGBA image.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			img.SetRGBA(x, y, Color(b.Pix[y*b.Width+x]).RGBA())
		}
	}
	return img
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
