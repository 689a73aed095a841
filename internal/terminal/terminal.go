// Package terminal shows clock frames in a 24-bit colour terminal, two
// pixel rows per text row, and reports key presses.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/term"

	"github.com/jensholdgaard/wallclock/internal/canvas"
)

// ErrNotTerminal is returned when the input is not a terminal.
var ErrNotTerminal = errors.New("terminal: input is not a terminal")

const (
	escHome       = "\x1b[H"
	escClear      = "\x1b[2J"
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
	escReset      = "\x1b[0m"

	upperHalf = "▀"
)

// Key is a decoded key press.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyQuit
)

// Screen is a terminal in raw mode.
type Screen struct {
	in    *os.File
	out   io.Writer
	fd    int
	state *term.State
	keys  chan Key
}

// Open switches in to raw mode and prepares out for drawing. Key presses
// read from in are delivered on Keys.
func Open(in *os.File, out io.Writer) (*Screen, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}

	s := &Screen{
		in:    in,
		out:   out,
		fd:    fd,
		state: state,
		keys:  make(chan Key, 8),
	}
	if _, err := io.WriteString(out, escHideCursor+escClear); err != nil {
		_ = term.Restore(fd, state)
		return nil, fmt.Errorf("preparing screen: %w", err)
	}
	go s.readKeys()
	return s, nil
}

// Keys returns the key press channel. It is closed when input ends.
func (s *Screen) Keys() <-chan Key { return s.keys }

func (s *Screen) readKeys() {
	defer close(s.keys)
	buf := make([]byte, 16)
	for {
		n, err := s.in.Read(buf)
		if n > 0 {
			s.keys <- decodeKey(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// decodeKey maps one read from a raw terminal to a Key. A lone ESC is the
// escape key; longer reads starting with ESC are control sequences.
func decodeKey(b []byte) Key {
	switch {
	case len(b) == 1 && b[0] == 0x1b:
		return KeyEscape
	case b[0] == 'q' || b[0] == 'Q' || b[0] == 0x03:
		return KeyQuit
	default:
		return KeyOther
	}
}

// Size returns the terminal size in cells.
func (s *Screen) Size() (cols, rows int, err error) {
	cols, rows, err = term.GetSize(s.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("reading terminal size: %w", err)
	}
	return cols, rows, nil
}

// Present draws b fitted into the current terminal size.
func (s *Screen) Present(b *canvas.Buffer) error {
	cols, rows, err := s.Size()
	if err != nil {
		return err
	}
	w, h := Fit(b.Width, b.Height, cols, rows)
	if w == 0 || h == 0 {
		return nil
	}

	var img image.Image = b.Image()
	if w != b.Width || h != b.Height {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		img = dst
	}

	bw := bufio.NewWriter(s.out)
	if _, err := bw.WriteString(escHome); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	if err := Encode(bw, img); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Close restores the terminal.
func (s *Screen) Close() error {
	_, werr := io.WriteString(s.out, escReset+escShowCursor+"\r\n")
	if err := term.Restore(s.fd, s.state); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return werr
}

// Fit returns the largest size with the aspect ratio of a w×h frame that
// fits into cols×rows cells, at two pixels per cell vertically. One row is
// kept free so the cursor never scrolls the frame. Frames are never
// enlarged.
func Fit(w, h, cols, rows int) (int, int) {
	maxW, maxH := cols, 2*(rows-1)
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	// scale by the tighter of the two limits
	if w*maxH > h*maxW {
		return maxW, max(h*maxW/w, 1)
	}
	return max(w*maxH/h, 1), maxH
}

// Encode writes img as rows of upper-half blocks, each carrying the upper
// pixel in its foreground and the lower pixel in its background colour.
// Odd heights pad the last row with black.
func Encode(w io.Writer, img image.Image) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var fg, bg [3]uint8
		first := true
		for x := b.Min.X; x < b.Max.X; x++ {
			top := rgb(img, x, y)
			var bottom [3]uint8
			if y+1 < b.Max.Y {
				bottom = rgb(img, x, y+1)
			}
			if first || top != fg {
				fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm", top[0], top[1], top[2])
			}
			if first || bottom != bg {
				fmt.Fprintf(bw, "\x1b[48;2;%d;%d;%dm", bottom[0], bottom[1], bottom[2])
			}
			fg, bg, first = top, bottom, false
			bw.WriteString(upperHalf)
		}
		bw.WriteString(escReset + "\r\n")
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	return nil
}

func rgb(img image.Image, x, y int) [3]uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	return [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}
