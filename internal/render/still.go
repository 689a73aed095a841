package render

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/jensholdgaard/wallclock/internal/canvas"
	"github.com/jensholdgaard/wallclock/internal/face"
)

// StillOptions controls how a single frame is turned into an image.
type StillOptions struct {
	// Smooth strokes the hands anti-aliased over the raster lines.
	Smooth    bool
	HandWidth float32

	// Scale is an integer upscaling factor. Values below 2 keep the size.
	Scale  int
	Scaler xdraw.Scaler
}

// Still renders s into a new image.
func (r *Renderer) Still(ctx context.Context, s face.Sample, opts StillOptions) (*image.RGBA, error) {
	buf, err := canvas.New(r.layout.Width, r.layout.Height)
	if err != nil {
		return nil, fmt.Errorf("allocating frame: %w", err)
	}
	hands := r.Frame(ctx, buf, s)

	img := buf.Image()
	if opts.Smooth {
		Smooth(img, hands, r.palette, opts.HandWidth)
	}
	if opts.Scale > 1 {
		img = Scale(img, opts.Scale, opts.Scaler)
	}
	return img, nil
}

// Smooth strokes each hand as an anti-aliased band of the given width.
func Smooth(img *image.RGBA, hands Hands, p Palette, width float32) {
	b := img.Bounds()
	o := hands.Origin
	for _, ind := range face.Indicators {
		tip := hands.Tip(ind)
		dx := float32(tip.X - o.X)
		dy := float32(tip.Y - o.Y)
		n := float32(math.Hypot(float64(dx), float64(dy)))
		if n == 0 {
			continue
		}
		// half-width normal
		nx, ny := -dy/n*width/2, dx/n*width/2

		z := vector.NewRasterizer(b.Dx(), b.Dy())
		x0, y0 := float32(o.X-b.Min.X)+0.5, float32(o.Y-b.Min.Y)+0.5
		x1, y1 := float32(tip.X-b.Min.X)+0.5, float32(tip.Y-b.Min.Y)+0.5
		z.MoveTo(x0+nx, y0+ny)
		z.LineTo(x1+nx, y1+ny)
		z.LineTo(x1-nx, y1-ny)
		z.LineTo(x0-nx, y0-ny)
		z.ClosePath()
		z.Draw(img, b, image.NewUniform(p.Hand(ind).RGBA()), image.Point{})
	}
}

// ScalerByName maps a configured scaler name to an implementation.
// Unknown names select nearest neighbour.
func ScalerByName(name string) xdraw.Scaler {
	if name == "catmullrom" {
		return xdraw.CatmullRom
	}
	return xdraw.NearestNeighbor
}

// Scale returns src enlarged by factor. A nil scaler means nearest
// neighbour.
func Scale(src image.Image, factor int, s xdraw.Scaler) *image.RGBA {
	if s == nil {
		s = xdraw.NearestNeighbor
	}
	sb := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sb.Dx()*factor, sb.Dy()*factor))
	s.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SavePNG writes img to path, replacing the file atomically.
func SavePNG(path string, img image.Image) error {
	path = filepath.Clean(path)
	tmp, err := os.CreateTemp(filepath.Dir(path), ".wallclock-*.png")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := WritePNG(tmp, img); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming snapshot: %w", err)
	}
	return nil
}
