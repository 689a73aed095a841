// Package render composes clock frames from a time sample and hands them
// to a drawing surface.
package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jensholdgaard/wallclock/internal/canvas"
	"github.com/jensholdgaard/wallclock/internal/face"
)

const instrumentationName = "github.com/jensholdgaard/wallclock/internal/render"

// DefaultMargin is the gap between the face outline and the frame edge.
const DefaultMargin = 10

// Drawer is the set of primitives a frame is drawn with.
type Drawer interface {
	DrawBox(x, y, w, h int, c canvas.Color)
	DrawLine(x0, y0, x1, y1 int, c canvas.Color)
	DrawCircle(cx, cy, r int, c canvas.Color)
}

// Layout places the clock face inside a frame.
type Layout struct {
	Width   int
	Height  int
	OriginX int
	OriginY int
	Radius  int
}

// LayoutFor centres a face in a w×h frame, leaving margin pixels between
// the outline and the nearest edge.
func LayoutFor(w, h, margin int) Layout {
	return Layout{
		Width:   w,
		Height:  h,
		OriginX: w / 2,
		OriginY: h / 2,
		Radius:  max(min(w, h)/2-margin, 0),
	}
}

// Origin returns the face centre.
func (l Layout) Origin() face.Point {
	return face.Point{X: l.OriginX, Y: l.OriginY}
}

// Palette holds the colours of a frame.
type Palette struct {
	Background canvas.Color
	Face       canvas.Color
	Hour       canvas.Color
	Minute     canvas.Color
	Second     canvas.Color
}

// DefaultPalette draws a white face on black with the hour hand red, the
// minute hand green and the second hand blue.
func DefaultPalette() Palette {
	return Palette{
		Background: canvas.Black,
		Face:       canvas.White,
		Hour:       canvas.Red,
		Minute:     canvas.Green,
		Second:     canvas.Blue,
	}
}

// Hand returns the colour of an indicator.
func (p Palette) Hand(ind face.Indicator) canvas.Color {
	switch ind {
	case face.Hour:
		return p.Hour
	case face.Minute:
		return p.Minute
	default:
		return p.Second
	}
}

// Hands holds the tip positions of one frame.
type Hands struct {
	Origin face.Point
	Hour   face.Point
	Minute face.Point
	Second face.Point
}

// Tip returns the tip of an indicator.
func (h Hands) Tip(ind face.Indicator) face.Point {
	switch ind {
	case face.Hour:
		return h.Hour
	case face.Minute:
		return h.Minute
	default:
		return h.Second
	}
}

// Renderer draws clock frames.
type Renderer struct {
	layout  Layout
	palette Palette
	logger  *slog.Logger
	tracer  trace.Tracer

	frames   metric.Int64Counter
	duration metric.Float64Histogram
}

// New returns a Renderer for the given layout and palette.
func New(layout Layout, palette Palette, logger *slog.Logger, tp trace.TracerProvider, mp metric.MeterProvider) (*Renderer, error) {
	meter := mp.Meter(instrumentationName)

	frames, err := meter.Int64Counter("wallclock.frames",
		metric.WithDescription("Number of rendered clock frames."),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame counter: %w", err)
	}
	duration, err := meter.Float64Histogram("wallclock.frame.duration",
		metric.WithDescription("Time spent drawing one frame."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame duration histogram: %w", err)
	}

	return &Renderer{
		layout:   layout,
		palette:  palette,
		logger:   logger,
		tracer:   tp.Tracer(instrumentationName),
		frames:   frames,
		duration: duration,
	}, nil
}

// Layout returns the layout frames are drawn with.
func (r *Renderer) Layout() Layout { return r.layout }

// Palette returns the colours frames are drawn with.
func (r *Renderer) Palette() Palette { return r.palette }

// Hands computes the tip positions for s without drawing.
func (r *Renderer) Hands(s face.Sample) Hands {
	l := r.layout
	return Hands{
		Origin: l.Origin(),
		Hour:   s.HourCoordinates(l.OriginX, l.OriginY, l.Radius),
		Minute: s.MinuteCoordinates(l.OriginX, l.OriginY, l.Radius),
		Second: s.SecondCoordinates(l.OriginX, l.OriginY, l.Radius),
	}
}

// Frame clears d, draws the face outline and the three hands for s, and
// returns the hand tips.
func (r *Renderer) Frame(ctx context.Context, d Drawer, s face.Sample) Hands {
	ctx, span := r.tracer.Start(ctx, "Renderer.Frame",
		trace.WithAttributes(attribute.String("time", s.String())),
	)
	defer span.End()
	start := time.Now()

	l := r.layout
	d.DrawBox(0, 0, l.Width, l.Height, r.palette.Background)
	d.DrawCircle(l.OriginX, l.OriginY, l.Radius, r.palette.Face)

	hands := r.Hands(s)
	for _, ind := range face.Indicators {
		tip := hands.Tip(ind)
		d.DrawLine(l.OriginX, l.OriginY, tip.X, tip.Y, r.palette.Hand(ind))
	}

	r.frames.Add(ctx, 1)
	r.duration.Record(ctx, float64(time.Since(start).Microseconds())/1000)
	r.logger.DebugContext(ctx, "frame rendered",
		slog.String("time", s.String()),
		slog.Any("hands", hands),
	)
	return hands
}
