package render_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/jensholdgaard/wallclock/internal/canvas"
	"github.com/jensholdgaard/wallclock/internal/face"
	"github.com/jensholdgaard/wallclock/internal/render"
)

var (
	testTP = noop.NewTracerProvider()
	testMP = metricnoop.NewMeterProvider()
)

type call struct {
	Op    string
	Args  []int
	Color canvas.Color
}

// recorder is a Drawer that records every primitive it is asked to draw.
type recorder struct {
	calls []call
}

func (r *recorder) DrawBox(x, y, w, h int, c canvas.Color) {
	r.calls = append(r.calls, call{"box", []int{x, y, w, h}, c})
}

func (r *recorder) DrawLine(x0, y0, x1, y1 int, c canvas.Color) {
	r.calls = append(r.calls, call{"line", []int{x0, y0, x1, y1}, c})
}

func (r *recorder) DrawCircle(cx, cy, radius int, c canvas.Color) {
	r.calls = append(r.calls, call{"circle", []int{cx, cy, radius}, c})
}

func newRenderer(t *testing.T, l render.Layout) *render.Renderer {
	t.Helper()
	r, err := render.New(l, render.DefaultPalette(), slog.Default(), testTP, testMP)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func sampleAt(h, m, s int) face.Sample {
	return face.SampleAt(time.Date(2025, 6, 15, h, m, s, 0, time.UTC))
}

func TestLayoutFor(t *testing.T) {
	tests := []struct {
		name         string
		w, h, margin int
		want         render.Layout
	}{
		{"square", 400, 400, 10, render.Layout{Width: 400, Height: 400, OriginX: 200, OriginY: 200, Radius: 190}},
		{"landscape uses the shorter side", 640, 480, 20, render.Layout{Width: 640, Height: 480, OriginX: 320, OriginY: 240, Radius: 220}},
		{"margin larger than face", 10, 10, 20, render.Layout{Width: 10, Height: 10, OriginX: 5, OriginY: 5, Radius: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render.LayoutFor(tt.w, tt.h, tt.margin)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LayoutFor() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFrame_DrawOrder(t *testing.T) {
	r := newRenderer(t, render.LayoutFor(400, 400, render.DefaultMargin))
	rec := &recorder{}

	hands := r.Frame(context.Background(), rec, sampleAt(3, 0, 0))

	want := []call{
		{"box", []int{0, 0, 400, 400}, canvas.Black},
		{"circle", []int{200, 200, 190}, canvas.White},
		{"line", []int{200, 200, 390, 200}, canvas.Red},
		{"line", []int{200, 200, 200, 10}, canvas.Green},
		{"line", []int{200, 200, 200, 10}, canvas.Blue},
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("draw calls mismatch (-want +got):\n%s", diff)
	}

	wantHands := render.Hands{
		Origin: face.Point{X: 200, Y: 200},
		Hour:   face.Point{X: 390, Y: 200},
		Minute: face.Point{X: 200, Y: 10},
		Second: face.Point{X: 200, Y: 10},
	}
	if diff := cmp.Diff(wantHands, hands); diff != "" {
		t.Errorf("hands mismatch (-want +got):\n%s", diff)
	}
}

func TestFrame_ClearsPreviousFrame(t *testing.T) {
	l := render.LayoutFor(100, 100, render.DefaultMargin)
	r := newRenderer(t, l)
	buf, err := canvas.New(l.Width, l.Height)
	if err != nil {
		t.Fatal(err)
	}

	r.Frame(context.Background(), buf, sampleAt(3, 0, 0))
	if buf.At(90, 50) != canvas.Red {
		t.Fatalf("hour hand tip at (90, 50) = %#x, want red", buf.At(90, 50))
	}

	r.Frame(context.Background(), buf, sampleAt(0, 0, 0))
	if buf.At(89, 50) != canvas.Black {
		t.Errorf("stale hour hand pixel survived the next frame: %#x", buf.At(89, 50))
	}
}

func TestHands_Idempotent(t *testing.T) {
	r := newRenderer(t, render.LayoutFor(400, 400, render.DefaultMargin))
	s := sampleAt(10, 10, 10)
	if diff := cmp.Diff(r.Hands(s), r.Hands(s)); diff != "" {
		t.Errorf("Hands() differs between calls:\n%s", diff)
	}
}

func TestPalette_Hand(t *testing.T) {
	p := render.DefaultPalette()
	tests := map[face.Indicator]canvas.Color{
		face.Hour:   canvas.Red,
		face.Minute: canvas.Green,
		face.Second: canvas.Blue,
	}
	for ind, want := range tests {
		if got := p.Hand(ind); got != want {
			t.Errorf("Hand(%s) = %#x, want %#x", ind, got, want)
		}
	}
}
