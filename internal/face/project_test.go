package face_test

import (
	"testing"

	"github.com/jensholdgaard/wallclock/internal/face"
)

func TestProject(t *testing.T) {
	tests := []struct {
		degree float64
		radius int
		want   face.Point
	}{
		{0, 1, face.Point{X: 11, Y: 10}},
		{90, 1, face.Point{X: 10, Y: 9}},
		{180, 1, face.Point{X: 9, Y: 10}},
		{270, 1, face.Point{X: 10, Y: 11}},
		{360, 1, face.Point{X: 11, Y: 10}},

		{0, 2, face.Point{X: 12, Y: 10}},
		{90, 2, face.Point{X: 10, Y: 8}},
		{180, 2, face.Point{X: 8, Y: 10}},
		{270, 2, face.Point{X: 10, Y: 12}},
		{360, 2, face.Point{X: 12, Y: 10}},
	}

	for _, tt := range tests {
		got := face.Project(tt.degree, 10, 10, tt.radius)
		if got != tt.want {
			t.Errorf("Project(%v, 10, 10, %d) = %+v, want %+v", tt.degree, tt.radius, got, tt.want)
		}
	}
}

func TestProject_Truncates(t *testing.T) {
	// cos(45°)*10 = 7.07..., sin(45°)*10 = 7.07...
	got := face.Project(45, 100, 100, 10)
	want := face.Point{X: 107, Y: 92}
	if got != want {
		t.Errorf("Project(45, 100, 100, 10) = %+v, want %+v", got, want)
	}
}

func TestProject_NotClamped(t *testing.T) {
	got := face.Project(180, 0, 0, 5)
	if got.X != -5 {
		t.Errorf("Project(180, 0, 0, 5).X = %d, want -5", got.X)
	}
	got = face.Project(90, 0, 0, 5)
	if got.Y != -5 {
		t.Errorf("Project(90, 0, 0, 5).Y = %d, want -5", got.Y)
	}
}

func TestProject_Deterministic(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 7.5 {
		a := face.Project(deg, 200, 200, 190)
		b := face.Project(deg, 200, 200, 190)
		if a != b {
			t.Fatalf("Project(%v) not deterministic: %+v != %+v", deg, a, b)
		}
	}
}
