package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jensholdgaard/wallclock/internal/config"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "valid full config",
			yaml: `
display:
  width: 640
  height: 480
  margin: 20
  mode: "png"
  frame_interval: 500ms
  smooth: true
  hand_width: 3.5
  scale: 2
  scaler: "catmullrom"
clock:
  timezone: "Europe/Copenhagen"
output:
  path: "/tmp/clock.png"
telemetry:
  service_name: "my-clock"
  otlp_endpoint: "localhost:4318"
`,
			wantErr: false,
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				if cfg.Display.Width != 640 || cfg.Display.Height != 480 {
					t.Errorf("got size %dx%d, want 640x480", cfg.Display.Width, cfg.Display.Height)
				}
				if cfg.Display.Mode != config.ModePNG {
					t.Errorf("got mode %q, want %q", cfg.Display.Mode, config.ModePNG)
				}
				if cfg.Display.FrameInterval != 500*time.Millisecond {
					t.Errorf("got frame interval %s, want %s", cfg.Display.FrameInterval, 500*time.Millisecond)
				}
				if !cfg.Display.Smooth || cfg.Display.HandWidth != 3.5 {
					t.Errorf("got smooth=%v hand width=%v", cfg.Display.Smooth, cfg.Display.HandWidth)
				}
				if cfg.Clock.Timezone != "Europe/Copenhagen" {
					t.Errorf("got timezone %q, want %q", cfg.Clock.Timezone, "Europe/Copenhagen")
				}
				if cfg.Output.Path != "/tmp/clock.png" {
					t.Errorf("got output path %q, want %q", cfg.Output.Path, "/tmp/clock.png")
				}
				if cfg.Telemetry.ServiceName != "my-clock" {
					t.Errorf("got service name %q, want %q", cfg.Telemetry.ServiceName, "my-clock")
				}
			},
		},
		{
			name: "defaults applied",
			yaml: `
clock:
  timezone: "UTC"
`,
			wantErr: false,
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				if cfg.Display.Width != 400 || cfg.Display.Height != 400 {
					t.Errorf("got size %dx%d, want 400x400", cfg.Display.Width, cfg.Display.Height)
				}
				if cfg.Display.Margin != 10 {
					t.Errorf("got margin %d, want 10", cfg.Display.Margin)
				}
				if cfg.Display.Mode != config.ModeTerminal {
					t.Errorf("got mode %q, want %q", cfg.Display.Mode, config.ModeTerminal)
				}
				if cfg.Display.FrameInterval != time.Second {
					t.Errorf("got frame interval %s, want 1s", cfg.Display.FrameInterval)
				}
				if cfg.Telemetry.ServiceName != "wallclock" {
					t.Errorf("got service name %q, want %q", cfg.Telemetry.ServiceName, "wallclock")
				}
			},
		},
		{
			name:    "invalid yaml",
			yaml:    `{{{invalid`,
			wantErr: true,
		},
		{
			name: "invalid mode rejected",
			yaml: `
display:
  mode: "window"
`,
			wantErr: true,
		},
		{
			name: "invalid scaler rejected",
			yaml: `
display:
  scaler: "bilinear"
`,
			wantErr: true,
		},
		{
			name: "margin too large",
			yaml: `
display:
  width: 100
  height: 100
  margin: 50
`,
			wantErr: true,
		},
		{
			name: "non-positive size",
			yaml: `
display:
  width: 0
`,
			wantErr: true,
		},
		{
			name: "zero frame interval",
			yaml: `
display:
  frame_interval: 0s
`,
			wantErr: true,
		},
		{
			name: "png without output path",
			yaml: `
display:
  mode: "png"
output:
  path: ""
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := config.Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && cfg != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := config.Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

func TestDefault_Valid(t *testing.T) {
	if err := config.Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}
