package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Display modes.
const (
	ModeTerminal = "terminal"
	ModePNG      = "png"
)

// Scalers for PNG snapshots.
const (
	ScalerNearest    = "nearest"
	ScalerCatmullRom = "catmullrom"
)

// Config represents the application configuration.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Clock     ClockConfig     `yaml:"clock"`
	Output    OutputConfig    `yaml:"output"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// DisplayConfig holds the frame geometry and how frames are shown.
type DisplayConfig struct {
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	Margin        int           `yaml:"margin"`
	Mode          string        `yaml:"mode"` // "terminal" or "png"
	FrameInterval time.Duration `yaml:"frame_interval"`
	Smooth        bool          `yaml:"smooth"`
	HandWidth     float32       `yaml:"hand_width"`
	Scale         int           `yaml:"scale"`
	Scaler        string        `yaml:"scaler"` // "nearest" or "catmullrom"
}

// ClockConfig holds time source settings.
type ClockConfig struct {
	// Timezone is an IANA zone name. Empty means the local zone.
	Timezone string `yaml:"timezone"`
}

// OutputConfig holds PNG snapshot settings.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	ServiceName    string `yaml:"service_name"`
	ServiceVersion string `yaml:"service_version"`
	OTLPEndpoint   string `yaml:"otlp_endpoint"` // empty disables export
	Insecure       bool   `yaml:"insecure"`

	// LogFile receives JSON logs when nothing is exported. Empty means stderr.
	LogFile string `yaml:"log_file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:         400,
			Height:        400,
			Margin:        10,
			Mode:          ModeTerminal,
			FrameInterval: time.Second,
			HandWidth:     2,
			Scale:         1,
			Scaler:        ScalerNearest,
		},
		Output: OutputConfig{
			Path: "wallclock.png",
		},
		Telemetry: TelemetryConfig{
			ServiceName:    "wallclock",
			ServiceVersion: "0.1.0",
		},
	}
}

// Load reads a YAML configuration file from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	d := c.Display
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", d.Width, d.Height)
	}
	if d.Margin < 0 || 2*d.Margin >= min(d.Width, d.Height) {
		return fmt.Errorf("display margin %d leaves no room for the clock face", d.Margin)
	}
	switch d.Mode {
	case ModeTerminal, ModePNG:
		// valid
	default:
		return fmt.Errorf("unsupported display mode %q: must be %q or %q", d.Mode, ModeTerminal, ModePNG)
	}
	if d.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %s", d.FrameInterval)
	}
	if d.HandWidth <= 0 {
		return fmt.Errorf("hand width must be positive, got %v", d.HandWidth)
	}
	if d.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", d.Scale)
	}
	switch d.Scaler {
	case ScalerNearest, ScalerCatmullRom:
		// valid
	default:
		return fmt.Errorf("unsupported scaler %q: must be %q or %q", d.Scaler, ScalerNearest, ScalerCatmullRom)
	}
	if c.Display.Mode == ModePNG && c.Output.Path == "" {
		return fmt.Errorf("output path is required in %q mode", ModePNG)
	}
	return nil
}
