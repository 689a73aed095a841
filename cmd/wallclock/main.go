package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jensholdgaard/wallclock/internal/canvas"
	"github.com/jensholdgaard/wallclock/internal/clock"
	"github.com/jensholdgaard/wallclock/internal/config"
	"github.com/jensholdgaard/wallclock/internal/face"
	"github.com/jensholdgaard/wallclock/internal/render"
	"github.com/jensholdgaard/wallclock/internal/telemetry"
	"github.com/jensholdgaard/wallclock/internal/terminal"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to configuration file (defaults apply when empty)")
	once := flag.Bool("once", false, "write a single PNG snapshot and exit")
	out := flag.String("out", "", "snapshot path, overrides output.path")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	if err := run(*configPath, *once, *out); err != nil {
		slog.Error("fatal error", slog.Any("error", err))
		os.Exit(1)
	}
}

func loadConfig(path, out string, once bool) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if once {
		cfg.Display.Mode = config.ModePNG
	}
	if out != "" {
		cfg.Output.Path = out
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func run(configPath string, once bool, out string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(configPath, out, once)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var logOut io.Writer = os.Stderr
	if cfg.Telemetry.LogFile != "" {
		f, err := os.OpenFile(filepath.Clean(cfg.Telemetry.LogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	tp, err := telemetry.Setup(ctx, cfg.Telemetry, logOut)
	if err != nil {
		slog.Warn("telemetry setup failed, continuing without OTEL export", slog.Any("error", err))
		tp = telemetry.NewNopProvider()
	}
	defer func() {
		if shutdownErr := tp.Shutdown(context.Background()); shutdownErr != nil {
			slog.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()
	logger := tp.Logger

	loc, err := clock.LoadLocation(cfg.Clock.Timezone)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", cfg.Clock.Timezone, err)
	}
	clk := clock.Real{Location: loc}

	d := cfg.Display
	layout := render.LayoutFor(d.Width, d.Height, d.Margin)
	renderer, err := render.New(layout, render.DefaultPalette(), logger, tp.TracerProvider, tp.MeterProvider)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	if d.Mode == config.ModePNG {
		return snapshot(ctx, renderer, clk, cfg, logger)
	}
	return loop(ctx, renderer, clk, cfg, logger)
}

func snapshot(ctx context.Context, r *render.Renderer, clk clock.Clock, cfg *config.Config, logger *slog.Logger) error {
	s := face.NewSample(clk)
	img, err := r.Still(ctx, s, render.StillOptions{
		Smooth:    cfg.Display.Smooth,
		HandWidth: cfg.Display.HandWidth,
		Scale:     cfg.Display.Scale,
		Scaler:    render.ScalerByName(cfg.Display.Scaler),
	})
	if err != nil {
		return fmt.Errorf("rendering snapshot: %w", err)
	}
	if err := render.SavePNG(cfg.Output.Path, img); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	logger.InfoContext(ctx, "snapshot written",
		slog.String("path", cfg.Output.Path),
		slog.String("time", s.String()),
	)
	return nil
}

func loop(ctx context.Context, r *render.Renderer, clk clock.Clock, cfg *config.Config, logger *slog.Logger) error {
	screen, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		if errors.Is(err, terminal.ErrNotTerminal) {
			return fmt.Errorf("opening display (use -once for a PNG snapshot): %w", err)
		}
		return fmt.Errorf("opening display: %w", err)
	}
	defer func() {
		if closeErr := screen.Close(); closeErr != nil {
			logger.Error("restoring terminal failed", slog.Any("error", closeErr))
		}
	}()

	l := r.Layout()
	buf, err := canvas.New(l.Width, l.Height)
	if err != nil {
		return fmt.Errorf("allocating frame buffer: %w", err)
	}

	draw := func() error {
		r.Frame(ctx, buf, face.NewSample(clk))
		return screen.Present(buf)
	}

	logger.InfoContext(ctx, "wallclock is running", slog.String("version", version))
	if err := draw(); err != nil {
		return fmt.Errorf("presenting frame: %w", err)
	}

	ticker := time.NewTicker(cfg.Display.FrameInterval)
	defer ticker.Stop()

	keys := screen.Keys()
	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down...")
			return nil
		case k, ok := <-keys:
			if !ok || k == terminal.KeyEscape || k == terminal.KeyQuit {
				logger.Info("shutting down...")
				return nil
			}
		case <-ticker.C:
			if err := draw(); err != nil {
				return fmt.Errorf("presenting frame: %w", err)
			}
		}
	}
}
