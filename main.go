package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"os/signal"

	"github.com/iburimskiy/oled-ripple/internal/config"
	"github.com/iburimskiy/oled-ripple/internal/game"
	"github.com/iburimskiy/oled-ripple/internal/oled"
	"github.com/iburimskiy/oled-ripple/internal/ripple"
	"github.com/iburimskiy/oled-ripple/internal/sound"
	"github.com/iburimskiy/oled-ripple/internal/term"
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		slog.Error("emulator stopped", "err", err)
		if *backendFlag == "window" {
			game.ShowError(err)
		}
		os.Exit(1)
	}
}

func run() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	cfg, err := configFromFlags()
	if err != nil {
		return err
	}

	on, err := oled.Tint(*tintHueFlag, *tintSatFlag, *tintValFlag)
	if err != nil {
		return err
	}

	switch *backendFlag {
	case "window":
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		ripple.SetLogger(logger)
		return game.Run(cfg, game.Options{
			Scale:     *scaleFlag,
			On:        on,
			ClickPath: *clickFlag,
			Mute:      *muteFlag,
			Debug:     *debugFlag,
			Logger:    logger,
		})
	case "terminal":
		return runTerminal(cfg, on, level)
	default:
		return fmt.Errorf("unknown backend %q", *backendFlag)
	}
}

// runTerminal logs to a file next to the working directory because stderr
// belongs to the screen while it is running.
func runTerminal(cfg config.Config, on color.RGBA, level slog.Level) error {
	logFile, err := os.OpenFile("oled-ripple.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	ripple.SetLogger(logger)

	click := sound.New(sound.SampleRate)
	if err := click.Init(); err != nil {
		// non-fatal, run without sound
		logger.Warn("audio unavailable", "err", err)
	}
	click.SetMuted(*muteFlag)
	if *clickFlag != "" {
		if err := click.Load(*clickFlag); err != nil {
			logger.Warn("click sample not loaded", "path", *clickFlag, "err", err)
		}
	}

	screen, err := term.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	t := term.New(screen, cfg, term.Options{On: on, Click: click.Play, Logger: logger})
	return t.Run(ctx)
}

func configFromFlags() (config.Config, error) {
	cfg := config.Default()

	policy, err := config.ParsePolicy(*policyFlag)
	if err != nil {
		return cfg, err
	}
	cfg.Policy = policy
	cfg.Slots = *slotsFlag
	cfg.Seed = *seedFlag

	if *frameFlag > math.MaxUint16 || *maxIterFlag > math.MaxUint8 || *timeoutFlag > math.MaxUint16 {
		return cfg, fmt.Errorf("%w: frame-ms, max-iter or timeout-ms out of range", config.ErrInvalidConfig)
	}
	cfg.FrameInterval = uint16(*frameFlag)
	cfg.MaxIteration = uint8(*maxIterFlag)
	cfg.Timeout = uint16(*timeoutFlag)

	return cfg, cfg.Validate()
}
