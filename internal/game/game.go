// Package game runs the ripple engine in a desktop window that stands in
// for the keyboard's OLED.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/oled-ripple/internal/config"
	"github.com/iburimskiy/oled-ripple/internal/matrix"
	"github.com/iburimskiy/oled-ripple/internal/oled"
	"github.com/iburimskiy/oled-ripple/internal/ripple"
	"github.com/iburimskiy/oled-ripple/internal/sound"
)

// Options tune the window front end.
type Options struct {
	Scale     int
	On        color.RGBA
	ClickPath string
	Mute      bool
	Debug     bool
	Logger    *slog.Logger
}

type game struct {
	// core
	engine *ripple.Engine
	fb     *oled.Framebuffer
	rng    *rand.Rand

	// output
	screen *ebiten.Image
	pixels []byte
	on     color.RGBA
	scale  int

	// audio
	click *sound.Clicker

	// input edge detection
	keys []ebiten.Key

	// state
	paused  bool
	debug   bool
	lastErr error
	log     *slog.Logger
}

func newGame(cfg config.Config, opts Options) *game {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	fb := oled.New(cfg.Width, cfg.Height)
	g := &game{
		fb:     fb,
		rng:    newRand(cfg.Seed),
		screen: ebiten.NewImage(cfg.Width, cfg.Height),
		pixels: make([]byte, cfg.Width*cfg.Height*4),
		on:     opts.On,
		scale:  opts.Scale,
		click:  sound.New(sound.SampleRate),
		debug:  opts.Debug,
		log:    opts.Logger,
	}
	g.engine = ripple.New(cfg, fb,
		ripple.WithLogger(opts.Logger),
		ripple.WithHooks(ripple.Hooks{Key: g.onKey}),
	)

	if err := g.click.Init(); err != nil {
		// non-fatal, the emulator runs without sound
		g.log.Warn("audio unavailable", "err", err)
	}
	g.click.SetMuted(opts.Mute)
	if opts.ClickPath != "" {
		if err := g.click.Load(opts.ClickPath); err != nil {
			g.log.Warn("click sample not loaded", "path", opts.ClickPath, "err", err)
		}
	}
	return g
}

func (g *game) onKey(ev ripple.KeyEvent) bool {
	if ev.Pressed {
		g.click.Play()
	}
	return true
}

func (g *game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch k {
		case keyQuit:
			return ebiten.Termination
		case keyPause:
			g.paused = !g.paused
		case keyOpenClick:
			g.openClick()
		case keyScreenshot:
			g.screenshot()
		}
		if !isControl(k) {
			g.engine.OnKeyEvent(matrix.Event(keyRune(k), true, g.rng))
		}
		if quitAfterPress(k) {
			return ebiten.Termination
		}
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if !isControl(k) {
			g.engine.OnKeyEvent(matrix.Event(keyRune(k), false, g.rng))
		}
	}

	if !g.paused {
		g.engine.TickAndRender()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.fb.Flush() {
		g.fb.WriteRGBA(g.pixels, g.on, oled.Off)
		g.screen.WritePixels(g.pixels)
	}
	screen.DrawImage(g.screen, nil)

	if g.debug {
		status := fmt.Sprintf("%d", g.engine.Active())
		if g.paused {
			status += " ||"
		}
		if g.lastErr != nil {
			status += " !"
		}
		ebitenutil.DebugPrintAt(screen, status, 1, 0)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width(), g.fb.Height()
}

func (g *game) openClick() {
	path, err := openClickDialog()
	if err == nil && path != "" {
		err = g.click.Load(path)
	}
	if err != nil {
		g.lastErr = err
		g.log.Error("open click sample", "err", err)
		return
	}
	if path != "" {
		g.log.Info("click sample loaded", "path", path)
	}
}

func (g *game) screenshot() {
	path, err := saveScreenshotDialog(g.fb.Image(g.on, oled.Off), g.scale)
	if err != nil {
		g.lastErr = err
		g.log.Error("save screenshot", "err", err)
		return
	}
	if path != "" {
		g.log.Info("screenshot saved", "path", path)
	}
}

// Run opens the emulator window and blocks until it is closed.
func Run(cfg config.Config, opts Options) error {
	if opts.Scale < 1 {
		opts.Scale = config.WindowScale
	}
	ebiten.SetWindowSize(cfg.Width*opts.Scale, cfg.Height*opts.Scale)
	ebiten.SetWindowTitle("OLED - type to make ripples, Space: pause, F2: click sound, F12: screenshot, Esc: quit")

	if err := ebiten.RunGame(newGame(cfg, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// newRand seeds the fallback key placement; 0 seeds from the clock.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed+1))
}

// ShowError reports a fatal error in a dialog for users who started the
// emulator without a terminal.
func ShowError(err error) {
	_ = zenity.Error(err.Error(), zenity.Title("OLED emulator"), zenity.ErrorIcon)
}
