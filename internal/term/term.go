// Package term runs the ripple engine in a terminal, packing two OLED rows
// into each character cell with half-block glyphs.
package term

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/oled-ripple/internal/config"
	"github.com/iburimskiy/oled-ripple/internal/matrix"
	"github.com/iburimskiy/oled-ripple/internal/oled"
	"github.com/iburimskiy/oled-ripple/internal/ripple"
)

const renderInterval = 16 * time.Millisecond // ~60 FPS

// Options tune the terminal front end.
type Options struct {
	On     color.RGBA
	Click  func()
	Logger *slog.Logger
}

// Terminal owns a tcell screen and an engine drawing into a framebuffer.
type Terminal struct {
	screen tcell.Screen
	engine *ripple.Engine
	fb     *oled.Framebuffer
	rng    *rand.Rand
	style  tcell.Style
	click  func()
	log    *slog.Logger
}

// New wraps an initialised screen. Extra engine options are applied after
// the terminal's own.
func New(screen tcell.Screen, cfg config.Config, opts Options, engineOpts ...ripple.Option) *Terminal {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	t := &Terminal{
		screen: screen,
		fb:     oled.New(cfg.Width, cfg.Height),
		rng:    rand.New(rand.NewPCG(seed, seed+1)),
		style: tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(opts.On.R), int32(opts.On.G), int32(opts.On.B))).
			Background(tcell.ColorBlack),
		click: opts.Click,
		log:   opts.Logger,
	}
	engineOpts = append([]ripple.Option{ripple.WithLogger(opts.Logger)}, engineOpts...)
	t.engine = ripple.New(cfg, t.fb, engineOpts...)
	return t
}

// Engine returns the wrapped engine.
func (t *Terminal) Engine() *ripple.Engine {
	return t.engine
}

// HandleEvent processes one terminal event and reports whether to keep
// running.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			t.press(ev.Rune())
			if r := ev.Rune(); r == 'q' || r == 'Q' {
				return false
			}
		default:
			t.press(0)
		}
	case *tcell.EventResize:
		t.screen.Sync()
		t.draw()
	}
	return true
}

// terminals only report presses, so each one is followed by its release
func (t *Terminal) press(r rune) {
	if t.click != nil {
		t.click()
	}
	ev := matrix.Event(r, true, t.rng)
	t.engine.OnKeyEvent(ev)
	ev.Pressed = false
	t.engine.OnKeyEvent(ev)
}

// Frame runs one render loop iteration and redraws when the surface changed.
func (t *Terminal) Frame() {
	t.engine.TickAndRender()
	if t.fb.Flush() {
		t.draw()
	}
}

// Cell returns the glyph for the pixel pair (x, 2*row) and (x, 2*row+1).
func (t *Terminal) Cell(x, row int) rune {
	top, bottom := t.fb.At(x, 2*row), t.fb.At(x, 2*row+1)
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	}
	return ' '
}

func (t *Terminal) draw() {
	rows := (t.fb.Height() + 1) / 2
	for row := 0; row < rows; row++ {
		for x := 0; x < t.fb.Width(); x++ {
			t.screen.SetContent(x, row, t.Cell(x, row), nil, t.style)
		}
	}
	t.screen.Show()
}

// Run polls input and renders until ctx is done or the user quits.
func (t *Terminal) Run(ctx context.Context) error {
	w, h := t.screen.Size()
	if w < t.fb.Width() || h < (t.fb.Height()+1)/2 {
		t.log.Warn("terminal smaller than the OLED, output is cropped",
			"cols", w, "rows", h)
	}

	ticker := time.NewTicker(renderInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	t.screen.Clear()
	t.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !t.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			t.Frame()
		}
	}
}

// Open initialises the controlling terminal.
func Open() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return s, nil
}
