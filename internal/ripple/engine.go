package ripple

import (
	"log/slog"

	"github.com/iburimskiy/oled-ripple/internal/config"
)

// Hooks let the embedding program observe the engine. Nil fields are no-ops.
type Hooks struct {
	// Key runs before a key event is handled. Returning false drops it.
	Key func(ev KeyEvent) bool
	// Frame runs after every TickAndRender with its result.
	Frame func(changed bool)
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithRandom replaces the seeded dither source.
func WithRandom(r Random) Option {
	return func(e *Engine) { e.random = r }
}

// WithHooks installs embedding callbacks.
func WithHooks(h Hooks) Option {
	return func(e *Engine) { e.hooks = h }
}

// WithLogger overrides the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine animates ripples on a Surface. Key events and ticks must come from
// the same goroutine.
type Engine struct {
	cfg       config.Config
	pool      Pool
	lifecycle Lifecycle
	composer  Composer
	mapper    Mapper
	raster    *Rasterizer

	clock  Clock
	random Random
	hooks  Hooks
	log    *slog.Logger
}

// New builds an engine drawing on surface. cfg is expected to be validated.
func New(cfg config.Config, surface Surface, opts ...Option) *Engine {
	e := &Engine{
		cfg:       cfg,
		pool:      NewPool(cfg.Slots),
		lifecycle: NewLifecycle(cfg),
		composer:  Composer{Interval: cfg.FrameInterval},
		mapper:    Mapper{Width: cfg.Width, Height: cfg.Height, Cols: cfg.Cols, Rows: cfg.Rows},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.clock == nil {
		e.clock = NewSystemClock()
	}
	if e.random == nil {
		e.random = NewRandom(cfg.Seed)
	}
	if e.log == nil {
		e.log = Logger()
	}
	e.raster = NewRasterizer(surface, e.random, cfg.Width, cfg.Height)

	e.log.Debug("ripple engine ready",
		"policy", cfg.Policy.String(),
		"slots", e.pool.Cap(),
		"frame_ms", cfg.FrameInterval)
	return e
}

// OnKeyEvent spawns a ripple on every press. Releases are ignored.
func (e *Engine) OnKeyEvent(ev KeyEvent) {
	if e.hooks.Key != nil && !e.hooks.Key(ev) {
		return
	}
	if !ev.Pressed {
		return
	}
	x, y := e.mapper.Map(ev.Col, ev.Row)
	e.AddRipple(x, y)
}

// AddRipple spawns a ripple at a pixel coordinate, overwriting the oldest
// slot when the pool is full.
func (e *Engine) AddRipple(x, y uint8) {
	if int(x) >= e.cfg.Width {
		x = uint8(e.cfg.Width - 1)
	}
	if int(y) >= e.cfg.Height {
		y = uint8(e.cfg.Height - 1)
	}

	slot, evicted := e.pool.Insert(e.lifecycle.Spawn(x, y, e.clock.Now()))
	if evicted {
		e.log.Debug("ripple overwritten", "slot", slot)
	}
	e.log.Debug("ripple spawned", "slot", slot, "x", x, "y", y)
}

// TickAndRender advances every active ripple when a frame interval has
// passed and reports whether the surface changed.
func (e *Engine) TickAndRender() bool {
	changed := e.tick()
	if e.hooks.Frame != nil {
		e.hooks.Frame(changed)
	}
	return changed
}

func (e *Engine) tick() bool {
	now := e.clock.Now()
	if !e.composer.Due(now) {
		return false
	}

	changed := false
	if e.lifecycle.ClearsEachTick() {
		changed = e.composer.Wipe(e.raster.Clear)
	}

	active := 0
	e.pool.ForEachActive(func(slot int, r *Ripple) {
		if e.lifecycle.Advance(r, e.raster, now) {
			active++
		} else {
			e.log.Debug("ripple retired", "slot", slot)
		}
	})

	wasDirty := e.composer.Dirty()
	if e.composer.Settle(active, e.raster.Clear) {
		changed = true
	}
	if wasDirty && active == 0 {
		e.log.Debug("surface cleared")
	}
	return changed
}

// Active counts the ripples still animating.
func (e *Engine) Active() int {
	return e.pool.Active()
}

// Pool exposes the slots for inspection.
func (e *Engine) Pool() *Pool {
	return &e.pool
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.Config {
	return e.cfg
}
