package ripple

import "github.com/iburimskiy/oled-ripple/internal/config"

// Lifecycle spawns ripples and advances them one tick at a time.
type Lifecycle interface {
	// Spawn builds a fresh active ripple centered at (x, y).
	Spawn(x, y uint8, now uint16) Ripple
	// Advance draws the next frame of r and reports whether it is still
	// active. A retired ripple is zeroed.
	Advance(r *Ripple, d *Rasterizer, now uint16) bool
	// ClearsEachTick reports whether the surface must be blanked before
	// every tick because old frames are never erased.
	ClearsEachTick() bool
}

// NewLifecycle returns the variant selected by cfg.Policy. Unknown policies
// fall back to the timed variant.
func NewLifecycle(cfg config.Config) Lifecycle {
	switch cfg.Policy {
	case config.PolicyStepUndraw:
		return &stepLifecycle{cfg: cfg, undraw: true}
	case config.PolicyStepClear:
		return &stepLifecycle{cfg: cfg}
	default:
		return &timedLifecycle{cfg: cfg}
	}
}

type stepLifecycle struct {
	cfg    config.Config
	undraw bool
}

func (l *stepLifecycle) Spawn(x, y uint8, _ uint16) Ripple {
	return Ripple{
		X:         x,
		Y:         y,
		Radius0:   l.cfg.Radius0,
		Step:      l.cfg.Step,
		Iteration: 1,
	}
}

func (l *stepLifecycle) ClearsEachTick() bool {
	return !l.undraw
}

func (l *stepLifecycle) Advance(r *Ripple, d *Rasterizer, _ uint16) bool {
	n := r.Iteration
	last := l.cfg.MaxIteration

	if n == 0 {
		return false
	}
	if n > last {
		r.Retire()
		return false
	}

	if l.undraw && n > 1 {
		l.rings(r, d, n-1, false)
	}
	if n == last {
		r.Retire()
		return false
	}

	if l.undraw {
		l.rings(r, d, n, true)
	} else {
		radius := int(r.Radius0) + int(r.Step)*int(n-1)
		d.DrawCircle(int(r.X), int(r.Y), radius, 0, true)
	}
	r.Iteration++
	return true
}

// rings draws or erases the ring set of iteration n: n concentric circles
// that drift outward by Travel per iteration and dither as n grows.
func (l *stepLifecycle) rings(r *Ripple, d *Rasterizer, n uint8, on bool) {
	travel := int(l.cfg.Travel) * int(n-1)
	dapple := int(l.cfg.Dapple) * int(n-1) / int(l.cfg.MaxIteration)
	for i := 1; i <= int(n); i++ {
		radius := int(r.Radius0) + int(r.Step)*i + travel
		d.DrawCircle(int(r.X), int(r.Y), radius, dapple, on)
	}
}

type timedLifecycle struct {
	cfg config.Config
}

func (l *timedLifecycle) Spawn(x, y uint8, now uint16) Ripple {
	return Ripple{
		X:          x,
		Y:          y,
		Iteration:  1,
		Start:      now,
		Period:     l.cfg.Period,
		Timeout:    l.cfg.Timeout,
		Wavelength: l.cfg.Wavelength,
	}
}

func (l *timedLifecycle) ClearsEachTick() bool {
	return true
}

func (l *timedLifecycle) Advance(r *Ripple, d *Rasterizer, now uint16) bool {
	if !r.Active() {
		return false
	}
	if r.Period == 0 || r.Timeout == 0 {
		r.Retire()
		return false
	}

	elapsed := now - r.Start
	if elapsed > r.Timeout {
		r.Retire()
		return false
	}

	count, radius := timedRings(r, elapsed)
	dapple := int(elapsed) * 100 / int(r.Timeout)
	for i := 0; i < count; i++ {
		d.DrawCircle(int(r.X), int(r.Y), radius, dapple, true)
		radius += int(r.Wavelength)
	}
	return true
}

// timedRings returns how many rings to draw at elapsed and the radius of the
// innermost one. Past half the timeout the inner rings stop being emitted so
// the ring count never exceeds what fits in the first half.
func timedRings(r *Ripple, elapsed uint16) (count, radius int) {
	period := int(r.Period)
	e := int(elapsed)

	count = (e + period - 1) / period
	radius = int(r.Wavelength) * (e % period) / period

	half := int(r.Timeout) / 2
	if e > half {
		limit := (half + period - 1) / period
		if count > limit {
			removed := count - limit
			count = limit
			radius += int(r.Wavelength) * removed
		}
	}
	return count, radius
}
