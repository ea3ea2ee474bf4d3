package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Surface dimensions of the 128x64 OLED
	SurfaceWidth  = 128
	SurfaceHeight = 64

	// Key matrix the trigger coordinates are spread over
	MatrixCols = 8
	MatrixRows = 4

	// Ripple pool
	MaxSlots     = 16
	DefaultSlots = 15

	// Frame composer
	FrameInterval = 100 // ms

	// Step-based lifecycle
	MaxIteration = 5
	Radius0      = 2
	RadiusStep   = 6
	Travel       = 2
	DappleScale  = 60 // percent at the last iteration

	// Time-based lifecycle
	Period     = 1000 // ms
	Wavelength = 10   // px
	Timeout    = 2500 // ms

	// Emulator window
	WindowScale = 6
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Policy selects the ripple lifecycle variant.
type Policy uint8

const (
	// PolicyTimed derives ring count and radius from elapsed time.
	PolicyTimed Policy = iota
	// PolicyStepUndraw erases the previous rings before drawing the next.
	PolicyStepUndraw
	// PolicyStepClear draws one new ring per tick and relies on a full clear.
	PolicyStepClear
)

var policyNames = map[Policy]string{
	PolicyTimed:      "timed",
	PolicyStepUndraw: "undraw",
	PolicyStepClear:  "clear",
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// ParsePolicy accepts the names printed by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown policy %q (want timed, undraw or clear)", ErrInvalidConfig, s)
}

// Config holds every tunable of the ripple engine.
type Config struct {
	Width, Height int
	Cols, Rows    int

	Slots         int
	FrameInterval uint16
	Policy        Policy

	// step-based
	MaxIteration uint8
	Radius0      uint16
	Step         uint16
	Travel       uint16
	Dapple       uint8

	// time-based
	Period     uint16
	Wavelength uint8
	Timeout    uint16

	// Seed for the dither source, 0 seeds from the clock
	Seed uint64
}

// Default returns the firmware defaults.
func Default() Config {
	return Config{
		Width:         SurfaceWidth,
		Height:        SurfaceHeight,
		Cols:          MatrixCols,
		Rows:          MatrixRows,
		Slots:         DefaultSlots,
		FrameInterval: FrameInterval,
		Policy:        PolicyTimed,
		MaxIteration:  MaxIteration,
		Radius0:       Radius0,
		Step:          RadiusStep,
		Travel:        Travel,
		Dapple:        DappleScale,
		Period:        Period,
		Wavelength:    Wavelength,
		Timeout:       Timeout,
	}
}

// Validate reports the first setting the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Width > 256 || c.Height <= 0 || c.Height > 256:
		return fmt.Errorf("%w: surface %dx%d must fit in 1..256 per axis", ErrInvalidConfig, c.Width, c.Height)
	case c.Cols <= 0 || c.Rows <= 0:
		return fmt.Errorf("%w: matrix %dx%d must be positive", ErrInvalidConfig, c.Cols, c.Rows)
	case c.Slots < 1 || c.Slots > MaxSlots:
		return fmt.Errorf("%w: slots %d out of range 1..%d", ErrInvalidConfig, c.Slots, MaxSlots)
	case c.FrameInterval == 0:
		return fmt.Errorf("%w: frame interval must be positive", ErrInvalidConfig)
	case c.Dapple > 100:
		return fmt.Errorf("%w: dapple %d exceeds 100 percent", ErrInvalidConfig, c.Dapple)
	}

	switch c.Policy {
	case PolicyStepUndraw, PolicyStepClear:
		if c.MaxIteration == 0 {
			return fmt.Errorf("%w: max iteration must be positive", ErrInvalidConfig)
		}
	case PolicyTimed:
		if c.Period == 0 || c.Timeout == 0 {
			return fmt.Errorf("%w: period and timeout must be positive", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidConfig, c.Policy)
	}
	return nil
}
