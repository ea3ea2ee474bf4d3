package main

import (
	"flag"

	"github.com/iburimskiy/oled-ripple/internal/config"
)

// Command-line flags for the emulator. Ripple tunables default to the
// firmware values in internal/config.
var (
	// backendFlag picks the front end: a desktop window or the terminal.
	backendFlag = flag.String("backend", "window", "front end: window or terminal")

	// policyFlag selects the ripple lifecycle variant.
	policyFlag = flag.String("policy", config.PolicyTimed.String(), "ripple lifecycle: timed, undraw or clear")

	slotsFlag   = flag.Int("slots", config.DefaultSlots, "ripple pool size (1-16)")
	frameFlag   = flag.Uint("frame-ms", config.FrameInterval, "milliseconds between animation ticks")
	maxIterFlag = flag.Uint("max-iter", config.MaxIteration, "ticks a step-based ripple lives")
	timeoutFlag = flag.Uint("timeout-ms", config.Timeout, "lifetime of a timed ripple")

	// seedFlag fixes the dither and key placement randomness; 0 seeds from the clock.
	seedFlag = flag.Uint64("seed", 0, "random seed, 0 for time based")

	// scaleFlag is the window and screenshot magnification.
	scaleFlag = flag.Int("scale", config.WindowScale, "window pixels per OLED pixel")

	// tint of lit pixels, defaults to the pale blue of the real panel
	tintHueFlag = flag.Float64("tint-hue", 196, "lit pixel hue in degrees")
	tintSatFlag = flag.Float64("tint-sat", 0.16, "lit pixel saturation (0-1)")
	tintValFlag = flag.Float64("tint-val", 1, "lit pixel value (0-1)")

	// clickFlag loads a wav, mp3 or flac file played on every key press.
	clickFlag = flag.String("click", "", "click sample played on key presses")
	muteFlag  = flag.Bool("mute", false, "disable key click audio")

	// debugFlag shows the active ripple count in the window.
	debugFlag = flag.Bool("debug", false, "show the active ripple count overlay")

	logLevelFlag = flag.String("log-level", "info", "log level: debug, info, warn or error")
)
