// Package sound plays the key click of the emulated keyboard.
package sound

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// SampleRate is the speaker rate samples are resampled to.
const SampleRate = beep.SampleRate(44100)

const (
	clickFreq       = 1800 // Hz
	clickLength     = 15 * time.Millisecond
	resampleQuality = 4
)

// Clicker plays a short sound on every key press: a synthesized tick, or a
// sample the user picked.
type Clicker struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	ready  bool
	muted  bool
	sample *beep.Buffer
}

// New returns a silent clicker; call Init to open the speaker.
func New(rate beep.SampleRate) *Clicker {
	return &Clicker{rate: rate}
}

// Init opens the speaker. Failure leaves the clicker silent.
func (c *Clicker) Init() error {
	if err := speaker.Init(c.rate, c.rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	c.ready = true
	return nil
}

func (c *Clicker) SetMuted(m bool) {
	c.mu.Lock()
	c.muted = m
	c.mu.Unlock()
}

// Load decodes a wav, mp3 or flac file into memory at the speaker rate.
func (c *Clicker) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return errors.New("unsupported file type: " + ext)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != c.rate {
		src = beep.Resample(resampleQuality, format.SampleRate, c.rate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: c.rate, NumChannels: format.NumChannels, Precision: format.Precision})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	c.mu.Lock()
	c.sample = buf
	c.mu.Unlock()
	return nil
}

// Play starts the click without blocking.
func (c *Clicker) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready || c.muted {
		return
	}
	if c.sample != nil {
		speaker.Play(c.sample.Streamer(0, c.sample.Len()))
		return
	}
	speaker.Play(tone(c.rate, clickFreq, clickLength))
}

// tone is a sine burst with a linear decay.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	n := rate.N(d)
	step := 2 * math.Pi * freq / float64(rate)
	i := 0
	return beep.Take(n, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for k := range samples {
			env := 1 - float64(i)/float64(n)
			if env < 0 {
				env = 0
			}
			v := 0.4 * env * math.Sin(step*float64(i))
			samples[k][0], samples[k][1] = v, v
			i++
		}
		return len(samples), true
	}))
}
