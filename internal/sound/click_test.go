package sound

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := tone(rate, 440, 10*time.Millisecond)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] < -1 || smp[0] > 1 || smp[0] != smp[1] {
				t.Fatalf("sample %v out of range or not mono", smp)
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if want := rate.N(10 * time.Millisecond); total != want {
		t.Errorf("tone produced %d samples, want %d", total, want)
	}
}

func TestClickerLoadWav(t *testing.T) {
	rate := beep.SampleRate(8000)
	path := filepath.Join(t.TempDir(), "click.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, tone(rate, 440, 50*time.Millisecond), format); err != nil {
		t.Fatalf("wav.Encode: %v", err)
	}
	f.Close()

	c := New(rate)
	if err := c.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.sample == nil || c.sample.Len() != rate.N(50*time.Millisecond) {
		t.Errorf("sample len = %v, want %d", c.sample, rate.N(50*time.Millisecond))
	}

	// not initialised: play must be a silent no-op
	c.Play()
}

func TestClickerLoadRejects(t *testing.T) {
	c := New(SampleRate)
	if err := c.Load(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("load of a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "click.ogg")
	if err := os.WriteFile(path, []byte("OggS"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := c.Load(path); err == nil {
		t.Error("load of an .ogg file should fail")
	}
}
