package ripple

import (
	"testing"
	"time"
)

func TestElapsedAcrossWrap(t *testing.T) {
	c := NewManualClock(65000)
	start := c.Now()

	prev := uint16(0)
	for i := 0; i < 20; i++ {
		c.Advance(50)
		got := Elapsed(c, start)
		if got <= prev {
			t.Fatalf("step %d: elapsed %d not above %d", i, got, prev)
		}
		if want := uint16((i + 1) * 50); got != want {
			t.Errorf("step %d: elapsed = %d, want %d", i, got, want)
		}
		prev = got
	}
	if c.Now() >= start {
		t.Errorf("clock did not wrap: now = %d", c.Now())
	}
}

func TestManualClockSet(t *testing.T) {
	c := NewManualClock(0)
	c.Set(1234)
	if c.Now() != 1234 {
		t.Errorf("Now() = %d, want 1234", c.Now())
	}
}

func TestSystemClock(t *testing.T) {
	c := NewSystemClock()
	start := c.Now()
	time.Sleep(10 * time.Millisecond)
	if got := Elapsed(c, start); got < 10 {
		t.Errorf("Elapsed() = %d, want at least 10", got)
	}
}

func TestRandomRange(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 1000; i++ {
		if v := r.Percent(); v >= 100 {
			t.Fatalf("Percent() = %d, want < 100", v)
		}
	}

	a, b := NewRandom(99), NewRandom(99)
	for i := 0; i < 16; i++ {
		if a.Percent() != b.Percent() {
			t.Fatal("equal seeds diverged")
		}
	}
}

func TestSequenceRandom(t *testing.T) {
	var empty SequenceRandom
	if empty.Percent() != 0 {
		t.Error("empty sequence should return 0")
	}
	s := &SequenceRandom{Values: []uint8{3, 7}}
	got := []uint8{s.Percent(), s.Percent(), s.Percent()}
	if got[0] != 3 || got[1] != 7 || got[2] != 3 || s.Calls() != 3 {
		t.Errorf("sequence = %v, calls = %d", got, s.Calls())
	}
}
