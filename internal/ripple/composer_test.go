package ripple

import "testing"

func TestComposerDue(t *testing.T) {
	var c Composer
	c.Interval = 100

	if !c.Due(4242) {
		t.Fatal("zero composer must tick on first call")
	}
	steps := []struct {
		now  uint16
		want bool
	}{
		{4300, false},
		{4341, false},
		{4342, true},
		{4342, false},
		{4500, true},
	}
	for _, s := range steps {
		if got := c.Due(s.now); got != s.want {
			t.Errorf("Due(%d) = %v, want %v", s.now, got, s.want)
		}
	}
}

func TestComposerDueAcrossWrap(t *testing.T) {
	c := Composer{Interval: 100}
	c.Due(65500)
	if c.Due(63) {
		t.Error("99 ms across the wrap should not tick")
	}
	if !c.Due(64) {
		t.Error("100 ms across the wrap should tick")
	}
}

func TestComposerSettleIsEdgeTriggered(t *testing.T) {
	var c Composer
	clears := 0
	clear := func() { clears++ }

	if c.Settle(0, clear) || clears != 0 {
		t.Fatal("idle zero composer must not clear")
	}
	if !c.Settle(2, clear) || !c.Dirty() {
		t.Fatal("active tick must mark the surface dirty")
	}
	if !c.Settle(0, clear) || clears != 1 {
		t.Fatalf("transition to idle: clears = %d, want 1", clears)
	}
	if c.Settle(0, clear) || clears != 1 {
		t.Errorf("second idle tick cleared again, clears = %d", clears)
	}
}

func TestComposerWipe(t *testing.T) {
	c := Composer{}
	clears := 0
	if c.Wipe(func() { clears++ }) {
		t.Error("Wipe on clean surface reported a change")
	}
	c.Settle(1, nil)
	if !c.Wipe(func() { clears++ }) || clears != 1 || c.Dirty() {
		t.Errorf("Wipe on dirty surface: clears = %d dirty = %v", clears, c.Dirty())
	}
}
