package ripple

import "github.com/iburimskiy/oled-ripple/internal/config"

// MaxSlots is the compile-time size of every pool.
const MaxSlots = config.MaxSlots

// Ripple is one expanding ring animation.
//
// Iteration is 0 while the slot is free. Step-based policies count it up once
// per tick; the timed policy holds it at 1 and ages the ripple from Start.
type Ripple struct {
	X, Y uint8

	// step-based
	Radius0   uint16
	Step      uint16
	Iteration uint8

	// time-based
	Start      uint16
	Period     uint16
	Timeout    uint16
	Wavelength uint8
}

// Active reports whether the ripple is still animating.
func (r Ripple) Active() bool {
	return r.Iteration != 0
}

// Retire frees the slot. The whole record is zeroed so no stale lifecycle
// values survive.
func (r *Ripple) Retire() {
	*r = Ripple{}
}

// Pool is a fixed array of ripple slots filled round-robin. Inserting into a
// full pool overwrites the oldest slot.
type Pool struct {
	slots [MaxSlots]Ripple
	size  int
	next  int
}

// NewPool returns a pool using the first capacity slots, clamped to
// 1..MaxSlots.
func NewPool(capacity int) Pool {
	if capacity < 1 {
		capacity = 1
	}
	if capacity > MaxSlots {
		capacity = MaxSlots
	}
	return Pool{size: capacity}
}

// Insert stores r at the cursor and advances it. It returns the slot index
// and whether an active ripple was discarded.
func (p *Pool) Insert(r Ripple) (slot int, evicted bool) {
	if p.size == 0 {
		p.size = 1
	}
	slot = p.next
	evicted = p.slots[slot].Active()
	p.slots[slot] = r
	p.next = (p.next + 1) % p.size
	return slot, evicted
}

// ForEachActive calls f for every active slot in array order.
func (p *Pool) ForEachActive(f func(slot int, r *Ripple)) {
	for i := 0; i < p.size; i++ {
		if p.slots[i].Active() {
			f(i, &p.slots[i])
		}
	}
}

// Active counts the active slots.
func (p *Pool) Active() int {
	n := 0
	for i := 0; i < p.size; i++ {
		if p.slots[i].Active() {
			n++
		}
	}
	return n
}

// Cap returns the number of usable slots.
func (p *Pool) Cap() int {
	return p.size
}

// Slot returns a copy of slot i.
func (p *Pool) Slot(i int) Ripple {
	if i < 0 || i >= p.size {
		return Ripple{}
	}
	return p.slots[i]
}
