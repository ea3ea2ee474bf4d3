package ripple

import (
	"math/rand/v2"
	"time"
)

// Random supplies dither decisions. Percent returns a value in [0,100).
type Random interface {
	Percent() uint8
}

type pcgRandom struct {
	r *rand.Rand
}

// NewRandom returns a PCG backed source. A zero seed is replaced by the
// current time so each run dithers differently.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *pcgRandom) Percent() uint8 {
	return uint8(p.r.IntN(100))
}

// SequenceRandom replays a fixed list of percents, cycling when exhausted.
// An empty sequence always returns 0.
type SequenceRandom struct {
	Values []uint8
	pos    int
}

func (s *SequenceRandom) Percent() uint8 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}

// Calls reports how many values were drawn.
func (s *SequenceRandom) Calls() int {
	return s.pos
}
