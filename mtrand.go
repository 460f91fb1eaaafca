package main

import "fmt"

const (
	stateSize   = 624
	shiftSize   = 397
	multiplier  = 1812433253
	upperMask   = 0x80000000
	lowerMask   = 0x7fffffff
	coefficient = 0x9908b0df
	temperMask1 = 0x9d2c5680
	temperMask2 = 0xefc60000
)

// Mode selects the twist variant, same as PHP's MT_RAND_* constants.
type Mode int

const (
	// ModeMT19937 is the correct MT19937 twist (PHP 7.1 and later).
	ModeMT19937 Mode = iota
	// ModePHP keeps the PHP 5 twist, which picks the mask from the wrong word.
	ModePHP
)

func (m Mode) String() string {
	switch m {
	case ModeMT19937:
		return "mt19937"
	case ModePHP:
		return "php"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the names returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "mt19937":
		return ModeMT19937, nil
	case "php":
		return ModePHP, nil
	}
	return 0, fmt.Errorf("err: unknown mt_rand mode (%s)", s)
}

// MTRand reproduces PHP's mt_srand()/mt_rand() generator.
// It is not safe for concurrent use.
type MTRand struct {
	state [stateSize]uint32
	pos   int
	mode  Mode
}

func NewMTRand(seed uint32, mode Mode) *MTRand {
	r := &MTRand{mode: mode}
	r.Seed(seed)
	return r
}

func (r *MTRand) Mode() Mode {
	return r.mode
}

// Seed initializes the state and twists it once, like php_mt_srand.
func (r *MTRand) Seed(seed uint32) {
	r.state[0] = seed
	for i := 1; i < stateSize; i++ {
		r.state[i] = multiplier*(r.state[i-1]^(r.state[i-1]>>30)) + uint32(i)
	}
	r.reload()
}

func (r *MTRand) twist(m, u, v uint32) uint32 {
	n := m ^ (((u & upperMask) | (v & lowerMask)) >> 1)
	lo := v
	if r.mode == ModePHP {
		lo = u
	}
	if lo&1 == 1 {
		n ^= coefficient
	}
	return n
}

func (r *MTRand) reload() {
	s := &r.state
	i := 0
	for ; i < stateSize-shiftSize; i++ {
		s[i] = r.twist(s[i+shiftSize], s[i], s[i+1])
	}
	for ; i < stateSize-1; i++ {
		s[i] = r.twist(s[i+shiftSize-stateSize], s[i], s[i+1])
	}
	s[i] = r.twist(s[i+shiftSize-stateSize], s[i], s[0])
	r.pos = 0
}

func temper(n uint32) uint32 {
	n ^= n >> 11
	n ^= (n << 7) & temperMask1
	n ^= (n << 15) & temperMask2
	n ^= n >> 18
	return n
}

// Uint32 returns the full tempered word.
func (r *MTRand) Uint32() uint32 {
	if r.pos == stateSize {
		r.reload()
	}
	n := temper(r.state[r.pos])
	r.pos++
	return n
}

// Next returns what mt_rand() hands back to PHP code: the tempered word
// without its low bit.
func (r *MTRand) Next() uint32 {
	return r.Uint32() >> 1
}
