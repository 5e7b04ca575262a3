// Package rng reproduces the two-register 8-bit pseudo-random generator used by
// classic console titles. Every call to Next consumes exactly two steps, so any
// recorded sequence can be replayed from its seed pair.
package rng

import "time"

// Rng is a deterministic byte generator driven by two 8-bit registers.
// Not safe for concurrent use.
type Rng struct {
	s0, s1 byte
}

// New creates a generator from an explicit seed pair.
func New(s0, s1 byte) *Rng {
	return &Rng{s0: s0, s1: s1}
}

// NewFromTime creates a generator seeded from the given wall-clock time.
func NewFromTime(t time.Time) *Rng {
	seeds := Seeds(t)
	return New(seeds[0], seeds[1])
}

// NewFromClock creates a generator seeded from the current local time.
func NewFromClock() *Rng {
	return NewFromTime(time.Now())
}

// Seeds derives the seed pair from a clock reading.
// Arithmetic wraps at 8 bits.
func Seeds(t time.Time) [2]byte {
	sec := byte(t.Second())
	minute := byte(t.Minute())
	hour := byte(t.Hour())
	day := byte(t.Day())
	month := byte(t.Month())

	return [2]byte{
		sec + minute + hour + day + month,
		(sec & minute) + hour + (day | month),
	}
}

// State returns the current register values.
func (r *Rng) State() [2]byte {
	return [2]byte{r.s0, r.s1}
}

// Next returns two output bytes produced by two consecutive steps.
func (r *Rng) Next() [2]byte {
	var num [2]byte

	r.tick()
	num[0] = r.s0 ^ r.s1
	r.tick()
	num[1] = r.s0 ^ r.s1

	return num
}

// Random returns two bytes, each reduced modulo max.
// Panics if max is zero.
func (r *Rng) Random(max byte) [2]byte {
	num := r.Next()

	num[0] %= max
	num[1] %= max

	return num
}

// RandomSingle combines one Next pair into a 16-bit value reduced modulo max.
// Panics if max is zero.
func (r *Rng) RandomSingle(max uint16) uint16 {
	num := r.Next()
	return (uint16(num[0])<<8 | uint16(num[1])) % max
}

// RandomSingleU32 combines two Next pairs big-endian into a 32-bit value
// reduced modulo max. Panics if max is zero.
func (r *Rng) RandomSingleU32(max uint32) uint32 {
	hi := r.Next()
	lo := r.Next()
	v := uint32(hi[0])<<24 | uint32(hi[1])<<16 | uint32(lo[0])<<8 | uint32(lo[1])
	return v % max
}

func (r *Rng) tick() {
	r.s0 = r.s0*5 + 1

	bit4 := r.s1&0x08 != 0
	bit7 := r.s1&0x40 != 0
	var carry byte
	if bit4 == bit7 {
		carry = 1
	}

	r.s1 = r.s1*2 + carry
}
