package memory

// Default generator seeds. Recorded shuffle sequences depend on these values.
const (
	DefaultSeed0 uint64 = 123456789
	DefaultSeed1 uint64 = 362436069
)

// Generator is a deterministic xorshift128+ sequence generator.
// It has no external entropy source: the same seeds always produce the same
// sequence. It is not suitable for anything that needs unpredictability.
type Generator struct {
	state0 uint64
	state1 uint64
}

// NewGenerator creates a generator from two seed words.
// Both words zero would make the sequence constant, so that case falls back
// to the default seeds.
func NewGenerator(seed0, seed1 uint64) *Generator {
	if seed0 == 0 && seed1 == 0 {
		seed0, seed1 = DefaultSeed0, DefaultSeed1
	}
	return &Generator{state0: seed0, state1: seed1}
}

// DefaultGenerator creates a generator with the default seeds.
func DefaultGenerator() *Generator {
	return NewGenerator(DefaultSeed0, DefaultSeed1)
}

// Next advances the state and returns the next value.
func (g *Generator) Next() uint64 {
	s1 := g.state0
	s0 := g.state1
	g.state0 = s0
	s1 ^= s1 << 23
	s1 ^= s1 >> 17
	s1 ^= s0
	s1 ^= s0 >> 26
	g.state1 = s1
	return g.state0 + g.state1
}

// RandomRangeInteger returns min + Next() mod (max-min).
// The result is in [min, max) and carries modulo bias; the formula is kept
// as is so existing recorded sequences replay identically.
// Panics if max <= min.
func (g *Generator) RandomRangeInteger(min, max int) int {
	if max <= min {
		panic("memory: RandomRangeInteger requires max > min")
	}
	return min + int(g.Next()%uint64(max-min))
}

// State returns the two state words, e.g. for recording a session.
func (g *Generator) State() (uint64, uint64) {
	return g.state0, g.state1
}

// SwapElements exchanges s[a] and s[b] in place.
// Indices are not checked: out-of-range values panic with a runtime
// index error.
func SwapElements[T any](s []T, a, b int) {
	s[a], s[b] = s[b], s[a]
}
